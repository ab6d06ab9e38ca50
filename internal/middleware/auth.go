package middleware

import (
	"context"
	"strings"

	"github.com/PumPum7/modmail/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// ClientKey is the context key holding the authenticated API client name.
const ClientKey contextKey = "client"

// allowedIssuers are the callers expected to hold service tokens.
var allowedIssuers = map[string]bool{
	"modmail-bot":       true,
	"modmail-dashboard": true,
}

// ServiceAuth validates HS256 bearer tokens issued to the bot or dashboard.
// With an empty secret the middleware is a pass-through.
func ServiceAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return c.Next()
		}

		parts := strings.SplitN(c.Get("Authorization"), " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		}, jwt.WithExpirationRequired())
		if err != nil || !token.Valid {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token claims"))
		}
		issuer, _ := claims.GetIssuer()
		if !allowedIssuers[issuer] {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token issuer"))
		}

		c.Locals("client", issuer)
		c.SetUserContext(context.WithValue(c.UserContext(), ClientKey, issuer))
		return c.Next()
	}
}
