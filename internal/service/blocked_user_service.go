package service

import (
	"context"
	"errors"

	"github.com/PumPum7/modmail/internal/models"
	"github.com/PumPum7/modmail/internal/repository"
	"github.com/PumPum7/modmail/internal/validation"
)

type BlockedUserService struct {
	blocked repository.BlockedUserRepository
}

type BlockUserInput struct {
	UserID       string  `json:"user_id" validate:"required,max=255"`
	UserTag      string  `json:"user_tag" validate:"required,max=255"`
	BlockedBy    string  `json:"blocked_by" validate:"required,max=255"`
	BlockedByTag string  `json:"blocked_by_tag" validate:"required,max=255"`
	Reason       *string `json:"reason" validate:"omitempty,max=1000"`
}

func NewBlockedUserService(blocked repository.BlockedUserRepository) *BlockedUserService {
	return &BlockedUserService{blocked: blocked}
}

func (s *BlockedUserService) ListBlockedUsers(ctx context.Context, guildID string) ([]models.BlockedUser, error) {
	return s.blocked.List(ctx, guildID)
}

func (s *BlockedUserService) BlockUser(ctx context.Context, guildID string, in BlockUserInput) (*models.BlockedUser, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	user := &models.BlockedUser{
		UserID:       in.UserID,
		UserTag:      in.UserTag,
		BlockedBy:    in.BlockedBy,
		BlockedByTag: in.BlockedByTag,
		Reason:       in.Reason,
		GuildID:      guildID,
	}
	if err := s.blocked.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetBlockStatus never reports a missing user as an error.
func (s *BlockedUserService) GetBlockStatus(ctx context.Context, guildID, userID string) (*models.BlockStatus, error) {
	user, err := s.blocked.GetByUserID(ctx, guildID, userID)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeNotFound {
			return &models.BlockStatus{Blocked: false}, nil
		}
		return nil, err
	}
	return &models.BlockStatus{Blocked: true, User: user}, nil
}

func (s *BlockedUserService) UnblockUser(ctx context.Context, guildID, userID string) error {
	return s.blocked.Delete(ctx, guildID, userID)
}
