// Package service holds the modmail business rules between handlers and repositories.
package service

const (
	DefaultThreadPageSize  = 20
	DefaultMessagePageSize = 50
	MaxPageSize            = 100
)

// NormalizePage clamps a requested window: page is at least 1, limit falls
// back to def when unset and is kept within [1, MaxPageSize].
func NormalizePage(page, limit, def int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit == 0 {
		limit = def
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}
