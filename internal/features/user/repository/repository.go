package repository

import (
	"context"
	"errors"

	"learncast-backend/internal/features/user/models"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository reads learner identity and progress from the store. All
// methods are reads; the signer never writes state.
type UserRepository interface {
	FindByFID(ctx context.Context, fid int64) (*models.User, error)

	// FindByWallet matches case-insensitively; addresses are lower-cased
	// before any persisted comparison.
	FindByWallet(ctx context.Context, address string) (*models.User, error)

	// CompletionPercentage returns the user's progress through a course in
	// [0,100]; 100 means every lesson card is completed.
	CompletionPercentage(ctx context.Context, userID, courseID string) (int, error)

	// HasMintedBadge reports whether an advisory minted-badge record exists
	// for (user, course).
	HasMintedBadge(ctx context.Context, userID, courseID string) (bool, error)
}
