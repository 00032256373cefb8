package convex

import (
	"context"
	"fmt"
	"strings"

	"learncast-backend/internal/features/user/models"
	"learncast-backend/internal/features/user/repository"
	"learncast-backend/internal/platform/convex"
)

type userRepository struct {
	client *convex.Client
}

func NewUserRepository(client *convex.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) FindByFID(ctx context.Context, fid int64) (*models.User, error) {
	var user *models.User
	err := r.client.Query(ctx, "users:getByFid", map[string]interface{}{"fid": fid}, &user)
	if err != nil {
		return nil, fmt.Errorf("find user by fid %d: %w", fid, err)
	}
	if user == nil {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (r *userRepository) FindByWallet(ctx context.Context, address string) (*models.User, error) {
	var user *models.User
	err := r.client.Query(ctx, "users:getByWallet", map[string]interface{}{
		"walletAddress": strings.ToLower(address),
	}, &user)
	if err != nil {
		return nil, fmt.Errorf("find user by wallet: %w", err)
	}
	if user == nil {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (r *userRepository) CompletionPercentage(ctx context.Context, userID, courseID string) (int, error) {
	var percentage int
	err := r.client.Query(ctx, "progress:getCompletionPercentage", map[string]interface{}{
		"userId":   userID,
		"courseId": courseID,
	}, &percentage)
	if err != nil {
		return 0, fmt.Errorf("completion percentage for user %s course %s: %w", userID, courseID, err)
	}
	if percentage < 0 || percentage > 100 {
		return 0, fmt.Errorf("store returned completion %d outside [0,100]", percentage)
	}
	return percentage, nil
}

func (r *userRepository) HasMintedBadge(ctx context.Context, userID, courseID string) (bool, error) {
	var badge *models.MintedBadge
	err := r.client.Query(ctx, "badges:getForUserCourse", map[string]interface{}{
		"userId":   userID,
		"courseId": courseID,
	}, &badge)
	if err != nil {
		return false, fmt.Errorf("minted badge lookup for user %s course %s: %w", userID, courseID, err)
	}
	return badge != nil, nil
}
