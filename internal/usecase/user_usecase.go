package usecase

import (
	"context"
	"log"

	"finderskeeper/internal/domain/entity"
	"finderskeeper/internal/domain/repository"
	"finderskeeper/pkg/errors"
)

type UserUseCase struct {
	userRepo     repository.UserRepository
	authProvider AuthProvider
}

func NewUserUseCase(userRepo repository.UserRepository, authProvider AuthProvider) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		authProvider: authProvider,
	}
}

func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// List returns user profiles for the admin panel.
func (uc *UserUseCase) List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	return uc.userRepo.List(ctx, limit, offset)
}

// SetStatus blocks or unblocks an account: the identity provider stops (or
// resumes) issuing sign-ins, and the profile mirrors the status. The user's
// items and messages are left in place.
func (uc *UserUseCase) SetStatus(ctx context.Context, userID, action string) (*entity.User, error) {
	if action != "block" && action != "unblock" {
		return nil, errors.BadRequest("Action must be 'block' or 'unblock'", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	disabled := action == "block"
	if err := uc.authProvider.SetUserDisabled(ctx, userID, disabled); err != nil {
		return nil, errors.Internal("Failed to update account at authentication provider", err)
	}

	if disabled {
		user.Status = "blocked"
	} else {
		user.Status = "active"
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("User %s has been %sed", user.Email, action)
	return user, nil
}
