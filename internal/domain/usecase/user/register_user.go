package user

import (
	"context"

	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ai-marketplace/internal/domain/error"
)

// RegisterUser creates a new user with zero earnings and reputation
func (u *UserUseCase) RegisterUser(ctx context.Context, input entity.UserInput) (*entity.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := u.userRepo.CreateUser(ctx, input)
	if err != nil {
		if !errs.IsValidationError(err) {
			u.logger.Error("Failed to register user", map[string]any{
				"username": input.Username,
				"error":    err.Error(),
			})
		}
		return nil, err
	}

	u.logger.Info("User registered", map[string]any{
		"user_id":    user.ID,
		"username":   user.Username,
		"has_wallet": user.HasWallet(),
	})

	return user, nil
}
