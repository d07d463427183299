package user

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ai-marketplace/internal/domain/error"
)

// CreditEarnings adds amount to the earnings of a user.
// This is the settlement step of purchases and inferences.
func (u *UserUseCase) CreditEarnings(ctx context.Context, userID uint64, amount string) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.WrapValidationError("user", "id", errs.ErrInvalidID)
	}

	if _, err := entity.ValidateAmount(amount); err != nil {
		return nil, errs.WrapValidationError("user", "amount", err)
	}

	u.creditMu.Lock()
	defer u.creditMu.Unlock()

	user, err := u.userRepo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			u.logger.Warn("Attempt to credit non-existent user", map[string]any{
				"user_id": userID,
				"amount":  amount,
			})
		}
		return nil, err
	}

	earnings, err := entity.AddAmounts(user.TotalEarnings, amount)
	if err != nil {
		return nil, err
	}

	updated, err := u.userRepo.UpdateUserEarnings(ctx, userID, earnings)
	if err != nil {
		u.logger.Error("Failed to update user earnings", map[string]any{
			"user_id": userID,
			"amount":  amount,
			"error":   err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Earnings credited", map[string]any{
		"user_id":        userID,
		"amount":         amount,
		"total_earnings": updated.TotalEarnings,
	})

	return updated, nil
}
