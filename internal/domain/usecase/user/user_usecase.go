package user

import (
	"context"
	"strings"
	"sync"

	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ai-marketplace/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/core"
	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/usecase"
)

var _ usecase.UserUseCase = (*UserUseCase)(nil)

// UserUseCase handles user-related business logic
type UserUseCase struct {
	userRepo persistence.UserRepository
	logger   coreport.Logger

	// creditMu serializes the read-add-write of CreditEarnings
	creditMu sync.Mutex
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	userRepo persistence.UserRepository,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetUser retrieves a user by ID
func (u *UserUseCase) GetUser(ctx context.Context, id uint64) (*entity.User, error) {
	if id == 0 {
		return nil, errs.WrapValidationError("user", "id", errs.ErrInvalidID)
	}
	return u.userRepo.GetUser(ctx, id)
}

// GetUserByUsername retrieves a user by username
func (u *UserUseCase) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.NewValidationError("user", "username", "is required")
	}
	return u.userRepo.GetUserByUsername(ctx, username)
}

// ConnectWallet resolves the registered user owning a wallet address
func (u *UserUseCase) ConnectWallet(ctx context.Context, walletAddress string) (*entity.User, error) {
	walletAddress = strings.TrimSpace(walletAddress)
	if walletAddress == "" {
		return nil, errs.NewValidationError("user", "walletAddress", "is required")
	}

	user, err := u.userRepo.GetUserByWalletAddress(ctx, walletAddress)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			u.logger.Warn("Wallet is not bound to any user", map[string]any{
				"wallet_address": walletAddress,
			})
		}
		return nil, err
	}

	u.logger.Info("Wallet connected", map[string]any{
		"user_id":        user.ID,
		"wallet_address": walletAddress,
	})
	return user, nil
}

// TopEarners returns up to limit users, highest earnings first
func (u *UserUseCase) TopEarners(ctx context.Context, limit int) ([]*entity.User, error) {
	return u.userRepo.GetTopEarners(ctx, limit)
}
