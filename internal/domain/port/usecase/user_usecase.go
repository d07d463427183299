package usecase

import (
	"context"

	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/entity"
)

// UserUseCase defines methods for user-related business operations
type UserUseCase interface {
	// RegisterUser creates a user with zero earnings and reputation
	RegisterUser(ctx context.Context, input entity.UserInput) (*entity.User, error)

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, id uint64) (*entity.User, error)

	// GetUserByUsername retrieves a user by username
	// This is the lookup behind the GET /api/users/{username} endpoint
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)

	// ConnectWallet resolves the registered user owning a wallet address
	ConnectWallet(ctx context.Context, walletAddress string) (*entity.User, error)

	// TopEarners returns up to limit users, highest earnings first
	TopEarners(ctx context.Context, limit int) ([]*entity.User, error)

	// CreditEarnings adds a non-negative APT amount to a user's earnings
	CreditEarnings(ctx context.Context, userID uint64, amount string) (*entity.User, error)
}
