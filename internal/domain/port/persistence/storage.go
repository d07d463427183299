package persistence

import (
	"context"

	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/entity"
)

// UserRepository defines the user operations of the marketplace store
type UserRepository interface {
	// GetUser retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has the given ID
	GetUser(ctx context.Context, id uint64) (*entity.User, error)

	// GetUserByUsername retrieves a user by its unique username
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has the given username
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)

	// GetUserByWalletAddress retrieves the user a wallet address is bound to
	//
	// Possible errors:
	// - ErrUserNotFound: If the address is not bound to any user
	GetUserByWalletAddress(ctx context.Context, walletAddress string) (*entity.User, error)

	// CreateUser registers a new user with zero earnings and reputation
	//
	// Possible errors:
	// - ErrValidation: If the payload is malformed
	// - ErrDuplicateUsername: If the username is taken
	// - ErrDuplicateWalletAddress: If the wallet address is bound to another user
	CreateUser(ctx context.Context, input entity.UserInput) (*entity.User, error)

	// UpdateUserEarnings replaces the total earnings of a user
	//
	// Possible errors:
	// - ErrInvalidAmount: If earnings is not a non-negative decimal
	// - ErrUserNotFound: If no user has the given ID
	UpdateUserEarnings(ctx context.Context, id uint64, earnings string) (*entity.User, error)

	// GetTopEarners returns users ordered by earnings, highest first
	GetTopEarners(ctx context.Context, limit int) ([]*entity.User, error)
}

// ModelRepository defines the AI model operations of the marketplace store
type ModelRepository interface {
	// GetAIModel retrieves a model by ID, whether active or not
	//
	// Possible errors:
	// - ErrModelNotFound: If no model has the given ID
	GetAIModel(ctx context.Context, id uint64) (*entity.AIModel, error)

	// GetAIModels lists active models matching the filter, most used first
	GetAIModels(ctx context.Context, filter entity.ModelFilter) ([]*entity.AIModel, error)

	// CreateAIModel stores an uploaded model
	//
	// Possible errors:
	// - ErrValidation: If the payload is malformed
	CreateAIModel(ctx context.Context, input entity.AIModelInput) (*entity.AIModel, error)

	// UpdateModelUsage increments the usage count of a model by one
	//
	// Possible errors:
	// - ErrModelNotFound: If no model has the given ID
	UpdateModelUsage(ctx context.Context, id uint64) (*entity.AIModel, error)

	// GetTopModels returns active models ordered by usage, most used first
	GetTopModels(ctx context.Context, limit int) ([]*entity.AIModel, error)

	// GetModelsByCreator returns the active models of a creator, newest first
	GetModelsByCreator(ctx context.Context, creatorID uint64) ([]*entity.AIModel, error)
}

// PromptRepository defines the prompt operations of the marketplace store
type PromptRepository interface {
	// GetPrompt retrieves a prompt by ID, whether active or not
	//
	// Possible errors:
	// - ErrPromptNotFound: If no prompt has the given ID
	GetPrompt(ctx context.Context, id uint64) (*entity.Prompt, error)

	// GetPrompts lists active prompts of a category, best selling first.
	// An empty category or "All Categories" lists every category.
	GetPrompts(ctx context.Context, category string) ([]*entity.Prompt, error)

	// CreatePrompt stores a new prompt listing and mints its display token id
	//
	// Possible errors:
	// - ErrValidation: If the payload is malformed
	CreatePrompt(ctx context.Context, input entity.PromptInput) (*entity.Prompt, error)

	// UpdatePromptSales increments the sales count of a prompt by one
	//
	// Possible errors:
	// - ErrPromptNotFound: If no prompt has the given ID
	UpdatePromptSales(ctx context.Context, id uint64) (*entity.Prompt, error)
}

// InferenceRepository defines the append-only inference log
type InferenceRepository interface {
	// CreateModelInference appends an inference record
	//
	// Possible errors:
	// - ErrValidation: If the payload is malformed
	CreateModelInference(ctx context.Context, input entity.ModelInferenceInput) (*entity.ModelInference, error)

	// GetModelInferences lists logged inferences matching the filter, newest first
	GetModelInferences(ctx context.Context, filter entity.InferenceFilter) ([]*entity.ModelInference, error)
}

// PurchaseRepository defines the append-only purchase log
type PurchaseRepository interface {
	// CreatePromptPurchase appends a purchase record
	//
	// Possible errors:
	// - ErrValidation: If the payload is malformed
	CreatePromptPurchase(ctx context.Context, input entity.PromptPurchaseInput) (*entity.PromptPurchase, error)

	// GetPromptPurchases lists purchases of a buyer, newest first. A zero buyer ID lists all.
	GetPromptPurchases(ctx context.Context, buyerID uint64) ([]*entity.PromptPurchase, error)

	// GetPromptPurchaseByTransactionHash finds the purchase settled by a wallet transaction
	//
	// Possible errors:
	// - ErrNotFound: If no purchase carries the hash
	GetPromptPurchaseByTransactionHash(ctx context.Context, transactionHash string) (*entity.PromptPurchase, error)
}

// StatsRepository defines the derived statistics query
type StatsRepository interface {
	// GetTotalStats summarizes active models, logged inferences and distributed earnings
	GetTotalStats(ctx context.Context) (*entity.MarketplaceStats, error)
}

// Storage is the complete marketplace store contract
type Storage interface {
	UserRepository
	ModelRepository
	PromptRepository
	InferenceRepository
	PurchaseRepository
	StatsRepository
}
