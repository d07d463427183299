package usecase

import (
	"context"

	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/entity"
)

// PurchaseRequest represents a buyer paying for a prompt
type PurchaseRequest struct {
	PromptID        uint64
	BuyerID         uint64
	TransactionHash *string
}

// PurchaseResult contains info about a processed purchase
type PurchaseResult struct {
	Purchase *entity.PromptPurchase
	// Duplicate is set when the transaction hash was already settled and
	// the earlier purchase is returned unchanged
	Duplicate bool
}

// PromptUseCase defines the prompt marketplace operations
type PromptUseCase interface {
	// ListPrompts returns active prompts of a category, best selling first
	ListPrompts(ctx context.Context, category string) ([]*entity.Prompt, error)

	// GetPrompt retrieves a prompt by ID
	GetPrompt(ctx context.Context, id uint64) (*entity.Prompt, error)

	// ListPrompt puts a new prompt up for sale
	ListPrompt(ctx context.Context, input entity.PromptInput) (*entity.Prompt, error)

	// PurchasePrompt verifies the payment, records the purchase and credits the creator.
	// A transaction hash is settled at most once.
	PurchasePrompt(ctx context.Context, request PurchaseRequest) (*PurchaseResult, error)

	// ListPurchases returns the purchases of a buyer, newest first; zero lists all
	ListPurchases(ctx context.Context, buyerID uint64) ([]*entity.PromptPurchase, error)
}
