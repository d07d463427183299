package prompt

import (
	"context"
	"sync"

	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ai-marketplace/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/core"
	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/usecase"
)

var _ usecase.PromptUseCase = (*PromptUseCase)(nil)

// PromptUseCase handles prompt listings and purchases
type PromptUseCase struct {
	promptRepo   persistence.PromptRepository
	purchaseRepo persistence.PurchaseRepository
	earnings     usecase.UserUseCase
	verifier     coreport.PaymentVerifier
	idempotency  *IdempotencyHandler
	logger       coreport.Logger

	// purchaseMu makes the duplicate check and the purchase record one step
	purchaseMu sync.Mutex
}

// NewPromptUseCase creates a new PromptUseCase
func NewPromptUseCase(
	promptRepo persistence.PromptRepository,
	purchaseRepo persistence.PurchaseRepository,
	earnings usecase.UserUseCase,
	verifier coreport.PaymentVerifier,
	logger coreport.Logger,
) *PromptUseCase {
	return &PromptUseCase{
		promptRepo:   promptRepo,
		purchaseRepo: purchaseRepo,
		earnings:     earnings,
		verifier:     verifier,
		idempotency:  NewIdempotencyHandler(purchaseRepo),
		logger:       logger,
	}
}

// ListPrompts returns active prompts of a category
func (u *PromptUseCase) ListPrompts(ctx context.Context, category string) ([]*entity.Prompt, error) {
	return u.promptRepo.GetPrompts(ctx, category)
}

// GetPrompt retrieves a prompt by ID
func (u *PromptUseCase) GetPrompt(ctx context.Context, id uint64) (*entity.Prompt, error) {
	if id == 0 {
		return nil, errs.WrapValidationError("prompt", "id", errs.ErrInvalidID)
	}
	return u.promptRepo.GetPrompt(ctx, id)
}

// ListPrompt puts a new prompt up for sale
func (u *PromptUseCase) ListPrompt(ctx context.Context, input entity.PromptInput) (*entity.Prompt, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	prompt, err := u.promptRepo.CreatePrompt(ctx, input)
	if err != nil {
		u.logger.Error("Failed to list prompt", map[string]any{
			"title": input.Title,
			"error": err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Prompt listed", map[string]any{
		"prompt_id":    prompt.ID,
		"nft_token_id": prompt.NFTTokenID,
		"price":        prompt.Price,
	})
	return prompt, nil
}

// ListPurchases returns the purchases of a buyer; zero lists every purchase
func (u *PromptUseCase) ListPurchases(ctx context.Context, buyerID uint64) ([]*entity.PromptPurchase, error) {
	return u.purchaseRepo.GetPromptPurchases(ctx, buyerID)
}
