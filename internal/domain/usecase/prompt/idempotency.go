package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ai-marketplace/internal/domain/error"
	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/persistence"
)

// IdempotencyHandler detects purchases already settled by a transaction hash
type IdempotencyHandler struct {
	purchaseRepo persistence.PurchaseRepository
}

// NewIdempotencyHandler creates a new IdempotencyHandler
func NewIdempotencyHandler(purchaseRepo persistence.PurchaseRepository) *IdempotencyHandler {
	return &IdempotencyHandler{
		purchaseRepo: purchaseRepo,
	}
}

// CheckIdempotency looks up the purchase recorded for a transaction hash.
// Returns the purchase, whether it was found, and any error.
// Purchases without a hash are never considered duplicates.
func (h *IdempotencyHandler) CheckIdempotency(
	ctx context.Context,
	transactionHash *string,
) (*entity.PromptPurchase, bool, error) {
	if transactionHash == nil || strings.TrimSpace(*transactionHash) == "" {
		return nil, false, nil
	}

	purchase, err := h.purchaseRepo.GetPromptPurchaseByTransactionHash(ctx, strings.TrimSpace(*transactionHash))
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to retrieve existing purchase: %w", err)
	}

	return purchase, true, nil
}
