package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ai-marketplace/internal/domain/error"
	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/usecase"
)

// PurchasePrompt handles the purchase of a prompt.
// This method orchestrates the entire process:
// 1. Validates the request and resolves the prompt
// 2. Returns the earlier purchase when the transaction hash already settled the
//    same prompt for the same buyer, and rejects it otherwise
// 3. Verifies the payment with the wallet boundary
// 4. Records the purchase at the current prompt price and bumps the sales count
// 5. Credits the price to the prompt creator
func (u *PromptUseCase) PurchasePrompt(ctx context.Context, request usecase.PurchaseRequest) (*usecase.PurchaseResult, error) {
	if request.PromptID == 0 {
		return nil, errs.WrapValidationError("purchase", "promptId", errs.ErrInvalidID)
	}
	if request.BuyerID == 0 {
		return nil, errs.WrapValidationError("purchase", "buyerId", errs.ErrInvalidID)
	}

	if request.TransactionHash != nil {
		hash := strings.TrimSpace(*request.TransactionHash)
		request.TransactionHash = nil
		if hash != "" {
			request.TransactionHash = &hash
		}
	}

	prompt, err := u.promptRepo.GetPrompt(ctx, request.PromptID)
	if err != nil {
		return nil, err
	}

	u.purchaseMu.Lock()
	defer u.purchaseMu.Unlock()

	existing, found, err := u.idempotency.CheckIdempotency(ctx, request.TransactionHash)
	if err != nil {
		return nil, fmt.Errorf("failed to check idempotency: %w", err)
	}
	if found {
		if existing.PromptID != prompt.ID || existing.BuyerID != request.BuyerID {
			u.logger.Warn("Transaction hash reused for another purchase", map[string]any{
				"purchase_id":      existing.ID,
				"prompt_id":        prompt.ID,
				"buyer_id":         request.BuyerID,
				"transaction_hash": *existing.TransactionHash,
			})
			return nil, errs.ErrTransactionHashInUse
		}
		u.logger.Info("Purchase already settled", map[string]any{
			"purchase_id":      existing.ID,
			"transaction_hash": *existing.TransactionHash,
		})
		return &usecase.PurchaseResult{Purchase: existing, Duplicate: true}, nil
	}

	if request.TransactionHash != nil {
		ok, err := u.verifier.Verify(ctx, *request.TransactionHash)
		if err != nil {
			return nil, fmt.Errorf("failed to verify payment: %w", err)
		}
		if !ok {
			u.logger.Warn("Payment rejected", map[string]any{
				"prompt_id":        prompt.ID,
				"buyer_id":         request.BuyerID,
				"transaction_hash": *request.TransactionHash,
			})
			return nil, errs.ErrPaymentRejected
		}
	}

	purchase, err := u.purchaseRepo.CreatePromptPurchase(ctx, entity.PromptPurchaseInput{
		PromptID:        prompt.ID,
		BuyerID:         request.BuyerID,
		Price:           prompt.Price,
		TransactionHash: request.TransactionHash,
	})
	if err != nil {
		if !errs.IsValidationError(err) {
			u.logger.Error("Failed to record purchase", map[string]any{
				"prompt_id": prompt.ID,
				"buyer_id":  request.BuyerID,
				"error":     err.Error(),
			})
		}
		return nil, err
	}

	if _, err := u.promptRepo.UpdatePromptSales(ctx, prompt.ID); err != nil {
		return nil, fmt.Errorf("failed to update prompt sales: %w", err)
	}

	u.settle(ctx, prompt, purchase)

	u.logger.Info("Prompt purchased", map[string]any{
		"purchase_id": purchase.ID,
		"prompt_id":   prompt.ID,
		"buyer_id":    purchase.BuyerID,
		"price":       purchase.Price,
	})

	return &usecase.PurchaseResult{Purchase: purchase}, nil
}

// settle credits the sale price to the prompt creator. Failures are logged;
// the purchase stays recorded.
func (u *PromptUseCase) settle(ctx context.Context, prompt *entity.Prompt, purchase *entity.PromptPurchase) {
	if prompt.CreatorID == nil {
		return
	}

	if _, err := u.earnings.CreditEarnings(ctx, *prompt.CreatorID, purchase.Price); err != nil {
		fields := map[string]any{
			"purchase_id": purchase.ID,
			"creator_id":  *prompt.CreatorID,
			"price":       purchase.Price,
			"error":       err.Error(),
		}
		if errs.IsNotFoundError(err) {
			u.logger.Warn("Skipping settlement for unknown creator", fields)
			return
		}
		u.logger.Error("Failed to settle purchase", fields)
	}
}
