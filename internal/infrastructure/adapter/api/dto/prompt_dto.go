package dto

import (
	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/entity"
)

// CreatePromptRequest represents the body of POST /api/prompts
type CreatePromptRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Content     string  `json:"content"`
	Category    string  `json:"category"`
	CreatorID   *uint64 `json:"creatorId"`
	Price       string  `json:"price"`
}

// ToInput maps the request to the domain payload
func (r CreatePromptRequest) ToInput() entity.PromptInput {
	return entity.PromptInput{
		Title:       r.Title,
		Description: r.Description,
		Content:     r.Content,
		Category:    r.Category,
		CreatorID:   r.CreatorID,
		Price:       r.Price,
	}
}

// PurchaseRequest represents the body of POST /api/prompts/:id/purchase
type PurchaseRequest struct {
	BuyerID         uint64  `json:"buyerId" binding:"required"`
	TransactionHash *string `json:"transactionHash"`
}

// PurchaseResponse is the recorded purchase plus wallet-facing details
type PurchaseResponse struct {
	*entity.PromptPurchase
	// PriceOctas is the price in the smallest APT unit
	PriceOctas int64 `json:"priceOctas"`
	Duplicate  bool  `json:"duplicate"`
}
