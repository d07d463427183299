package entity

import (
	"time"
)

// PromptPurchase records a buyer acquiring a prompt. Records are never updated
// once appended.
type PromptPurchase struct {
	ID              uint64    `json:"id"`
	PromptID        uint64    `json:"promptId"`
	BuyerID         uint64    `json:"buyerId"`
	Price           string    `json:"price"`
	TransactionHash *string   `json:"transactionHash"`
	CreatedAt       time.Time `json:"createdAt"`
}

// PromptPurchaseInput carries the fields recorded for a purchase
type PromptPurchaseInput struct {
	PromptID        uint64  `json:"promptId" validate:"gt=0"`
	BuyerID         uint64  `json:"buyerId" validate:"gt=0"`
	Price           string  `json:"price" validate:"required"`
	TransactionHash *string `json:"transactionHash" validate:"omitempty,max=128"`
}

// Validate checks the purchase record
func (in PromptPurchaseInput) Validate() error {
	if err := validateStruct("purchase", in); err != nil {
		return err
	}
	return validateAmountField("purchase", "price", in.Price)
}

// NewPromptPurchase builds an immutable purchase record
func NewPromptPurchase(id uint64, in PromptPurchaseInput, now time.Time) *PromptPurchase {
	return &PromptPurchase{
		ID:              id,
		PromptID:        in.PromptID,
		BuyerID:         in.BuyerID,
		Price:           in.Price,
		TransactionHash: normalizeOptional(in.TransactionHash),
		CreatedAt:       now,
	}
}

// Clone returns a copy that shares no pointers with p
func (p *PromptPurchase) Clone() *PromptPurchase {
	c := *p
	c.TransactionHash = cloneString(p.TransactionHash)
	return &c
}
