package entity

import (
	"fmt"
	"time"
)

// Prompt is a sellable prompt template listed as an NFT
type Prompt struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	CreatorID   *uint64   `json:"creatorId"`
	Price       string    `json:"price"`
	SalesCount  int64     `json:"salesCount"`
	Rating      string    `json:"rating"`
	RatingCount int64     `json:"ratingCount"`
	NFTTokenID  string    `json:"nftTokenId"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PromptInput carries the caller-supplied fields of a listing
type PromptInput struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description" validate:"required"`
	Content     string  `json:"content" validate:"required"`
	Category    string  `json:"category" validate:"required,max=100"`
	CreatorID   *uint64 `json:"creatorId" validate:"omitempty,gt=0"`
	Price       string  `json:"price" validate:"required"`
}

// Validate checks the listing payload
func (in PromptInput) Validate() error {
	if err := validateStruct("prompt", in); err != nil {
		return err
	}
	return validateAmountField("prompt", "price", in.Price)
}

// NFTTokenIDFor derives the display token identifier of a listed prompt
func NFTTokenIDFor(id uint64) string {
	return fmt.Sprintf("nft_%d", id)
}

// NewPrompt builds a prompt with the listing defaults
func NewPrompt(id uint64, in PromptInput, now time.Time) *Prompt {
	return &Prompt{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Content:     in.Content,
		Category:    in.Category,
		CreatorID:   cloneUint64(in.CreatorID),
		Price:       in.Price,
		SalesCount:  0,
		Rating:      "0",
		RatingCount: 0,
		NFTTokenID:  NFTTokenIDFor(id),
		IsActive:    true,
		CreatedAt:   now,
	}
}

// Clone returns a copy that shares no pointers with p
func (p *Prompt) Clone() *Prompt {
	c := *p
	c.CreatorID = cloneUint64(p.CreatorID)
	return &c
}
