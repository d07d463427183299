package entity

import (
	"strings"
	"time"
)

// AIModel is an uploaded model that callers pay per inference to invoke
type AIModel struct {
	ID                uint64    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Category          string    `json:"category"`
	CreatorID         *uint64   `json:"creatorId"`
	PricePerInference string    `json:"pricePerInference"`
	ModelFileURL      *string   `json:"modelFileUrl"`
	StorageType       *string   `json:"storageType"`
	UsageCount        int64     `json:"usageCount"`
	Rating            string    `json:"rating"`
	RatingCount       int64     `json:"ratingCount"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
}

// AIModelInput carries the caller-supplied fields of a model upload
type AIModelInput struct {
	Name              string  `json:"name" validate:"required,max=200"`
	Description       string  `json:"description" validate:"required"`
	Category          string  `json:"category" validate:"required,max=100"`
	CreatorID         *uint64 `json:"creatorId" validate:"omitempty,gt=0"`
	PricePerInference string  `json:"pricePerInference" validate:"required"`
	ModelFileURL      *string `json:"modelFileUrl"`
	StorageType       *string `json:"storageType" validate:"omitempty,oneof=ipfs filecoin ocean"`
}

// Validate checks the upload payload
func (in AIModelInput) Validate() error {
	if err := validateStruct("model", in); err != nil {
		return err
	}
	return validateAmountField("model", "pricePerInference", in.PricePerInference)
}

// NewAIModel builds a model with the upload defaults
func NewAIModel(id uint64, in AIModelInput, now time.Time) *AIModel {
	return &AIModel{
		ID:                id,
		Name:              in.Name,
		Description:       in.Description,
		Category:          in.Category,
		CreatorID:         cloneUint64(in.CreatorID),
		PricePerInference: in.PricePerInference,
		ModelFileURL:      cloneString(in.ModelFileURL),
		StorageType:       cloneString(in.StorageType),
		UsageCount:        0,
		Rating:            "0",
		RatingCount:       0,
		IsActive:          true,
		CreatedAt:         now,
	}
}

// ModelFilter narrows a model listing. Empty fields do not filter.
type ModelFilter struct {
	Category string
	Search   string
}

// Matches reports whether the model passes the category and search filters.
// Inactive models never match.
func (f ModelFilter) Matches(m *AIModel) bool {
	if !m.IsActive {
		return false
	}
	if !MatchesCategory(f.Category, m.Category) {
		return false
	}
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(m.Name), needle) ||
		strings.Contains(strings.ToLower(m.Description), needle)
}

// MatchesCategory applies exact category matching unless the filter is empty
// or the "All Categories" sentinel
func MatchesCategory(filter, category string) bool {
	if filter == "" || filter == AllCategories {
		return true
	}
	return category == filter
}

// IsCreatedBy reports whether creatorID owns the model
func (m *AIModel) IsCreatedBy(creatorID uint64) bool {
	return m.CreatorID != nil && *m.CreatorID == creatorID
}

// Clone returns a copy that shares no pointers with m
func (m *AIModel) Clone() *AIModel {
	c := *m
	c.CreatorID = cloneUint64(m.CreatorID)
	c.ModelFileURL = cloneString(m.ModelFileURL)
	c.StorageType = cloneString(m.StorageType)
	return &c
}
