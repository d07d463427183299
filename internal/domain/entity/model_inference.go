package entity

import (
	"encoding/json"
	"time"

	errs "github.com/amirhossein-jamali/ai-marketplace/internal/domain/error"
)

// ModelInference is one logged (simulated) execution of a model. Records are
// never updated once appended.
type ModelInference struct {
	ID              uint64          `json:"id"`
	ModelID         uint64          `json:"modelId"`
	UserID          *uint64         `json:"userId"`
	Input           json.RawMessage `json:"input"`
	Output          json.RawMessage `json:"output"`
	Cost            string          `json:"cost"`
	ExecutionTimeMs *int64          `json:"executionTime"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ModelInferenceInput carries the fields recorded for an inference
type ModelInferenceInput struct {
	ModelID         uint64          `json:"modelId" validate:"gt=0"`
	UserID          *uint64         `json:"userId" validate:"omitempty,gt=0"`
	Input           json.RawMessage `json:"input"`
	Output          json.RawMessage `json:"output"`
	Cost            string          `json:"cost" validate:"required"`
	ExecutionTimeMs *int64          `json:"executionTime" validate:"omitempty,gte=0"`
}

// Validate checks the inference record
func (in ModelInferenceInput) Validate() error {
	if err := validateStruct("inference", in); err != nil {
		return err
	}
	if err := validateJSONField("inference", "input", in.Input); err != nil {
		return err
	}
	if err := validateJSONField("inference", "output", in.Output); err != nil {
		return err
	}
	return validateAmountField("inference", "cost", in.Cost)
}

// NewModelInference builds an immutable inference record
func NewModelInference(id uint64, in ModelInferenceInput, now time.Time) *ModelInference {
	return &ModelInference{
		ID:              id,
		ModelID:         in.ModelID,
		UserID:          cloneUint64(in.UserID),
		Input:           cloneRaw(in.Input),
		Output:          cloneRaw(in.Output),
		Cost:            in.Cost,
		ExecutionTimeMs: cloneInt64(in.ExecutionTimeMs),
		CreatedAt:       now,
	}
}

// InferenceFilter narrows the inference log. Zero ids do not filter.
type InferenceFilter struct {
	ModelID uint64
	UserID  uint64
}

// Matches reports whether the record passes both filters
func (f InferenceFilter) Matches(inf *ModelInference) bool {
	if f.ModelID != 0 && inf.ModelID != f.ModelID {
		return false
	}
	if f.UserID != 0 && (inf.UserID == nil || *inf.UserID != f.UserID) {
		return false
	}
	return true
}

// Clone returns a copy that shares no memory with inf
func (inf *ModelInference) Clone() *ModelInference {
	c := *inf
	c.UserID = cloneUint64(inf.UserID)
	c.Input = cloneRaw(inf.Input)
	c.Output = cloneRaw(inf.Output)
	c.ExecutionTimeMs = cloneInt64(inf.ExecutionTimeMs)
	return &c
}

// validateJSONField accepts an absent payload or any well-formed JSON value
func validateJSONField(entityName, field string, raw json.RawMessage) error {
	if len(raw) == 0 || json.Valid(raw) {
		return nil
	}
	return errs.NewValidationError(entityName, field, "must be valid JSON")
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}
	c := make(json.RawMessage, len(raw))
	copy(c, raw)
	return c
}
