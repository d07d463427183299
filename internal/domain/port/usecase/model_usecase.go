package usecase

import (
	"context"
	"encoding/json"

	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/entity"
)

// InferenceRequest represents a paid call to a model
type InferenceRequest struct {
	ModelID uint64
	UserID  *uint64
	Input   json.RawMessage
}

// InferenceResult contains the recorded inference and the simulated output
type InferenceResult struct {
	Inference       *entity.ModelInference
	Output          json.RawMessage
	Cost            string
	ExecutionTimeMs int64
}

// ModelUseCase defines the model catalog and inference operations
type ModelUseCase interface {
	// ListModels returns active models matching the filter, most used first
	ListModels(ctx context.Context, filter entity.ModelFilter) ([]*entity.AIModel, error)

	// GetModel retrieves a model by ID
	GetModel(ctx context.Context, id uint64) (*entity.AIModel, error)

	// UploadModel stores a new model listing
	UploadModel(ctx context.Context, input entity.AIModelInput) (*entity.AIModel, error)

	// TopModels returns up to limit active models by usage
	TopModels(ctx context.Context, limit int) ([]*entity.AIModel, error)

	// ModelsByCreator returns the active models of a creator, newest first
	ModelsByCreator(ctx context.Context, creatorID uint64) ([]*entity.AIModel, error)

	// RunInference simulates a model call, records it and settles its cost with the creator.
	// This is the core method used by the POST /api/models/{id}/infer endpoint
	RunInference(ctx context.Context, request InferenceRequest) (*InferenceResult, error)

	// ListInferences returns recorded inferences matching the filter, newest first
	ListInferences(ctx context.Context, filter entity.InferenceFilter) ([]*entity.ModelInference, error)
}
