package model

import (
	"context"

	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ai-marketplace/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/core"
	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/usecase"
)

var _ usecase.ModelUseCase = (*ModelUseCase)(nil)

// ModelUseCase handles the model catalog and paid inference
type ModelUseCase struct {
	modelRepo     persistence.ModelRepository
	inferenceRepo persistence.InferenceRepository
	earnings      usecase.UserUseCase
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
}

// NewModelUseCase creates a new ModelUseCase
func NewModelUseCase(
	modelRepo persistence.ModelRepository,
	inferenceRepo persistence.InferenceRepository,
	earnings usecase.UserUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *ModelUseCase {
	return &ModelUseCase{
		modelRepo:     modelRepo,
		inferenceRepo: inferenceRepo,
		earnings:      earnings,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// ListModels returns active models matching the filter
func (u *ModelUseCase) ListModels(ctx context.Context, filter entity.ModelFilter) ([]*entity.AIModel, error) {
	return u.modelRepo.GetAIModels(ctx, filter)
}

// GetModel retrieves a model by ID
func (u *ModelUseCase) GetModel(ctx context.Context, id uint64) (*entity.AIModel, error) {
	if id == 0 {
		return nil, errs.WrapValidationError("model", "id", errs.ErrInvalidID)
	}
	return u.modelRepo.GetAIModel(ctx, id)
}

// UploadModel stores a new model listing
func (u *ModelUseCase) UploadModel(ctx context.Context, input entity.AIModelInput) (*entity.AIModel, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	model, err := u.modelRepo.CreateAIModel(ctx, input)
	if err != nil {
		u.logger.Error("Failed to upload model", map[string]any{
			"name":  input.Name,
			"error": err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Model uploaded", map[string]any{
		"model_id": model.ID,
		"category": model.Category,
		"has_file": model.ModelFileURL != nil,
	})
	return model, nil
}

// TopModels returns up to limit active models by usage
func (u *ModelUseCase) TopModels(ctx context.Context, limit int) ([]*entity.AIModel, error) {
	return u.modelRepo.GetTopModels(ctx, limit)
}

// ModelsByCreator returns the active models of a creator
func (u *ModelUseCase) ModelsByCreator(ctx context.Context, creatorID uint64) ([]*entity.AIModel, error) {
	if creatorID == 0 {
		return nil, errs.WrapValidationError("model", "creatorId", errs.ErrInvalidID)
	}
	return u.modelRepo.GetModelsByCreator(ctx, creatorID)
}

// ListInferences returns recorded inferences matching the filter
func (u *ModelUseCase) ListInferences(ctx context.Context, filter entity.InferenceFilter) ([]*entity.ModelInference, error) {
	return u.inferenceRepo.GetModelInferences(ctx, filter)
}
