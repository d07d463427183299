package model

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ai-marketplace/internal/domain/error"
	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/usecase"
)

// RunInference simulates a call to a model, records it with the model price as
// cost, bumps the model usage and credits the creator.
func (u *ModelUseCase) RunInference(ctx context.Context, request usecase.InferenceRequest) (*usecase.InferenceResult, error) {
	if request.ModelID == 0 {
		return nil, errs.WrapValidationError("inference", "modelId", errs.ErrInvalidID)
	}

	model, err := u.modelRepo.GetAIModel(ctx, request.ModelID)
	if err != nil {
		return nil, err
	}

	start := u.timeProvider.Now()
	output, err := simulateOutput(model.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to build inference output: %w", err)
	}
	executionTime := u.timeProvider.Since(start).Milliseconds()

	inference, err := u.inferenceRepo.CreateModelInference(ctx, entity.ModelInferenceInput{
		ModelID:         model.ID,
		UserID:          request.UserID,
		Input:           request.Input,
		Output:          output,
		Cost:            model.PricePerInference,
		ExecutionTimeMs: &executionTime,
	})
	if err != nil {
		if !errs.IsValidationError(err) {
			u.logger.Error("Failed to record inference", map[string]any{
				"model_id": model.ID,
				"error":    err.Error(),
			})
		}
		return nil, err
	}

	if _, err := u.modelRepo.UpdateModelUsage(ctx, model.ID); err != nil {
		return nil, fmt.Errorf("failed to update model usage: %w", err)
	}

	u.settle(ctx, model, inference)

	u.logger.Info("Inference completed", map[string]any{
		"inference_id":   inference.ID,
		"model_id":       model.ID,
		"cost":           inference.Cost,
		"execution_time": executionTime,
	})

	return &usecase.InferenceResult{
		Inference:       inference,
		Output:          output,
		Cost:            model.PricePerInference,
		ExecutionTimeMs: executionTime,
	}, nil
}

// settle credits the inference cost to the model creator. The inference is
// already recorded, so failures are logged and not returned.
func (u *ModelUseCase) settle(ctx context.Context, model *entity.AIModel, inference *entity.ModelInference) {
	if model.CreatorID == nil {
		return
	}

	if _, err := u.earnings.CreditEarnings(ctx, *model.CreatorID, inference.Cost); err != nil {
		fields := map[string]any{
			"inference_id": inference.ID,
			"creator_id":   *model.CreatorID,
			"cost":         inference.Cost,
			"error":        err.Error(),
		}
		if errs.IsNotFoundError(err) {
			u.logger.Warn("Skipping settlement for unknown creator", fields)
			return
		}
		u.logger.Error("Failed to settle inference", fields)
	}
}
