package model

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ai-marketplace/internal/domain/error"
	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/core"
	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/ai-marketplace/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/ai-marketplace/mocks/port/persistence"
	usecasemocks "github.com/amirhossein-jamali/ai-marketplace/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint64) *uint64 { return &v }

type modelMocks struct {
	models     *persistencemocks.MockModelRepository
	inferences *persistencemocks.MockInferenceRepository
	earnings   *usecasemocks.MockUserUseCase
	clock      *coremocks.MockTimeProvider
	logger     *coremocks.MockLogger
}

func newModelMocks(t *testing.T) (*modelMocks, *ModelUseCase) {
	m := &modelMocks{
		models:     persistencemocks.NewMockModelRepository(t),
		inferences: persistencemocks.NewMockInferenceRepository(t),
		earnings:   usecasemocks.NewMockUserUseCase(t),
		clock:      coremocks.NewMockTimeProvider(t),
		logger:     coremocks.NewMockLogger(t),
	}
	return m, NewModelUseCase(m.models, m.inferences, m.earnings, m.clock, m.logger)
}

func visionModel() *entity.AIModel {
	return &entity.AIModel{
		ID:                1,
		Name:              "Vision Transformer v2",
		Category:          "Computer Vision",
		CreatorID:         uintPtr(1),
		PricePerInference: "2.5",
		UsageCount:        2847,
		IsActive:          true,
	}
}

func TestSimulateOutput(t *testing.T) {
	testCases := []struct {
		category string
		expected string
	}{
		{"Computer Vision", `{"predictions":[{"class":"cat","confidence":0.94},{"class":"dog","confidence":0.06}],"detected_objects":[]}`},
		{"Language", `{"generated_text":"This is a simulated response from the language model based on your input.","tokens_used":45}`},
		{"Audio", `{"audio_url":"/generated/audio_sample.wav","duration":30,"format":"wav"}`},
		{"Robotics", `{"result":"Inference completed successfully"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.category, func(t *testing.T) {
			output, err := simulateOutput(tc.category)
			require.NoError(t, err)
			assert.JSONEq(t, tc.expected, string(output))
		})
	}
}

func TestRunInference(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Records inference and settles with the creator", func(t *testing.T) {
		m, uc := newModelMocks(t)
		input := json.RawMessage(`{"image":"cat.png"}`)

		m.models.EXPECT().GetAIModel(mock.Anything, uint64(1)).Return(visionModel(), nil).Once()
		m.clock.EXPECT().Now().Return(start).Once()
		m.clock.EXPECT().Since(start).Return(core.Duration(12 * time.Millisecond)).Once()
		m.inferences.EXPECT().CreateModelInference(mock.Anything, mock.MatchedBy(func(in entity.ModelInferenceInput) bool {
			return in.ModelID == 1 && in.Cost == "2.5" && *in.UserID == 7 &&
				string(in.Input) == `{"image":"cat.png"}` && *in.ExecutionTimeMs == 12
		})).RunAndReturn(func(_ context.Context, in entity.ModelInferenceInput) (*entity.ModelInference, error) {
			return entity.NewModelInference(4, in, start), nil
		}).Once()
		m.models.EXPECT().UpdateModelUsage(mock.Anything, uint64(1)).Return(visionModel(), nil).Once()
		m.earnings.EXPECT().CreditEarnings(mock.Anything, uint64(1), "2.5").
			Return(&entity.User{ID: 1, TotalEarnings: "12452.5"}, nil).Once()
		m.logger.EXPECT().Info("Inference completed", mock.Anything).Once()

		result, err := uc.RunInference(ctx, usecase.InferenceRequest{ModelID: 1, UserID: uintPtr(7), Input: input})

		require.NoError(t, err)
		assert.Equal(t, uint64(4), result.Inference.ID)
		assert.Equal(t, "2.5", result.Cost)
		assert.Equal(t, int64(12), result.ExecutionTimeMs)
		assert.Contains(t, string(result.Output), `"predictions"`)
		assert.Equal(t, result.Output, result.Inference.Output)
	})

	t.Run("Unknown model", func(t *testing.T) {
		m, uc := newModelMocks(t)
		m.models.EXPECT().GetAIModel(mock.Anything, uint64(404)).
			Return(nil, errs.NewNotFoundError(errs.ErrModelNotFound, uint64(404))).Once()

		result, err := uc.RunInference(ctx, usecase.InferenceRequest{ModelID: 404})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrModelNotFound)
	})

	t.Run("Zero model id", func(t *testing.T) {
		_, uc := newModelMocks(t)

		_, err := uc.RunInference(ctx, usecase.InferenceRequest{})
		assert.ErrorIs(t, err, errs.ErrInvalidID)
	})

	t.Run("Unknown creator is skipped", func(t *testing.T) {
		m, uc := newModelMocks(t)
		model := visionModel()
		model.CreatorID = uintPtr(99)

		m.models.EXPECT().GetAIModel(mock.Anything, uint64(1)).Return(model, nil).Once()
		m.clock.EXPECT().Now().Return(start).Once()
		m.clock.EXPECT().Since(start).Return(core.Duration(0)).Once()
		m.inferences.EXPECT().CreateModelInference(mock.Anything, mock.Anything).
			Return(&entity.ModelInference{ID: 5, ModelID: 1, Cost: "2.5"}, nil).Once()
		m.models.EXPECT().UpdateModelUsage(mock.Anything, uint64(1)).Return(model, nil).Once()
		m.earnings.EXPECT().CreditEarnings(mock.Anything, uint64(99), "2.5").
			Return(nil, errs.NewNotFoundError(errs.ErrUserNotFound, uint64(99))).Once()
		m.logger.EXPECT().Warn("Skipping settlement for unknown creator", mock.Anything).Once()
		m.logger.EXPECT().Info("Inference completed", mock.Anything).Once()

		result, err := uc.RunInference(ctx, usecase.InferenceRequest{ModelID: 1})

		require.NoError(t, err)
		assert.Equal(t, uint64(5), result.Inference.ID)
	})

	t.Run("Model without creator records without settlement", func(t *testing.T) {
		m, uc := newModelMocks(t)
		model := visionModel()
		model.CreatorID = nil
		model.Category = "Tabular"

		m.models.EXPECT().GetAIModel(mock.Anything, uint64(1)).Return(model, nil).Once()
		m.clock.EXPECT().Now().Return(start).Once()
		m.clock.EXPECT().Since(start).Return(core.Duration(0)).Once()
		m.inferences.EXPECT().CreateModelInference(mock.Anything, mock.Anything).
			Return(&entity.ModelInference{ID: 6, ModelID: 1, Cost: "2.5"}, nil).Once()
		m.models.EXPECT().UpdateModelUsage(mock.Anything, uint64(1)).Return(model, nil).Once()
		m.logger.EXPECT().Info("Inference completed", mock.Anything).Once()

		result, err := uc.RunInference(ctx, usecase.InferenceRequest{ModelID: 1})

		require.NoError(t, err)
		assert.JSONEq(t, `{"result":"Inference completed successfully"}`, string(result.Output))
	})

	t.Run("Record failure stops the flow", func(t *testing.T) {
		m, uc := newModelMocks(t)

		m.models.EXPECT().GetAIModel(mock.Anything, uint64(1)).Return(visionModel(), nil).Once()
		m.clock.EXPECT().Now().Return(start).Once()
		m.clock.EXPECT().Since(start).Return(core.Duration(0)).Once()
		m.inferences.EXPECT().CreateModelInference(mock.Anything, mock.Anything).
			Return(nil, errors.New("store unavailable")).Once()
		m.logger.EXPECT().Error("Failed to record inference", mock.Anything).Once()

		_, err := uc.RunInference(ctx, usecase.InferenceRequest{ModelID: 1})
		assert.EqualError(t, err, "store unavailable")
	})
}

func TestUploadModel(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid upload", func(t *testing.T) {
		m, uc := newModelMocks(t)
		input := entity.AIModelInput{
			Name: "Tiny", Description: "d", Category: "Language", PricePerInference: "1",
		}

		m.models.EXPECT().CreateAIModel(mock.Anything, input).
			Return(entity.NewAIModel(4, input, time.Now()), nil).Once()
		m.logger.EXPECT().Info("Model uploaded", mock.Anything).Once()

		model, err := uc.UploadModel(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, uint64(4), model.ID)
	})

	t.Run("Invalid upload", func(t *testing.T) {
		_, uc := newModelMocks(t)

		_, err := uc.UploadModel(ctx, entity.AIModelInput{Name: "Tiny"})
		assert.True(t, errs.IsValidationError(err))
	})
}

func TestModelQueries(t *testing.T) {
	ctx := context.Background()
	m, uc := newModelMocks(t)

	filter := entity.ModelFilter{Category: "Computer Vision"}
	m.models.EXPECT().GetAIModels(mock.Anything, filter).Return([]*entity.AIModel{visionModel()}, nil).Once()
	m.models.EXPECT().GetTopModels(mock.Anything, 3).Return([]*entity.AIModel{visionModel()}, nil).Once()
	m.models.EXPECT().GetModelsByCreator(mock.Anything, uint64(1)).Return([]*entity.AIModel{visionModel()}, nil).Once()
	m.inferences.EXPECT().GetModelInferences(mock.Anything, entity.InferenceFilter{ModelID: 1}).
		Return([]*entity.ModelInference{}, nil).Once()

	models, err := uc.ListModels(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, models, 1)

	top, err := uc.TopModels(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, top, 1)

	byCreator, err := uc.ModelsByCreator(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byCreator, 1)

	inferences, err := uc.ListInferences(ctx, entity.InferenceFilter{ModelID: 1})
	require.NoError(t, err)
	assert.Empty(t, inferences)

	_, err = uc.ModelsByCreator(ctx, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidID)

	_, err = uc.GetModel(ctx, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidID)
}
