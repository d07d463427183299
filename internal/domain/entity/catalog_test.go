package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/ai-marketplace/internal/domain/error"
)

func uintPtr(v uint64) *uint64 { return &v }

func validModelInput() AIModelInput {
	return AIModelInput{
		Name:              "Sentiment Scout",
		Description:       "Classifies sentiment of short texts.",
		Category:          "Language",
		CreatorID:         uintPtr(2),
		PricePerInference: "0.75",
		StorageType:       strPtr(StorageIPFS),
	}
}

func TestAIModelInputValidate(t *testing.T) {
	assert.NoError(t, validModelInput().Validate())

	testCases := []struct {
		name   string
		mutate func(in *AIModelInput)
		field  string
	}{
		{"Missing name", func(in *AIModelInput) { in.Name = "" }, "name"},
		{"Missing description", func(in *AIModelInput) { in.Description = "" }, "description"},
		{"Missing category", func(in *AIModelInput) { in.Category = "" }, "category"},
		{"Zero creator", func(in *AIModelInput) { in.CreatorID = uintPtr(0) }, "creatorId"},
		{"Unknown storage", func(in *AIModelInput) { in.StorageType = strPtr("s3") }, "storageType"},
		{"Bad price", func(in *AIModelInput) { in.PricePerInference = "cheap" }, "pricePerInference"},
		{"Negative price", func(in *AIModelInput) { in.PricePerInference = "-2" }, "pricePerInference"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := validModelInput()
			tc.mutate(&in)

			err := in.Validate()
			require.Error(t, err)

			var vErr *errs.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, "model", vErr.Entity)
			assert.Equal(t, tc.field, vErr.Field)
			assert.True(t, errs.IsValidationError(err))
		})
	}
}

func TestNewAIModelDefaults(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	in := validModelInput()

	model := NewAIModel(9, in, now)

	assert.Equal(t, uint64(9), model.ID)
	assert.Equal(t, in.Name, model.Name)
	assert.Equal(t, in.PricePerInference, model.PricePerInference)
	assert.Equal(t, int64(0), model.UsageCount)
	assert.Equal(t, "0", model.Rating)
	assert.Equal(t, int64(0), model.RatingCount)
	assert.True(t, model.IsActive)
	assert.Equal(t, now, model.CreatedAt)
	assert.True(t, model.IsCreatedBy(2))
	assert.False(t, model.IsCreatedBy(3))

	// the stored model must not alias the caller's pointers
	*in.CreatorID = 77
	assert.Equal(t, uint64(2), *model.CreatorID)
}

func TestModelFilterMatches(t *testing.T) {
	model := &AIModel{
		Name:        "Vision Transformer v2",
		Description: "Image classification on ImageNet.",
		Category:    "Computer Vision",
		IsActive:    true,
	}

	testCases := []struct {
		name     string
		filter   ModelFilter
		expected bool
	}{
		{"No filter", ModelFilter{}, true},
		{"Sentinel category", ModelFilter{Category: AllCategories}, true},
		{"Exact category", ModelFilter{Category: "Computer Vision"}, true},
		{"Other category", ModelFilter{Category: "Audio"}, false},
		{"Category is case sensitive", ModelFilter{Category: "computer vision"}, false},
		{"Search name case insensitive", ModelFilter{Search: "TRANSFORMER"}, true},
		{"Search description", ModelFilter{Search: "imagenet"}, true},
		{"Search miss", ModelFilter{Search: "music"}, false},
		{"Category and search", ModelFilter{Category: "Computer Vision", Search: "vision"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.filter.Matches(model))
		})
	}

	model.IsActive = false
	assert.False(t, ModelFilter{}.Matches(model))
}

func TestNewPromptDefaults(t *testing.T) {
	now := time.Now()
	in := PromptInput{
		Title:       "Haiku Machine",
		Description: "Short poems on demand.",
		Content:     "write a haiku about [topic]",
		Category:    "Writing",
		CreatorID:   uintPtr(1),
		Price:       "3",
	}
	require.NoError(t, in.Validate())

	prompt := NewPrompt(12, in, now)

	assert.Equal(t, "nft_12", prompt.NFTTokenID)
	assert.Equal(t, int64(0), prompt.SalesCount)
	assert.Equal(t, "0", prompt.Rating)
	assert.True(t, prompt.IsActive)

	in.Price = "free"
	assert.ErrorIs(t, in.Validate(), errs.ErrInvalidAmount)
}

func TestModelInferenceInputValidate(t *testing.T) {
	in := ModelInferenceInput{
		ModelID: 1,
		Input:   json.RawMessage(`{"prompt":"hello"}`),
		Output:  json.RawMessage(`{"result":"ok"}`),
		Cost:    "2.5",
	}
	require.NoError(t, in.Validate())

	t.Run("Absent payloads are allowed", func(t *testing.T) {
		bare := in
		bare.Input = nil
		bare.Output = nil
		assert.NoError(t, bare.Validate())
	})

	t.Run("Malformed input", func(t *testing.T) {
		bad := in
		bad.Input = json.RawMessage(`{"prompt":`)
		var vErr *errs.ValidationError
		require.ErrorAs(t, bad.Validate(), &vErr)
		assert.Equal(t, "input", vErr.Field)
	})

	t.Run("Missing model", func(t *testing.T) {
		bad := in
		bad.ModelID = 0
		var vErr *errs.ValidationError
		require.ErrorAs(t, bad.Validate(), &vErr)
		assert.Equal(t, "modelId", vErr.Field)
	})
}

func TestInferenceFilterMatches(t *testing.T) {
	record := &ModelInference{ModelID: 1, UserID: uintPtr(5)}
	anonymous := &ModelInference{ModelID: 1}

	assert.True(t, InferenceFilter{}.Matches(record))
	assert.True(t, InferenceFilter{ModelID: 1}.Matches(record))
	assert.True(t, InferenceFilter{ModelID: 1, UserID: 5}.Matches(record))
	assert.False(t, InferenceFilter{ModelID: 2}.Matches(record))
	assert.False(t, InferenceFilter{UserID: 6}.Matches(record))
	assert.False(t, InferenceFilter{UserID: 5}.Matches(anonymous))
	assert.True(t, InferenceFilter{ModelID: 1}.Matches(anonymous))
}

func TestModelInferenceClone(t *testing.T) {
	original := NewModelInference(3, ModelInferenceInput{
		ModelID: 1,
		Input:   json.RawMessage(`"abc"`),
		Cost:    "1",
	}, time.Now())

	clone := original.Clone()
	clone.Input[1] = 'z'

	assert.Equal(t, `"abc"`, string(original.Input))
}

func TestNewPromptPurchase(t *testing.T) {
	in := PromptPurchaseInput{PromptID: 1, BuyerID: 2, Price: "15", TransactionHash: strPtr(" 0xfeed ")}
	require.NoError(t, in.Validate())

	purchase := NewPromptPurchase(20, in, time.Now())
	require.NotNil(t, purchase.TransactionHash)
	assert.Equal(t, "0xfeed", *purchase.TransactionHash)

	in.BuyerID = 0
	var vErr *errs.ValidationError
	require.ErrorAs(t, in.Validate(), &vErr)
	assert.Equal(t, "buyerId", vErr.Field)
}
