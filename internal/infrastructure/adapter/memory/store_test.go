package memory

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ai-marketplace/internal/domain/error"
	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/core"
	"github.com/amirhossein-jamali/ai-marketplace/internal/infrastructure/adapter/logger"
)

// stepClock advances one second on every Now call so creation order is
// visible in CreatedAt
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func (c *stepClock) Since(t time.Time) core.Duration {
	return core.Duration(c.now.Sub(t))
}

func newTestStore(opts ...Option) *Store {
	clock := &stepClock{now: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}
	return NewStore(clock, logger.NewNoopLogger(), opts...)
}

func TestSeedData(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	assert.Equal(t, uint64(3), store.LastID())

	user, err := store.GetUserByUsername(ctx, "blockchain_dev")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), user.ID)
	assert.Equal(t, "8920", user.TotalEarnings)

	byWallet, err := store.GetUserByWalletAddress(ctx, "0x789...ghi")
	require.NoError(t, err)
	assert.Equal(t, "sound_artist", byWallet.Username)

	model, err := store.GetAIModel(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Vision Transformer v2", model.Name)
	assert.Equal(t, int64(2847), model.UsageCount)

	t.Run("Empty store", func(t *testing.T) {
		empty := newTestStore(WithSeedData(false))
		assert.Equal(t, uint64(0), empty.LastID())

		models, err := empty.GetAIModels(ctx, entity.ModelFilter{})
		require.NoError(t, err)
		assert.Empty(t, models)
	})
}

func TestGetTotalStats(t *testing.T) {
	ctx := context.Background()

	t.Run("Fresh store", func(t *testing.T) {
		stats, err := newTestStore().GetTotalStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, stats.ActiveModels)
		assert.Equal(t, int64(156000), stats.TotalInferences)
		assert.Equal(t, "28710.0", stats.APTDistributed)
	})

	t.Run("Counts logged inferences on top of the offset", func(t *testing.T) {
		store := newTestStore(WithInferenceBaseOffset(0))
		_, err := store.CreateModelInference(ctx, entity.ModelInferenceInput{ModelID: 1, Cost: "2.5"})
		require.NoError(t, err)

		stats, err := store.GetTotalStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.TotalInferences)
	})

	t.Run("Unparseable earnings count as zero", func(t *testing.T) {
		store := newTestStore()
		store.users.items[1].TotalEarnings = "n/a"

		stats, err := store.GetTotalStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, "16260.0", stats.APTDistributed)
	})
}

func TestIDsAreUniqueAcrossCollections(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	user, err := store.CreateUser(ctx, entity.UserInput{Username: "eve"})
	require.NoError(t, err)

	model, err := store.CreateAIModel(ctx, entity.AIModelInput{
		Name: "Tiny", Description: "d", Category: "Language", PricePerInference: "1",
	})
	require.NoError(t, err)

	prompt, err := store.CreatePrompt(ctx, entity.PromptInput{
		Title: "t", Description: "d", Content: "c", Category: "Art", Price: "2",
	})
	require.NoError(t, err)

	inference, err := store.CreateModelInference(ctx, entity.ModelInferenceInput{ModelID: model.ID, Cost: "1"})
	require.NoError(t, err)

	purchase, err := store.CreatePromptPurchase(ctx, entity.PromptPurchaseInput{
		PromptID: prompt.ID, BuyerID: user.ID, Price: "2",
	})
	require.NoError(t, err)

	ids := []uint64{user.ID, model.ID, prompt.ID, inference.ID, purchase.ID}
	assert.Equal(t, []uint64{4, 5, 6, 7, 8}, ids)
	for i := 1; i < len(ids); i++ {
		assert.Greater(t, ids[i], ids[i-1])
	}
	assert.Equal(t, uint64(8), store.LastID())
}

func TestFailedCreateDoesNotConsumeID(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	_, err := store.CreateAIModel(ctx, entity.AIModelInput{Name: "missing fields"})
	require.Error(t, err)
	assert.True(t, errs.IsValidationError(err))

	_, err = store.CreateUser(ctx, entity.UserInput{Username: "ai_researcher"})
	assert.ErrorIs(t, err, errs.ErrDuplicateUsername)

	_, err = store.CreateUser(ctx, entity.UserInput{Username: "new", WalletAddress: strPtr("0x123...abc")})
	assert.ErrorIs(t, err, errs.ErrDuplicateWalletAddress)
	assert.True(t, errs.IsValidationError(err))

	assert.Equal(t, uint64(3), store.LastID())
}

func TestGetTopEarners(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	_, err := store.CreateUser(ctx, entity.UserInput{Username: "newcomer"})
	require.NoError(t, err)
	_, err = store.UpdateUserEarnings(ctx, 2, "20000.5")
	require.NoError(t, err)

	testCases := []struct {
		limit    int
		expected []string
	}{
		{2, []string{"blockchain_dev", "ai_researcher"}},
		{10, []string{"blockchain_dev", "ai_researcher", "sound_artist", "newcomer"}},
		{0, []string{}},
		{-1, []string{}},
	}

	for _, tc := range testCases {
		users, err := store.GetTopEarners(ctx, tc.limit)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(users), max(tc.limit, 0))

		names := make([]string, 0, len(users))
		for i, u := range users {
			names = append(names, u.Username)
			if i > 0 {
				assert.GreaterOrEqual(t, entity.CompareAmounts(users[i-1].TotalEarnings, u.TotalEarnings), 0)
			}
		}
		assert.Equal(t, tc.expected, names)
	}
}

func TestUpdateUserEarnings(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	user, err := store.UpdateUserEarnings(ctx, 3, "7342.5")
	require.NoError(t, err)
	assert.Equal(t, "7342.5", user.TotalEarnings)

	_, err = store.UpdateUserEarnings(ctx, 99, "1")
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
	assert.True(t, errs.IsNotFoundError(err))

	_, err = store.UpdateUserEarnings(ctx, 3, "-1")
	assert.True(t, errs.IsValidationError(err))

	stored, err := store.GetUser(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "7342.5", stored.TotalEarnings)
}

func TestUpdateModelUsage(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	const k = 5
	for i := 0; i < k; i++ {
		_, err := store.UpdateModelUsage(ctx, 2)
		require.NoError(t, err)
	}

	model, err := store.GetAIModel(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1923+k), model.UsageCount)

	t.Run("Unknown model mutates nothing", func(t *testing.T) {
		before, err := store.GetTopModels(ctx, 10)
		require.NoError(t, err)

		updated, err := store.UpdateModelUsage(ctx, 404)
		assert.Nil(t, updated)
		assert.ErrorIs(t, err, errs.ErrModelNotFound)

		after, err := store.GetTopModels(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, before, after)
		assert.Equal(t, uint64(3), store.LastID())
	})
}

func TestConcurrentUpdateModelUsage(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	const k = 64
	var wg sync.WaitGroup
	wg.Add(k)
	for i := 0; i < k; i++ {
		go func() {
			defer wg.Done()
			_, err := store.UpdateModelUsage(ctx, 3)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	model, err := store.GetAIModel(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1678+k), model.UsageCount)
}

func TestGetAIModels(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	vision, err := store.GetAIModels(ctx, entity.ModelFilter{Category: "Computer Vision"})
	require.NoError(t, err)
	require.Len(t, vision, 1)
	assert.Equal(t, "Vision Transformer v2", vision[0].Name)

	all, err := store.GetAIModels(ctx, entity.ModelFilter{Category: entity.AllCategories})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Vision Transformer v2", all[0].Name)
	assert.Equal(t, "GPT-Aptos 13B", all[1].Name)
	assert.Equal(t, "AudioGen Pro", all[2].Name)

	search, err := store.GetAIModels(ctx, entity.ModelFilter{Search: "MUSIC"})
	require.NoError(t, err)
	require.Len(t, search, 1)
	assert.Equal(t, "AudioGen Pro", search[0].Name)

	store.models.items[1].IsActive = false
	active, err := store.GetAIModels(ctx, entity.ModelFilter{})
	require.NoError(t, err)
	assert.Len(t, active, 2)

	// direct lookups still see inactive models
	inactive, err := store.GetAIModel(ctx, 1)
	require.NoError(t, err)
	assert.False(t, inactive.IsActive)
}

func TestCreateAIModelRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	input := entity.AIModelInput{
		Name:              "Whisper Lite",
		Description:       "Speech to text.",
		Category:          "Audio",
		CreatorID:         uintPtr(3),
		PricePerInference: "0.40",
		ModelFileURL:      strPtr("/uploads/whisper.bin"),
		StorageType:       strPtr(entity.StorageFilecoin),
	}

	created, err := store.CreateAIModel(ctx, input)
	require.NoError(t, err)

	fetched, err := store.GetAIModel(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created, fetched)
	assert.Equal(t, input.Name, fetched.Name)
	assert.Equal(t, input.Description, fetched.Description)
	assert.Equal(t, input.Category, fetched.Category)
	assert.Equal(t, input.CreatorID, fetched.CreatorID)
	assert.Equal(t, "0.40", fetched.PricePerInference)
	assert.Equal(t, input.ModelFileURL, fetched.ModelFileURL)
	assert.Equal(t, input.StorageType, fetched.StorageType)
	assert.Equal(t, int64(0), fetched.UsageCount)
	assert.Equal(t, "0", fetched.Rating)
	assert.Equal(t, int64(0), fetched.RatingCount)
	assert.True(t, fetched.IsActive)
}

func TestReadsReturnCopies(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	model, err := store.GetAIModel(ctx, 1)
	require.NoError(t, err)
	model.UsageCount = 0
	*model.CreatorID = 42

	again, err := store.GetAIModel(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2847), again.UsageCount)
	assert.Equal(t, uint64(1), *again.CreatorID)
}

func TestGetModelsByCreator(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	newer, err := store.CreateAIModel(ctx, entity.AIModelInput{
		Name: "Vision Lite", Description: "d", Category: "Computer Vision",
		CreatorID: uintPtr(1), PricePerInference: "1",
	})
	require.NoError(t, err)

	models, err := store.GetModelsByCreator(ctx, 1)
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, newer.ID, models[0].ID)
	assert.Equal(t, uint64(1), models[1].ID)

	none, err := store.GetModelsByCreator(ctx, 77)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetTopModels(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	top, err := store.GetTopModels(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, uint64(1), top[0].ID)
	assert.Equal(t, uint64(2), top[1].ID)
}

func TestGetPrompts(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	prompts, err := store.GetPrompts(ctx, "")
	require.NoError(t, err)

	titles := make([]string, 0, len(prompts))
	for _, p := range prompts {
		titles = append(titles, p.Title)
	}
	assert.Equal(t, []string{
		"Fantasy Landscape Artist",
		"Professional Headshot Generator",
		"Code Documentation Writer",
	}, titles)

	art, err := store.GetPrompts(ctx, "Art")
	require.NoError(t, err)
	require.Len(t, art, 1)
	assert.Equal(t, "nft_003", art[0].NFTTokenID)
}

func TestUpdatePromptSales(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	prompt, err := store.UpdatePromptSales(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(190), prompt.SalesCount)

	_, err = store.UpdatePromptSales(ctx, 404)
	assert.ErrorIs(t, err, errs.ErrPromptNotFound)
}

func TestModelInferences(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	first, err := store.CreateModelInference(ctx, entity.ModelInferenceInput{
		ModelID: 1, UserID: uintPtr(2), Input: json.RawMessage(`{"image":"cat.png"}`), Cost: "2.5",
	})
	require.NoError(t, err)
	second, err := store.CreateModelInference(ctx, entity.ModelInferenceInput{ModelID: 2, Cost: "1.8"})
	require.NoError(t, err)
	third, err := store.CreateModelInference(ctx, entity.ModelInferenceInput{ModelID: 1, Cost: "2.5"})
	require.NoError(t, err)

	all, err := store.GetModelInferences(ctx, entity.InferenceFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []uint64{third.ID, second.ID, first.ID}, []uint64{all[0].ID, all[1].ID, all[2].ID})

	byModel, err := store.GetModelInferences(ctx, entity.InferenceFilter{ModelID: 1})
	require.NoError(t, err)
	assert.Len(t, byModel, 2)

	byUser, err := store.GetModelInferences(ctx, entity.InferenceFilter{UserID: 2})
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.JSONEq(t, `{"image":"cat.png"}`, string(byUser[0].Input))
}

func TestPromptPurchases(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	hash := "0xabc123"
	purchase, err := store.CreatePromptPurchase(ctx, entity.PromptPurchaseInput{
		PromptID: 1, BuyerID: 2, Price: "15", TransactionHash: &hash,
	})
	require.NoError(t, err)
	_, err = store.CreatePromptPurchase(ctx, entity.PromptPurchaseInput{PromptID: 3, BuyerID: 3, Price: "18"})
	require.NoError(t, err)

	byHash, err := store.GetPromptPurchaseByTransactionHash(ctx, hash)
	require.NoError(t, err)
	assert.Equal(t, purchase, byHash)

	_, err = store.GetPromptPurchaseByTransactionHash(ctx, "0xmissing")
	assert.True(t, errs.IsNotFoundError(err))

	mine, err := store.GetPromptPurchases(ctx, 2)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, purchase.ID, mine[0].ID)

	all, err := store.GetPromptPurchases(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestNotFoundLookups(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	user, err := store.GetUser(ctx, 100)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, errs.ErrUserNotFound)

	user, err = store.GetUserByUsername(ctx, "nobody")
	assert.Nil(t, user)
	assert.True(t, errs.IsUserNotFoundError(err))

	model, err := store.GetAIModel(ctx, 100)
	assert.Nil(t, model)
	assert.ErrorIs(t, err, errs.ErrModelNotFound)

	prompt, err := store.GetPrompt(ctx, 100)
	assert.Nil(t, prompt)
	assert.ErrorIs(t, err, errs.ErrPromptNotFound)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func strPtr(s string) *string  { return &s }
func uintPtr(v uint64) *uint64 { return &v }

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }
func (c fixedClock) Since(t time.Time) core.Duration { return core.Duration(c.now.Sub(t)) }

func TestRankingTiesKeepInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewStore(fixedClock{now: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		logger.NewNoopLogger(), WithSeedData(false))

	var userIDs []uint64
	for _, name := range []string{"first", "second", "third"} {
		user, err := store.CreateUser(ctx, entity.UserInput{Username: name})
		require.NoError(t, err)
		userIDs = append(userIDs, user.ID)
	}

	var modelIDs []uint64
	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		model, err := store.CreateAIModel(ctx, entity.AIModelInput{
			Name:              name,
			Description:       "tied model",
			Category:          "Language",
			CreatorID:         uintPtr(userIDs[0]),
			PricePerInference: "1",
		})
		require.NoError(t, err)
		modelIDs = append(modelIDs, model.ID)
	}

	var promptIDs []uint64
	for _, title := range []string{"One", "Two", "Three"} {
		prompt, err := store.CreatePrompt(ctx, entity.PromptInput{
			Title:       title,
			Description: "tied prompt",
			Content:     "content",
			Category:    "Art",
			CreatorID:   uintPtr(userIDs[0]),
			Price:       "5",
		})
		require.NoError(t, err)
		promptIDs = append(promptIDs, prompt.ID)
	}

	var inferenceIDs []uint64
	for _, modelID := range modelIDs {
		inference, err := store.CreateModelInference(ctx, entity.ModelInferenceInput{ModelID: modelID, Cost: "1"})
		require.NoError(t, err)
		inferenceIDs = append(inferenceIDs, inference.ID)
	}

	var purchaseIDs []uint64
	for _, promptID := range promptIDs {
		purchase, err := store.CreatePromptPurchase(ctx, entity.PromptPurchaseInput{PromptID: promptID, BuyerID: userIDs[1], Price: "5"})
		require.NoError(t, err)
		purchaseIDs = append(purchaseIDs, purchase.ID)
	}

	t.Run("Users with equal earnings", func(t *testing.T) {
		users, err := store.GetTopEarners(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, userIDs, collectIDs(users, func(u *entity.User) uint64 { return u.ID }))
	})

	t.Run("Models with equal usage", func(t *testing.T) {
		models, err := store.GetAIModels(ctx, entity.ModelFilter{})
		require.NoError(t, err)
		assert.Equal(t, modelIDs, collectIDs(models, func(m *entity.AIModel) uint64 { return m.ID }))

		top, err := store.GetTopModels(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, modelIDs, collectIDs(top, func(m *entity.AIModel) uint64 { return m.ID }))
	})

	t.Run("Models with equal creation time", func(t *testing.T) {
		models, err := store.GetModelsByCreator(ctx, userIDs[0])
		require.NoError(t, err)
		assert.Equal(t, modelIDs, collectIDs(models, func(m *entity.AIModel) uint64 { return m.ID }))
	})

	t.Run("Prompts with equal sales", func(t *testing.T) {
		prompts, err := store.GetPrompts(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, promptIDs, collectIDs(prompts, func(p *entity.Prompt) uint64 { return p.ID }))
	})

	t.Run("Inferences with equal creation time", func(t *testing.T) {
		inferences, err := store.GetModelInferences(ctx, entity.InferenceFilter{})
		require.NoError(t, err)
		assert.Equal(t, inferenceIDs, collectIDs(inferences, func(i *entity.ModelInference) uint64 { return i.ID }))
	})

	t.Run("Purchases with equal creation time", func(t *testing.T) {
		purchases, err := store.GetPromptPurchases(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, purchaseIDs, collectIDs(purchases, func(p *entity.PromptPurchase) uint64 { return p.ID }))
	})

	t.Run("Ties stay behind a higher key", func(t *testing.T) {
		_, err := store.UpdateModelUsage(ctx, modelIDs[2])
		require.NoError(t, err)

		top, err := store.GetTopModels(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, []uint64{modelIDs[2], modelIDs[0], modelIDs[1]},
			collectIDs(top, func(m *entity.AIModel) uint64 { return m.ID }))
	})
}

func collectIDs[T any](items []T, id func(T) uint64) []uint64 {
	out := make([]uint64, 0, len(items))
	for _, item := range items {
		out = append(out, id(item))
	}
	return out
}
