package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ai-marketplace/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/core"
	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/persistence"
)

// DefaultInferenceBaseOffset is added to the logged inference count reported by
// GetTotalStats. It stands in for the demo history of the seed dataset.
const DefaultInferenceBaseOffset int64 = 156000

var _ persistence.Storage = (*Store)(nil)

// collection keeps entities by id together with their insertion order, which
// is the tiebreak of every ranking query
type collection[T any] struct {
	items map[uint64]T
	order []uint64
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: make(map[uint64]T)}
}

func (c *collection[T]) put(id uint64, item T) {
	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = item
}

func (c *collection[T]) get(id uint64) (T, bool) {
	item, ok := c.items[id]
	return item, ok
}

// values returns the entities in insertion order
func (c *collection[T]) values() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

func (c *collection[T]) size() int {
	return len(c.items)
}

// Store is the in-memory marketplace store. All collections and the id
// sequence are guarded by one RWMutex; returned entities are copies.
type Store struct {
	mu sync.RWMutex

	users      *collection[*entity.User]
	models     *collection[*entity.AIModel]
	prompts    *collection[*entity.Prompt]
	inferences *collection[*entity.ModelInference]
	purchases  *collection[*entity.PromptPurchase]

	usernames       map[string]uint64
	wallets         map[string]uint64
	purchasesByHash map[string]uint64

	ids                 *Sequence
	timeProvider        coreport.TimeProvider
	logger              coreport.Logger
	inferenceBaseOffset int64
	seed                bool
}

// Option configures a Store
type Option func(*Store)

// WithInferenceBaseOffset overrides the offset added to the inference count in stats
func WithInferenceBaseOffset(offset int64) Option {
	return func(s *Store) {
		s.inferenceBaseOffset = offset
	}
}

// WithSeedData toggles loading the demo dataset at construction
func WithSeedData(enabled bool) Option {
	return func(s *Store) {
		s.seed = enabled
	}
}

// NewStore creates a store, pre-populated with the demo dataset unless disabled
func NewStore(timeProvider coreport.TimeProvider, logger coreport.Logger, opts ...Option) *Store {
	s := &Store{
		users:               newCollection[*entity.User](),
		models:              newCollection[*entity.AIModel](),
		prompts:             newCollection[*entity.Prompt](),
		inferences:          newCollection[*entity.ModelInference](),
		purchases:           newCollection[*entity.PromptPurchase](),
		usernames:           make(map[string]uint64),
		wallets:             make(map[string]uint64),
		purchasesByHash:     make(map[string]uint64),
		timeProvider:        timeProvider,
		logger:              logger,
		inferenceBaseOffset: DefaultInferenceBaseOffset,
		seed:                true,
	}

	for _, opt := range opts {
		opt(s)
	}

	var lastID uint64
	if s.seed {
		lastID = s.loadSeedData()
		s.logger.Info("Marketplace store seeded", map[string]any{
			"users":   s.users.size(),
			"models":  s.models.size(),
			"prompts": s.prompts.size(),
		})
	}
	s.ids = NewSequence(lastID)

	return s
}

// LastID returns the most recently assigned entity id
func (s *Store) LastID() uint64 {
	return s.ids.Last()
}

// indexUser records the unique keys of a user
func (s *Store) indexUser(user *entity.User) {
	s.usernames[user.Username] = user.ID
	if user.HasWallet() {
		s.wallets[*user.WalletAddress] = user.ID
	}
}

// GetUser retrieves a user by ID
func (s *Store) GetUser(ctx context.Context, id uint64) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users.get(id)
	if !ok {
		return nil, errs.NewNotFoundError(errs.ErrUserNotFound, id)
	}
	return user.Clone(), nil
}

// GetUserByUsername retrieves a user by username
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usernames[username]
	if !ok {
		return nil, errs.NewNotFoundError(errs.ErrUserNotFound, username)
	}
	user, _ := s.users.get(id)
	return user.Clone(), nil
}

// GetUserByWalletAddress retrieves the user bound to a wallet address
func (s *Store) GetUserByWalletAddress(ctx context.Context, walletAddress string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.wallets[walletAddress]
	if !ok {
		return nil, errs.NewNotFoundError(errs.ErrUserNotFound, walletAddress)
	}
	user, _ := s.users.get(id)
	return user.Clone(), nil
}

// CreateUser registers a new user
func (s *Store) CreateUser(ctx context.Context, input entity.UserInput) (*entity.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// build with a zero id first so the unique keys are normalized before the check
	candidate := entity.NewUser(0, input, s.timeProvider.Now())
	if _, taken := s.usernames[candidate.Username]; taken {
		s.logger.Warn("Username already registered", map[string]any{
			"username": candidate.Username,
		})
		return nil, errs.WrapValidationError("user", "username", errs.ErrDuplicateUsername)
	}
	if candidate.HasWallet() {
		if _, taken := s.wallets[*candidate.WalletAddress]; taken {
			s.logger.Warn("Wallet address already registered", map[string]any{
				"wallet_address": *candidate.WalletAddress,
			})
			return nil, errs.WrapValidationError("user", "walletAddress", errs.ErrDuplicateWalletAddress)
		}
	}

	candidate.ID = s.ids.Next()
	s.users.put(candidate.ID, candidate)
	s.indexUser(candidate)

	s.logger.Info("User created", map[string]any{
		"user_id":  candidate.ID,
		"username": candidate.Username,
	})
	return candidate.Clone(), nil
}

// UpdateUserEarnings replaces the earnings of a user
func (s *Store) UpdateUserEarnings(ctx context.Context, id uint64, earnings string) (*entity.User, error) {
	if _, err := entity.ValidateAmount(earnings); err != nil {
		return nil, errs.WrapValidationError("user", "totalEarnings", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users.get(id)
	if !ok {
		s.logger.Warn("User not found during earnings update", map[string]any{
			"user_id": id,
		})
		return nil, errs.NewNotFoundError(errs.ErrUserNotFound, id)
	}

	updated := user.Clone()
	updated.TotalEarnings = earnings
	s.users.put(id, updated)

	s.logger.Debug("User earnings updated", map[string]any{
		"user_id":        id,
		"total_earnings": earnings,
	})
	return updated.Clone(), nil
}

// GetTopEarners returns users ordered by earnings, highest first
func (s *Store) GetTopEarners(ctx context.Context, limit int) ([]*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := s.users.values()
	sort.SliceStable(users, func(i, j int) bool {
		return entity.CompareAmounts(users[i].TotalEarnings, users[j].TotalEarnings) > 0
	})

	return cloneAll(truncate(users, limit), (*entity.User).Clone), nil
}

// GetAIModel retrieves a model by ID, including inactive ones
func (s *Store) GetAIModel(ctx context.Context, id uint64) (*entity.AIModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	model, ok := s.models.get(id)
	if !ok {
		return nil, errs.NewNotFoundError(errs.ErrModelNotFound, id)
	}
	return model.Clone(), nil
}

// GetAIModels lists active models matching the filter, most used first
func (s *Store) GetAIModels(ctx context.Context, filter entity.ModelFilter) ([]*entity.AIModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	models := filterAll(s.models.values(), filter.Matches)
	sortByUsage(models)

	return cloneAll(models, (*entity.AIModel).Clone), nil
}

// CreateAIModel stores an uploaded model
func (s *Store) CreateAIModel(ctx context.Context, input entity.AIModelInput) (*entity.AIModel, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	model := entity.NewAIModel(s.ids.Next(), input, s.timeProvider.Now())
	s.models.put(model.ID, model)

	s.logger.Info("AI model created", map[string]any{
		"model_id": model.ID,
		"name":     model.Name,
		"category": model.Category,
	})
	return model.Clone(), nil
}

// UpdateModelUsage increments the usage count of a model by one
func (s *Store) UpdateModelUsage(ctx context.Context, id uint64) (*entity.AIModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	model, ok := s.models.get(id)
	if !ok {
		s.logger.Warn("Model not found during usage update", map[string]any{
			"model_id": id,
		})
		return nil, errs.NewNotFoundError(errs.ErrModelNotFound, id)
	}

	updated := model.Clone()
	updated.UsageCount++
	s.models.put(id, updated)

	return updated.Clone(), nil
}

// GetTopModels returns active models ordered by usage, most used first
func (s *Store) GetTopModels(ctx context.Context, limit int) ([]*entity.AIModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	models := filterAll(s.models.values(), func(m *entity.AIModel) bool { return m.IsActive })
	sortByUsage(models)

	return cloneAll(truncate(models, limit), (*entity.AIModel).Clone), nil
}

// GetModelsByCreator returns the active models of a creator, newest first
func (s *Store) GetModelsByCreator(ctx context.Context, creatorID uint64) ([]*entity.AIModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	models := filterAll(s.models.values(), func(m *entity.AIModel) bool {
		return m.IsActive && m.IsCreatedBy(creatorID)
	})
	sort.SliceStable(models, func(i, j int) bool {
		return models[i].CreatedAt.After(models[j].CreatedAt)
	})

	return cloneAll(models, (*entity.AIModel).Clone), nil
}

// GetPrompt retrieves a prompt by ID, including inactive ones
func (s *Store) GetPrompt(ctx context.Context, id uint64) (*entity.Prompt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prompt, ok := s.prompts.get(id)
	if !ok {
		return nil, errs.NewNotFoundError(errs.ErrPromptNotFound, id)
	}
	return prompt.Clone(), nil
}

// GetPrompts lists active prompts of a category, best selling first
func (s *Store) GetPrompts(ctx context.Context, category string) ([]*entity.Prompt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prompts := filterAll(s.prompts.values(), func(p *entity.Prompt) bool {
		return p.IsActive && entity.MatchesCategory(category, p.Category)
	})
	sort.SliceStable(prompts, func(i, j int) bool {
		return prompts[i].SalesCount > prompts[j].SalesCount
	})

	return cloneAll(prompts, (*entity.Prompt).Clone), nil
}

// CreatePrompt stores a new prompt listing
func (s *Store) CreatePrompt(ctx context.Context, input entity.PromptInput) (*entity.Prompt, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prompt := entity.NewPrompt(s.ids.Next(), input, s.timeProvider.Now())
	s.prompts.put(prompt.ID, prompt)

	s.logger.Info("Prompt created", map[string]any{
		"prompt_id":    prompt.ID,
		"title":        prompt.Title,
		"nft_token_id": prompt.NFTTokenID,
	})
	return prompt.Clone(), nil
}

// UpdatePromptSales increments the sales count of a prompt by one
func (s *Store) UpdatePromptSales(ctx context.Context, id uint64) (*entity.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prompt, ok := s.prompts.get(id)
	if !ok {
		s.logger.Warn("Prompt not found during sales update", map[string]any{
			"prompt_id": id,
		})
		return nil, errs.NewNotFoundError(errs.ErrPromptNotFound, id)
	}

	updated := prompt.Clone()
	updated.SalesCount++
	s.prompts.put(id, updated)

	return updated.Clone(), nil
}

// CreateModelInference appends an inference record
func (s *Store) CreateModelInference(ctx context.Context, input entity.ModelInferenceInput) (*entity.ModelInference, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inference := entity.NewModelInference(s.ids.Next(), input, s.timeProvider.Now())
	s.inferences.put(inference.ID, inference)

	s.logger.Debug("Model inference recorded", map[string]any{
		"inference_id": inference.ID,
		"model_id":     inference.ModelID,
		"cost":         inference.Cost,
	})
	return inference.Clone(), nil
}

// GetModelInferences lists inferences matching the filter, newest first
func (s *Store) GetModelInferences(ctx context.Context, filter entity.InferenceFilter) ([]*entity.ModelInference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inferences := filterAll(s.inferences.values(), filter.Matches)
	sort.SliceStable(inferences, func(i, j int) bool {
		return inferences[i].CreatedAt.After(inferences[j].CreatedAt)
	})

	return cloneAll(inferences, (*entity.ModelInference).Clone), nil
}

// CreatePromptPurchase appends a purchase record
func (s *Store) CreatePromptPurchase(ctx context.Context, input entity.PromptPurchaseInput) (*entity.PromptPurchase, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	purchase := entity.NewPromptPurchase(s.ids.Next(), input, s.timeProvider.Now())
	s.purchases.put(purchase.ID, purchase)
	if purchase.TransactionHash != nil {
		s.purchasesByHash[*purchase.TransactionHash] = purchase.ID
	}

	s.logger.Info("Prompt purchase recorded", map[string]any{
		"purchase_id": purchase.ID,
		"prompt_id":   purchase.PromptID,
		"buyer_id":    purchase.BuyerID,
		"price":       purchase.Price,
	})
	return purchase.Clone(), nil
}

// GetPromptPurchases lists purchases of a buyer, newest first
func (s *Store) GetPromptPurchases(ctx context.Context, buyerID uint64) ([]*entity.PromptPurchase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	purchases := filterAll(s.purchases.values(), func(p *entity.PromptPurchase) bool {
		return buyerID == 0 || p.BuyerID == buyerID
	})
	sort.SliceStable(purchases, func(i, j int) bool {
		return purchases[i].CreatedAt.After(purchases[j].CreatedAt)
	})

	return cloneAll(purchases, (*entity.PromptPurchase).Clone), nil
}

// GetPromptPurchaseByTransactionHash finds the purchase settled by a transaction
func (s *Store) GetPromptPurchaseByTransactionHash(ctx context.Context, transactionHash string) (*entity.PromptPurchase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.purchasesByHash[transactionHash]
	if !ok {
		return nil, errs.NewNotFoundError(errs.ErrNotFound, transactionHash)
	}
	purchase, _ := s.purchases.get(id)
	return purchase.Clone(), nil
}

// GetTotalStats summarizes the marketplace
func (s *Store) GetTotalStats(ctx context.Context) (*entity.MarketplaceStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activeModels := 0
	for _, model := range s.models.values() {
		if model.IsActive {
			activeModels++
		}
	}

	earnings := make([]string, 0, s.users.size())
	for _, user := range s.users.values() {
		earnings = append(earnings, user.TotalEarnings)
	}

	return &entity.MarketplaceStats{
		ActiveModels:    activeModels,
		TotalInferences: int64(s.inferences.size()) + s.inferenceBaseOffset,
		APTDistributed:  entity.FormatOneDecimal(entity.SumAmounts(earnings...)),
	}, nil
}

func sortByUsage(models []*entity.AIModel) {
	sort.SliceStable(models, func(i, j int) bool {
		return models[i].UsageCount > models[j].UsageCount
	})
}

func filterAll[T any](items []T, keep func(T) bool) []T {
	out := items[:0]
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// truncate keeps the first limit items; a non-positive limit keeps none
func truncate[T any](items []T, limit int) []T {
	if limit <= 0 {
		return items[:0]
	}
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

func cloneAll[T any](items []T, clone func(T) T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = clone(item)
	}
	return out
}
