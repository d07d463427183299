package prompt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ai-marketplace/internal/domain/error"
	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/usecase"
	mockcore "github.com/amirhossein-jamali/ai-marketplace/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/ai-marketplace/mocks/port/persistence"
	mockusecase "github.com/amirhossein-jamali/ai-marketplace/mocks/port/usecase"
)

type promptMocks struct {
	prompts   *mockpersistence.MockPromptRepository
	purchases *mockpersistence.MockPurchaseRepository
	earnings  *mockusecase.MockUserUseCase
	verifier  *mockcore.MockPaymentVerifier
	logger    *mockcore.MockLogger
}

func newPromptMocks(t *testing.T) (*promptMocks, *PromptUseCase) {
	m := &promptMocks{
		prompts:   mockpersistence.NewMockPromptRepository(t),
		purchases: mockpersistence.NewMockPurchaseRepository(t),
		earnings:  mockusecase.NewMockUserUseCase(t),
		verifier:  mockcore.NewMockPaymentVerifier(t),
		logger:    mockcore.NewMockLogger(t),
	}
	return m, NewPromptUseCase(m.prompts, m.purchases, m.earnings, m.verifier, m.logger)
}

func headshotPrompt() *entity.Prompt {
	creator := uint64(1)
	return &entity.Prompt{
		ID:         1,
		Title:      "Professional Headshot Generator",
		Category:   "Photography",
		CreatorID:  &creator,
		Price:      "15",
		SalesCount: 247,
		NFTTokenID: "nft_001",
		IsActive:   true,
	}
}

func TestPurchasePrompt(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Successful purchase", func(t *testing.T) {
		m, uc := newPromptMocks(t)

		m.prompts.EXPECT().GetPrompt(mock.Anything, uint64(1)).Return(headshotPrompt(), nil).Once()
		m.purchases.EXPECT().GetPromptPurchaseByTransactionHash(mock.Anything, "0xfeed").
			Return(nil, errs.NewNotFoundError(errs.ErrNotFound, "0xfeed")).Once()
		m.verifier.EXPECT().Verify(mock.Anything, "0xfeed").Return(true, nil).Once()
		m.purchases.EXPECT().CreatePromptPurchase(mock.Anything, mock.MatchedBy(func(in entity.PromptPurchaseInput) bool {
			return in.PromptID == 1 && in.BuyerID == 2 && in.Price == "15" && *in.TransactionHash == "0xfeed"
		})).RunAndReturn(func(_ context.Context, in entity.PromptPurchaseInput) (*entity.PromptPurchase, error) {
			return entity.NewPromptPurchase(4, in, now), nil
		}).Once()
		m.prompts.EXPECT().UpdatePromptSales(mock.Anything, uint64(1)).Return(headshotPrompt(), nil).Once()
		m.earnings.EXPECT().CreditEarnings(mock.Anything, uint64(1), "15").
			Return(&entity.User{ID: 1, TotalEarnings: "12465"}, nil).Once()
		m.logger.EXPECT().Info("Prompt purchased", mock.Anything).Once()

		result, err := uc.PurchasePrompt(ctx, usecase.PurchaseRequest{
			PromptID: 1, BuyerID: 2, TransactionHash: strPtr(" 0xfeed "),
		})

		require.NoError(t, err)
		assert.False(t, result.Duplicate)
		assert.Equal(t, uint64(4), result.Purchase.ID)
		assert.Equal(t, "15", result.Purchase.Price)
	})

	t.Run("Already settled hash does not bump sales", func(t *testing.T) {
		m, uc := newPromptMocks(t)
		earlier := &entity.PromptPurchase{ID: 4, PromptID: 1, BuyerID: 2, Price: "15", TransactionHash: strPtr("0xfeed")}

		m.prompts.EXPECT().GetPrompt(mock.Anything, uint64(1)).Return(headshotPrompt(), nil).Once()
		m.purchases.EXPECT().GetPromptPurchaseByTransactionHash(mock.Anything, "0xfeed").Return(earlier, nil).Once()
		m.logger.EXPECT().Info("Purchase already settled", mock.Anything).Once()

		result, err := uc.PurchasePrompt(ctx, usecase.PurchaseRequest{
			PromptID: 1, BuyerID: 2, TransactionHash: strPtr("0xfeed"),
		})

		require.NoError(t, err)
		assert.True(t, result.Duplicate)
		assert.Equal(t, earlier, result.Purchase)
	})

	t.Run("Hash settled for another prompt is rejected", func(t *testing.T) {
		m, uc := newPromptMocks(t)
		earlier := &entity.PromptPurchase{ID: 4, PromptID: 3, BuyerID: 2, Price: "18", TransactionHash: strPtr("0xabcd")}

		m.prompts.EXPECT().GetPrompt(mock.Anything, uint64(1)).Return(headshotPrompt(), nil).Once()
		m.purchases.EXPECT().GetPromptPurchaseByTransactionHash(mock.Anything, "0xabcd").Return(earlier, nil).Once()
		m.logger.EXPECT().Warn("Transaction hash reused for another purchase", mock.Anything).Once()

		result, err := uc.PurchasePrompt(ctx, usecase.PurchaseRequest{
			PromptID: 1, BuyerID: 2, TransactionHash: strPtr("0xabcd"),
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrTransactionHashInUse)
		assert.ErrorIs(t, err, errs.ErrPaymentRejected)
	})

	t.Run("Hash settled by another buyer is rejected", func(t *testing.T) {
		m, uc := newPromptMocks(t)
		earlier := &entity.PromptPurchase{ID: 4, PromptID: 1, BuyerID: 2, Price: "15", TransactionHash: strPtr("0xabcd")}

		m.prompts.EXPECT().GetPrompt(mock.Anything, uint64(1)).Return(headshotPrompt(), nil).Once()
		m.purchases.EXPECT().GetPromptPurchaseByTransactionHash(mock.Anything, "0xabcd").Return(earlier, nil).Once()
		m.logger.EXPECT().Warn("Transaction hash reused for another purchase", mock.Anything).Once()

		_, err := uc.PurchasePrompt(ctx, usecase.PurchaseRequest{
			PromptID: 1, BuyerID: 3, TransactionHash: strPtr("0xabcd"),
		})
		assert.ErrorIs(t, err, errs.ErrTransactionHashInUse)
	})

	t.Run("Rejected payment", func(t *testing.T) {
		m, uc := newPromptMocks(t)

		m.prompts.EXPECT().GetPrompt(mock.Anything, uint64(1)).Return(headshotPrompt(), nil).Once()
		m.purchases.EXPECT().GetPromptPurchaseByTransactionHash(mock.Anything, "0xbad").
			Return(nil, errs.NewNotFoundError(errs.ErrNotFound, "0xbad")).Once()
		m.verifier.EXPECT().Verify(mock.Anything, "0xbad").Return(false, nil).Once()
		m.logger.EXPECT().Warn("Payment rejected", mock.Anything).Once()

		result, err := uc.PurchasePrompt(ctx, usecase.PurchaseRequest{
			PromptID: 1, BuyerID: 2, TransactionHash: strPtr("0xbad"),
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrPaymentRejected)
	})

	t.Run("Verifier failure", func(t *testing.T) {
		m, uc := newPromptMocks(t)

		m.prompts.EXPECT().GetPrompt(mock.Anything, uint64(1)).Return(headshotPrompt(), nil).Once()
		m.purchases.EXPECT().GetPromptPurchaseByTransactionHash(mock.Anything, "0xbad").
			Return(nil, errs.NewNotFoundError(errs.ErrNotFound, "0xbad")).Once()
		m.verifier.EXPECT().Verify(mock.Anything, "0xbad").Return(false, errors.New("node offline")).Once()

		_, err := uc.PurchasePrompt(ctx, usecase.PurchaseRequest{
			PromptID: 1, BuyerID: 2, TransactionHash: strPtr("0xbad"),
		})
		assert.ErrorContains(t, err, "node offline")
	})

	t.Run("Purchase without hash skips verification", func(t *testing.T) {
		m, uc := newPromptMocks(t)
		prompt := headshotPrompt()
		prompt.CreatorID = nil

		m.prompts.EXPECT().GetPrompt(mock.Anything, uint64(1)).Return(prompt, nil).Once()
		m.purchases.EXPECT().CreatePromptPurchase(mock.Anything, mock.Anything).
			Return(&entity.PromptPurchase{ID: 5, PromptID: 1, BuyerID: 3, Price: "15"}, nil).Once()
		m.prompts.EXPECT().UpdatePromptSales(mock.Anything, uint64(1)).Return(prompt, nil).Once()
		m.logger.EXPECT().Info("Prompt purchased", mock.Anything).Once()

		result, err := uc.PurchasePrompt(ctx, usecase.PurchaseRequest{PromptID: 1, BuyerID: 3})

		require.NoError(t, err)
		assert.Equal(t, uint64(5), result.Purchase.ID)
	})

	t.Run("Unknown prompt", func(t *testing.T) {
		m, uc := newPromptMocks(t)
		m.prompts.EXPECT().GetPrompt(mock.Anything, uint64(404)).
			Return(nil, errs.NewNotFoundError(errs.ErrPromptNotFound, uint64(404))).Once()

		_, err := uc.PurchasePrompt(ctx, usecase.PurchaseRequest{PromptID: 404, BuyerID: 2})
		assert.ErrorIs(t, err, errs.ErrPromptNotFound)
	})

	t.Run("Missing buyer", func(t *testing.T) {
		_, uc := newPromptMocks(t)

		_, err := uc.PurchasePrompt(ctx, usecase.PurchaseRequest{PromptID: 1})
		assert.ErrorIs(t, err, errs.ErrInvalidID)
		assert.True(t, errs.IsValidationError(err))
	})
}

func TestListPrompt(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid listing", func(t *testing.T) {
		m, uc := newPromptMocks(t)
		input := entity.PromptInput{Title: "t", Description: "d", Content: "c", Category: "Art", Price: "2"}

		m.prompts.EXPECT().CreatePrompt(mock.Anything, input).
			Return(entity.NewPrompt(4, input, time.Now()), nil).Once()
		m.logger.EXPECT().Info("Prompt listed", mock.Anything).Once()

		prompt, err := uc.ListPrompt(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "nft_4", prompt.NFTTokenID)
	})

	t.Run("Invalid price", func(t *testing.T) {
		_, uc := newPromptMocks(t)

		_, err := uc.ListPrompt(ctx, entity.PromptInput{Title: "t", Description: "d", Content: "c", Category: "Art", Price: "two"})
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestPromptQueries(t *testing.T) {
	ctx := context.Background()
	m, uc := newPromptMocks(t)

	m.prompts.EXPECT().GetPrompts(mock.Anything, "Art").Return([]*entity.Prompt{headshotPrompt()}, nil).Once()
	m.prompts.EXPECT().GetPrompt(mock.Anything, uint64(1)).Return(headshotPrompt(), nil).Once()
	m.purchases.EXPECT().GetPromptPurchases(mock.Anything, uint64(2)).Return([]*entity.PromptPurchase{}, nil).Once()

	prompts, err := uc.ListPrompts(ctx, "Art")
	require.NoError(t, err)
	assert.Len(t, prompts, 1)

	prompt, err := uc.GetPrompt(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "nft_001", prompt.NFTTokenID)

	purchases, err := uc.ListPurchases(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, purchases)

	_, err = uc.GetPrompt(ctx, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidID)
}
