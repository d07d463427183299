package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ai-marketplace/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/ai-marketplace/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/ai-marketplace/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful registration", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		input := entity.UserInput{Username: "alice", WalletAddress: strPtr("0xa11ce")}
		created := entity.NewUser(4, input, fixedTime)

		mockRepo.EXPECT().CreateUser(mock.Anything, input).Return(created, nil).Once()
		mockLogger.EXPECT().Info("User registered", mock.Anything).Once()

		userUseCase := NewUserUseCase(mockRepo, mockLogger)

		// Execute
		user, err := userUseCase.RegisterUser(ctx, input)

		// Assertions
		require.NoError(t, err)
		assert.Equal(t, uint64(4), user.ID)
		assert.Equal(t, "0", user.TotalEarnings)
	})

	t.Run("Invalid payload never reaches the store", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		userUseCase := NewUserUseCase(mockRepo, mockLogger)

		user, err := userUseCase.RegisterUser(ctx, entity.UserInput{})

		assert.Nil(t, user)
		assert.True(t, errs.IsValidationError(err))
	})

	t.Run("Duplicate username", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		dupErr := errs.WrapValidationError("user", "username", errs.ErrDuplicateUsername)
		mockRepo.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(nil, dupErr).Once()

		userUseCase := NewUserUseCase(mockRepo, mockLogger)

		user, err := userUseCase.RegisterUser(ctx, entity.UserInput{Username: "ai_researcher"})

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrDuplicateUsername)
	})

	t.Run("Store failure is logged", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()
		mockLogger.EXPECT().Error("Failed to register user", mock.Anything).Once()

		userUseCase := NewUserUseCase(mockRepo, mockLogger)

		_, err := userUseCase.RegisterUser(ctx, entity.UserInput{Username: "bob"})
		assert.EqualError(t, err, "boom")
	})
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Zero id", func(t *testing.T) {
		userUseCase := NewUserUseCase(persistencemocks.NewMockUserRepository(t), coremocks.NewMockLogger(t))

		_, err := userUseCase.GetUser(ctx, 0)
		assert.ErrorIs(t, err, errs.ErrInvalidID)
	})

	t.Run("Not found is passed through", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockRepo.EXPECT().GetUser(mock.Anything, uint64(9)).
			Return(nil, errs.NewNotFoundError(errs.ErrUserNotFound, uint64(9))).Once()

		userUseCase := NewUserUseCase(mockRepo, coremocks.NewMockLogger(t))

		user, err := userUseCase.GetUser(ctx, 9)
		assert.Nil(t, user)
		assert.True(t, errs.IsUserNotFoundError(err))
	})

	t.Run("By username trims input", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockRepo.EXPECT().GetUserByUsername(mock.Anything, "sound_artist").
			Return(&entity.User{ID: 3, Username: "sound_artist"}, nil).Once()

		userUseCase := NewUserUseCase(mockRepo, coremocks.NewMockLogger(t))

		user, err := userUseCase.GetUserByUsername(ctx, " sound_artist ")
		require.NoError(t, err)
		assert.Equal(t, uint64(3), user.ID)
	})
}

func TestConnectWallet(t *testing.T) {
	ctx := context.Background()

	t.Run("Known wallet", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().GetUserByWalletAddress(mock.Anything, "0x123...abc").
			Return(&entity.User{ID: 1, Username: "ai_researcher"}, nil).Once()
		mockLogger.EXPECT().Info("Wallet connected", mock.Anything).Once()

		userUseCase := NewUserUseCase(mockRepo, mockLogger)

		user, err := userUseCase.ConnectWallet(ctx, "0x123...abc")
		require.NoError(t, err)
		assert.Equal(t, "ai_researcher", user.Username)
	})

	t.Run("Unknown wallet", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().GetUserByWalletAddress(mock.Anything, "0xdead").
			Return(nil, errs.NewNotFoundError(errs.ErrUserNotFound, "0xdead")).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		userUseCase := NewUserUseCase(mockRepo, mockLogger)

		_, err := userUseCase.ConnectWallet(ctx, "0xdead")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Blank wallet", func(t *testing.T) {
		userUseCase := NewUserUseCase(persistencemocks.NewMockUserRepository(t), coremocks.NewMockLogger(t))

		_, err := userUseCase.ConnectWallet(ctx, "  ")
		assert.True(t, errs.IsValidationError(err))
	})
}

func TestCreditEarnings(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		userID    uint64
		amount    string
		mockSetup func(repo *persistencemocks.MockUserRepository, log *coremocks.MockLogger)
		expected  string
		errorType error
	}{
		{
			name:   "Adds to existing earnings",
			userID: 1,
			amount: "2.5",
			mockSetup: func(repo *persistencemocks.MockUserRepository, log *coremocks.MockLogger) {
				repo.EXPECT().GetUser(mock.Anything, uint64(1)).
					Return(&entity.User{ID: 1, TotalEarnings: "12450"}, nil).Once()
				repo.EXPECT().UpdateUserEarnings(mock.Anything, uint64(1), "12452.5").
					Return(&entity.User{ID: 1, TotalEarnings: "12452.5"}, nil).Once()
				log.EXPECT().Info("Earnings credited", mock.Anything).Once()
			},
			expected: "12452.5",
		},
		{
			name:      "Negative amount",
			userID:    1,
			amount:    "-5",
			mockSetup: func(*persistencemocks.MockUserRepository, *coremocks.MockLogger) {},
			errorType: errs.ErrNegativeAmount,
		},
		{
			name:      "Zero user",
			userID:    0,
			amount:    "1",
			mockSetup: func(*persistencemocks.MockUserRepository, *coremocks.MockLogger) {},
			errorType: errs.ErrInvalidID,
		},
		{
			name:   "Unknown user",
			userID: 42,
			amount: "1",
			mockSetup: func(repo *persistencemocks.MockUserRepository, log *coremocks.MockLogger) {
				repo.EXPECT().GetUser(mock.Anything, uint64(42)).
					Return(nil, errs.NewNotFoundError(errs.ErrUserNotFound, uint64(42))).Once()
				log.EXPECT().Warn(mock.Anything, mock.Anything).Once()
			},
			errorType: errs.ErrUserNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := persistencemocks.NewMockUserRepository(t)
			mockLogger := coremocks.NewMockLogger(t)
			tc.mockSetup(mockRepo, mockLogger)

			userUseCase := NewUserUseCase(mockRepo, mockLogger)

			user, err := userUseCase.CreditEarnings(ctx, tc.userID, tc.amount)

			if tc.errorType != nil {
				assert.Nil(t, user)
				assert.ErrorIs(t, err, tc.errorType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, user.TotalEarnings)
		})
	}
}

func TestTopEarners(t *testing.T) {
	mockRepo := persistencemocks.NewMockUserRepository(t)
	mockRepo.EXPECT().GetTopEarners(mock.Anything, 2).Return([]*entity.User{
		{ID: 1, TotalEarnings: "12450"},
		{ID: 2, TotalEarnings: "8920"},
	}, nil).Once()

	userUseCase := NewUserUseCase(mockRepo, coremocks.NewMockLogger(t))

	users, err := userUseCase.TopEarners(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
