package payment

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/ai-marketplace/internal/infrastructure/adapter/logger"
)

func TestHashFormatVerifier(t *testing.T) {
	fullHash := "0x" + strings.Repeat("ab", 32)

	testCases := []struct {
		name     string
		strict   bool
		hash     string
		expected bool
	}{
		{"Short hash lenient", false, "0xfeed", true},
		{"Full hash lenient", false, fullHash, true},
		{"Full hash strict", true, fullHash, true},
		{"Short hash strict", true, "0xfeed", false},
		{"Missing prefix", false, "feed", false},
		{"Odd length", false, "0xabc", false},
		{"Not hex", false, "0xzz", false},
		{"Empty payload", false, "0x", false},
		{"Too long", false, fullHash + "00", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			verifier := NewHashFormatVerifier(tc.strict, logger.NewNoopLogger())

			ok, err := verifier.Verify(context.Background(), tc.hash)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ok)
		})
	}
}

func TestHashFormatVerifierCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHashFormatVerifier(false, logger.NewNoopLogger()).Verify(ctx, "0xfeed")
	assert.ErrorIs(t, err, context.Canceled)
}
