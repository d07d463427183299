package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	domainerr "github.com/amirhossein-jamali/ai-marketplace/internal/domain/error"
)

func TestParseLimit(t *testing.T) {
	testCases := []struct {
		raw      string
		expected int
	}{
		{"5", 5},
		{"5abc", 5},
		{" 7 ", 7},
		{"+3", 3},
		{"-2", -2},
		{"-2x", -2},
		{"0", 10},
		{"abc", 10},
		{"", 10},
		{"-", 10},
		{"99999999999999999999", 10},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%q", tc.raw), func(t *testing.T) {
			assert.Equal(t, tc.expected, parseLimit(tc.raw, 10))
		})
	}
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFor(domainerr.NewNotFoundError(domainerr.ErrModelNotFound, 9)))
	assert.Equal(t, http.StatusBadRequest, statusFor(domainerr.ErrDuplicateUsername))
	assert.Equal(t, http.StatusPaymentRequired, statusFor(domainerr.ErrPaymentRejected))
	assert.Equal(t, http.StatusPaymentRequired, statusFor(domainerr.ErrTransactionHashInUse))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("boom")))
}
