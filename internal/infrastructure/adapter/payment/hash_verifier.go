package payment

import (
	"context"

	"github.com/ethereum/go-ethereum/common/hexutil"

	coreport "github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/core"
)

// transactionHashLength is the byte length of an Aptos transaction hash
const transactionHashLength = 32

// HashFormatVerifier accepts any well-formed 0x-prefixed hex transaction hash.
// It stands in for a wallet node until on-chain settlement is wired.
type HashFormatVerifier struct {
	strict bool
	logger coreport.Logger
}

var _ coreport.PaymentVerifier = (*HashFormatVerifier)(nil)

// NewHashFormatVerifier creates a verifier. In strict mode the hash must be
// exactly 32 bytes long.
func NewHashFormatVerifier(strict bool, logger coreport.Logger) *HashFormatVerifier {
	return &HashFormatVerifier{
		strict: strict,
		logger: logger,
	}
}

// Verify reports whether the hash looks like a settled transaction
func (v *HashFormatVerifier) Verify(ctx context.Context, transactionHash string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	raw, err := hexutil.Decode(transactionHash)
	if err != nil {
		v.logger.Debug("Transaction hash is not valid hex", map[string]any{
			"transaction_hash": transactionHash,
			"error":            err.Error(),
		})
		return false, nil
	}

	if len(raw) == 0 || len(raw) > transactionHashLength {
		return false, nil
	}
	if v.strict && len(raw) != transactionHashLength {
		return false, nil
	}
	return true, nil
}
