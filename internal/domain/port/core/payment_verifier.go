package core

import "context"

// PaymentVerifier reports whether a wallet transaction settled successfully.
// Only a boolean outcome is exposed; ledger details stay at the wallet boundary.
type PaymentVerifier interface {
	Verify(ctx context.Context, transactionHash string) (bool, error)
}
