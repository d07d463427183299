package entity

import (
	"strings"
	"time"
)

// User represents a marketplace participant who creates or buys assets
type User struct {
	ID            uint64    `json:"id"`
	Username      string    `json:"username"`
	WalletAddress *string   `json:"walletAddress"`
	TotalEarnings string    `json:"totalEarnings"` // decimal APT amount
	Reputation    int       `json:"reputation"`
	CreatedAt     time.Time `json:"createdAt"`
}

// UserInput carries the caller-supplied fields of a registration
type UserInput struct {
	Username      string  `json:"username" validate:"required,max=64"`
	WalletAddress *string `json:"walletAddress" validate:"omitempty,max=128"`
}

// Validate checks the registration payload
func (in UserInput) Validate() error {
	in.Username = strings.TrimSpace(in.Username)
	return validateStruct("user", in)
}

// NewUser builds a user with the registration defaults
func NewUser(id uint64, in UserInput, now time.Time) *User {
	return &User{
		ID:            id,
		Username:      strings.TrimSpace(in.Username),
		WalletAddress: normalizeOptional(in.WalletAddress),
		TotalEarnings: ZeroAmount,
		Reputation:    0,
		CreatedAt:     now,
	}
}

// HasWallet reports whether a wallet address is bound to the user
func (u *User) HasWallet() bool {
	return u.WalletAddress != nil && *u.WalletAddress != ""
}

// Clone returns a copy that shares no pointers with u
func (u *User) Clone() *User {
	c := *u
	c.WalletAddress = cloneString(u.WalletAddress)
	return &c
}

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneUint64(v *uint64) *uint64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
