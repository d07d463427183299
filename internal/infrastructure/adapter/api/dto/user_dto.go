package dto

import "github.com/amirhossein-jamali/ai-marketplace/internal/domain/entity"

// RegisterUserRequest represents the body of POST /api/users
type RegisterUserRequest struct {
	Username      string  `json:"username" binding:"required"`
	WalletAddress *string `json:"walletAddress"`
}

// ToInput maps the request to the domain payload
func (r RegisterUserRequest) ToInput() entity.UserInput {
	return entity.UserInput{
		Username:      r.Username,
		WalletAddress: r.WalletAddress,
	}
}

// ConnectWalletRequest represents the body of POST /api/wallet/connect
type ConnectWalletRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
}

// ConnectWalletResponse is the connected user plus a connection flag
type ConnectWalletResponse struct {
	*entity.User
	Connected bool `json:"connected"`
}
