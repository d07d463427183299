package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/core"
	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/ai-marketplace/internal/infrastructure/adapter/api/dto"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUseCase  usecase.UserUseCase
	modelUseCase usecase.ModelUseCase
	logger       coreport.Logger
	topLimit     int
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	modelUseCase usecase.ModelUseCase,
	logger coreport.Logger,
	topLimit int,
) *UserHandler {
	return &UserHandler{
		userUseCase:  userUseCase,
		modelUseCase: modelUseCase,
		logger:       logger,
		topLimit:     topLimit,
	}
}

// RegisterUser handles the POST /api/users endpoint
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, "create user", bindError("user", err))
		return
	}

	user, err := h.userUseCase.RegisterUser(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, h.logger, "create user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUser handles the GET /api/users/{username} endpoint
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUseCase.GetUserByUsername(c.Request.Context(), c.Param("user"))
	if err != nil {
		respondError(c, h.logger, "fetch user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUserModels handles the GET /api/users/{id}/models endpoint.
// A segment that is not a creator id matches no models.
func (h *UserHandler) GetUserModels(c *gin.Context) {
	creatorID, err := strconv.ParseUint(c.Param("user"), 10, 64)
	if err != nil || creatorID == 0 {
		c.JSON(http.StatusOK, []*entity.AIModel{})
		return
	}

	models, err := h.modelUseCase.ModelsByCreator(c.Request.Context(), creatorID)
	if err != nil {
		respondError(c, h.logger, "fetch user models", err)
		return
	}
	c.JSON(http.StatusOK, models)
}

// TopEarners handles the GET /api/leaderboard/earners/{limit} endpoint
func (h *UserHandler) TopEarners(c *gin.Context) {
	limit := parseLimit(c.Param("limit"), h.topLimit)

	users, err := h.userUseCase.TopEarners(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.logger, "fetch top earners", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// ConnectWallet handles the POST /api/wallet/connect endpoint
func (h *UserHandler) ConnectWallet(c *gin.Context) {
	var req dto.ConnectWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, "connect wallet", bindError("wallet", err))
		return
	}

	user, err := h.userUseCase.ConnectWallet(c.Request.Context(), req.WalletAddress)
	if err != nil {
		respondError(c, h.logger, "connect wallet", err)
		return
	}
	c.JSON(http.StatusOK, dto.ConnectWalletResponse{User: user, Connected: true})
}
