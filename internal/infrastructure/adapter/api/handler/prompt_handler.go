package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/core"
	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/ai-marketplace/internal/infrastructure/adapter/api/dto"
)

// PromptHandler handles prompt listing and purchase requests
type PromptHandler struct {
	promptUseCase usecase.PromptUseCase
	logger        coreport.Logger
}

// NewPromptHandler creates a new prompt handler instance
func NewPromptHandler(promptUseCase usecase.PromptUseCase, logger coreport.Logger) *PromptHandler {
	return &PromptHandler{
		promptUseCase: promptUseCase,
		logger:        logger,
	}
}

// ListPrompts handles the GET /api/prompts endpoint
func (h *PromptHandler) ListPrompts(c *gin.Context) {
	prompts, err := h.promptUseCase.ListPrompts(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, h.logger, "fetch prompts", err)
		return
	}
	c.JSON(http.StatusOK, prompts)
}

// GetPrompt handles the GET /api/prompts/{id} endpoint
func (h *PromptHandler) GetPrompt(c *gin.Context) {
	id, err := parseID(c, "id", "prompt")
	if err != nil {
		respondError(c, h.logger, "fetch prompt", err)
		return
	}

	prompt, err := h.promptUseCase.GetPrompt(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "fetch prompt", err)
		return
	}
	c.JSON(http.StatusOK, prompt)
}

// CreatePrompt handles the POST /api/prompts endpoint
func (h *PromptHandler) CreatePrompt(c *gin.Context) {
	var req dto.CreatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, "create prompt", bindError("prompt", err))
		return
	}

	prompt, err := h.promptUseCase.ListPrompt(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, h.logger, "create prompt", err)
		return
	}
	c.JSON(http.StatusOK, prompt)
}

// PurchasePrompt handles the POST /api/prompts/{id}/purchase endpoint
func (h *PromptHandler) PurchasePrompt(c *gin.Context) {
	id, err := parseID(c, "id", "prompt")
	if err != nil {
		respondError(c, h.logger, "process purchase", err)
		return
	}

	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, "process purchase", bindError("purchase", err))
		return
	}

	result, err := h.promptUseCase.PurchasePrompt(c.Request.Context(), usecase.PurchaseRequest{
		PromptID:        id,
		BuyerID:         req.BuyerID,
		TransactionHash: req.TransactionHash,
	})
	if err != nil {
		respondError(c, h.logger, "process purchase", err)
		return
	}

	octas, err := entity.APTToOctas(result.Purchase.Price)
	if err != nil {
		respondError(c, h.logger, "process purchase", err)
		return
	}

	c.JSON(http.StatusOK, dto.PurchaseResponse{
		PromptPurchase: result.Purchase,
		PriceOctas:     octas,
		Duplicate:      result.Duplicate,
	})
}

// ListPurchases handles the GET /api/purchases endpoint
func (h *PromptHandler) ListPurchases(c *gin.Context) {
	buyerID, err := parseOptionalID(c, "userId", "purchase")
	if err != nil {
		respondError(c, h.logger, "fetch purchases", err)
		return
	}

	purchases, err := h.promptUseCase.ListPurchases(c.Request.Context(), buyerID)
	if err != nil {
		respondError(c, h.logger, "fetch purchases", err)
		return
	}
	c.JSON(http.StatusOK, purchases)
}
