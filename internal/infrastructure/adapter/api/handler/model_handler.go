package handler

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/ai-marketplace/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/core"
	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/ai-marketplace/internal/infrastructure/adapter/api/dto"
)

// modelFileField is the multipart field carrying the model artifact
const modelFileField = "modelFile"

// UploadOptions controls where model artifacts land
type UploadOptions struct {
	Dir      string
	MaxBytes int64
}

// ModelHandler handles model catalog and inference requests
type ModelHandler struct {
	modelUseCase usecase.ModelUseCase
	logger       coreport.Logger
	upload       UploadOptions
	topLimit     int
}

// NewModelHandler creates a new model handler instance
func NewModelHandler(
	modelUseCase usecase.ModelUseCase,
	logger coreport.Logger,
	upload UploadOptions,
	topLimit int,
) *ModelHandler {
	return &ModelHandler{
		modelUseCase: modelUseCase,
		logger:       logger,
		upload:       upload,
		topLimit:     topLimit,
	}
}

// ListModels handles the GET /api/models endpoint
func (h *ModelHandler) ListModels(c *gin.Context) {
	filter := entity.ModelFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	models, err := h.modelUseCase.ListModels(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, "fetch models", err)
		return
	}
	c.JSON(http.StatusOK, models)
}

// GetModel handles the GET /api/models/{id} endpoint
func (h *ModelHandler) GetModel(c *gin.Context) {
	id, err := parseID(c, "id", "model")
	if err != nil {
		respondError(c, h.logger, "fetch model", err)
		return
	}

	model, err := h.modelUseCase.GetModel(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "fetch model", err)
		return
	}
	c.JSON(http.StatusOK, model)
}

// TopModels handles the GET /api/models/top/{limit} endpoint
func (h *ModelHandler) TopModels(c *gin.Context) {
	limit := parseLimit(c.Param("limit"), h.topLimit)

	models, err := h.modelUseCase.TopModels(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.logger, "fetch top models", err)
		return
	}
	c.JSON(http.StatusOK, models)
}

// UploadModel handles the POST /api/models endpoint
func (h *ModelHandler) UploadModel(c *gin.Context) {
	if h.upload.MaxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.upload.MaxBytes)
	}

	var req dto.UploadModelRequest
	if err := c.ShouldBind(&req); err != nil {
		h.rejectUpload(c, err)
		return
	}

	if fileURL, err := h.saveModelFile(c); err != nil {
		h.rejectUpload(c, err)
		return
	} else if fileURL != "" {
		req.ModelFileURL = &fileURL
	}

	model, err := h.modelUseCase.UploadModel(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, h.logger, "create model", err)
		return
	}
	c.JSON(http.StatusOK, model)
}

// saveModelFile stores the optional multipart artifact under a random name and
// returns its public locator, or "" when no file was sent
func (h *ModelHandler) saveModelFile(c *gin.Context) (string, error) {
	if c.ContentType() != gin.MIMEMultipartPOSTForm {
		return "", nil
	}

	file, err := c.FormFile(modelFileField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}

	name := uuid.NewString()
	if err := c.SaveUploadedFile(file, filepath.Join(h.upload.Dir, name)); err != nil {
		return "", err
	}

	h.logger.Info("Model file stored", map[string]any{
		"file_name":     name,
		"original_name": file.Filename,
		"size_bytes":    file.Size,
	})
	return "/uploads/" + name, nil
}

func (h *ModelHandler) rejectUpload(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	// multipart parsing does not always keep the MaxBytesError in the chain
	if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
		c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{
			Code:    domainerr.CodeValidation,
			Message: "model file exceeds the upload limit",
		})
		return
	}
	respondError(c, h.logger, "create model", bindError("model", err))
}

// RunInference handles the POST /api/models/{id}/infer endpoint
func (h *ModelHandler) RunInference(c *gin.Context) {
	id, err := parseID(c, "id", "model")
	if err != nil {
		respondError(c, h.logger, "process inference", err)
		return
	}

	var req dto.InferenceRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, h.logger, "process inference", bindError("inference", err))
			return
		}
	}

	result, err := h.modelUseCase.RunInference(c.Request.Context(), usecase.InferenceRequest{
		ModelID: id,
		UserID:  req.UserID,
		Input:   req.Input,
	})
	if err != nil {
		respondError(c, h.logger, "process inference", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewInferenceResponse(result))
}

// ListInferences handles the GET /api/inferences endpoint
func (h *ModelHandler) ListInferences(c *gin.Context) {
	modelID, err := parseOptionalID(c, "modelId", "inference")
	if err != nil {
		respondError(c, h.logger, "fetch inferences", err)
		return
	}
	userID, err := parseOptionalID(c, "userId", "inference")
	if err != nil {
		respondError(c, h.logger, "fetch inferences", err)
		return
	}

	inferences, err := h.modelUseCase.ListInferences(c.Request.Context(), entity.InferenceFilter{
		ModelID: modelID,
		UserID:  userID,
	})
	if err != nil {
		respondError(c, h.logger, "fetch inferences", err)
		return
	}
	c.JSON(http.StatusOK, inferences)
}
