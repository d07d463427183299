package dto

import (
	"encoding/json"

	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/entity"
	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/usecase"
)

// UploadModelRequest represents the body of POST /api/models, either JSON or
// multipart form fields next to the optional modelFile part
type UploadModelRequest struct {
	Name              string  `json:"name" form:"name"`
	Description       string  `json:"description" form:"description"`
	Category          string  `json:"category" form:"category"`
	CreatorID         *uint64 `json:"creatorId" form:"creatorId"`
	PricePerInference string  `json:"pricePerInference" form:"pricePerInference"`
	ModelFileURL      *string `json:"modelFileUrl" form:"modelFileUrl"`
	StorageType       *string `json:"storageType" form:"storageType"`
}

// ToInput maps the request to the domain payload
func (r UploadModelRequest) ToInput() entity.AIModelInput {
	return entity.AIModelInput{
		Name:              r.Name,
		Description:       r.Description,
		Category:          r.Category,
		CreatorID:         r.CreatorID,
		PricePerInference: r.PricePerInference,
		ModelFileURL:      r.ModelFileURL,
		StorageType:       r.StorageType,
	}
}

// InferenceRequest represents the body of POST /api/models/:id/infer
type InferenceRequest struct {
	Input  json.RawMessage `json:"input"`
	UserID *uint64         `json:"userId"`
}

// InferenceResponse mirrors the simulated inference result
type InferenceResponse struct {
	Inference     *entity.ModelInference `json:"inference"`
	Output        json.RawMessage        `json:"output"`
	Cost          string                 `json:"cost"`
	ExecutionTime int64                  `json:"executionTime"`
}

// NewInferenceResponse builds the response from the use case result
func NewInferenceResponse(result *usecase.InferenceResult) InferenceResponse {
	return InferenceResponse{
		Inference:     result.Inference,
		Output:        result.Output,
		Cost:          result.Cost,
		ExecutionTime: result.ExecutionTimeMs,
	}
}
