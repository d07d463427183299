package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/ai-marketplace/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/core"
	"github.com/amirhossein-jamali/ai-marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/ai-marketplace/internal/infrastructure/adapter/api/middleware"
)

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrPaymentRejected):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error body for err. Server errors are logged and
// their details hidden from the client.
func respondError(c *gin.Context, logger coreport.Logger, action string, err error) {
	status := statusFor(err)
	message := err.Error()

	if status == http.StatusInternalServerError {
		logger.Error("Failed to "+action, map[string]any{
			"error":      err.Error(),
			"path":       c.Request.URL.Path,
			"request_id": c.GetString(middleware.RequestIDKey),
		})
		message = "Failed to " + action
	}

	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// parseID reads a positive numeric path parameter
func parseID(c *gin.Context, param, entity string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		return 0, domainerr.WrapValidationError(entity, param, domainerr.ErrInvalidID)
	}
	return id, nil
}

// parseOptionalID reads a numeric query parameter; absent means zero
func parseOptionalID(c *gin.Context, param, entity string) (uint64, error) {
	raw := c.Query(param)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, domainerr.WrapValidationError(entity, param, domainerr.ErrInvalidID)
	}
	return id, nil
}

// parseLimit reads a leaderboard limit from the leading integer of raw, so
// "5abc" is 5. Values without a leading integer and zero fall back to the
// default; negative values are passed on and yield an empty list.
func parseLimit(raw string, fallback int) int {
	raw = strings.TrimSpace(raw)

	end := 0
	if end < len(raw) && (raw[end] == '-' || raw[end] == '+') {
		end++
	}
	digits := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == digits {
		return fallback
	}

	limit, err := strconv.Atoi(raw[:end])
	if err != nil || limit == 0 {
		return fallback
	}
	return limit
}

// bindError wraps a request decoding failure as a validation error
func bindError(entity string, err error) error {
	return domainerr.NewValidationError(entity, "", "malformed request body: "+err.Error())
}
