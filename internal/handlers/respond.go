package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/assocamal/charity_mgmt_app/internal/apperrors"
	"github.com/assocamal/charity_mgmt_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// SuccessResponse is the envelope returned on success.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope returned on failure.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// respondData writes the success envelope with the given payload.
func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{Success: true, Data: data})
}

// respondError maps a service error to an HTTP status via the apperrors
// sentinels and writes the failure envelope. Unrecognized errors become a
// generic 500; their details are logged, not leaked.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var status int
	message := err.Error()
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		status = http.StatusConflict
	default:
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code < 500 {
			status = appErr.Code
			message = appErr.Message
			break
		}
		status = http.StatusInternalServerError
		message = "internal server error"
		logger.Error("Unhandled error in handler", slog.String("error", err.Error()))
	}

	c.JSON(status, ErrorResponse{Success: false, Message: message})
}

// respondBindError writes a 400 for a request binding failure.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: "Invalid request format: " + err.Error()})
}
