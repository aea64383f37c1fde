package middleware

import (
	"errors"
	"time"

	"tripplanner-api/internal/apperr"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code        int                 `json:"code" example:"3001"`
	Message     string              `json:"message" example:"No permission to access this trip"`
	Status      int                 `json:"status" example:"403"`
	Timestamp   time.Time           `json:"timestamp"`
	Path        string              `json:"path" example:"/api/trips/1"`
	FieldErrors []apperr.FieldError `json:"fieldErrors,omitempty"`
}

// NewErrorResponse maps an error onto the response body.
func NewErrorResponse(err error, path string) ErrorResponse {
	appErr := apperr.From(err)
	return ErrorResponse{
		Code:        appErr.Code.Code,
		Message:     appErr.Message(),
		Status:      appErr.Code.Status,
		Timestamp:   time.Now().UTC(),
		Path:        path,
		FieldErrors: appErr.Fields,
	}
}

// ErrorHandler renders the last error attached with c.Error once the chain
// has finished. Internal errors are logged with their cause.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		body := NewErrorResponse(err, c.Request.URL.Path)

		var appErr *apperr.Error
		if !errors.As(err, &appErr) || appErr.Code.Status >= 500 {
			logger.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Int("code", body.Code),
				zap.Error(err),
			)
		}

		c.JSON(body.Status, body)
	}
}

// Abort attaches err and stops the chain.
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
