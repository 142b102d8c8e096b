package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	apperrors "finsight/internal/errors"
	"finsight/internal/logger"
)

const exposeErrorsKey = "exposeErrors"

// ErrorBody is the JSON envelope of every error response.
type ErrorBody struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail is the inner error object of an error response. Detail carries
// the internal error text outside production.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details []apperrors.FieldError `json:"details,omitempty"`
	Detail  string                 `json:"detail,omitempty"`
}

// ErrorHandler returns a Gin middleware that recovers panics and converts
// errors set on the Gin context into consistent JSON error responses.
// Unexpected errors return a generic internal error; unless production is
// set, their text is included in error.detail.
func ErrorHandler(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(exposeErrorsKey, !production)

		defer func() {
			if r := recover(); r != nil {
				logger.Get().Errorw("panic recovered",
					"panic", r,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				)
				WriteError(c, fmt.Errorf("panic: %v", r))
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		// Process the last error (most relevant in a middleware chain)
		WriteError(c, c.Errors.Last().Err)
	}
}

// WriteError writes err as a JSON error response. AppErrors keep their
// status, code and message; anything else becomes INTERNAL_ERROR.
func WriteError(c *gin.Context, err error) {
	expose := c.GetBool(exposeErrorsKey)

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		body := ErrorBody{Error: ErrorDetail{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		}}
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"message", appErr.Message,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
			if expose && appErr.StatusCode >= http.StatusInternalServerError {
				body.Error.Detail = appErr.Internal.Error()
			}
		}
		c.JSON(appErr.StatusCode, body)
		return
	}

	// Unexpected error: log full details, return generic message
	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	body := ErrorBody{Error: ErrorDetail{
		Code:    apperrors.ErrInternalServer.Code,
		Message: apperrors.ErrInternalServer.Message,
	}}
	if expose {
		body.Error.Detail = err.Error()
	}
	c.JSON(apperrors.ErrInternalServer.StatusCode, body)
}
