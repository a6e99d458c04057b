package middleware

import (
	"errors"
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the single place where application errors become HTTP
// responses. Handlers attach errors with c.Error and never write error
// bodies themselves.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, string(appErr.Kind))
				return
			}
			// Never expose internal error details to clients. Log the real
			// error server-side and send a generic message.
			logger.Log.Error("unhandled error", "path", c.FullPath(), "error", err)
			response.Error(c, http.StatusInternalServerError, "Internal Server Error", nil)
		}
	}
}
