package middleware

import (
	"net/http"
	"time"

	"plumbing_estimator/pkg"
	"plumbing_estimator/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

// RequestLogger tags the request context with a request id and logs one line
// per request once the handler returns.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(HeaderRequestID, requestID)

		ctx := log.WithField(c.Request.Context(), "request_id", requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		ctx = log.WithFields(ctx, map[string]any{
			"method":     c.Request.Method,
			"path":       path,
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
		})

		switch {
		case status >= http.StatusInternalServerError:
			log.Error(ctx, "[http][middleware] request failed", lastError(c))
		case status >= http.StatusBadRequest:
			log.Warn(ctx, "[http][middleware] request rejected")
		default:
			log.Info(ctx, "[http][middleware] request handled")
		}
	}
}

// Recovery turns a panic into the generic internal error body.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error(log.WithField(c.Request.Context(), "panic", recovered), "[http][middleware] recovered from panic", nil)
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})
}

func lastError(c *gin.Context) error {
	if e := c.Errors.Last(); e != nil {
		return e.Err
	}
	return nil
}
