package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/internal/session"
)

const sessionContextKey = "storefront.session"

func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
			"client":  c.ClientIP(),
		})
		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("request")
		case status >= 400:
			entry.Warn("request")
		default:
			entry.Info("request")
		}
	}
}

// loadSession resolves the session cookie once per request. A store failure
// leaves the request anonymous.
func (h *Handler) loadSession(c *gin.Context) {
	token, err := c.Cookie(h.opts.CookieName)
	if err != nil || token == "" {
		c.Next()
		return
	}

	sess, err := h.admins.Resolve(c.Request.Context(), token)
	if err != nil {
		h.logger.WithError(err).Warn("resolve session")
	}
	if sess != nil {
		c.Set(sessionContextKey, sess)
	}
	c.Next()
}

// currentSession returns the caller's session, or nil when anonymous.
func currentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}
