package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/service"
)

func succeed(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

func failWith(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

func endpointNotFound(c *gin.Context) {
	failWith(c, http.StatusNotFound, "Endpoint not found")
}

// fail maps a gate or data-access error onto the envelope. Unclassified errors
// become 500 and keep their original message.
func (h *Handler) fail(c *gin.Context, err error) {
	var (
		verr *service.ValidationError
		nf   *service.NotFoundError
	)
	switch {
	case errors.As(err, &verr):
		failWith(c, http.StatusBadRequest, verr.Message)
	case errors.Is(err, service.ErrUnauthorized):
		failWith(c, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, service.ErrInvalidCredentials):
		failWith(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.As(err, &nf):
		failWith(c, http.StatusNotFound, nf.Error())
	default:
		h.logger.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
		failWith(c, http.StatusInternalServerError, err.Error())
	}
}

// bind decodes the JSON body. Malformed or mistyped payloads are rejected as
// validation errors.
func (h *Handler) bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		failWith(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
