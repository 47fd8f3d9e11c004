package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/service"
)

func (h *Handler) login(c *gin.Context) {
	var in service.LoginInput
	if !h.bind(c, &in) {
		return
	}

	sess, err := h.admins.Login(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.setSessionCookie(c, sess.Token, int(h.opts.SessionTTL.Seconds()))
	succeed(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"admin": gin.H{
			"id":       sess.AdminID,
			"username": sess.Username,
			"email":    sess.Email,
		},
	})
}

func (h *Handler) logout(c *gin.Context) {
	if token, err := c.Cookie(h.opts.CookieName); err == nil {
		if err := h.admins.Logout(c.Request.Context(), token); err != nil {
			h.logger.WithError(err).Warn("delete session")
		}
	}

	h.setSessionCookie(c, "", -1)
	succeed(c, http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *Handler) checkSession(c *gin.Context) {
	sess := currentSession(c)
	if !sess.Authenticated() {
		succeed(c, http.StatusOK, gin.H{"logged_in": false})
		return
	}
	succeed(c, http.StatusOK, gin.H{
		"logged_in": true,
		"admin": gin.H{
			"id":       sess.AdminID,
			"username": sess.Username,
		},
	})
}

func (h *Handler) listAdmins(c *gin.Context) {
	admins, err := h.admins.List(c.Request.Context(), currentSession(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := make([]AdminResponse, len(admins))
	for i := range admins {
		resp[i] = adminToResponse(admins[i])
	}
	succeed(c, http.StatusOK, gin.H{"admins": resp})
}

func (h *Handler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.opts.CookieName, value, maxAge, "/", "", h.opts.SecureCookie, true)
}
