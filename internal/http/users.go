package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/service"
)

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = userToResponse(users[i])
	}
	succeed(c, http.StatusOK, gin.H{"users": resp})
}

func (h *Handler) getUser(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	succeed(c, http.StatusOK, gin.H{"user": userToResponse(*user)})
}

func (h *Handler) createUser(c *gin.Context) {
	var in service.UserInput
	if !h.bind(c, &in) {
		return
	}

	if _, err := h.users.Create(c.Request.Context(), in); err != nil {
		h.fail(c, err)
		return
	}
	succeed(c, http.StatusCreated, gin.H{"message": "User created successfully"})
}

func (h *Handler) updateUser(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var in service.UserInput
	if !h.bind(c, &in) {
		return
	}

	if err := h.users.Update(c.Request.Context(), id, in); err != nil {
		h.fail(c, err)
		return
	}
	succeed(c, http.StatusOK, gin.H{"message": "User updated successfully"})
}

func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	succeed(c, http.StatusOK, gin.H{"message": "User deleted successfully"})
}
