package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/service"
)

func (h *Handler) listProducts(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := make([]ProductResponse, len(products))
	for i := range products {
		resp[i] = productToResponse(products[i])
	}
	succeed(c, http.StatusOK, gin.H{"products": resp})
}

func (h *Handler) getProduct(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	succeed(c, http.StatusOK, gin.H{"product": productToResponse(*product)})
}

func (h *Handler) createProduct(c *gin.Context) {
	sess := currentSession(c)
	if !sess.Authenticated() {
		h.fail(c, service.ErrUnauthorized)
		return
	}
	var in service.ProductInput
	if !h.bind(c, &in) {
		return
	}

	if _, err := h.products.Create(c.Request.Context(), sess, in); err != nil {
		h.fail(c, err)
		return
	}
	succeed(c, http.StatusCreated, gin.H{"message": "Product created successfully"})
}

func (h *Handler) updateProduct(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	sess := currentSession(c)
	if !sess.Authenticated() {
		h.fail(c, service.ErrUnauthorized)
		return
	}
	var in service.ProductInput
	if !h.bind(c, &in) {
		return
	}

	if err := h.products.Update(c.Request.Context(), sess, id, in); err != nil {
		h.fail(c, err)
		return
	}
	succeed(c, http.StatusOK, gin.H{"message": "Product updated successfully"})
}

func (h *Handler) deleteProduct(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.products.Delete(c.Request.Context(), currentSession(c), id); err != nil {
		h.fail(c, err)
		return
	}
	succeed(c, http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
