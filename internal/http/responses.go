package http

import (
	"time"

	"storefront/internal/domain"
)

type UserResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at"`
}

type AdminResponse struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email,omitempty"`
	CreatedAt *string `json:"created_at,omitempty"`
}

func userToResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func productToResponse(product domain.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
		CreatedAt:   product.CreatedAt.Format(time.RFC3339),
	}
}

func adminToResponse(admin domain.Admin) AdminResponse {
	resp := AdminResponse{
		ID:       admin.ID,
		Username: admin.Username,
		Email:    admin.Email,
	}
	if !admin.CreatedAt.IsZero() {
		v := admin.CreatedAt.Format(time.RFC3339)
		resp.CreatedAt = &v
	}
	return resp
}
