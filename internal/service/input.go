package service

import (
	"math"
	"strconv"
	"strings"
)

// UserInput is the payload for user create and update. Nil fields were absent
// (or null) in the request.
type UserInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// ProductInput is the payload for product create and update. Price accepts a
// JSON number or a numeric string.
type ProductInput struct {
	Name        *string `json:"name"`
	Price       any     `json:"price"`
	Description *string `json:"description"`
}

// LoginInput carries admin credentials.
type LoginInput struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// AdminInput is used to register a new admin.
type AdminInput struct {
	Username string
	Password string
	Email    string
}

func (in UserInput) normalize() (name, email string, err error) {
	if in.Name == nil || in.Email == nil {
		return "", "", invalid("Name and email are required")
	}
	name = strings.TrimSpace(*in.Name)
	email = strings.TrimSpace(*in.Email)
	if name == "" {
		return "", "", invalid("Name and email are required")
	}
	if !validEmail(email) {
		return "", "", invalid("Invalid email format")
	}
	return name, email, nil
}

func (in ProductInput) normalize() (name string, price float64, description string, err error) {
	if in.Name == nil || in.Price == nil {
		return "", 0, "", invalid("Name and price are required")
	}
	name = strings.TrimSpace(*in.Name)
	if name == "" {
		return "", 0, "", invalid("Name and price are required")
	}

	price, err = parsePrice(in.Price)
	if err != nil {
		return "", 0, "", err
	}

	if in.Description != nil {
		description = strings.TrimSpace(*in.Description)
	}
	return name, price, description, nil
}

// validEmail is a lenient syntactic check, not an RFC 5322 validator.
func validEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

func parsePrice(v any) (float64, error) {
	var price float64
	switch p := v.(type) {
	case float64:
		price = p
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, invalid("Invalid price format")
		}
		price = parsed
	default:
		return 0, invalid("Invalid price format")
	}

	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, invalid("Invalid price format")
	}
	if price < 0 {
		return 0, invalid("Price cannot be negative")
	}
	// collapse -0
	return price + 0, nil
}
