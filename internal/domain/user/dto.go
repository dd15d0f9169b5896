package user

import "github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/principal"

type RegisterRequest struct {
	Firstname string `json:"firstname" validate:"required,max=100"`
	Lastname  string `json:"lastname" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	Phone     string `json:"phone" validate:"omitempty,max=30"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	User        *User  `json:"user"`
}

// CreateRequest is used by staff to open employee or client accounts.
type CreateRequest struct {
	Firstname       string         `json:"firstname" validate:"required,max=100"`
	Lastname        string         `json:"lastname" validate:"required,max=100"`
	Email           string         `json:"email" validate:"required,email"`
	Password        string         `json:"password" validate:"required,min=8,max=72"`
	Phone           string         `json:"phone" validate:"omitempty,max=30"`
	Role            principal.Role `json:"role" validate:"required,oneof=administrator manager educator client"`
	EstablishmentID *int64         `json:"establishment_id" validate:"omitempty,gt=0"`
}

type UpdateRequest struct {
	Firstname       *string         `json:"firstname" validate:"omitempty,min=1,max=100"`
	Lastname        *string         `json:"lastname" validate:"omitempty,min=1,max=100"`
	Email           *string         `json:"email" validate:"omitempty,email"`
	Password        *string         `json:"password" validate:"omitempty,min=8,max=72"`
	Phone           *string         `json:"phone" validate:"omitempty,max=30"`
	Avatar          *string         `json:"avatar" validate:"omitempty,url"`
	Role            *principal.Role `json:"role" validate:"omitempty,oneof=administrator manager educator client"`
	EstablishmentID *int64          `json:"establishment_id" validate:"omitempty,gt=0"`
}
