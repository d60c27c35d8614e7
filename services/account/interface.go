// File: services/account/interface.go
package account

import (
	"context"

	clientRepo "agendly/database/repository/client"
	establishmentRepo "agendly/database/repository/establishment"
	userRepo "agendly/database/repository/user"
)

// RegisterRequest carries the sign-up form. Role picks which profile kind
// gets created alongside the account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

// AuthResponse is returned on successful register or login.
type AuthResponse struct {
	UserID    string `json:"userId"`
	ProfileID string `json:"profileId"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	Token     string `json:"token"`
}

// AccountService handles registration, login and token revocation.
type AccountService interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	Logout(ctx context.Context, userID string) error
}

// DefaultAccountService is the production implementation.
type DefaultAccountService struct {
	Repo       userRepo.UserRepository
	ClientRepo clientRepo.ClientRepository
	EstRepo    establishmentRepo.EstablishmentRepository
}
