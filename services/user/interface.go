package user

import (
	"context"

	userRepo "growlytics/database/repository/user"
	"growlytics/models"
)

// UserService handles accounts and authentication.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*AuthResponse, error)
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	// Logout revokes the session behind the given token.
	Logout(ctx context.Context, userID, token string) error
	GetByID(ctx context.Context, userID string) (*models.User, error)
	// UpdateFCMToken stores the device push token on the user record.
	UpdateFCMToken(ctx context.Context, userID, fcmToken string) error
	DeleteAccount(ctx context.Context, userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// AuthResponse carries the user's ID and a fresh bearer token.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
