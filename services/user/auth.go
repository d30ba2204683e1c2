package user

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	userRepo "growlytics/database/repository/user"
	"growlytics/models"
	"growlytics/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Sessions outlive the JWT slightly so the cache, not clock skew, decides
// when a token dies.
const (
	tokenDuration   = 72 * time.Hour
	sessionDuration = tokenDuration + time.Hour
)

func sessionKey(userID, tokenHash string) string {
	return fmt.Sprintf("session:%s:%s", userID, tokenHash)
}

// StoreSession records a token hash in the auth cache. The auth
// middleware rejects tokens with no live session, which makes logout and
// account deletion take effect immediately.
func StoreSession(ctx context.Context, userID, token string) error {
	client := utils.GetAuthCacheClient()
	return client.Set(ctx, sessionKey(userID, utils.HashToken(token)), "1", sessionDuration).Err()
}

// SessionExists reports whether the token still has a live session.
func SessionExists(ctx context.Context, userID, token string) bool {
	client := utils.GetAuthCacheClient()
	n, err := client.Exists(ctx, sessionKey(userID, utils.HashToken(token))).Result()
	if err != nil {
		utils.GetLogger().Warn("session lookup failed", zap.String("userId", userID), zap.Error(err))
		return false
	}
	return n > 0
}

func (s *DefaultUserService) Register(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return nil, models.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, models.ValidationError{Field: "email", Reason: "must be a valid address"}
	}
	if len(password) < 8 {
		return nil, models.ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, userRepo.ErrNotFound) {
		utils.GetLogger().Error("register: email lookup failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("register: password hash failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now()
	u := models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		utils.GetLogger().Error("register: create failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueToken(ctx, u)
}

func (s *DefaultUserService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, fmt.Errorf("invalid email or password")
		}
		utils.GetLogger().Error("login: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("login failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueToken(ctx, *u)
}

func (s *DefaultUserService) issueToken(ctx context.Context, u models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, tokenDuration)
	if err != nil {
		utils.GetLogger().Error("token generation failed", zap.String("userId", u.ID), zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if err := StoreSession(ctx, u.ID, token); err != nil {
		utils.GetLogger().Error("session store failed", zap.String("userId", u.ID), zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{
		ID:    u.ID,
		Token: token,
		Name:  u.Name,
		Email: u.Email,
	}, nil
}

func (s *DefaultUserService) Logout(ctx context.Context, userID, token string) error {
	client := utils.GetAuthCacheClient()
	return client.Del(ctx, sessionKey(userID, utils.HashToken(token))).Err()
}

func (s *DefaultUserService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	return s.Repo.GetByID(ctx, userID)
}

func (s *DefaultUserService) UpdateFCMToken(ctx context.Context, userID, fcmToken string) error {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	u.FCMToken = fcmToken
	u.UpdatedAt = time.Now()
	return s.Repo.Update(ctx, *u)
}

// DeleteAccount removes the user record and wipes every live session.
func (s *DefaultUserService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.Repo.Delete(ctx, userID); err != nil {
		return err
	}

	client := utils.GetAuthCacheClient()
	iter := client.Scan(ctx, 0, sessionKey(userID, "*"), 0).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		utils.GetLogger().Warn("account delete: session sweep failed",
			zap.String("userId", userID), zap.Error(err))
	}
	return nil
}
