package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/liveaevi/skincare-api/internal/events"
	"github.com/liveaevi/skincare-api/internal/hash"
	"github.com/liveaevi/skincare-api/internal/logging"
	"github.com/liveaevi/skincare-api/internal/models"
	"github.com/liveaevi/skincare-api/internal/repo"
	"github.com/liveaevi/skincare-api/internal/tokens"
)

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
	Producer  *events.Producer
}

// PublicUser is the user summary returned by signup and login. It never
// carries the password hash.
type PublicUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginResult struct {
	AccessToken string
	User        PublicUser
}

func (s *AuthService) Signup(ctx context.Context, username, email, password string) (*PublicUser, error) {
	l := logging.FromContext(ctx).With("svc", "auth.signup")

	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: missing required fields", ErrValidation)
	}

	taken, err := s.Repo.EmailTaken(ctx, email)
	if err != nil {
		l.Error("signup_failed", "reason", "email lookup error", "error", err)
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("signup_failed", "reason", "cannot hash password", "error", err)
		return nil, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: pwHash,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		l.Error("signup_failed", "reason", "cannot create user", "error", err)
		return nil, err
	}

	s.publish(ctx, user.ID, map[string]any{
		"type":     "user_registered",
		"user_id":  user.ID,
		"username": user.Username,
	})

	l.Info("signup_success", "user_id", user.ID)
	return &PublicUser{ID: user.ID, Username: user.Username, Email: user.Email}, nil
}

// Login verifies the credentials and issues a signed 24h access token. Both
// an unknown email and a wrong password come back as the same
// ErrInvalidCredentials so the response never says which one was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: missing email or password", ErrValidation)
	}

	user, err := s.Repo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		l.Error("login_failed", "reason", "user lookup error", "error", err)
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.Repo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		l.Error("login_failed", "reason", "cannot update last_login", "error", err)
		return nil, err
	}

	accessToken, err := tokens.SignAccessToken(user.ID, s.JWTSecret, now)
	if err != nil {
		l.Error("login_failed", "reason", "cannot sign token", "error", err)
		return nil, err
	}

	s.publish(ctx, user.ID, map[string]any{
		"type":     "user_logged_in",
		"user_id":  user.ID,
		"username": user.Username,
	})

	l.Info("login_success", "user_id", user.ID)
	return &LoginResult{
		AccessToken: accessToken,
		User:        PublicUser{ID: user.ID, Username: user.Username, Email: user.Email},
	}, nil
}

func (s *AuthService) publish(ctx context.Context, userID uint, event map[string]any) {
	if err := s.Producer.Publish(ctx, fmt.Sprint(userID), event); err != nil {
		logging.FromContext(ctx).Error("event publish error", "error", err)
	}
}
