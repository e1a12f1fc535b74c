package usecase

import (
	"errors"
	"strings"

	"genesis-backend/internal/auth/repository"
)

var (
	// ErrInvalidToken is returned when the presented token does not match
	// any active access token
	ErrInvalidToken = errors.New("invalid or inactive access token")
)

// Session describes an authenticated caller
type Session struct {
	TokenID string `json:"token_id"`
	Name    string `json:"name"`
}

// AuthUsecase defines the interface for token authentication
type AuthUsecase interface {
	// Login exchanges a raw access token for a session
	Login(token string) (*Session, error)

	// Validate checks a raw access token and returns the matching session
	Validate(token string) (*Session, error)
}

type authUsecase struct {
	tokens repository.AccessTokenRepository
}

// NewAuthUsecase creates a new AuthUsecase
func NewAuthUsecase(tokens repository.AccessTokenRepository) AuthUsecase {
	return &authUsecase{tokens: tokens}
}

func (u *authUsecase) Login(token string) (*Session, error) {
	session, err := u.Validate(token)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (u *authUsecase) Validate(token string) (*Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrInvalidToken
	}

	row, err := u.tokens.FindActiveByToken(token)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrInvalidToken
	}

	// Best effort, a failed stamp must not reject the caller
	_ = u.tokens.TouchLastUsed(row.ID)

	return &Session{TokenID: row.ID, Name: row.Name}, nil
}
