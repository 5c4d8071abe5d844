package usecase

import (
	"context"
	"errors"

	"portfolio-api/internal/config"
	"portfolio-api/internal/pkg/token"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

type AuthUsecase interface {
	Login(ctx context.Context, username, password string) (access, refresh string, err error)
	Refresh(ctx context.Context, refreshToken string) (access, refresh string, err error)
}

// Auth authenticates the single configured admin identity.
type Auth struct {
	admin  config.AdminConfig
	tokens token.Service
}

func NewAuthUsecase(admin config.AdminConfig, tokens token.Service) *Auth {
	return &Auth{admin: admin, tokens: tokens}
}

func (u *Auth) Login(_ context.Context, username, password string) (string, string, error) {
	if username == "" || password == "" {
		return "", "", ErrUnauthorized
	}
	if username != u.admin.Username || u.admin.PasswordHash == "" {
		return "", "", ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.admin.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrUnauthorized
	}

	return u.issuePair(username)
}

func (u *Auth) Refresh(_ context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.tokens.Validate(refreshToken)
	if err != nil {
		if errors.Is(err, token.ErrExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if claims.TokenType != token.TypeRefresh || claims.Username != u.admin.Username {
		return "", "", ErrInvalidRefreshToken
	}

	return u.issuePair(claims.Username)
}

func (u *Auth) issuePair(username string) (string, string, error) {
	access, err := u.tokens.GenerateAccess(username)
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := u.tokens.GenerateRefresh(username)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}
