// Package services contains the business rules between the HTTP layer and
// the repositories: registration and login, recipe ownership, rating rules
// and search.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/adergachev/recipevault/internal/common"
	"github.com/adergachev/recipevault/internal/cryptox"
	"github.com/adergachev/recipevault/internal/server/auth"
	"github.com/adergachev/recipevault/internal/server/models"
	"github.com/adergachev/recipevault/internal/server/repositories/users"
	"github.com/adergachev/recipevault/internal/shared"
)

const saltSize = 16

// LoginResult carries the issued token and its expiry in epoch seconds.
type LoginResult struct {
	AccessToken string
	ExpiresAt   int64
}

type UserService struct {
	repo      users.Repository
	authority *auth.Authority
}

func NewUserService(repo users.Repository, authority *auth.Authority) *UserService {
	return &UserService{repo: repo, authority: authority}
}

// Register creates a user with a fresh salt and password digest. Duplicate
// email or username surfaces as the corresponding sentinel error.
func (s *UserService) Register(ctx context.Context, email, userName, password string) (*models.User, error) {
	salt, err := shared.MakeRandByteArray(saltSize)
	if err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}

	user := &models.User{
		Email:        email,
		UserName:     userName,
		Salt:         salt,
		PasswordHash: cryptox.HashPassword(password, salt),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Authenticate resolves the login by username first, then email, and checks
// the password digest. Both unknown principal and wrong password collapse
// to ErrorUnauthorized.
func (s *UserService) Authenticate(ctx context.Context, login, password string) (*models.User, error) {
	user, err := s.repo.GetByUserName(ctx, login)
	if errors.Is(err, common.ErrorNotFound) {
		user, err = s.repo.GetByEmail(ctx, login)
	}
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !cryptox.VerifyPassword(password, user.Salt, user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}

	return user, nil
}

// Login authenticates and issues a session token.
func (s *UserService) Login(ctx context.Context, login, password string) (*LoginResult, error) {
	user, err := s.Authenticate(ctx, login, password)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.authority.Issue(user.ID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &LoginResult{AccessToken: token, ExpiresAt: expiresAt}, nil
}

// GetByID returns the user record for a verified session's user id.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Logout revokes the presented token.
func (s *UserService) Logout(ctx context.Context, token string) {
	s.authority.Revoke(token)
}
