package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"datamarket/internal/auth"
	apperrors "datamarket/internal/errors"
	"datamarket/internal/model"
	"datamarket/internal/repository"
)

// AuthResult is returned by signup and login.
type AuthResult struct {
	Token string
	User  *model.User
}

// AuthService handles self-service signup and login.
type AuthService interface {
	Signup(ctx context.Context, in NewUserInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

type authService struct {
	repo   repository.UserRepository
	hasher auth.PasswordHasher
	tokens auth.TokenIssuer
}

// NewAuthService creates a new authentication service.
func NewAuthService(repo repository.UserRepository, hasher auth.PasswordHasher, tokens auth.TokenIssuer) AuthService {
	return &authService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
	}
}

// Signup checks the email is free, stores the user and issues a token.
func (s *authService) Signup(ctx context.Context, in NewUserInput) (*AuthResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByEmail(ctx, in.Email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	user, err := buildUser(s.hasher, in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, mapWriteError("create user", err)
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}

// Login verifies the password and issues a token.
func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, apperrors.ErrMissingCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := s.hasher.Compare(user.Password, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("compare password: %w", err)
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}
