package service

import (
	"context"
	"errors"

	"github.com/nathan/user-management-api/internal/domain"
	"github.com/nathan/user-management-api/internal/repository"
	"github.com/nathan/user-management-api/internal/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	userRepo repository.UserRepository
	tokens   *token.Manager
}

func NewAuthService(userRepo repository.UserRepository, tokens *token.Manager) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

type LoginResult struct {
	User  *domain.User
	Token string
}

// Login verifies the credentials and issues a token with the user's email
// as subject. Unknown emails and wrong passwords are indistinguishable to
// the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.Email)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Token: signed}, nil
}

// ResolveByEmail maps a verified token subject to the caller's principal
// for the duration of one request. Every authenticated user carries the
// same fixed authority.
func (s *AuthService) ResolveByEmail(ctx context.Context, email string) (*domain.Principal, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return &domain.Principal{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Authority: domain.AuthorityUser,
	}, nil
}
