package service

import (
	"github.com/nathan/user-management-api/internal/repository"
	"github.com/nathan/user-management-api/internal/token"
)

type Services struct {
	Auth *AuthService
	User *UserService
}

func NewServices(repos *repository.Repositories, tokens *token.Manager) *Services {
	return &Services{
		Auth: NewAuthService(repos.User, tokens),
		User: NewUserService(repos.User),
	}
}
