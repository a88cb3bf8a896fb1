package services

import (
	"context"

	"campuscoffee/internal/adapters/persistence/repositories"
	"campuscoffee/internal/core/domain"
)

// UserService handles business logic for users
type UserService struct {
	*CrudService[domain.User]
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		CrudService: NewCrudService[domain.User](userRepo),
		userRepo:    userRepo,
	}
}

// GetByLoginName gets a user by their unique login name
func (s *UserService) GetByLoginName(ctx context.Context, loginName string) (domain.User, error) {
	return s.userRepo.GetByLoginName(ctx, loginName)
}
