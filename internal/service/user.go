package service

import (
	"context"
	"strings"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/logger"
	"shareit-backend/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(ctx context.Context, name, email string) (*domain.User, error) {
	if name == "" {
		return nil, domain.Validationf("user name is required")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	user := &domain.User{Name: name, Email: email}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	logger.Info("user created", "user_id", user.ID)
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) UpdateUser(ctx context.Context, id int32, upd domain.UserUpdate) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Email != nil {
		if err := validateEmail(*upd.Email); err != nil {
			return nil, err
		}
		user.Email = *upd.Email
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	logger.Info("user updated", "user_id", user.ID)
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int32) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("user deleted", "user_id", id)
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return domain.Validationf("user email is required")
	}
	if !strings.Contains(email, "@") {
		return domain.Validationf("invalid email: %s", email)
	}
	return nil
}
