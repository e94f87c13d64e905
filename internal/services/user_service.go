package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/minseokang/walkmate/internal/database"
	"github.com/minseokang/walkmate/internal/domain"
	"github.com/minseokang/walkmate/internal/repository"
)

type UserService struct {
	users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) RegisterUser(ctx context.Context, telegramID int64, username, firstName, lastName string) (*database.User, error) {
	user, err := s.users.GetOrCreateUser(ctx, telegramID, username, firstName, lastName)
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

func (s *UserService) SetEmail(ctx context.Context, userID uint, email string) error {
	return s.users.UpdateEmail(ctx, userID, email)
}

// Identity maps a stored user onto the identity the walk core consumes.
func Identity(user *database.User) *domain.Identity {
	if user == nil {
		return nil
	}
	return &domain.Identity{
		UID:   strconv.FormatUint(uint64(user.ID), 10),
		Email: user.Email,
	}
}
