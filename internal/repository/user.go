package repository

import (
	"context"
	"fmt"

	"github.com/minseokang/walkmate/internal/database"
	"gorm.io/gorm"
)

// UserRepository handles user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetOrCreateUser gets an existing user by Telegram ID or creates a new one
func (r *UserRepository) GetOrCreateUser(ctx context.Context, telegramID int64, username, firstName, lastName string) (*database.User, error) {
	user := &database.User{
		TelegramID: telegramID,
		Username:   username,
		FirstName:  firstName,
		LastName:   lastName,
	}

	result := r.db.WithContext(ctx).FirstOrCreate(user, database.User{TelegramID: telegramID})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get or create user: %w", result.Error)
	}

	return user, nil
}

// UpdateEmail sets the contact address used for display-name derivation
func (r *UserRepository) UpdateEmail(ctx context.Context, userID uint, email string) error {
	if err := r.db.WithContext(ctx).Model(&database.User{}).
		Where("id = ?", userID).
		Update("email", email).Error; err != nil {
		return fmt.Errorf("failed to update email: %w", err)
	}
	return nil
}
