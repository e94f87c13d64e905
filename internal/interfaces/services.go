package interfaces

import (
	"context"

	"github.com/minseokang/walkmate/internal/database"
	"github.com/minseokang/walkmate/internal/domain"
	"github.com/minseokang/walkmate/internal/walk"
)

// UserServiceInterface defines the contract for user operations
type UserServiceInterface interface {
	RegisterUser(ctx context.Context, telegramID int64, username, firstName, lastName string) (*database.User, error)
	SetEmail(ctx context.Context, userID uint, email string) error
}

// DogServiceInterface defines the contract for dog registration and lookup
type DogServiceInterface interface {
	AddDog(ctx context.Context, dog *domain.Dog) (*domain.Dog, error)
	ListDogs(ctx context.Context, ownerUID string) ([]domain.Dog, error)
	GetDog(ctx context.Context, ownerUID string, id uint) (*domain.Dog, error)
	DeleteDog(ctx context.Context, ownerUID string, id uint) error
	WeightStatus(dog *domain.Dog) walk.WeightStatus
	RecommendedWalkMinutes(dog *domain.Dog) int
}

// ActivityServiceInterface defines the contract for the session recorder
type ActivityServiceInterface interface {
	SaveActivity(ctx context.Context, identity *domain.Identity, dog *domain.Dog, snap walk.Snapshot) (*domain.ActivityRecord, error)
}

// LeaderboardServiceInterface defines the contract for the persisted views
type LeaderboardServiceInterface interface {
	Recent(ctx context.Context) ([]domain.ActivityRecord, error)
	UserHistory(ctx context.Context, identity *domain.Identity, days int) ([]domain.ActivityRecord, error)
	DeleteRecord(ctx context.Context, identity *domain.Identity, id uint) error
}
