package repository

import (
	"context"
	"fmt"

	"github.com/minseokang/walkmate/internal/database"
	"github.com/minseokang/walkmate/internal/domain"
	"gorm.io/gorm"
)

// DogRepository handles dog data operations
type DogRepository struct {
	db *gorm.DB
}

// NewDogRepository creates a new dog repository
func NewDogRepository(db *gorm.DB) *DogRepository {
	return &DogRepository{db: db}
}

// AddDog registers a dog under its owner
func (r *DogRepository) AddDog(ctx context.Context, dog *domain.Dog) (*domain.Dog, error) {
	row := &database.Dog{
		OwnerUID:    dog.OwnerUID,
		Name:        dog.Name,
		Breed:       dog.Breed,
		Gender:      string(dog.Gender),
		Age:         dog.Age,
		Weight:      dog.Weight,
		PhotoFileID: dog.PhotoRef,
	}

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, fmt.Errorf("failed to create dog: %w", err)
	}

	out := toDomainDog(row)
	return &out, nil
}

// ListDogs returns all dogs owned by a user, oldest first
func (r *DogRepository) ListDogs(ctx context.Context, ownerUID string) ([]domain.Dog, error) {
	var rows []database.Dog
	if err := r.db.WithContext(ctx).
		Where("owner_uid = ?", ownerUID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list dogs: %w", err)
	}

	dogs := make([]domain.Dog, 0, len(rows))
	for i := range rows {
		dogs = append(dogs, toDomainDog(&rows[i]))
	}
	return dogs, nil
}

// GetDog returns one dog, scoped to its owner
func (r *DogRepository) GetDog(ctx context.Context, ownerUID string, id uint) (*domain.Dog, error) {
	var row database.Dog
	if err := r.db.WithContext(ctx).
		Where("owner_uid = ?", ownerUID).
		First(&row, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get dog: %w", err)
	}

	out := toDomainDog(&row)
	return &out, nil
}

// DeleteDog removes a dog, scoped to its owner
func (r *DogRepository) DeleteDog(ctx context.Context, ownerUID string, id uint) error {
	if err := r.db.WithContext(ctx).
		Where("owner_uid = ?", ownerUID).
		Delete(&database.Dog{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete dog: %w", err)
	}
	return nil
}

func toDomainDog(row *database.Dog) domain.Dog {
	return domain.Dog{
		ID:        row.ID,
		OwnerUID:  row.OwnerUID,
		Name:      row.Name,
		Breed:     row.Breed,
		Gender:    domain.Gender(row.Gender),
		Age:       row.Age,
		Weight:    row.Weight,
		PhotoRef:  row.PhotoFileID,
		CreatedAt: row.CreatedAt,
	}
}
