package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/minseokang/walkmate/internal/breeds"
	"github.com/minseokang/walkmate/internal/domain"
	apperrors "github.com/minseokang/walkmate/internal/errors"
	"github.com/minseokang/walkmate/internal/repository"
	"github.com/minseokang/walkmate/internal/walk"
)

// DogService handles dog registration and lookup. It validates form input
// before anything reaches the store; raw age/weight text is kept on the
// record, the classifier re-coerces when reading.
type DogService struct {
	dogs  *repository.DogRepository
	table *breeds.Table
}

func NewDogService(dogs *repository.DogRepository, table *breeds.Table) *DogService {
	return &DogService{dogs: dogs, table: table}
}

// AddDog validates and registers a dog.
func (s *DogService) AddDog(ctx context.Context, dog *domain.Dog) (*domain.Dog, error) {
	if err := s.validate(dog); err != nil {
		return nil, err
	}
	return s.dogs.AddDog(ctx, dog)
}

// ListDogs returns the owner's registered dogs.
func (s *DogService) ListDogs(ctx context.Context, ownerUID string) ([]domain.Dog, error) {
	return s.dogs.ListDogs(ctx, ownerUID)
}

// GetDog returns one of the owner's dogs.
func (s *DogService) GetDog(ctx context.Context, ownerUID string, id uint) (*domain.Dog, error) {
	return s.dogs.GetDog(ctx, ownerUID, id)
}

// DeleteDog removes one of the owner's dogs.
func (s *DogService) DeleteDog(ctx context.Context, ownerUID string, id uint) error {
	return s.dogs.DeleteDog(ctx, ownerUID, id)
}

// WeightStatus classifies one of the owner's dogs against its breed
// thresholds.
func (s *DogService) WeightStatus(dog *domain.Dog) walk.WeightStatus {
	return walk.ClassifyWeight(s.table, dog.Breed, dog.Gender, dog.Weight)
}

// RecommendedWalkMinutes returns the recommended walk duration for a dog.
func (s *DogService) RecommendedWalkMinutes(dog *domain.Dog) int {
	return walk.RecommendedWalkMinutes(s.table, dog.Breed, dog.Age)
}

func (s *DogService) validate(dog *domain.Dog) error {
	if dog.OwnerUID == "" {
		return apperrors.NewMissingContextError("no owner for dog")
	}
	if strings.TrimSpace(dog.Name) == "" {
		return apperrors.NewValidationError("dog name is required")
	}
	if strings.TrimSpace(dog.Breed) == "" {
		return apperrors.NewValidationError("breed is required")
	}
	if dog.Gender != domain.GenderMale && dog.Gender != domain.GenderFemale {
		return apperrors.NewValidationError("gender must be male or female")
	}
	if age, err := strconv.Atoi(strings.TrimSpace(dog.Age)); err != nil || age < 0 {
		return apperrors.NewValidationError("age must be a non-negative whole number")
	}
	if lbs, err := strconv.ParseFloat(strings.TrimSpace(dog.Weight), 64); err != nil || lbs <= 0 {
		return apperrors.NewValidationError("weight must be a positive number")
	}
	return nil
}
