package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minseokang/walkmate/internal/domain"
	apperrors "github.com/minseokang/walkmate/internal/errors"
	"github.com/minseokang/walkmate/internal/walk"
)

// fakeStore stands in for the record store and lets tests inject failures
// per collection.
type fakeStore struct {
	private        []domain.ActivityRecord
	public         []domain.ActivityRecord
	privateErr     error
	leaderboardErr error
}

func (f *fakeStore) AddUserActivity(ctx context.Context, rec *domain.ActivityRecord) error {
	if f.privateErr != nil {
		return f.privateErr
	}
	rec.ID = uint(len(f.private) + 1)
	rec.Timestamp = time.Now()
	f.private = append(f.private, *rec)
	return nil
}

func (f *fakeStore) AddLeaderboardEntry(ctx context.Context, rec *domain.ActivityRecord) error {
	if f.leaderboardErr != nil {
		return f.leaderboardErr
	}
	f.public = append(f.public, *rec)
	return nil
}

func (f *fakeStore) UserHistory(ctx context.Context, ownerUID string, start, end time.Time) ([]domain.ActivityRecord, error) {
	return f.private, nil
}

func (f *fakeStore) Leaderboard(ctx context.Context, limit int) ([]domain.ActivityRecord, error) {
	return f.public, nil
}

func (f *fakeStore) DeleteUserActivity(ctx context.Context, ownerUID string, id uint) error {
	return nil
}

func testIdentity() *domain.Identity {
	return &domain.Identity{UID: "7", Email: "minseo@example.com"}
}

func testWalkedDog() *domain.Dog {
	return &domain.Dog{
		ID:       3,
		OwnerUID: "7",
		Name:     "Rex",
		Breed:    "Labrador Retriever",
		Gender:   domain.GenderMale,
		Age:      "4",
		Weight:   "72",
	}
}

func testSnapshot() walk.Snapshot {
	return walk.Snapshot{ElapsedSeconds: 930, Steps: 1200, RecommendedMinutes: 60}
}

func TestSaveActivityNoIdentityWritesNothing(t *testing.T) {
	store := &fakeStore{}
	svc := NewActivityService(store)

	_, err := svc.SaveActivity(context.Background(), nil, testWalkedDog(), testSnapshot())
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeMissingContext))
	assert.Empty(t, store.private, "no record-store call may happen without an identity")
	assert.Empty(t, store.public)

	_, err = svc.SaveActivity(context.Background(), &domain.Identity{}, testWalkedDog(), testSnapshot())
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeMissingContext))
	assert.Empty(t, store.private)
}

func TestSaveActivityNoOwnerWritesNothing(t *testing.T) {
	store := &fakeStore{}
	svc := NewActivityService(store)

	dog := testWalkedDog()
	dog.OwnerUID = ""

	_, err := svc.SaveActivity(context.Background(), testIdentity(), dog, testSnapshot())
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeMissingContext))
	assert.Empty(t, store.private)
	assert.Empty(t, store.public)
}

func TestSaveActivityDualWrite(t *testing.T) {
	store := &fakeStore{}
	svc := NewActivityService(store)

	rec, err := svc.SaveActivity(context.Background(), testIdentity(), testWalkedDog(), testSnapshot())
	require.NoError(t, err)

	require.Len(t, store.private, 1)
	require.Len(t, store.public, 1)

	assert.Equal(t, "7", rec.OwnerUID)
	assert.Equal(t, "minseo", rec.Username, "display name is the part before the separator")
	assert.Equal(t, "Rex", rec.DogName)
	assert.Equal(t, "4", rec.DogAge)
	assert.Equal(t, 15.5, rec.WalkedTime, "930s is 15.50 minutes")
	assert.Equal(t, 1200, rec.Steps)

	// Both collections carry identical field values.
	assert.Equal(t, store.private[0].Username, store.public[0].Username)
	assert.Equal(t, store.private[0].WalkedTime, store.public[0].WalkedTime)
	assert.Equal(t, store.private[0].Steps, store.public[0].Steps)
}

func TestSaveActivityPartialWriteFailure(t *testing.T) {
	store := &fakeStore{leaderboardErr: errors.New("quota exceeded")}
	svc := NewActivityService(store)

	rec, err := svc.SaveActivity(context.Background(), testIdentity(), testWalkedDog(), testSnapshot())
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypePartialWrite),
		"leaderboard failure after a private success must surface as partial_write")

	assert.Len(t, store.private, 1, "exactly one record exists in the private collection")
	assert.Empty(t, store.public)
	assert.NotNil(t, rec, "the private record is reported so a retry path can be built")
}

func TestSaveActivityPrivateWriteFailure(t *testing.T) {
	store := &fakeStore{privateErr: errors.New("connection refused")}
	svc := NewActivityService(store)

	rec, err := svc.SaveActivity(context.Background(), testIdentity(), testWalkedDog(), testSnapshot())
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeStoreWrite))
	assert.Nil(t, rec)
	assert.Empty(t, store.private)
	assert.Empty(t, store.public, "second write must not start after the first fails")
}

func TestSaveActivityZeroSession(t *testing.T) {
	store := &fakeStore{}
	svc := NewActivityService(store)

	rec, err := svc.SaveActivity(context.Background(), testIdentity(), testWalkedDog(), walk.Snapshot{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, rec.WalkedTime)
	assert.Equal(t, 0, rec.Steps)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "minseo", DisplayName("minseo@example.com"))
	assert.Equal(t, "unknown", DisplayName(""))
	assert.Equal(t, "plainname", DisplayName("plainname"))
	assert.Equal(t, "", DisplayName("@example.com"))
}
