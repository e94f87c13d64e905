package services

import (
	"context"
	"strings"

	"github.com/minseokang/walkmate/internal/domain"
	apperrors "github.com/minseokang/walkmate/internal/errors"
	"github.com/minseokang/walkmate/internal/logger"
	"github.com/minseokang/walkmate/internal/utils"
	"github.com/minseokang/walkmate/internal/walk"
)

// fallbackUsername is used when the identity carries no contact address.
const fallbackUsername = "unknown"

// ActivityService is the session recorder: it assembles an activity record
// from a finished walk session and performs the dual write to the record
// store. It holds no session state itself; on any failure the caller keeps
// the in-memory session so the save can be retried without re-walking.
type ActivityService struct {
	store domain.ActivityStore
}

// NewActivityService creates a new activity service
func NewActivityService(store domain.ActivityStore) *ActivityService {
	return &ActivityService{store: store}
}

// SaveActivity persists one walk session for a dog. The record goes to the
// owner's private history first, then to the public leaderboard as a second
// independent write. If the second write fails the private record stays; the
// distinct partial_write error lets the caller offer a retry.
func (s *ActivityService) SaveActivity(ctx context.Context, identity *domain.Identity, dog *domain.Dog, snap walk.Snapshot) (*domain.ActivityRecord, error) {
	if identity == nil || identity.UID == "" {
		return nil, apperrors.NewMissingContextError("no signed-in user")
	}
	if dog == nil || dog.OwnerUID == "" {
		return nil, apperrors.NewMissingContextError("no dog reference")
	}

	rec := &domain.ActivityRecord{
		OwnerUID:   identity.UID,
		Username:   DisplayName(identity.Email),
		DogName:    dog.Name,
		DogAge:     dog.Age,
		WalkedTime: utils.WalkedMinutes(snap.ElapsedSeconds),
		Steps:      snap.Steps,
		PhotoRef:   dog.PhotoRef,
	}

	if err := s.store.AddUserActivity(ctx, rec); err != nil {
		return nil, apperrors.NewStoreWriteError(err, "activity")
	}

	if err := s.store.AddLeaderboardEntry(ctx, rec); err != nil {
		// The private write already landed. Accepted inconsistency window:
		// no rollback, no automatic retry.
		return rec, apperrors.NewPartialWriteError(err).
			WithContext("private_record_id", rec.ID)
	}

	logger.Info("Activity saved",
		"owner_uid", rec.OwnerUID,
		"dog_name", rec.DogName,
		"walked_minutes", rec.WalkedTime,
		"steps", rec.Steps)
	return rec, nil
}

// DisplayName derives the public name shown on records from a contact
// address: the part before the separator, or a fixed placeholder when the
// address is absent.
func DisplayName(email string) string {
	if email == "" {
		return fallbackUsername
	}
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}
