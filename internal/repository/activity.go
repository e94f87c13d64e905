package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/minseokang/walkmate/internal/database"
	"github.com/minseokang/walkmate/internal/domain"
	"gorm.io/gorm"
)

// ActivityRepository is the gorm-backed record store for activity records.
// It implements domain.ActivityStore: the private history and the public
// leaderboard are separate tables written by separate calls.
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// AddUserActivity writes a record to the owner's private history. The row's
// timestamp comes from the database default, not the client.
func (r *ActivityRepository) AddUserActivity(ctx context.Context, rec *domain.ActivityRecord) error {
	row := activityRow(rec)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create activity record: %w", err)
	}
	rec.ID = row.ID
	rec.Timestamp = row.Timestamp
	return nil
}

// AddLeaderboardEntry writes the equivalent record to the public collection.
func (r *ActivityRepository) AddLeaderboardEntry(ctx context.Context, rec *domain.ActivityRecord) error {
	row := &database.LeaderboardEntry{
		OwnerUID:    rec.OwnerUID,
		Username:    rec.Username,
		DogName:     rec.DogName,
		DogAge:      rec.DogAge,
		WalkedTime:  rec.WalkedTime,
		Steps:       rec.Steps,
		PhotoFileID: rec.PhotoRef,
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create leaderboard entry: %w", err)
	}
	return nil
}

// UserHistory returns the owner's private records inside a date range,
// newest first.
func (r *ActivityRepository) UserHistory(ctx context.Context, ownerUID string, start, end time.Time) ([]domain.ActivityRecord, error) {
	var rows []database.Activity
	if err := r.db.WithContext(ctx).
		Where("owner_uid = ? AND timestamp >= ? AND timestamp < ?", ownerUID, start, end).
		Order("timestamp DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get user history: %w", err)
	}

	records := make([]domain.ActivityRecord, 0, len(rows))
	for i := range rows {
		records = append(records, toDomainActivity(&rows[i]))
	}
	return records, nil
}

// Leaderboard returns the newest public entries up to limit.
func (r *ActivityRepository) Leaderboard(ctx context.Context, limit int) ([]domain.ActivityRecord, error) {
	var rows []database.LeaderboardEntry
	if err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	records := make([]domain.ActivityRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.ActivityRecord{
			ID:         row.ID,
			OwnerUID:   row.OwnerUID,
			Username:   row.Username,
			DogName:    row.DogName,
			DogAge:     row.DogAge,
			WalkedTime: row.WalkedTime,
			Steps:      row.Steps,
			PhotoRef:   row.PhotoFileID,
			Timestamp:  row.Timestamp,
		})
	}
	return records, nil
}

// DeleteUserActivity removes one private record, scoped to its owner. The
// public mirror is left in place.
func (r *ActivityRepository) DeleteUserActivity(ctx context.Context, ownerUID string, id uint) error {
	if err := r.db.WithContext(ctx).
		Where("owner_uid = ?", ownerUID).
		Delete(&database.Activity{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete activity record: %w", err)
	}
	return nil
}

func activityRow(rec *domain.ActivityRecord) *database.Activity {
	return &database.Activity{
		OwnerUID:    rec.OwnerUID,
		Username:    rec.Username,
		DogName:     rec.DogName,
		DogAge:      rec.DogAge,
		WalkedTime:  rec.WalkedTime,
		Steps:       rec.Steps,
		PhotoFileID: rec.PhotoRef,
	}
}

func toDomainActivity(row *database.Activity) domain.ActivityRecord {
	return domain.ActivityRecord{
		ID:         row.ID,
		OwnerUID:   row.OwnerUID,
		Username:   row.Username,
		DogName:    row.DogName,
		DogAge:     row.DogAge,
		WalkedTime: row.WalkedTime,
		Steps:      row.Steps,
		PhotoRef:   row.PhotoFileID,
		Timestamp:  row.Timestamp,
	}
}
