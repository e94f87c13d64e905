package services

import (
	"context"
	"time"

	"github.com/minseokang/walkmate/internal/domain"
)

// defaultLeaderboardLimit bounds how many public entries a view pulls.
const defaultLeaderboardLimit = 20

// LeaderboardService reads the two persisted activity views: the public
// leaderboard and each user's private history.
type LeaderboardService struct {
	store domain.ActivityStore
}

func NewLeaderboardService(store domain.ActivityStore) *LeaderboardService {
	return &LeaderboardService{store: store}
}

// Recent returns the newest public entries.
func (s *LeaderboardService) Recent(ctx context.Context) ([]domain.ActivityRecord, error) {
	return s.store.Leaderboard(ctx, defaultLeaderboardLimit)
}

// UserHistory returns a user's private records for the trailing number of
// days, newest first.
func (s *LeaderboardService) UserHistory(ctx context.Context, identity *domain.Identity, days int) ([]domain.ActivityRecord, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)
	return s.store.UserHistory(ctx, identity.UID, start, end)
}

// DeleteRecord removes one private record.
func (s *LeaderboardService) DeleteRecord(ctx context.Context, identity *domain.Identity, id uint) error {
	return s.store.DeleteUserActivity(ctx, identity.UID, id)
}
