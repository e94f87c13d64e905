package domain

import (
	"context"
	"time"
)

// ActivityStore is the narrow port onto the record store. The private history
// and the public leaderboard are independent collections; a dual write is two
// separate calls with no transaction between them.
type ActivityStore interface {
	AddUserActivity(ctx context.Context, rec *ActivityRecord) error
	AddLeaderboardEntry(ctx context.Context, rec *ActivityRecord) error
	UserHistory(ctx context.Context, ownerUID string, start, end time.Time) ([]ActivityRecord, error)
	Leaderboard(ctx context.Context, limit int) ([]ActivityRecord, error)
	DeleteUserActivity(ctx context.Context, ownerUID string, id uint) error
}

// StepSource is an external pedometer-like event source. It may be absent on
// a given device; absence is reported through IsAvailable, never as a panic.
type StepSource interface {
	IsAvailable() bool
	// Subscribe registers a callback for step events and returns a handle
	// that cancels the subscription. Each event carries the cumulative step
	// count observed by the source.
	Subscribe(fn func(steps int)) (unsubscribe func(), err error)
}

// NotificationSink delivers a user-facing message. Fire-and-forget: no
// acknowledgment, no blocking, failures are the sink's problem.
type NotificationSink interface {
	Deliver(title, body string)
}
