package handlers

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/minseokang/walkmate/internal/breeds"
	"github.com/minseokang/walkmate/internal/domain"
	"github.com/minseokang/walkmate/internal/logger"
	"github.com/minseokang/walkmate/internal/pedometer"
	"github.com/minseokang/walkmate/internal/walk"
)

// walkVisit is one user's active walk screen: the session plus the manual
// step source feeding it.
type walkVisit struct {
	dog     *domain.Dog
	session *walk.Session
	source  *pedometer.ManualSource
}

// SessionRegistry tracks at most one active walk session per Telegram user.
// Beginning a new visit tears the previous one down, like a screen unmount.
type SessionRegistry struct {
	mu     sync.Mutex
	visits map[int64]*walkVisit
}

// NewSessionRegistry creates an empty registry
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{visits: make(map[int64]*walkVisit)}
}

// Begin replaces any active visit for the user with a fresh session for dog.
func (r *SessionRegistry) Begin(userID int64, table *breeds.Table, dog *domain.Dog, sink domain.NotificationSink) *walkVisit {
	source := pedometer.NewManualSource()
	visit := &walkVisit{
		dog:     dog,
		session: walk.NewSession(table, *dog, sink, source),
		source:  source,
	}

	r.mu.Lock()
	prev := r.visits[userID]
	r.visits[userID] = visit
	r.mu.Unlock()

	if prev != nil {
		prev.session.Close()
	}
	return visit
}

// Get returns the user's active visit, if any.
func (r *SessionRegistry) Get(userID int64) (*walkVisit, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	visit, ok := r.visits[userID]
	return visit, ok
}

// End closes and removes the user's active visit. Safe when none exists.
func (r *SessionRegistry) End(userID int64) {
	r.mu.Lock()
	visit := r.visits[userID]
	delete(r.visits, userID)
	r.mu.Unlock()

	if visit != nil {
		visit.session.Close()
	}
}

// telegramSink delivers progress alerts into the walk chat. Fire-and-forget:
// a send failure is logged and dropped.
type telegramSink struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func newTelegramSink(api *tgbotapi.BotAPI, chatID int64) *telegramSink {
	return &telegramSink{api: api, chatID: chatID}
}

func (s *telegramSink) Deliver(title, body string) {
	msg := tgbotapi.NewMessage(s.chatID, "🔔 "+title+"\n"+body)
	if _, err := s.api.Send(msg); err != nil {
		logger.Warn("Failed to deliver notification", "error", err, "chat_id", s.chatID)
	}
}
