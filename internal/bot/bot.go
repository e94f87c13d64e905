package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/minseokang/walkmate/internal/bot/handlers"
	"github.com/minseokang/walkmate/internal/bot/state"
	"github.com/minseokang/walkmate/internal/config"
	apperrors "github.com/minseokang/walkmate/internal/errors"
	"github.com/minseokang/walkmate/internal/logger"
)

// Bot wires the telegram API to the update handler chain.
type Bot struct {
	api          *tgbotapi.BotAPI
	handler      *handlers.UpdateHandler
	stateManager state.StateManager
	errHandler   *apperrors.Handler
}

// NewBot creates the bot and its handler chain. Conversational state lives in
// Redis when enabled, otherwise in memory.
func NewBot(cfg *config.Config, deps handlers.Dependencies) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	logger.Infof("Bot authorized on account %s", api.Self.UserName)

	var stateManager state.StateManager
	if cfg.Redis.Enabled {
		redisManager, err := state.NewRedisManager(cfg.Redis.Host, cfg.Redis.Port)
		if err != nil {
			logger.Warn("Redis unavailable, falling back to in-memory state", "error", err)
			stateManager = state.NewManager()
		} else {
			stateManager = redisManager
		}
	} else {
		stateManager = state.NewManager()
	}

	return &Bot{
		api:          api,
		handler:      handlers.NewUpdateHandler(api, deps, stateManager),
		stateManager: stateManager,
		errHandler:   apperrors.NewHandler(logger.GetLogger()),
	}, nil
}

// Start runs the long-polling update loop until the context is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	logger.Info("Bot is now listening for updates...")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Bot is shutting down...")
			b.api.StopReceivingUpdates()
			if closer, ok := b.stateManager.(interface{ Close() error }); ok {
				if err := closer.Close(); err != nil {
					logger.Warn("Failed to close state manager", "error", err)
				}
			}
			return ctx.Err()
		case update := <-updates:
			if update.Message != nil {
				logger.Debug("Received message", "user_id", update.Message.From.ID, "text", update.Message.Text)
			}
			if err := b.handler.Handle(ctx, update); err != nil {
				b.errHandler.Handle(ctx, err)
			}
		}
	}
}
