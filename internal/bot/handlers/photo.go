package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/minseokang/walkmate/internal/bot/state"
	"github.com/minseokang/walkmate/internal/database"
)

// PhotoHandler handles photo messages
type PhotoHandler struct {
	api          *tgbotapi.BotAPI
	deps         Dependencies
	stateManager state.StateManager
}

// NewPhotoHandler creates a new photo handler
func NewPhotoHandler(api *tgbotapi.BotAPI, deps Dependencies, stateManager state.StateManager) *PhotoHandler {
	return &PhotoHandler{
		api:          api,
		deps:         deps,
		stateManager: stateManager,
	}
}

// Handle processes a photo message. Photos only matter during the last step
// of dog registration; the largest size's file id becomes the dog's photo
// reference.
func (h *PhotoHandler) Handle(ctx context.Context, message *tgbotapi.Message, user *database.User) error {
	if h.stateManager.GetUserState(user.TelegramID) != state.WaitingForDogPhoto {
		msg := tgbotapi.NewMessage(message.Chat.ID, "Please use the menu to pick an action.")
		_, err := h.api.Send(msg)
		return err
	}

	photo := message.Photo[len(message.Photo)-1]
	return finishDogRegistration(ctx, h.api, h.deps, h.stateManager, message.Chat.ID, user, photo.FileID)
}
