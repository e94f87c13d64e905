package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/minseokang/walkmate/internal/bot/menus"
	"github.com/minseokang/walkmate/internal/bot/state"
	"github.com/minseokang/walkmate/internal/database"
	"github.com/minseokang/walkmate/internal/logger"
	"github.com/minseokang/walkmate/internal/services"
)

// CommandHandler handles bot commands
type CommandHandler struct {
	api          *tgbotapi.BotAPI
	deps         Dependencies
	stateManager state.StateManager
}

// NewCommandHandler creates a new command handler
func NewCommandHandler(api *tgbotapi.BotAPI, deps Dependencies, stateManager state.StateManager) *CommandHandler {
	return &CommandHandler{
		api:          api,
		deps:         deps,
		stateManager: stateManager,
	}
}

// Handle processes a command message
func (h *CommandHandler) Handle(ctx context.Context, message *tgbotapi.Message, user *database.User) error {
	logger.Infof("Handling command %s from user %d", message.Command(), user.ID)

	switch message.Command() {
	case "start":
		h.stateManager.SetUserState(user.TelegramID, state.None)
		return menus.SendMainMenu(h.api, message.Chat.ID)
	case "walk":
		return h.handleWalk(ctx, message.Chat.ID, user)
	case "leaderboard":
		return h.handleLeaderboard(ctx, message.Chat.ID)
	case "history":
		return h.handleHistory(ctx, message.Chat.ID, user)
	case "help":
		return h.handleHelp(message.Chat.ID)
	default:
		return h.handleUnknownCommand(message.Chat.ID)
	}
}

// handleWalk shortcuts into the walk dog picker
func (h *CommandHandler) handleWalk(ctx context.Context, chatID int64, user *database.User) error {
	dogs, err := h.deps.DogService.ListDogs(ctx, services.Identity(user).UID)
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, "Failed to load your dogs. Please try again.")
		_, sendErr := h.api.Send(msg)
		return sendErr
	}
	return menus.SendDogList(h.api, chatID, dogs, "walk_dog")
}

// handleLeaderboard shows the newest public walk records
func (h *CommandHandler) handleLeaderboard(ctx context.Context, chatID int64) error {
	records, err := h.deps.LeaderboardSvc.Recent(ctx)
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, "Failed to load the leaderboard. Please try again.")
		_, sendErr := h.api.Send(msg)
		return sendErr
	}
	return menus.SendLeaderboard(h.api, chatID, records)
}

// handleHistory shows the user's recent private walk records
func (h *CommandHandler) handleHistory(ctx context.Context, chatID int64, user *database.User) error {
	records, err := h.deps.LeaderboardSvc.UserHistory(ctx, services.Identity(user), historyDays)
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, "Failed to load your walk history. Please try again.")
		_, sendErr := h.api.Send(msg)
		return sendErr
	}
	return menus.SendHistory(h.api, chatID, records, historyDays)
}

// handleHelp handles the /help command
func (h *CommandHandler) handleHelp(chatID int64) error {
	text := `Available commands:
/start - Show the main menu
/walk - Start a walk with one of your dogs
/leaderboard - Show recent public walks
/history - Show your saved walks
/help - Show this message

How a walk works:
1. Register your dog once with ➕ Add Dog
2. Tap 🚶 Start a Walk and pick a dog
3. The timer runs against the recommended duration for the dog's breed and age
4. You get an alert at 10%, 30%, 50%, 70% and 100% of the goal
5. Send a number at any time to report your step count
6. Tap 💾 Save to publish the walk to your history and the leaderboard`

	msg := tgbotapi.NewMessage(chatID, text)
	_, err := h.api.Send(msg)
	return err
}

// handleUnknownCommand handles unknown commands
func (h *CommandHandler) handleUnknownCommand(chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, "Unknown command. Use /help to see available commands.")
	_, err := h.api.Send(msg)
	return err
}
