package handlers

import (
	"context"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/minseokang/walkmate/internal/bot/keyboards"
	"github.com/minseokang/walkmate/internal/bot/menus"
	"github.com/minseokang/walkmate/internal/bot/state"
	"github.com/minseokang/walkmate/internal/database"
	"github.com/minseokang/walkmate/internal/domain"
	apperrors "github.com/minseokang/walkmate/internal/errors"
	"github.com/minseokang/walkmate/internal/logger"
	"github.com/minseokang/walkmate/internal/services"
	"github.com/minseokang/walkmate/internal/walk"
)

// CallbackHandler handles callback query messages
type CallbackHandler struct {
	api          *tgbotapi.BotAPI
	deps         Dependencies
	stateManager state.StateManager
}

// NewCallbackHandler creates a new callback handler
func NewCallbackHandler(api *tgbotapi.BotAPI, deps Dependencies, stateManager state.StateManager) *CallbackHandler {
	return &CallbackHandler{
		api:          api,
		deps:         deps,
		stateManager: stateManager,
	}
}

// Handle processes a callback query
func (h *CallbackHandler) Handle(ctx context.Context, query *tgbotapi.CallbackQuery, user *database.User) error {
	// Answer the callback query first
	callback := tgbotapi.NewCallback(query.ID, "")
	if _, err := h.api.Request(callback); err != nil {
		return err
	}

	chatID := query.Message.Chat.ID

	// Parameterized callbacks carry their argument after a colon
	if data, arg, found := strings.Cut(query.Data, ":"); found {
		switch data {
		case "dog_info":
			return h.handleDogInfo(ctx, chatID, user, arg)
		case "walk_dog":
			return h.handleWalkDog(ctx, chatID, user, arg)
		case "dog_delete":
			return h.handleDogDelete(ctx, chatID, user, arg)
		case "dog_gender":
			return h.handleDogGender(chatID, user, arg)
		case "history_del":
			return h.handleHistoryDelete(ctx, chatID, user, arg)
		}
	}

	switch query.Data {
	case "main_menu":
		return h.handleMainMenu(chatID, user)
	case "my_dogs":
		return h.handleMyDogs(ctx, chatID, user)
	case "add_dog":
		return h.handleAddDog(chatID, user)
	case "dog_photo_skip":
		return finishDogRegistration(ctx, h.api, h.deps, h.stateManager, chatID, user, "")
	case "walk":
		return h.handleWalkPicker(ctx, chatID, user)
	case "walk_start":
		return h.handleWalkStart(chatID, user)
	case "walk_pause":
		return h.handleWalkPause(chatID, user)
	case "walk_reset":
		return h.handleWalkReset(chatID, user)
	case "walk_status":
		return h.handleWalkStatus(chatID, user)
	case "walk_save":
		return h.handleWalkSave(ctx, chatID, user)
	case "walk_exit":
		return h.handleWalkExit(chatID, user)
	case "settings":
		return h.handleSettings(chatID)
	case "set_email":
		return h.handleSetEmail(chatID, user)
	case "leaderboard":
		return h.handleLeaderboard(ctx, chatID)
	case "history":
		return h.handleHistory(ctx, chatID, user)
	default:
		return h.handleUnknownCallback(chatID)
	}
}

// handleMainMenu handles main menu callback
func (h *CallbackHandler) handleMainMenu(chatID int64, user *database.User) error {
	h.stateManager.SetUserState(user.TelegramID, state.None)
	h.stateManager.ClearTempData(user.TelegramID)
	return menus.SendMainMenu(h.api, chatID)
}

// handleMyDogs lists the user's dogs with detail buttons
func (h *CallbackHandler) handleMyDogs(ctx context.Context, chatID int64, user *database.User) error {
	dogs, err := h.deps.DogService.ListDogs(ctx, services.Identity(user).UID)
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, "Failed to load your dogs. Please try again.")
		_, sendErr := h.api.Send(msg)
		return sendErr
	}
	return menus.SendDogList(h.api, chatID, dogs, "dog_info")
}

// handleAddDog starts the dog registration flow
func (h *CallbackHandler) handleAddDog(chatID int64, user *database.User) error {
	h.stateManager.ClearTempData(user.TelegramID)
	h.stateManager.SetUserState(user.TelegramID, state.WaitingForDogName)

	msg := tgbotapi.NewMessage(chatID, "What is your dog's name?")
	_, err := h.api.Send(msg)
	return err
}

// handleDogInfo shows one dog's card with weight status and walk goal
func (h *CallbackHandler) handleDogInfo(ctx context.Context, chatID int64, user *database.User, arg string) error {
	dog, err := h.lookupDog(ctx, chatID, user, arg)
	if err != nil || dog == nil {
		return err
	}
	return menus.SendDogCard(h.api, chatID, dog,
		h.deps.DogService.WeightStatus(dog),
		h.deps.DogService.RecommendedWalkMinutes(dog))
}

// handleDogDelete removes a dog and returns to the list
func (h *CallbackHandler) handleDogDelete(ctx context.Context, chatID int64, user *database.User, arg string) error {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return h.handleUnknownCallback(chatID)
	}

	if err := h.deps.DogService.DeleteDog(ctx, services.Identity(user).UID, uint(id)); err != nil {
		msg := tgbotapi.NewMessage(chatID, "Failed to delete the dog. Please try again.")
		_, sendErr := h.api.Send(msg)
		return sendErr
	}

	msg := tgbotapi.NewMessage(chatID, "🗑️ Dog removed.")
	if _, err := h.api.Send(msg); err != nil {
		return err
	}
	return h.handleMyDogs(ctx, chatID, user)
}

// handleDogGender records the gender choice and asks for age
func (h *CallbackHandler) handleDogGender(chatID int64, user *database.User, arg string) error {
	if arg != string(domain.GenderMale) && arg != string(domain.GenderFemale) {
		return h.handleUnknownCallback(chatID)
	}

	h.stateManager.SetTempData(user.TelegramID, "dog_gender", arg)
	h.stateManager.SetUserState(user.TelegramID, state.WaitingForDogAge)

	msg := tgbotapi.NewMessage(chatID, "How old is your dog, in years?")
	_, err := h.api.Send(msg)
	return err
}

// handleWalkPicker lists dogs to walk with
func (h *CallbackHandler) handleWalkPicker(ctx context.Context, chatID int64, user *database.User) error {
	dogs, err := h.deps.DogService.ListDogs(ctx, services.Identity(user).UID)
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, "Failed to load your dogs. Please try again.")
		_, sendErr := h.api.Send(msg)
		return sendErr
	}
	return menus.SendDogList(h.api, chatID, dogs, "walk_dog")
}

// handleWalkDog opens a fresh walk session for the chosen dog
func (h *CallbackHandler) handleWalkDog(ctx context.Context, chatID int64, user *database.User, arg string) error {
	dog, err := h.lookupDog(ctx, chatID, user, arg)
	if err != nil || dog == nil {
		return err
	}

	sink := newTelegramSink(h.api, chatID)
	visit := h.deps.Sessions.Begin(user.TelegramID, h.deps.Breeds, dog, sink)

	logger.Info("Walk session opened", "user_id", user.ID, "dog", dog.Name,
		"recommended_minutes", visit.session.RecommendedMinutes)
	return menus.SendWalkStatus(h.api, chatID, dog.Name, visit.session.Snapshot(), false)
}

// handleWalkStart resumes or starts the active session's timer
func (h *CallbackHandler) handleWalkStart(chatID int64, user *database.User) error {
	visit, ok := h.deps.Sessions.Get(user.TelegramID)
	if !ok {
		return h.handleNoActiveWalk(chatID)
	}
	visit.session.Start()
	return menus.SendWalkStatus(h.api, chatID, visit.dog.Name, visit.session.Snapshot(), true)
}

// handleWalkPause freezes the active session's timer
func (h *CallbackHandler) handleWalkPause(chatID int64, user *database.User) error {
	visit, ok := h.deps.Sessions.Get(user.TelegramID)
	if !ok {
		return h.handleNoActiveWalk(chatID)
	}
	visit.session.Pause()
	return menus.SendWalkStatus(h.api, chatID, visit.dog.Name, visit.session.Snapshot(), false)
}

// handleWalkReset zeroes the active session without closing it
func (h *CallbackHandler) handleWalkReset(chatID int64, user *database.User) error {
	visit, ok := h.deps.Sessions.Get(user.TelegramID)
	if !ok {
		return h.handleNoActiveWalk(chatID)
	}
	visit.session.Reset()
	return menus.SendWalkStatus(h.api, chatID, visit.dog.Name, visit.session.Snapshot(), false)
}

// handleWalkStatus re-sends the live walk view
func (h *CallbackHandler) handleWalkStatus(chatID int64, user *database.User) error {
	visit, ok := h.deps.Sessions.Get(user.TelegramID)
	if !ok {
		return h.handleNoActiveWalk(chatID)
	}
	running := visit.session.State() == walk.StateRunning
	return menus.SendWalkStatus(h.api, chatID, visit.dog.Name, visit.session.Snapshot(), running)
}

// handleWalkSave persists the session to the private history and the public
// leaderboard. The session stays open on failure so the owner can retry.
func (h *CallbackHandler) handleWalkSave(ctx context.Context, chatID int64, user *database.User) error {
	visit, ok := h.deps.Sessions.Get(user.TelegramID)
	if !ok {
		return h.handleNoActiveWalk(chatID)
	}

	visit.session.Pause()
	record, err := h.deps.ActivitySvc.SaveActivity(ctx, services.Identity(user), visit.dog, visit.session.Snapshot())
	if err != nil {
		logger.Error("Failed to save walk", "error", err, "user_id", user.ID)

		text := "Failed to save the walk. Please try again."
		if apperrors.IsType(err, apperrors.ErrorTypePartialWrite) {
			text = "Your walk is saved to your history, but publishing it to the leaderboard failed. Tap 💾 Save to retry."
		}
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ReplyMarkup = keyboards.WalkMenu(false)
		_, sendErr := h.api.Send(msg)
		return sendErr
	}

	h.deps.Sessions.End(user.TelegramID)

	msg := tgbotapi.NewMessage(chatID, "✅ Walk saved! "+
		visit.dog.Name+" walked "+strconv.FormatFloat(record.WalkedTime, 'f', 2, 64)+" minutes.")
	if _, err := h.api.Send(msg); err != nil {
		return err
	}
	return menus.SendMainMenu(h.api, chatID)
}

// handleWalkExit discards the active session
func (h *CallbackHandler) handleWalkExit(chatID int64, user *database.User) error {
	h.deps.Sessions.End(user.TelegramID)
	return menus.SendMainMenu(h.api, chatID)
}

// handleNoActiveWalk handles walk controls tapped outside a session
func (h *CallbackHandler) handleNoActiveWalk(chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, "No active walk. Tap 🚶 Start a Walk and pick a dog first.")
	msg.ReplyMarkup = keyboards.MainMenu()
	_, err := h.api.Send(msg)
	return err
}

// handleSettings handles settings callback
func (h *CallbackHandler) handleSettings(chatID int64) error {
	return menus.SendSettingsMenu(h.api, chatID)
}

// handleSetEmail asks for the contact address used for display names
func (h *CallbackHandler) handleSetEmail(chatID int64, user *database.User) error {
	h.stateManager.SetUserState(user.TelegramID, state.WaitingForEmail)

	msg := tgbotapi.NewMessage(chatID, "Enter your contact email. Its part before the @ becomes your public leaderboard name.")
	_, err := h.api.Send(msg)
	return err
}

// handleLeaderboard shows the newest public walk records
func (h *CallbackHandler) handleLeaderboard(ctx context.Context, chatID int64) error {
	records, err := h.deps.LeaderboardSvc.Recent(ctx)
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, "Failed to load the leaderboard. Please try again.")
		_, sendErr := h.api.Send(msg)
		return sendErr
	}
	return menus.SendLeaderboard(h.api, chatID, records)
}

// handleHistory shows the user's recent private walk records
func (h *CallbackHandler) handleHistory(ctx context.Context, chatID int64, user *database.User) error {
	records, err := h.deps.LeaderboardSvc.UserHistory(ctx, services.Identity(user), historyDays)
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, "Failed to load your walk history. Please try again.")
		_, sendErr := h.api.Send(msg)
		return sendErr
	}
	return menus.SendHistory(h.api, chatID, records, historyDays)
}

// handleHistoryDelete removes one private record and re-renders the history.
// The public leaderboard mirror is intentionally untouched.
func (h *CallbackHandler) handleHistoryDelete(ctx context.Context, chatID int64, user *database.User, arg string) error {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return h.handleUnknownCallback(chatID)
	}

	if err := h.deps.LeaderboardSvc.DeleteRecord(ctx, services.Identity(user), uint(id)); err != nil {
		msg := tgbotapi.NewMessage(chatID, "Failed to delete the record. Please try again.")
		_, sendErr := h.api.Send(msg)
		return sendErr
	}
	return h.handleHistory(ctx, chatID, user)
}

// lookupDog parses a dog id argument and fetches the dog, reporting failures
// to the chat. A nil dog with nil error means the failure was already reported.
func (h *CallbackHandler) lookupDog(ctx context.Context, chatID int64, user *database.User, arg string) (*domain.Dog, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return nil, h.handleUnknownCallback(chatID)
	}

	dog, err := h.deps.DogService.GetDog(ctx, services.Identity(user).UID, uint(id))
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, "Could not find that dog. It may have been removed.")
		_, sendErr := h.api.Send(msg)
		return nil, sendErr
	}
	return dog, nil
}

// handleUnknownCallback handles unknown callbacks
func (h *CallbackHandler) handleUnknownCallback(chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, "Unknown action. Use /start to open the menu.")
	_, err := h.api.Send(msg)
	return err
}
