package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/minseokang/walkmate/internal/bot/keyboards"
	"github.com/minseokang/walkmate/internal/bot/state"
	"github.com/minseokang/walkmate/internal/database"
	"github.com/minseokang/walkmate/internal/services"
)

// TextHandler handles text messages
type TextHandler struct {
	api          *tgbotapi.BotAPI
	deps         Dependencies
	stateManager state.StateManager
}

// NewTextHandler creates a new text handler
func NewTextHandler(api *tgbotapi.BotAPI, deps Dependencies, stateManager state.StateManager) *TextHandler {
	return &TextHandler{
		api:          api,
		deps:         deps,
		stateManager: stateManager,
	}
}

// Handle processes a text message
func (h *TextHandler) Handle(ctx context.Context, message *tgbotapi.Message, user *database.User) error {
	userState := h.stateManager.GetUserState(user.TelegramID)

	switch userState {
	case state.WaitingForDogName:
		return h.handleDogName(message, user)
	case state.WaitingForDogBreed:
		return h.handleDogBreed(message, user)
	case state.WaitingForDogAge:
		return h.handleDogAge(message, user)
	case state.WaitingForDogWeight:
		return h.handleDogWeight(message, user)
	case state.WaitingForEmail:
		return h.handleEmail(ctx, message, user)
	default:
		return h.handleDefaultText(message, user)
	}
}

// handleDogName handles the dog name input
func (h *TextHandler) handleDogName(message *tgbotapi.Message, user *database.User) error {
	name := strings.TrimSpace(message.Text)
	if name == "" {
		msg := tgbotapi.NewMessage(message.Chat.ID, "Please enter a name.")
		_, err := h.api.Send(msg)
		return err
	}

	h.stateManager.SetTempData(user.TelegramID, "dog_name", name)
	h.stateManager.SetUserState(user.TelegramID, state.WaitingForDogBreed)

	msg := tgbotapi.NewMessage(message.Chat.ID,
		fmt.Sprintf("What breed is %s? (for example: Labrador Retriever, Jindo, Shiba Inu)", name))
	_, err := h.api.Send(msg)
	return err
}

// handleDogBreed handles the breed input. Unrecognized breeds are accepted;
// the walk goal falls back to a default duration for them.
func (h *TextHandler) handleDogBreed(message *tgbotapi.Message, user *database.User) error {
	breed := strings.TrimSpace(message.Text)
	if breed == "" {
		msg := tgbotapi.NewMessage(message.Chat.ID, "Please enter a breed.")
		_, err := h.api.Send(msg)
		return err
	}

	h.stateManager.SetTempData(user.TelegramID, "dog_breed", breed)
	h.stateManager.SetUserState(user.TelegramID, state.None)

	text := "Is your dog male or female?"
	if _, ok := h.deps.Breeds.Lookup(breed); !ok {
		text = fmt.Sprintf("I don't have %q in my breed table, so I'll use a default walk goal.\n\n%s", breed, text)
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ReplyMarkup = keyboards.GenderMenu()
	_, err := h.api.Send(msg)
	return err
}

// handleDogAge handles the age input
func (h *TextHandler) handleDogAge(message *tgbotapi.Message, user *database.User) error {
	age := strings.TrimSpace(message.Text)
	if age == "" {
		msg := tgbotapi.NewMessage(message.Chat.ID, "Please enter an age in years.")
		_, err := h.api.Send(msg)
		return err
	}

	h.stateManager.SetTempData(user.TelegramID, "dog_age", age)
	h.stateManager.SetUserState(user.TelegramID, state.WaitingForDogWeight)

	msg := tgbotapi.NewMessage(message.Chat.ID, "What does your dog weigh, in pounds?")
	_, err := h.api.Send(msg)
	return err
}

// handleDogWeight handles the weight input and moves to the photo step
func (h *TextHandler) handleDogWeight(message *tgbotapi.Message, user *database.User) error {
	weight := strings.TrimSpace(message.Text)
	if weight == "" {
		msg := tgbotapi.NewMessage(message.Chat.ID, "Please enter a weight in pounds.")
		_, err := h.api.Send(msg)
		return err
	}

	h.stateManager.SetTempData(user.TelegramID, "dog_weight", weight)
	h.stateManager.SetUserState(user.TelegramID, state.WaitingForDogPhoto)

	msg := tgbotapi.NewMessage(message.Chat.ID, "Send a photo of your dog, or skip this step.")
	msg.ReplyMarkup = keyboards.PhotoMenu()
	_, err := h.api.Send(msg)
	return err
}

// handleEmail handles the contact email input
func (h *TextHandler) handleEmail(ctx context.Context, message *tgbotapi.Message, user *database.User) error {
	email := strings.TrimSpace(message.Text)
	if !strings.Contains(email, "@") {
		msg := tgbotapi.NewMessage(message.Chat.ID, "That doesn't look like an email address. Please try again.")
		_, err := h.api.Send(msg)
		return err
	}

	if err := h.deps.UserService.SetEmail(ctx, user.ID, email); err != nil {
		msg := tgbotapi.NewMessage(message.Chat.ID, "Failed to save your email. Please try again.")
		_, err := h.api.Send(msg)
		return err
	}

	h.stateManager.SetUserState(user.TelegramID, state.None)

	msg := tgbotapi.NewMessage(message.Chat.ID,
		fmt.Sprintf("✅ Email saved. You'll appear on the leaderboard as %q.", services.DisplayName(email)))
	_, err := h.api.Send(msg)
	return err
}

// handleDefaultText handles text when no specific state is set. During an
// active walk a bare number is a step count report.
func (h *TextHandler) handleDefaultText(message *tgbotapi.Message, user *database.User) error {
	if visit, ok := h.deps.Sessions.Get(user.TelegramID); ok {
		if steps, err := strconv.Atoi(strings.TrimSpace(message.Text)); err == nil && steps >= 0 {
			visit.source.Publish(steps)
			msg := tgbotapi.NewMessage(message.Chat.ID,
				fmt.Sprintf("👟 Step count updated: %d", visit.session.Snapshot().Steps))
			_, err := h.api.Send(msg)
			return err
		}
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, "Please use the menu to pick an action.")
	_, err := h.api.Send(msg)
	return err
}
