package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/minseokang/walkmate/internal/bot/menus"
	"github.com/minseokang/walkmate/internal/bot/state"
	"github.com/minseokang/walkmate/internal/database"
	"github.com/minseokang/walkmate/internal/domain"
	"github.com/minseokang/walkmate/internal/logger"
	"github.com/minseokang/walkmate/internal/services"
)

// finishDogRegistration builds the dog from the collected form answers and
// saves it. It is shared by the photo step and the skip button; photoRef is
// empty when the owner skipped the photo.
func finishDogRegistration(ctx context.Context, api *tgbotapi.BotAPI, deps Dependencies, sm state.StateManager, chatID int64, user *database.User, photoRef string) error {
	dog := &domain.Dog{
		OwnerUID: services.Identity(user).UID,
		PhotoRef: photoRef,
	}

	fields := map[string]*string{
		"dog_name":   &dog.Name,
		"dog_breed":  &dog.Breed,
		"dog_age":    &dog.Age,
		"dog_weight": &dog.Weight,
	}
	for key, dst := range fields {
		value, ok := sm.GetTempData(user.TelegramID, key)
		if !ok {
			return restartDogRegistration(api, sm, chatID, user)
		}
		*dst, ok = value.(string)
		if !ok {
			return restartDogRegistration(api, sm, chatID, user)
		}
	}
	if gender, ok := sm.GetTempData(user.TelegramID, "dog_gender"); ok {
		if g, ok := gender.(string); ok {
			dog.Gender = domain.Gender(g)
		}
	}
	if dog.Gender == "" {
		return restartDogRegistration(api, sm, chatID, user)
	}

	saved, err := deps.DogService.AddDog(ctx, dog)
	if err != nil {
		logger.Error("Failed to save dog", "error", err, "user_id", user.ID)
		msg := tgbotapi.NewMessage(chatID, "Failed to save your dog. Please check the details and try again.")
		_, sendErr := api.Send(msg)
		return sendErr
	}

	sm.ClearTempData(user.TelegramID)
	sm.SetUserState(user.TelegramID, state.None)

	msg := tgbotapi.NewMessage(chatID, "✅ Dog saved!")
	if _, err := api.Send(msg); err != nil {
		return err
	}
	return menus.SendDogCard(api, chatID, saved,
		deps.DogService.WeightStatus(saved),
		deps.DogService.RecommendedWalkMinutes(saved))
}

// restartDogRegistration recovers from lost form state, e.g. a bot restart
// mid-flow with the in-memory state manager.
func restartDogRegistration(api *tgbotapi.BotAPI, sm state.StateManager, chatID int64, user *database.User) error {
	sm.ClearTempData(user.TelegramID)
	sm.SetUserState(user.TelegramID, state.WaitingForDogName)

	msg := tgbotapi.NewMessage(chatID, "Something went missing along the way. Let's start over. What is your dog's name?")
	_, err := api.Send(msg)
	return err
}
