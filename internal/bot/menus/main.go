package menus

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/minseokang/walkmate/internal/bot/keyboards"
	"github.com/minseokang/walkmate/internal/domain"
	"github.com/minseokang/walkmate/internal/utils"
	"github.com/minseokang/walkmate/internal/walk"
)

// SendMainMenu sends the main menu to a chat
func SendMainMenu(api *tgbotapi.BotAPI, chatID int64) error {
	text := `🐾 *WalkMate* — your dog walking companion

🚶 Track each walk against the recommended duration for your dog's breed and age
🔔 Get progress alerts at 10%, 30%, 50%, 70% and 100%
👟 Count steps along the way
🏆 Share finished walks on the public leaderboard

Pick an action:`

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboards.MainMenu()
	_, err := api.Send(msg)
	return err
}

// SendSettingsMenu sends the settings menu to a chat
func SendSettingsMenu(api *tgbotapi.BotAPI, chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, "Settings:")
	msg.ReplyMarkup = keyboards.SettingsMenu()
	_, err := api.Send(msg)
	return err
}

// SendDogList sends the owner's dogs with per-dog buttons
func SendDogList(api *tgbotapi.BotAPI, chatID int64, dogs []domain.Dog, prefix string) error {
	if len(dogs) == 0 {
		msg := tgbotapi.NewMessage(chatID, "No dog information saved. Tap ➕ Add Dog first.")
		msg.ReplyMarkup = keyboards.MainMenu()
		_, err := api.Send(msg)
		return err
	}

	msg := tgbotapi.NewMessage(chatID, "Your dogs:")
	msg.ReplyMarkup = keyboards.DogListMenu(dogs, prefix)
	_, err := api.Send(msg)
	return err
}

// SendDogCard sends one dog's detail view with its weight status and
// recommended walk duration
func SendDogCard(api *tgbotapi.BotAPI, chatID int64, dog *domain.Dog, status walk.WeightStatus, walkMinutes int) error {
	text := fmt.Sprintf(`🐕 *%s*

Breed: %s
Gender: %s
Age: %s years
Weight: %s lbs
Weight Status: %s
Recommended Walk: %d min`,
		dog.Name, dog.Breed, dog.Gender, dog.Age, dog.Weight, status, walkMinutes)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboards.DogCardMenu(dog.ID)
	_, err := api.Send(msg)
	return err
}

// SendWalkStatus sends the live walk view for a session
func SendWalkStatus(api *tgbotapi.BotAPI, chatID int64, dogName string, snap walk.Snapshot, running bool) error {
	steps := fmt.Sprintf("%d", snap.Steps)
	if !snap.StepsAvailable {
		steps = "n/a (no step source)"
	}

	text := fmt.Sprintf(`🚶 Walking *%s*

Recommended: %d min
Time Elapsed: %s
Steps Taken: %s

Send a number at any time to report your step count.`,
		dogName, snap.RecommendedMinutes, utils.FormatElapsed(snap.ElapsedSeconds), steps)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboards.WalkMenu(running)
	_, err := api.Send(msg)
	return err
}

// SendLeaderboard sends the newest public walk records
func SendLeaderboard(api *tgbotapi.BotAPI, chatID int64, records []domain.ActivityRecord) error {
	var text string
	if len(records) == 0 {
		text = "The leaderboard is empty. Save a walk to appear here!"
	} else {
		text = "🏆 Recent walks:\n\n"
		for i, r := range records {
			text += fmt.Sprintf("%d. %s walked %s — %.2f min, %d steps (%s)\n",
				i+1, r.Username, r.DogName, r.WalkedTime, r.Steps,
				r.Timestamp.Format("Jan 2 15:04"))
		}
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboards.MainMenu()
	_, err := api.Send(msg)
	return err
}

// SendHistory sends the user's private walk records
func SendHistory(api *tgbotapi.BotAPI, chatID int64, records []domain.ActivityRecord, days int) error {
	if len(records) == 0 {
		msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("No walks saved in the last %d days.", days))
		msg.ReplyMarkup = keyboards.MainMenu()
		_, err := api.Send(msg)
		return err
	}

	text := fmt.Sprintf("📖 Your walks (last %d days):\n\n", days)
	for _, r := range records {
		text += fmt.Sprintf("• %s — %.2f min, %d steps (%s)\n",
			r.DogName, r.WalkedTime, r.Steps, r.Timestamp.Format("Jan 2 15:04"))
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboards.HistoryMenu(records)
	_, err := api.Send(msg)
	return err
}
