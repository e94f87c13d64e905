package keyboards

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/minseokang/walkmate/internal/domain"
)

// MainMenu creates the main menu keyboard
func MainMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🐶 My Dogs", "my_dogs"),
			tgbotapi.NewInlineKeyboardButtonData("➕ Add Dog", "add_dog"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🚶 Start a Walk", "walk"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏆 Leaderboard", "leaderboard"),
			tgbotapi.NewInlineKeyboardButtonData("📖 My History", "history"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⚙️ Settings", "settings"),
		),
	)
}

// SettingsMenu creates the settings menu keyboard
func SettingsMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✉️ Set Contact Email", "set_email"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Main Menu", "main_menu"),
		),
	)
}

// GenderMenu asks for a dog's gender during registration
func GenderMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("♂️ Male", "dog_gender:male"),
			tgbotapi.NewInlineKeyboardButtonData("♀️ Female", "dog_gender:female"),
		),
	)
}

// PhotoMenu lets the owner skip the optional photo step
func PhotoMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏭️ Skip", "dog_photo_skip"),
		),
	)
}

// DogListMenu lists dogs with a per-dog callback prefix ("dog_info" or
// "walk_dog") so the same layout serves the detail and walk pickers.
func DogListMenu(dogs []domain.Dog, prefix string) tgbotapi.InlineKeyboardMarkup {
	keyboard := tgbotapi.NewInlineKeyboardMarkup()
	for _, dog := range dogs {
		keyboard.InlineKeyboard = append(keyboard.InlineKeyboard,
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(
					fmt.Sprintf("🐕 %s (%s)", dog.Name, dog.Breed),
					fmt.Sprintf("%s:%d", prefix, dog.ID),
				),
			),
		)
	}
	keyboard.InlineKeyboard = append(keyboard.InlineKeyboard,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Main Menu", "main_menu"),
		),
	)
	return keyboard
}

// DogCardMenu creates the per-dog actions keyboard
func DogCardMenu(dogID uint) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🚶 Walk", fmt.Sprintf("walk_dog:%d", dogID)),
			tgbotapi.NewInlineKeyboardButtonData("🗑️ Delete", fmt.Sprintf("dog_delete:%d", dogID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Back", "my_dogs"),
		),
	)
}

// HistoryMenu adds a delete button per private record
func HistoryMenu(records []domain.ActivityRecord) tgbotapi.InlineKeyboardMarkup {
	keyboard := tgbotapi.NewInlineKeyboardMarkup()
	for _, r := range records {
		keyboard.InlineKeyboard = append(keyboard.InlineKeyboard,
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(
					fmt.Sprintf("🗑️ %s, %s", r.DogName, r.Timestamp.Format("Jan 2 15:04")),
					fmt.Sprintf("history_del:%d", r.ID),
				),
			),
		)
	}
	keyboard.InlineKeyboard = append(keyboard.InlineKeyboard,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Main Menu", "main_menu"),
		),
	)
	return keyboard
}

// WalkMenu creates the walk session controls
func WalkMenu(running bool) tgbotapi.InlineKeyboardMarkup {
	toggle := tgbotapi.NewInlineKeyboardButtonData("▶️ Start", "walk_start")
	if running {
		toggle = tgbotapi.NewInlineKeyboardButtonData("⏸️ Pause", "walk_pause")
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			toggle,
			tgbotapi.NewInlineKeyboardButtonData("🔄 Reset", "walk_reset"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📍 Status", "walk_status"),
			tgbotapi.NewInlineKeyboardButtonData("💾 Save", "walk_save"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ End Walk", "walk_exit"),
		),
	)
}
