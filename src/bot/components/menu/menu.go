// Package menu holds the admin menu state machine. The menu itself is a
// skeleton: it offers event and participant management entry points and an
// end state, with per-chat state parked in redis so abandoned menus expire.
package menu

import (
	"context"
	"errors"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/redis/go-redis/v9"
)

// Conversation states.
const (
	SelectingAction    = "selecting_action"
	ManageEvents       = "manage_events"
	ManageParticipants = "manage_participants"
	End                = "end"
)

// Callback data carried by the inline keyboard buttons.
const (
	CallbackEvents       = "menu:events"
	CallbackParticipants = "menu:participants"
	CallbackClose        = "menu:close"
)

const (
	statePrefix = "menu:state:"
	stateTTL    = 15 * time.Minute
)

func stateKey(chatID int64) string {
	return fmt.Sprintf("%s%d", statePrefix, chatID)
}

// SetState stores the menu state for a chat.
func SetState(ctx context.Context, rdb *redis.Client, chatID int64, state string) error {
	return rdb.Set(ctx, stateKey(chatID), state, stateTTL).Err()
}

// GetState returns the stored state, or End when none is set.
func GetState(ctx context.Context, rdb *redis.Client, chatID int64) (string, error) {
	state, err := rdb.Get(ctx, stateKey(chatID)).Result()
	if errors.Is(err, redis.Nil) {
		return End, nil
	}
	if err != nil {
		return "", err
	}
	return state, nil
}

// ClearState drops the stored state for a chat.
func ClearState(ctx context.Context, rdb *redis.Client, chatID int64) error {
	return rdb.Del(ctx, stateKey(chatID)).Err()
}

// Keyboard builds the root admin menu.
func Keyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Events", CallbackEvents),
			tgbotapi.NewInlineKeyboardButtonData("Participants", CallbackParticipants),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Close", CallbackClose),
		),
	)
}

// Next maps callback data to the resulting state. The second return value is
// false for callbacks the menu does not know.
func Next(callback string) (string, bool) {
	switch callback {
	case CallbackEvents:
		return ManageEvents, true
	case CallbackParticipants:
		return ManageParticipants, true
	case CallbackClose:
		return End, true
	}
	return "", false
}
