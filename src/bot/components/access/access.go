// Package access gates command handlers on chat kind and admin rights.
package access

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"gorm.io/gorm"

	"squadbot/src/shared/db"
)

// HandlerFunc processes one incoming command message.
type HandlerFunc func(msg *tgbotapi.Message) error

// ReplyFunc is how a guard tells the user the command was refused.
type ReplyFunc func(chatID int64, text string)

// PrivateOnly runs the handler only in a direct chat with the bot.
func PrivateOnly(reply ReplyFunc, next HandlerFunc) HandlerFunc {
	return func(msg *tgbotapi.Message) error {
		if !msg.Chat.IsPrivate() {
			reply(msg.Chat.ID, "This command only works in a private chat with the bot.")
			return nil
		}
		return next(msg)
	}
}

// GroupOnly runs the handler only inside the configured squad group.
func GroupOnly(groupID int64, reply ReplyFunc, next HandlerFunc) HandlerFunc {
	return func(msg *tgbotapi.Message) error {
		if msg.Chat.ID != groupID {
			reply(msg.Chat.ID, "This command only works in the squad group.")
			return nil
		}
		return next(msg)
	}
}

// AdminOnly runs the handler only for registered admins. Unregistered senders
// are refused, not faulted.
func AdminOnly(gdb *gorm.DB, reply ReplyFunc, next HandlerFunc) HandlerFunc {
	return func(msg *tgbotapi.Message) error {
		admin, err := db.IsUserAdmin(gdb, msg.From.ID)
		if err != nil {
			return err
		}
		if !admin {
			reply(msg.Chat.ID, "You need admin rights for this command.")
			return nil
		}
		return next(msg)
	}
}
