package components

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"squadbot/src/bot/components/menu"
	"squadbot/src/shared/db"
)

func (h *Handler) handleStart(msg *tgbotapi.Message) error {
	name := msg.From.FirstName
	if name == "" {
		name = msg.From.UserName
	}
	h.reply(msg.Chat.ID, fmt.Sprintf("Hello, %s. Send /admin in a private chat to manage the squad.", name))
	return nil
}

func (h *Handler) handleAdmin(msg *tgbotapi.Message) error {
	if err := menu.SetState(context.Background(), h.config.Redis, msg.Chat.ID, menu.SelectingAction); err != nil {
		return err
	}

	out := tgbotapi.NewMessage(msg.Chat.ID, "What do you want to manage?")
	out.ReplyMarkup = menu.Keyboard()
	_, err := h.api.Send(out)
	return err
}

// handleRoster registers the listed telegram ids. Already known ids are
// skipped by the data layer.
func (h *Handler) handleRoster(msg *tgbotapi.Message) error {
	fields := strings.Fields(msg.CommandArguments())
	if len(fields) == 0 {
		h.reply(msg.Chat.ID, "Usage: /roster <telegram_id> [telegram_id ...]")
		return nil
	}

	ids := make([]int64, 0, len(fields))
	for _, f := range fields {
		id, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			h.reply(msg.Chat.ID, fmt.Sprintf("%q is not a telegram id.", f))
			return nil
		}
		ids = append(ids, id)
	}

	added, err := db.AddUsers(h.config.DB, ids)
	if err != nil {
		return err
	}
	h.reply(msg.Chat.ID, fmt.Sprintf("Registered %d new member(s), %d already known.",
		len(added), len(ids)-len(added)))
	return nil
}

func (h *Handler) handleKick(msg *tgbotapi.Message) error {
	id, ok := h.singleIDArg(msg, "Usage: /kick <telegram_id>")
	if !ok {
		return nil
	}

	err := db.DeleteUser(h.config.DB, id)
	if errors.Is(err, db.ErrNotFound) {
		h.reply(msg.Chat.ID, "No such member.")
		return nil
	}
	if err != nil {
		return err
	}
	h.reply(msg.Chat.ID, "Member removed, their polls went with them.")
	return nil
}

func (h *Handler) handleWarn(msg *tgbotapi.Message) error {
	fields := strings.Fields(msg.CommandArguments())
	if len(fields) != 2 {
		h.reply(msg.Chat.ID, "Usage: /warn <telegram_id> <count>")
		return nil
	}
	id, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		h.reply(msg.Chat.ID, fmt.Sprintf("%q is not a telegram id.", fields[0]))
		return nil
	}
	count, err := strconv.Atoi(fields[1])
	if err != nil {
		h.reply(msg.Chat.ID, fmt.Sprintf("%q is not a warn count.", fields[1]))
		return nil
	}

	user, err := db.UpdateWarn(h.config.DB, id, count)
	if errors.Is(err, db.ErrNotFound) {
		h.reply(msg.Chat.ID, "No such member.")
		return nil
	}
	if err != nil {
		return err
	}
	h.reply(msg.Chat.ID, fmt.Sprintf("Member %d now has %d warning(s).", user.TelegramID, user.Warn))
	return nil
}

func (h *Handler) handleReserve(msg *tgbotapi.Message) error {
	id, ok := h.singleIDArg(msg, "Usage: /reserve <telegram_id>")
	if !ok {
		return nil
	}

	user, err := db.UpdateReserved(h.config.DB, id)
	if errors.Is(err, db.ErrNotFound) {
		h.reply(msg.Chat.ID, "No such member.")
		return nil
	}
	if err != nil {
		return err
	}

	status := "active roster"
	if user.Reserved {
		status = "reserve"
	}
	h.reply(msg.Chat.ID, fmt.Sprintf("Member %d moved to the %s.", user.TelegramID, status))
	return nil
}

func (h *Handler) handleWhois(msg *tgbotapi.Message) error {
	id, ok := h.singleIDArg(msg, "Usage: /whois <telegram_id>")
	if !ok {
		return nil
	}

	user, err := db.GetUserInfo(h.config.DB, id)
	if errors.Is(err, db.ErrNotFound) {
		h.reply(msg.Chat.ID, "No such member.")
		return nil
	}
	if err != nil {
		return err
	}

	callsign := "not set"
	if user.Callsign != nil {
		callsign = *user.Callsign
	}
	h.reply(msg.Chat.ID, fmt.Sprintf(
		"Member %d\nCallsign: %s\nAdmin: %t\nReserved: %t\nWarnings: %d",
		user.TelegramID, callsign, user.Admin, user.Reserved, user.Warn))
	return nil
}

func (h *Handler) handleCallsign(msg *tgbotapi.Message) error {
	callsign := strings.TrimSpace(msg.CommandArguments())
	if callsign == "" {
		h.reply(msg.Chat.ID, "Usage: /callsign <name>")
		return nil
	}

	user, err := db.UpdateCallsign(h.config.DB, msg.From.ID, callsign)
	switch {
	case errors.Is(err, db.ErrConflict):
		h.reply(msg.Chat.ID, "That callsign is already taken.")
		return nil
	case errors.Is(err, db.ErrNotFound):
		h.reply(msg.Chat.ID, "You are not on the roster yet, ask an admin for /roster.")
		return nil
	case err != nil:
		return err
	}

	h.reply(msg.Chat.ID, fmt.Sprintf("You are now %q.", *user.Callsign))
	return nil
}

func (h *Handler) handleBindTopic(msg *tgbotapi.Message) error {
	fields := strings.SplitN(strings.TrimSpace(msg.CommandArguments()), " ", 2)
	if len(fields) != 2 {
		h.reply(msg.Chat.ID, "Usage: /bindtopic <topic_id> <name>")
		return nil
	}
	topicID, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		h.reply(msg.Chat.ID, fmt.Sprintf("%q is not a topic id.", fields[0]))
		return nil
	}

	topic, err := db.CreateTopic(h.config.DB, topicID, fields[1])
	if err != nil {
		return err
	}
	h.reply(msg.Chat.ID, fmt.Sprintf("Topic %d bound as %q.", topic.TopicID, topic.TopicName))
	return nil
}

func (h *Handler) handleRenameTopic(msg *tgbotapi.Message) error {
	fields := strings.SplitN(strings.TrimSpace(msg.CommandArguments()), " ", 2)
	if len(fields) != 2 {
		h.reply(msg.Chat.ID, "Usage: /renametopic <topic_id> <name>")
		return nil
	}
	topicID, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		h.reply(msg.Chat.ID, fmt.Sprintf("%q is not a topic id.", fields[0]))
		return nil
	}

	err = db.RenameTopic(h.config.DB, topicID, fields[1])
	if errors.Is(err, db.ErrNotFound) {
		h.reply(msg.Chat.ID, "No such topic.")
		return nil
	}
	if err != nil {
		return err
	}
	h.reply(msg.Chat.ID, fmt.Sprintf("Topic %d renamed to %q.", topicID, fields[1]))
	return nil
}

func (h *Handler) handleUnbindTopic(msg *tgbotapi.Message) error {
	id, ok := h.singleIDArg(msg, "Usage: /unbindtopic <topic_id>")
	if !ok {
		return nil
	}

	err := db.DeleteTopic(h.config.DB, id)
	if errors.Is(err, db.ErrNotFound) {
		h.reply(msg.Chat.ID, "No such topic.")
		return nil
	}
	if err != nil {
		return err
	}
	h.reply(msg.Chat.ID, fmt.Sprintf("Topic %d unbound. Its events stay scheduled.", id))
	return nil
}

func (h *Handler) singleIDArg(msg *tgbotapi.Message, usage string) (int64, bool) {
	fields := strings.Fields(msg.CommandArguments())
	if len(fields) != 1 {
		h.reply(msg.Chat.ID, usage)
		return 0, false
	}
	id, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		h.reply(msg.Chat.ID, fmt.Sprintf("%q is not a telegram id.", fields[0]))
		return 0, false
	}
	return id, true
}
