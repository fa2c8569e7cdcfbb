package components

import (
	"context"
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"squadbot/src/bot/components/access"
	"squadbot/src/bot/components/menu"
)

type Config struct {
	DB      *gorm.DB
	Redis   *redis.Client
	GroupID int64
}

// Handler dispatches incoming telegram updates. Each command invokes exactly
// one data-layer operation and renders its result as plain text.
type Handler struct {
	api         *tgbotapi.BotAPI
	config      Config
	rateLimiter *RateLimiter
	commands    map[string]access.HandlerFunc
}

func NewHandler(api *tgbotapi.BotAPI, config Config) *Handler {
	h := &Handler{
		api:         api,
		config:      config,
		rateLimiter: NewRateLimiter(3 * time.Second),
	}

	reply := h.reply
	adminOnly := func(next access.HandlerFunc) access.HandlerFunc {
		return access.AdminOnly(config.DB, reply, next)
	}

	h.commands = map[string]access.HandlerFunc{
		"start":       h.handleStart,
		"admin":       access.PrivateOnly(reply, adminOnly(h.handleAdmin)),
		"roster":      adminOnly(h.handleRoster),
		"kick":        adminOnly(h.handleKick),
		"warn":        adminOnly(h.handleWarn),
		"reserve":     adminOnly(h.handleReserve),
		"whois":       adminOnly(h.handleWhois),
		"callsign":    access.PrivateOnly(reply, h.handleCallsign),
		"bindtopic":   access.GroupOnly(config.GroupID, reply, adminOnly(h.handleBindTopic)),
		"renametopic": access.GroupOnly(config.GroupID, reply, adminOnly(h.handleRenameTopic)),
		"unbindtopic": access.GroupOnly(config.GroupID, reply, adminOnly(h.handleUnbindTopic)),
	}

	return h
}

func (h *Handler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		if err := h.handleCallback(ctx, update.CallbackQuery); err != nil {
			log.Printf("callback %q: %v", update.CallbackQuery.Data, err)
		}
	case update.Message != nil && update.Message.IsCommand():
		h.handleCommand(ctx, update.Message)
	}
}

func (h *Handler) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	handler, ok := h.commands[msg.Command()]
	if !ok {
		return
	}

	if !h.rateLimiter.CanUse(msg.From.ID) {
		wait := h.rateLimiter.TimeUntilNext(msg.From.ID)
		h.reply(msg.Chat.ID, fmt.Sprintf("Please wait %d seconds before the next command.",
			int(wait.Seconds())+1))
		return
	}

	if err := handler(msg); err != nil {
		log.Printf("command /%s: %v", msg.Command(), err)
		h.reply(msg.Chat.ID, "Something went wrong, try again later.")
	}
}

func (h *Handler) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) error {
	if cq.Message == nil {
		return nil
	}
	chatID := cq.Message.Chat.ID

	state, err := menu.GetState(ctx, h.config.Redis, chatID)
	if err != nil {
		return err
	}
	if state != menu.SelectingAction {
		_, err := h.api.Request(tgbotapi.NewCallback(cq.ID, "Menu expired, send /admin again."))
		return err
	}

	next, ok := menu.Next(cq.Data)
	if !ok {
		return nil
	}

	var text string
	switch next {
	case menu.ManageEvents:
		text = "Event management is a stub for now."
	case menu.ManageParticipants:
		text = "Participant management is a stub for now."
	case menu.End:
		text = "Menu closed."
	}

	if next == menu.End {
		if err := menu.ClearState(ctx, h.config.Redis, chatID); err != nil {
			return err
		}
	} else {
		if err := menu.SetState(ctx, h.config.Redis, chatID, next); err != nil {
			return err
		}
	}

	if _, err := h.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		return err
	}
	_, err = h.api.Send(tgbotapi.NewEditMessageText(chatID, cq.Message.MessageID, text))
	return err
}

func (h *Handler) reply(chatID int64, text string) {
	if _, err := h.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("send: %v", err)
	}
}
