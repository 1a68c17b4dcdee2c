package handler

import (
	"context"
	"time"

	"weatherbot/internal/conversation"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Controller turns user events into replies
type Controller interface {
	Handle(ctx context.Context, ev conversation.Event) []conversation.Reply
}

// Handler connects telebot updates to the conversation controller
type Handler struct {
	bot        *tele.Bot
	controller Controller
	timeout    time.Duration
	logger     *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	controller Controller,
	timeout time.Duration,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:        bot,
		controller: controller,
		timeout:    timeout,
		logger:     logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.onCommand(conversation.CommandStart))
	h.bot.Handle("/favorites", h.onCommand(conversation.CommandFavorites))
	h.bot.Handle("/cancel", h.onCommand(conversation.CommandCancel))

	// Messages
	h.bot.Handle(tele.OnText, h.onUpdate)
	h.bot.Handle(tele.OnContact, h.onUpdate)
	h.bot.Handle(tele.OnLocation, h.onUpdate)

	// Inline buttons carry raw payloads, so everything arrives here
	h.bot.Handle(tele.OnCallback, h.onUpdate)
}

func (h *Handler) onCommand(name string) tele.HandlerFunc {
	return func(c tele.Context) error {
		ev, ok := toEvent(c)
		if !ok {
			return nil
		}
		ev.Kind = conversation.EventCommand
		ev.Command = name
		return h.dispatch(c, ev)
	}
}

func (h *Handler) onUpdate(c tele.Context) error {
	ev, ok := toEvent(c)
	if !ok {
		h.logger.Debug("Ignoring unsupported update", zap.Int("update_id", c.Update().ID))
		return nil
	}
	return h.dispatch(c, ev)
}

func (h *Handler) dispatch(c tele.Context, ev conversation.Event) error {
	ctx := context.Background()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	replies := h.controller.Handle(ctx, ev)
	return h.render(c, ev, replies)
}
