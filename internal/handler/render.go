package handler

import (
	"strconv"

	"weatherbot/internal/conversation"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// render performs the replies in order. Sending a message is required, while
// callback answers and caption edits are best-effort and only logged.
func (h *Handler) render(c tele.Context, ev conversation.Event, replies []conversation.Reply) error {
	var firstErr error
	fail := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	for _, reply := range replies {
		switch r := reply.(type) {
		case conversation.SendText:
			opts := []interface{}{}
			if r.Markdown {
				opts = append(opts, tele.ModeMarkdownV2)
			}
			if m := markup(r.Keyboard); m != nil {
				opts = append(opts, m)
			}
			fail(c.Send(r.Text, opts...))

		case conversation.SendPhoto:
			photo := &tele.Photo{File: tele.FromURL(r.PhotoURL), Caption: r.Caption}
			opts := []interface{}{tele.ModeMarkdownV2}
			if m := markup(r.Keyboard); m != nil {
				opts = append(opts, m)
			}
			fail(c.Send(photo, opts...))

		case conversation.EditCaption:
			msg := tele.StoredMessage{
				MessageID: strconv.Itoa(r.Message.MessageID),
				ChatID:    r.Message.ChatID,
			}
			opts := []interface{}{tele.ModeMarkdownV2}
			if m := markup(r.Keyboard); m != nil {
				opts = append(opts, m)
			}
			_, err := h.bot.EditCaption(msg, r.Caption, opts...)
			h.handleEditError(err, ev.UserID)

		case conversation.AnswerCallback:
			err := h.bot.Respond(&tele.Callback{ID: r.CallbackID}, &tele.CallbackResponse{
				Text:      r.Text,
				ShowAlert: r.Alert,
			})
			if err != nil {
				h.logger.Warn("Failed to acknowledge callback",
					zap.Error(err),
					zap.Int64("user_id", ev.UserID),
					zap.String("callback_id", r.CallbackID),
				)
			}
		}
	}

	return firstErr
}

// markup converts a keyboard layout into telebot markup
func markup(kb *conversation.Keyboard) *tele.ReplyMarkup {
	if kb == nil {
		return nil
	}

	switch kb.Kind {
	case conversation.KeyboardRemove:
		return &tele.ReplyMarkup{RemoveKeyboard: true}

	case conversation.KeyboardInline:
		m := &tele.ReplyMarkup{}
		rows := make([]tele.Row, 0, len(kb.Rows))
		for _, row := range kb.Rows {
			btns := make(tele.Row, 0, len(row))
			for _, b := range row {
				// No Unique: telebot would prefix the data otherwise
				btns = append(btns, tele.Btn{Text: b.Text, Data: b.Payload})
			}
			rows = append(rows, btns)
		}
		m.Inline(rows...)
		return m

	case conversation.KeyboardReply:
		m := &tele.ReplyMarkup{ResizeKeyboard: true}
		rows := make([]tele.Row, 0, len(kb.Rows))
		for _, row := range kb.Rows {
			btns := make(tele.Row, 0, len(row))
			for _, b := range row {
				btns = append(btns, tele.Btn{Text: b.Text, Contact: b.RequestContact})
			}
			rows = append(rows, btns)
		}
		m.Reply(rows...)
		return m
	}

	return nil
}
