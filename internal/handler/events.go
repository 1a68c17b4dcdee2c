package handler

import (
	"strconv"
	"strings"

	"weatherbot/internal/conversation"
	"weatherbot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// toEvent converts a telebot context into a controller event
func toEvent(c tele.Context) (conversation.Event, bool) {
	sender := c.Sender()
	if sender == nil {
		return conversation.Event{}, false
	}

	ev := conversation.Event{
		UserID:   sender.ID,
		ChatID:   sender.ID,
		FullName: fullName(sender),
	}
	if chat := c.Chat(); chat != nil {
		ev.ChatID = chat.ID
	}

	if cb := c.Callback(); cb != nil {
		ev.Kind = conversation.EventCallback
		ev.CallbackID = cb.ID
		ev.Payload = cleanCallbackData(cb.Data)
		if m := cb.Message; m != nil && m.Chat != nil {
			ev.Message = domain.MessageRef{
				ChatID:    m.Chat.ID,
				MessageID: m.ID,
				Caption:   m.Caption,
			}
		}
		return ev, true
	}

	msg := c.Message()
	if msg == nil {
		return conversation.Event{}, false
	}

	switch {
	case msg.Contact != nil:
		ev.Kind = conversation.EventContact
		ev.Phone = msg.Contact.PhoneNumber
		ev.ContactUserID = msg.Contact.UserID
	case msg.Location != nil:
		ev.Kind = conversation.EventLocation
		ev.Lat = normalizeCoord(msg.Location.Lat)
		ev.Lon = normalizeCoord(msg.Location.Lng)
	case strings.HasPrefix(msg.Text, "/"):
		ev.Kind = conversation.EventCommand
		ev.Command = commandName(msg.Text)
		ev.Text = msg.Text
	case msg.Text != "":
		ev.Kind = conversation.EventText
		ev.Text = msg.Text
	default:
		return conversation.Event{}, false
	}

	return ev, true
}

// commandName strips the slash, arguments and @botname from a command
func commandName(text string) string {
	name, _, _ := strings.Cut(strings.TrimPrefix(text, "/"), " ")
	name, _, _ = strings.Cut(name, "@")
	return name
}

func fullName(u *tele.User) string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

// normalizeCoord widens a float32 coordinate to the float64 with the same
// shortest decimal form, so 40.7128 stays 40.7128
func normalizeCoord(v float32) float64 {
	f, err := strconv.ParseFloat(strconv.FormatFloat(float64(v), 'f', -1, 32), 64)
	if err != nil {
		return float64(v)
	}
	return f
}
