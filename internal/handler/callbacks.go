package handler

import (
	"errors"
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError logs a failed caption edit. An unchanged message means it
// was already edited by another update and is not reported.
func (h *Handler) handleEditError(err error, userID int64) {
	if err == nil {
		return
	}

	if errors.Is(err, tele.ErrSameMessageContent) || strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified, skipping edit",
			zap.Int64("user_id", userID),
		)
		return
	}

	h.logger.Warn("Failed to edit message caption",
		zap.Error(err),
		zap.Int64("user_id", userID),
	)
}
