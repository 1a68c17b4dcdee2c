package conversation

import (
	"context"
	"errors"

	"weatherbot/internal/repository"
	"weatherbot/internal/service"
	"weatherbot/internal/texts"

	"go.uber.org/zap"
)

// handleContact registers the sender with the shared phone number
func (c *Controller) handleContact(ctx context.Context, ev Event) []Reply {
	if ev.ContactUserID != 0 && ev.ContactUserID != ev.UserID {
		return []Reply{SendText{Text: texts.ErrContactNotOwn, Keyboard: PhoneKeyboard()}}
	}

	existing, err := c.accounts.GetUser(ctx, ev.UserID)
	if err != nil {
		c.logger.Error("Failed to load user", zap.Error(err), zap.Int64("user_id", ev.UserID))
		return []Reply{SendText{Text: texts.ErrAccountCreate}}
	}
	if existing != nil {
		return greeting(ev.FullName)
	}

	_, err = c.accounts.Register(ctx, ev.UserID, ev.Phone)
	switch {
	case err == nil:
		c.logger.Info("User registered", zap.Int64("user_id", ev.UserID))
	case repository.IsUnique(err):
		// Registered by a concurrent update
	case errors.Is(err, service.ErrPhoneRequired):
		return []Reply{SendText{Text: texts.PhoneShare, Keyboard: PhoneKeyboard()}}
	default:
		c.logger.Error("Failed to register user", zap.Error(err), zap.Int64("user_id", ev.UserID))
		return []Reply{SendText{Text: texts.ErrAccountCreate}}
	}

	c.states.Clear(ev.ChatID)
	return greeting(ev.FullName)
}

// deleteAccount removes the user and every saved place
func (c *Controller) deleteAccount(ctx context.Context, ev Event) []Reply {
	err := c.accounts.DeleteAccount(ctx, ev.UserID)
	if err != nil && !repository.IsNotFound(err) {
		c.logger.Error("Failed to delete account", zap.Error(err), zap.Int64("user_id", ev.UserID))
		return []Reply{SendText{Text: texts.ErrAccountDelete}}
	}

	c.states.Clear(ev.ChatID)
	c.logger.Info("Account deleted", zap.Int64("user_id", ev.UserID))
	return []Reply{SendText{Text: texts.AccountDeleted, Keyboard: PhoneKeyboard()}}
}
