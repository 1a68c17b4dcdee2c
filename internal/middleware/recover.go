package middleware

import (
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Recover catches panics in handlers and turns them into errors
func Recover(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Panic recovered",
						zap.Any("panic", r),
						zap.Int("update_id", c.Update().ID),
						zap.String("stack", string(debug.Stack())),
					)
					err = fmt.Errorf("panic in handler: %v", r)
				}
			}()
			return next(c)
		}
	}
}
