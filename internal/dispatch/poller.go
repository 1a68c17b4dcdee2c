package dispatch

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Poller wraps another poller and processes the updates it fetches on a
// Queue keyed by chat, so one chat is handled in order while different chats
// run concurrently. The bot should be Synchronous so handlers run on the
// worker that received the update.
type Poller struct {
	Inner   tele.Poller
	Workers int
	Buffer  int
	Logger  *zap.Logger

	// Done, when set, is closed after the queued updates are handled
	Done chan struct{}
}

// Poll implements tele.Poller. The dest channel is not used: updates are
// handed to the bot directly from the workers.
func (p *Poller) Poll(b *tele.Bot, dest chan tele.Update, stop chan struct{}) {
	queue := NewQueue(p.Workers, p.Buffer, b.ProcessUpdate, p.Logger)

	in := make(chan tele.Update)
	innerStop := make(chan struct{})
	innerDone := make(chan struct{})

	go func() {
		p.Inner.Poll(b, in, innerStop)
		close(innerDone)
	}()

	submit := func(u tele.Update) {
		if err := queue.Submit(ChatKey(u), u); err != nil {
			p.Logger.Warn("Dropped update", zap.Int("update_id", u.ID), zap.Error(err))
		}
	}

	for {
		select {
		case u := <-in:
			submit(u)
		case <-stop:
			close(innerStop)
			// Keep reading until the inner poller returns, it may be
			// blocked on handing over an update it already fetched
			for {
				select {
				case u := <-in:
					submit(u)
				case <-innerDone:
					queue.Close()
					p.Logger.Info("Update dispatcher stopped")
					if p.Done != nil {
						close(p.Done)
					}
					return
				}
			}
		}
	}
}

// ChatKey returns the chat an update belongs to, falling back to the sender
func ChatKey(u tele.Update) int64 {
	switch {
	case u.Message != nil && u.Message.Chat != nil:
		return u.Message.Chat.ID
	case u.EditedMessage != nil && u.EditedMessage.Chat != nil:
		return u.EditedMessage.Chat.ID
	case u.Callback != nil:
		if u.Callback.Message != nil && u.Callback.Message.Chat != nil {
			return u.Callback.Message.Chat.ID
		}
		if u.Callback.Sender != nil {
			return u.Callback.Sender.ID
		}
	case u.Message != nil && u.Message.Sender != nil:
		return u.Message.Sender.ID
	}
	return 0
}
