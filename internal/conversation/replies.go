package conversation

import "weatherbot/internal/domain"

// Reply is an outgoing action the transport has to perform
type Reply interface {
	isReply()
}

// SendText sends a text message. Markdown texts are MarkdownV2.
type SendText struct {
	Text     string
	Markdown bool
	Keyboard *Keyboard
}

// SendPhoto sends a photo by URL with a MarkdownV2 caption
type SendPhoto struct {
	PhotoURL string
	Caption  string
	Keyboard *Keyboard
}

// EditCaption replaces the caption and inline buttons of an earlier message
type EditCaption struct {
	Message  domain.MessageRef
	Caption  string
	Keyboard *Keyboard
}

// AnswerCallback acknowledges a button press
type AnswerCallback struct {
	CallbackID string
	Text       string
	Alert      bool
}

func (SendText) isReply()       {}
func (SendPhoto) isReply()      {}
func (EditCaption) isReply()    {}
func (AnswerCallback) isReply() {}
