package conversation

import "weatherbot/internal/domain"

// EventKind identifies what the user did
type EventKind int

const (
	EventCommand EventKind = iota + 1
	EventText
	EventContact
	EventLocation
	EventCallback
)

func (k EventKind) String() string {
	switch k {
	case EventCommand:
		return "command"
	case EventText:
		return "text"
	case EventContact:
		return "contact"
	case EventLocation:
		return "location"
	case EventCallback:
		return "callback"
	default:
		return "unknown"
	}
}

// Commands understood by the controller
const (
	CommandStart     = "start"
	CommandFavorites = "favorites"
	CommandCancel    = "cancel"
)

// Event is a transport-neutral user action. Only the fields of its Kind are set.
type Event struct {
	Kind     EventKind
	UserID   int64
	ChatID   int64
	FullName string

	// Command name without the slash
	Command string
	Text    string

	Phone string
	// ContactUserID is the owner of a shared contact, 0 when unknown
	ContactUserID int64

	Lat float64
	Lon float64

	CallbackID string
	Payload    string
	// Message is the message the pressed button belongs to
	Message domain.MessageRef
}
