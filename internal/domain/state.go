package domain

// Step identifies the current step of a conversation
type Step string

const (
	StepIdle                       Step = "idle"
	StepAwaitingPlaceNameForCreate Step = "awaiting_place_name_create"
	StepAwaitingPlaceNameForRename Step = "awaiting_place_name_rename"
	StepAwaitingPlaceSelection     Step = "awaiting_place_selection"
)

// ConversationState is the per-chat state of a multi-step flow.
// Each variant carries exactly the data its step needs.
type ConversationState interface {
	Step() Step
}

// Idle means no flow is in progress
type Idle struct{}

// AwaitingPlaceNameForCreate waits for the name of a new favorite place
type AwaitingPlaceNameForCreate struct {
	Lat        float64
	Lon        float64
	Origin     MessageRef // weather message to update once the place is saved
	CallbackID string     // button press to acknowledge on completion
}

// AwaitingPlaceNameForRename waits for a new name of an existing place
type AwaitingPlaceNameForRename struct {
	PlaceID    int64
	Lat        float64
	Lon        float64
	Origin     MessageRef
	CallbackID string
}

// AwaitingPlaceSelection waits for the user to pick a place from the list
type AwaitingPlaceSelection struct{}

func (Idle) Step() Step                       { return StepIdle }
func (AwaitingPlaceNameForCreate) Step() Step { return StepAwaitingPlaceNameForCreate }
func (AwaitingPlaceNameForRename) Step() Step { return StepAwaitingPlaceNameForRename }
func (AwaitingPlaceSelection) Step() Step     { return StepAwaitingPlaceSelection }
