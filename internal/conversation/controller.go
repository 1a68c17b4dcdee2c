package conversation

import (
	"context"

	"weatherbot/internal/domain"
	"weatherbot/internal/state"
	"weatherbot/internal/texts"
	"weatherbot/internal/weather"

	"go.uber.org/zap"
)

// AccountService is what the controller needs to know about users
type AccountService interface {
	GetUser(ctx context.Context, userID int64) (*domain.User, error)
	Register(ctx context.Context, userID int64, phone string) (*domain.User, error)
	DeleteAccount(ctx context.Context, userID int64) error
}

// PlaceService manages favorite places
type PlaceService interface {
	Create(ctx context.Context, userID int64, name string, lat, lon float64) (*domain.Place, error)
	Get(ctx context.Context, userID, placeID int64) (*domain.Place, error)
	FindByName(ctx context.Context, userID int64, name string) (*domain.Place, error)
	FindByCoordinates(ctx context.Context, userID int64, lat, lon float64) (*domain.Place, error)
	List(ctx context.Context, userID int64) ([]domain.Place, error)
	Rename(ctx context.Context, userID, placeID int64, name string) (*domain.Place, error)
	Delete(ctx context.Context, userID, placeID int64) error
}

// WeatherLookup fetches the current weather
type WeatherLookup interface {
	ByCoordinates(ctx context.Context, lat, lon float64) weather.Result
}

// Controller is the conversation state machine. Events of one chat must
// be handled one at a time.
type Controller struct {
	accounts AccountService
	places   PlaceService
	weather  WeatherLookup
	states   state.Store
	logger   *zap.Logger
}

// NewController creates a new controller
func NewController(
	accounts AccountService,
	places PlaceService,
	weather WeatherLookup,
	states state.Store,
	logger *zap.Logger,
) *Controller {
	return &Controller{
		accounts: accounts,
		places:   places,
		weather:  weather,
		states:   states,
		logger:   logger,
	}
}

// Handle processes one event and returns the replies to render in order
func (c *Controller) Handle(ctx context.Context, ev Event) []Reply {
	if ev.Kind == EventContact {
		return c.handleContact(ctx, ev)
	}

	// Everything else requires a registered user
	user, err := c.accounts.GetUser(ctx, ev.UserID)
	if err != nil {
		c.logger.Error("Failed to load user",
			zap.Error(err),
			zap.Int64("user_id", ev.UserID),
			zap.Int64("chat_id", ev.ChatID),
		)
		return answered(ev, SendText{Text: texts.ErrGeneric})
	}
	if user == nil {
		c.states.Clear(ev.ChatID)
		return answered(ev, SendText{Text: texts.PhoneShare, Keyboard: PhoneKeyboard()})
	}

	switch ev.Kind {
	case EventCommand:
		return c.handleCommand(ctx, ev)
	case EventLocation:
		return c.handleLocation(ctx, ev)
	case EventCallback:
		return c.handleCallback(ctx, ev)
	case EventText:
		return c.handleText(ctx, ev)
	}

	return nil
}

func (c *Controller) handleCommand(ctx context.Context, ev Event) []Reply {
	switch ev.Command {
	case CommandStart:
		c.states.Clear(ev.ChatID)
		return greeting(ev.FullName)
	case CommandFavorites:
		return c.showFavorites(ctx, ev)
	case CommandCancel:
		return c.backToMainMenu(ev)
	}

	// Unknown commands leave any flow, they are never taken as a name
	return c.backToMainMenu(ev)
}

func (c *Controller) handleText(ctx context.Context, ev Event) []Reply {
	// Menu buttons work from any step
	switch ev.Text {
	case texts.BtnPlacesSee:
		return c.showFavorites(ctx, ev)
	case texts.BtnAccountDelete:
		return c.deleteAccount(ctx, ev)
	case texts.BtnBackToMainMenu:
		return c.backToMainMenu(ev)
	}

	switch st := c.states.Get(ev.ChatID).(type) {
	case domain.AwaitingPlaceNameForCreate:
		return c.completeCreate(ctx, ev, st)
	case domain.AwaitingPlaceNameForRename:
		return c.completeRename(ctx, ev, st)
	case domain.AwaitingPlaceSelection:
		return c.selectPlace(ctx, ev)
	}

	return mainPrompt()
}

func (c *Controller) handleCallback(ctx context.Context, ev Event) []Reply {
	payload := ParsePayload(ev.Payload)

	switch payload.Action {
	case ActionPlaceAdd:
		return c.startCreate(ev, payload)
	case ActionPlaceRename:
		return c.startRename(ctx, ev, payload)
	case ActionPlaceDelete:
		return c.deletePlace(ctx, ev, payload)
	case ActionCancel:
		ack := AnswerCallback{CallbackID: ev.CallbackID, Text: texts.CancelSuccess}
		return append([]Reply{ack}, c.backToMainMenu(ev)...)
	}

	c.logger.Warn("Unhandled callback",
		zap.String("payload", ev.Payload),
		zap.Int64("user_id", ev.UserID),
	)
	return []Reply{AnswerCallback{CallbackID: ev.CallbackID, Text: texts.ErrUnknownAction}}
}

func (c *Controller) backToMainMenu(ev Event) []Reply {
	c.states.Clear(ev.ChatID)
	return mainPrompt()
}

// answered prepends an empty callback answer when ev is a button press
func answered(ev Event, replies ...Reply) []Reply {
	if ev.Kind != EventCallback || ev.CallbackID == "" {
		return replies
	}
	return append([]Reply{AnswerCallback{CallbackID: ev.CallbackID}}, replies...)
}

func mainPrompt() []Reply {
	return []Reply{SendText{Text: texts.LocationSend, Keyboard: MainKeyboard()}}
}

func greeting(fullName string) []Reply {
	return append([]Reply{SendText{Text: texts.Hello(fullName), Markdown: true}}, mainPrompt()...)
}
