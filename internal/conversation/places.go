package conversation

import (
	"context"
	"errors"

	"weatherbot/internal/domain"
	"weatherbot/internal/repository"
	"weatherbot/internal/service"
	"weatherbot/internal/texts"

	"go.uber.org/zap"
)

// handleLocation shows the weather at a shared location
func (c *Controller) handleLocation(ctx context.Context, ev Event) []Reply {
	result := c.weather.ByCoordinates(ctx, ev.Lat, ev.Lon)
	if !result.OK() {
		c.logger.Error("Failed to get weather",
			zap.Error(result.Err),
			zap.Int64("user_id", ev.UserID),
			zap.Float64("lat", ev.Lat),
			zap.Float64("lon", ev.Lon),
		)
		return []Reply{SendText{Text: texts.ErrPlaceSelect}}
	}

	place, err := c.places.FindByCoordinates(ctx, ev.UserID, ev.Lat, ev.Lon)
	if err != nil {
		c.logger.Error("Failed to find place by coordinates", zap.Error(err), zap.Int64("user_id", ev.UserID))
		return []Reply{SendText{Text: texts.ErrGeneric}}
	}

	var name string
	var placeID int64
	if place != nil {
		name, placeID = place.Name, place.ID
	}

	return append([]Reply{SendPhoto{
		PhotoURL: result.IconURL,
		Caption:  weatherCaption(result.Text, name),
		Keyboard: LocationKeyboard(ev.Lat, ev.Lon, placeID),
	}}, mainPrompt()...)
}

// showFavorites lists the user's places and waits for a selection
func (c *Controller) showFavorites(ctx context.Context, ev Event) []Reply {
	places, err := c.places.List(ctx, ev.UserID)
	if err != nil {
		c.logger.Error("Failed to list places", zap.Error(err), zap.Int64("user_id", ev.UserID))
		return []Reply{SendText{Text: texts.ErrPlaceList}}
	}

	c.states.Set(ev.ChatID, domain.AwaitingPlaceSelection{})

	text := texts.PlacesSelect
	if len(places) == 0 {
		text = texts.PlacesEmpty
	}
	return []Reply{SendText{Text: text, Keyboard: PlacesKeyboard(places)}}
}

// selectPlace shows the weather of the place picked from the list
func (c *Controller) selectPlace(ctx context.Context, ev Event) []Reply {
	place, err := c.places.FindByName(ctx, ev.UserID, ev.Text)
	if err != nil {
		c.logger.Error("Failed to find place by name", zap.Error(err), zap.Int64("user_id", ev.UserID))
		return []Reply{SendText{Text: texts.ErrGeneric}}
	}
	if place == nil {
		c.states.Clear(ev.ChatID)
		return []Reply{SendText{Text: texts.ErrPlaceNameNoExist, Keyboard: MainKeyboard()}}
	}

	result := c.weather.ByCoordinates(ctx, place.Lat, place.Lon)
	if !result.OK() {
		c.logger.Error("Failed to get weather",
			zap.Error(result.Err),
			zap.Int64("user_id", ev.UserID),
			zap.Int64("place_id", place.ID),
		)
		return []Reply{SendText{Text: texts.ErrPlaceSelect}}
	}

	c.states.Clear(ev.ChatID)
	return append([]Reply{SendPhoto{
		PhotoURL: result.IconURL,
		Caption:  weatherCaption(result.Text, place.Name),
		Keyboard: LocationKeyboard(place.Lat, place.Lon, place.ID),
	}}, mainPrompt()...)
}

// startCreate asks for the name of the location under the pressed button
func (c *Controller) startCreate(ev Event, payload Payload) []Reply {
	ref, err := payload.placeRef(false)
	if err != nil {
		c.logger.Warn("Invalid callback payload", zap.Error(err), zap.Int64("user_id", ev.UserID))
		return []Reply{AnswerCallback{CallbackID: ev.CallbackID, Text: texts.ErrUnknownAction}}
	}

	c.states.Set(ev.ChatID, domain.AwaitingPlaceNameForCreate{
		Lat:        ref.Lat,
		Lon:        ref.Lon,
		Origin:     ev.Message,
		CallbackID: ev.CallbackID,
	})
	return []Reply{SendText{Text: texts.PlacesEnterName, Keyboard: CancelKeyboard()}}
}

// completeCreate saves the place under the entered name
func (c *Controller) completeCreate(ctx context.Context, ev Event, st domain.AwaitingPlaceNameForCreate) []Reply {
	place, err := c.places.Create(ctx, ev.UserID, ev.Text, st.Lat, st.Lon)
	if err != nil {
		if retry := nameRetry(err); retry != nil {
			return retry
		}
		c.states.Clear(ev.ChatID)
		c.logger.Error("Failed to create place", zap.Error(err), zap.Int64("user_id", ev.UserID))
		return []Reply{SendText{Text: texts.ErrPlaceCreate, Keyboard: MainKeyboard()}}
	}

	c.states.Clear(ev.ChatID)
	c.logger.Info("Place created", zap.Int64("user_id", ev.UserID), zap.Int64("place_id", place.ID))

	return completed(st.CallbackID, texts.PlacesAddSuccess, st.Origin,
		captionWithName(st.Origin.Caption, place.Name),
		LocationKeyboard(place.Lat, place.Lon, place.ID),
	)
}

// startRename asks for a new name of an existing place
func (c *Controller) startRename(ctx context.Context, ev Event, payload Payload) []Reply {
	ref, err := payload.placeRef(true)
	if err != nil {
		c.logger.Warn("Invalid callback payload", zap.Error(err), zap.Int64("user_id", ev.UserID))
		return []Reply{AnswerCallback{CallbackID: ev.CallbackID, Text: texts.ErrUnknownAction}}
	}

	place, err := c.places.Get(ctx, ev.UserID, ref.PlaceID)
	if err != nil {
		c.logger.Error("Failed to get place", zap.Error(err), zap.Int64("place_id", ref.PlaceID))
		return []Reply{AnswerCallback{CallbackID: ev.CallbackID, Text: texts.ErrGeneric, Alert: true}}
	}
	if place == nil {
		return []Reply{AnswerCallback{CallbackID: ev.CallbackID, Text: texts.ErrPlaceGone, Alert: true}}
	}

	c.states.Set(ev.ChatID, domain.AwaitingPlaceNameForRename{
		PlaceID:    place.ID,
		Lat:        ref.Lat,
		Lon:        ref.Lon,
		Origin:     ev.Message,
		CallbackID: ev.CallbackID,
	})
	return []Reply{SendText{Text: texts.PlacesEnterName, Keyboard: CancelKeyboard()}}
}

// completeRename stores the entered name
func (c *Controller) completeRename(ctx context.Context, ev Event, st domain.AwaitingPlaceNameForRename) []Reply {
	place, err := c.places.Rename(ctx, ev.UserID, st.PlaceID, ev.Text)
	if err != nil {
		if retry := nameRetry(err); retry != nil {
			return retry
		}
		c.states.Clear(ev.ChatID)
		if repository.IsNotFound(err) {
			return []Reply{SendText{Text: texts.ErrPlaceGone, Keyboard: MainKeyboard()}}
		}
		c.logger.Error("Failed to rename place",
			zap.Error(err),
			zap.Int64("user_id", ev.UserID),
			zap.Int64("place_id", st.PlaceID),
		)
		return []Reply{SendText{Text: texts.ErrPlaceUpdate, Keyboard: MainKeyboard()}}
	}

	c.states.Clear(ev.ChatID)
	c.logger.Info("Place renamed", zap.Int64("user_id", ev.UserID), zap.Int64("place_id", place.ID))

	return completed(st.CallbackID, texts.PlacesRenameSuccess, st.Origin,
		captionReplaceName(st.Origin.Caption, place.Name),
		LocationKeyboard(st.Lat, st.Lon, place.ID),
	)
}

// deletePlace removes the place under the pressed button
func (c *Controller) deletePlace(ctx context.Context, ev Event, payload Payload) []Reply {
	ref, err := payload.placeRef(true)
	if err != nil {
		c.logger.Warn("Invalid callback payload", zap.Error(err), zap.Int64("user_id", ev.UserID))
		return []Reply{AnswerCallback{CallbackID: ev.CallbackID, Text: texts.ErrUnknownAction}}
	}

	err = c.places.Delete(ctx, ev.UserID, ref.PlaceID)
	if repository.IsNotFound(err) {
		return []Reply{AnswerCallback{CallbackID: ev.CallbackID, Text: texts.ErrPlaceGone, Alert: true}}
	}
	if err != nil {
		c.logger.Error("Failed to delete place", zap.Error(err), zap.Int64("place_id", ref.PlaceID))
		return []Reply{AnswerCallback{CallbackID: ev.CallbackID, Text: texts.ErrPlaceDelete, Alert: true}}
	}

	c.logger.Info("Place deleted", zap.Int64("user_id", ev.UserID), zap.Int64("place_id", ref.PlaceID))

	replies := []Reply{AnswerCallback{CallbackID: ev.CallbackID, Text: texts.PlacesDeleteSuccess}}
	if !ev.Message.IsZero() {
		replies = append(replies, EditCaption{
			Message:  ev.Message,
			Caption:  captionWithoutName(ev.Message.Caption),
			Keyboard: LocationKeyboard(ref.Lat, ref.Lon, 0),
		})
	}
	return append(replies, mainPrompt()...)
}

// completed builds the replies of a finished naming flow
func completed(callbackID, success string, origin domain.MessageRef, caption string, kb *Keyboard) []Reply {
	var replies []Reply
	if callbackID != "" {
		replies = append(replies, AnswerCallback{CallbackID: callbackID, Text: success})
	}
	if !origin.IsZero() {
		replies = append(replies, EditCaption{Message: origin, Caption: caption, Keyboard: kb})
	}
	return append(replies, mainPrompt()...)
}

// nameRetry returns the replies for a name the user has to enter again, or
// nil when err does not allow a retry
func nameRetry(err error) []Reply {
	var text string
	switch {
	case errors.Is(err, service.ErrPlaceNameEmpty):
		text = texts.ErrPlaceNameEmpty
	case errors.Is(err, service.ErrPlaceNameTooLong):
		text = texts.ErrPlaceNameTooLong
	case repository.IsUnique(err):
		text = texts.ErrPlaceAlreadyExist
	default:
		return nil
	}
	return []Reply{SendText{Text: text, Keyboard: CancelKeyboard()}}
}
