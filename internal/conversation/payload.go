package conversation

import (
	"fmt"
	"strconv"
	"strings"
)

// Callback actions
const (
	ActionPlaceAdd    = "place_add"
	ActionPlaceRename = "place_rename"
	ActionPlaceDelete = "place_delete"
	ActionCancel      = "cancel"
)

const (
	actionSep = "?"
	paramSep  = "|"
)

// Payload is parsed callback data of the form action?param1|param2
type Payload struct {
	Action string
	Params []string
}

// EncodePayload builds callback data for the action
func EncodePayload(action string, params ...string) string {
	if len(params) == 0 {
		return action
	}
	return action + actionSep + strings.Join(params, paramSep)
}

// ParsePayload splits callback data into action and params
func ParsePayload(data string) Payload {
	action, params, found := strings.Cut(data, actionSep)
	p := Payload{Action: action}
	if found && params != "" {
		p.Params = strings.Split(params, paramSep)
	}
	return p
}

// placeRef is the location a place button points to
type placeRef struct {
	Lat     float64
	Lon     float64
	PlaceID int64
}

// placeRef reads lat|lon and, when withID is set, a trailing place id
func (p Payload) placeRef(withID bool) (placeRef, error) {
	want := 2
	if withID {
		want = 3
	}
	if len(p.Params) != want {
		return placeRef{}, fmt.Errorf("payload %s: want %d params, got %d", p.Action, want, len(p.Params))
	}

	var ref placeRef
	var err error
	if ref.Lat, err = strconv.ParseFloat(p.Params[0], 64); err != nil {
		return placeRef{}, fmt.Errorf("payload %s: invalid lat: %w", p.Action, err)
	}
	if ref.Lon, err = strconv.ParseFloat(p.Params[1], 64); err != nil {
		return placeRef{}, fmt.Errorf("payload %s: invalid lon: %w", p.Action, err)
	}
	if withID {
		if ref.PlaceID, err = strconv.ParseInt(p.Params[2], 10, 64); err != nil || ref.PlaceID <= 0 {
			return placeRef{}, fmt.Errorf("payload %s: invalid place id %q", p.Action, p.Params[2])
		}
	}

	return ref, nil
}

// AddPayload is the data of the "add to favorites" button
func AddPayload(lat, lon float64) string {
	return EncodePayload(ActionPlaceAdd, formatCoord(lat), formatCoord(lon))
}

// RenamePayload is the data of the "rename" button
func RenamePayload(lat, lon float64, placeID int64) string {
	return EncodePayload(ActionPlaceRename, formatCoord(lat), formatCoord(lon), strconv.FormatInt(placeID, 10))
}

// DeletePayload is the data of the "delete" button
func DeletePayload(lat, lon float64, placeID int64) string {
	return EncodePayload(ActionPlaceDelete, formatCoord(lat), formatCoord(lon), strconv.FormatInt(placeID, 10))
}

// formatCoord uses the shortest form that parses back to the same float
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
