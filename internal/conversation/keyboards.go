package conversation

import (
	"weatherbot/internal/domain"
	"weatherbot/internal/texts"
)

// KeyboardKind selects how a keyboard is shown
type KeyboardKind int

const (
	KeyboardInline KeyboardKind = iota + 1
	KeyboardReply
	KeyboardRemove
)

// Button is a keyboard button. Payload is used by inline buttons only.
type Button struct {
	Text           string
	Payload        string
	RequestContact bool
}

// Keyboard is a transport-neutral keyboard layout
type Keyboard struct {
	Kind KeyboardKind
	Rows [][]Button
}

// MainKeyboard is shown to registered users between flows
func MainKeyboard() *Keyboard {
	return &Keyboard{
		Kind: KeyboardReply,
		Rows: [][]Button{{
			{Text: texts.BtnPlacesSee},
			{Text: texts.BtnAccountDelete},
		}},
	}
}

// PhoneKeyboard asks the user to share the phone number
func PhoneKeyboard() *Keyboard {
	return &Keyboard{
		Kind: KeyboardReply,
		Rows: [][]Button{{
			{Text: texts.BtnPhoneShare, RequestContact: true},
		}},
	}
}

// CancelKeyboard lets the user leave a flow
func CancelKeyboard() *Keyboard {
	return &Keyboard{
		Kind: KeyboardInline,
		Rows: [][]Button{{
			{Text: texts.BtnCancel, Payload: EncodePayload(ActionCancel)},
		}},
	}
}

// PlacesKeyboard lists place names two per row, then the back button
func PlacesKeyboard(places []domain.Place) *Keyboard {
	kb := &Keyboard{Kind: KeyboardReply}

	var row []Button
	for _, p := range places {
		row = append(row, Button{Text: p.Name})
		if len(row) == 2 {
			kb.Rows = append(kb.Rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		kb.Rows = append(kb.Rows, row)
	}

	kb.Rows = append(kb.Rows, []Button{{Text: texts.BtnBackToMainMenu}})
	return kb
}

// LocationKeyboard offers to save the location, or to rename or delete
// the place when placeID is set
func LocationKeyboard(lat, lon float64, placeID int64) *Keyboard {
	if placeID == 0 {
		return &Keyboard{
			Kind: KeyboardInline,
			Rows: [][]Button{
				{{Text: texts.BtnPlaceAdd, Payload: AddPayload(lat, lon)}},
			},
		}
	}

	return &Keyboard{
		Kind: KeyboardInline,
		Rows: [][]Button{
			{{Text: texts.BtnPlaceRename, Payload: RenamePayload(lat, lon, placeID)}},
			{{Text: texts.BtnPlaceDelete, Payload: DeletePayload(lat, lon, placeID)}},
		},
	}
}
