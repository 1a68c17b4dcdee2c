// Package texts holds every user-visible string of the bot.
package texts

// Messages
const (
	LocationSend        = "🗺 Send the location where you want to know the weather."
	PhoneShare          = "Please share your phone number to continue."
	AccountDeleted      = "Your account has been deleted."
	PlacesSelect        = "📍 Select Favorite Place where you want to know the weather"
	PlacesEmpty         = "Your list of Favorite Places is currently empty 🥡.\nBut you can always send a new location and save it 😉"
	PlacesAddSuccess    = "Place was successfully added to your favorite places!"
	PlacesDeleteSuccess = "Place was successfully deleted from your favorite places!"
	PlacesRenameSuccess = "Favorite place was successfully renamed!"
	PlacesEnterName     = "Please enter new name for this favorite place"
	CancelSuccess       = "You have successfully returned to the main menu!"
)

// Buttons
const (
	BtnBackToMainMenu = "Back to Main Menu ↩️"
	BtnPhoneShare     = "Share the phone number"
	BtnAccountDelete  = "❌ Delete account"
	BtnPlacesSee      = "🧡 See Favorite Places"
	BtnPlaceAdd       = "➕ Add to Favorite Places"
	BtnPlaceDelete    = "❌ Delete from Favorite Places"
	BtnPlaceRename    = "✏️ Rename Favorite Place"
	BtnCancel         = "✖️ Cancel"
)

// Errors
const (
	ErrGeneric           = "Sorry, something went wrong. Please try again later."
	ErrPlaceSelect       = "Sorry, I couldn't get the weather data for this place. Please try again later."
	ErrPlaceNameNoExist  = "⚠️ Such a place name doesn't exist. Please enter the correct one."
	ErrPlaceNameEmpty    = "Please enter a correct Place name or press " + BtnCancel + " button."
	ErrPlaceNameTooLong  = "⚠️ The name is too long. Please enter a shorter one or press " + BtnCancel + " button."
	ErrPlaceList         = "Sorry, I couldn't get the list of your places. Please try again later."
	ErrPlaceUpdate       = "Sorry, I couldn't update your place. Please try again later."
	ErrPlaceDelete       = "Sorry, I couldn't delete the place. Please try again later."
	ErrPlaceCreate       = "Sorry, I couldn't create a place. Please try again later."
	ErrPlaceAlreadyExist = "⚠️ Place with this name already exists. Please enter different name."
	ErrPlaceGone         = "⚠️ This place no longer exists."
	ErrAccountCreate     = "Sorry, I couldn't create an account. Please try again later."
	ErrAccountDelete     = "Sorry, I couldn't delete the account. Please try again later."
	ErrContactNotOwn     = "⚠️ Please share your own phone number using the button below."
	ErrUnknownAction     = "This button is no longer supported."
)

// Hello greets the user by name. The result is MarkdownV2.
func Hello(fullName string) string {
	return "👋 Hello, *" + EscapeMarkdown(fullName) + "*\\!"
}
