package conversation

import (
	"strings"

	"weatherbot/internal/texts"
)

const paragraphSep = "\n\n"

// Telegram returns captions as plain text, so every builder escapes the
// paragraphs it keeps and renders the place name bold.

// weatherCaption is the caption of a weather photo, with the place name if any
func weatherCaption(weatherText, placeName string) string {
	caption := texts.EscapeMarkdown(weatherText)
	if placeName != "" {
		caption += paragraphSep + texts.Bold(placeName)
	}
	return caption
}

// captionWithName appends the place name as a new last paragraph
func captionWithName(plain, name string) string {
	return weatherCaption(plain, name)
}

// captionReplaceName replaces the last paragraph with the new place name
func captionReplaceName(plain, name string) string {
	return weatherCaption(dropLastParagraph(plain), name)
}

// captionWithoutName drops the place name paragraph
func captionWithoutName(plain string) string {
	return weatherCaption(dropLastParagraph(plain), "")
}

// dropLastParagraph keeps a single paragraph intact
func dropLastParagraph(s string) string {
	i := strings.LastIndex(s, paragraphSep)
	if i < 0 {
		return s
	}
	return s[:i]
}
