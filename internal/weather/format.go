package weather

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Report holds the fields shown to the user
type Report struct {
	Description string
	Icon        string
	Temp        float64
	FeelsLike   float64
	Pressure    float64
	Humidity    float64
	WindSpeed   float64
}

type unitSymbols struct {
	temp  string
	speed string
}

var symbols = map[string]unitSymbols{
	"metric":   {temp: "°C", speed: "m/s"},
	"imperial": {temp: "°F", speed: "mph"},
	"standard": {temp: "K", speed: "m/s"},
}

// Format renders the report as message text for the given unit system
func Format(r Report, units string) string {
	sym, ok := symbols[units]
	if !ok {
		sym = symbols["metric"]
	}

	lines := []string{
		"🌤 Weather: " + capitalize(r.Description),
		"🌡 Temperature: " + number(r.Temp) + " " + sym.temp,
		"🌡 Feels like: " + number(r.FeelsLike) + " " + sym.temp,
		"🏋️‍♂️ Pressure: " + number(r.Pressure) + " hPa",
		"💦 Humidity: " + number(r.Humidity) + " %",
		"💨 Wind: " + number(r.WindSpeed) + " " + sym.speed,
	}

	return strings.Join(lines, "\n\n")
}

// capitalize upper-cases the first letter and lower-cases the rest
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
