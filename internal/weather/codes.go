package weather

// Background gradients applied to the widget page.
const (
	DefaultGradient  = "linear-gradient(to bottom, #fceabb, #f8b500)"
	clearGradient    = "linear-gradient(to bottom, #56ccf2, #2f80ed)"
	cloudyGradient   = "linear-gradient(to bottom, #a1c4fd, #c2e9fb)"
	overcastGradient = "linear-gradient(to bottom, #bdc3c7, #2c3e50)"
	fogGradient      = "linear-gradient(to bottom, #d7d2cc, #304352)"
	drizzleGradient  = "linear-gradient(to bottom, #89f7fe, #66a6ff)"
	rainGradient     = "linear-gradient(to bottom, #4b79a1, #283e51)"
	snowGradient     = "linear-gradient(to bottom, #e6dada, #274046)"
	stormGradient    = "linear-gradient(to bottom, #232526, #414345)"
)

const (
	unknownCondition = "Unknown"
	unknownEmoji     = "❓"
)

type descriptor struct {
	label    string
	emoji    string
	gradient string
}

// Open-Meteo WMO weather interpretation codes.
var conditions = map[int]descriptor{
	0:  {"Clear", "☀️", clearGradient},
	1:  {"Mainly clear", "🌤️", clearGradient},
	2:  {"Partly cloudy", "⛅", cloudyGradient},
	3:  {"Overcast", "☁️", overcastGradient},
	45: {"Fog", "🌫️", fogGradient},
	48: {"Rime fog", "🌫️", fogGradient},
	51: {"Drizzle", "🌦️", drizzleGradient},
	53: {"Moderate drizzle", "🌦️", drizzleGradient},
	55: {"Dense drizzle", "🌦️", drizzleGradient},
	56: {"Freezing drizzle", "🌧️", drizzleGradient},
	57: {"Dense freezing drizzle", "🌧️", drizzleGradient},
	61: {"Rain", "🌧️", rainGradient},
	63: {"Moderate rain", "🌧️", rainGradient},
	65: {"Heavy rain", "🌧️", rainGradient},
	66: {"Freezing rain", "🌧️", rainGradient},
	67: {"Heavy freezing rain", "🌧️", rainGradient},
	71: {"Snow", "🌨️", snowGradient},
	73: {"Moderate snow", "🌨️", snowGradient},
	75: {"Heavy snow", "❄️", snowGradient},
	77: {"Snow grains", "❄️", snowGradient},
	80: {"Showers", "🌦️", rainGradient},
	81: {"Moderate showers", "🌧️", rainGradient},
	82: {"Violent showers", "🌧️", rainGradient},
	85: {"Snow showers", "🌨️", snowGradient},
	86: {"Heavy snow showers", "🌨️", snowGradient},
	95: {"Thunderstorm", "⛈️", stormGradient},
	96: {"Thunderstorm with hail", "⛈️", stormGradient},
	99: {"Thunderstorm with heavy hail", "⛈️", stormGradient},
}

// Condition returns the human-readable label for a weather code,
// or "Unknown" when the code is not recognised.
func Condition(code int) string {
	if d, ok := conditions[code]; ok {
		return d.label
	}
	return unknownCondition
}

// Emoji returns the glyph for a weather code, or "❓".
func Emoji(code int) string {
	if d, ok := conditions[code]; ok {
		return d.emoji
	}
	return unknownEmoji
}

// Gradient returns the CSS background for a weather code, or DefaultGradient.
func Gradient(code int) string {
	if d, ok := conditions[code]; ok {
		return d.gradient
	}
	return DefaultGradient
}
