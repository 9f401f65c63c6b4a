package weather

import (
	"strings"

	"github.com/i474232898/weather-now/internal/common"
)

// Category is a normalized high-level weather condition derived from the
// upstream's free-text description.
type Category string

const (
	CategoryUnknown Category = "unknown"
	CategoryClear   Category = "clear"
	CategoryCloudy  Category = "cloudy"
	CategoryRain    Category = "rain"
	CategorySnow    Category = "snow"
	CategoryStorm   Category = "storm"
	CategoryMist    Category = "mist"
)

// Categorize maps weatherapi.com condition text to a Category.
// Storms are checked first since "Patchy light rain with thunder" is a storm.
func Categorize(text string) Category {
	t := strings.TrimSpace(text)
	switch {
	case t == "":
		return CategoryUnknown
	case common.HasAny(t, "thunder", "storm"):
		return CategoryStorm
	case common.HasAny(t, "snow", "sleet", "blizzard", "ice pellets"):
		return CategorySnow
	case common.HasAny(t, "rain", "shower", "drizzle"):
		return CategoryRain
	case common.HasAny(t, "mist", "fog"):
		return CategoryMist
	case common.HasAny(t, "cloud", "overcast"):
		return CategoryCloudy
	case common.HasAny(t, "sunny", "clear"):
		return CategoryClear
	default:
		return CategoryUnknown
	}
}

// Backdrop names.
const (
	BackdropPartlyCloudy = "partlycloudy"
	BackdropSunnyDay     = "sunnyday"
	BackdropNight        = "night"
)

// Backdrop picks the background artwork for the current condition at the given
// local hour. Daytime spans 06:00 through 18:59.
func Backdrop(conditionText string, hour int) string {
	isDay := hour >= 6 && hour <= 18
	switch {
	case isDay && common.HasAny(conditionText, "partly cloudy"):
		return BackdropPartlyCloudy
	case isDay && common.HasAny(conditionText, "sunny"):
		return BackdropSunnyDay
	default:
		return BackdropNight
	}
}
