// Package format projects OpenWeatherMap responses into printable output:
// a structured record for current conditions and a day-grouped text block
// for forecasts.
package format

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"weather-cli/models"
)

// CurrentWeather projects a current-conditions response into the structured
// record used for display. An empty weather array is reported as a missing
// field.
func CurrentWeather(conditions *models.CurrentConditions) (models.CurrentWeather, error) {
	if len(conditions.Weather) == 0 {
		return models.CurrentWeather{}, fmt.Errorf("response missing %q field", "weather")
	}

	return models.CurrentWeather{
		Location:    conditions.Name,
		Country:     conditions.Sys.Country,
		Condition:   capitalize(conditions.Weather[0].Description),
		Temperature: conditions.Main.Temp,
		FeelsLike:   conditions.Main.FeelsLike,
		Humidity:    conditions.Main.Humidity,
		WindSpeed:   conditions.Wind.Speed,
		Sunrise:     clockTime(conditions.Sys.Sunrise),
		Sunset:      clockTime(conditions.Sys.Sunset),
	}, nil
}

// clockTime converts Unix epoch seconds to a local 24-hour "HH:MM" string.
func clockTime(epoch int64) string {
	return time.Unix(epoch, 0).Format("15:04")
}

// capitalize upper-cases the first rune of s and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
