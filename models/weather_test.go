package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrentWeatherString(t *testing.T) {
	current := CurrentWeather{
		Location:    "London",
		Country:     "GB",
		Condition:   "Light rain",
		Temperature: 53.2,
		FeelsLike:   51.1,
		Humidity:    87,
		WindSpeed:   8.1,
		Sunrise:     "04:46",
		Sunset:      "21:08",
	}

	out := current.String()

	assert.Contains(t, out, "Current weather for London, GB:")
	assert.Contains(t, out, "Condition:   Light rain")
	assert.Contains(t, out, "Temperature: 53.2°F (feels like 51.1°F)")
	assert.Contains(t, out, "Humidity:    87%")
	assert.Contains(t, out, "Wind speed:  8.1 mph")
	assert.Contains(t, out, "Sunrise:     04:46")
	assert.Contains(t, out, "Sunset:      21:08")
}
