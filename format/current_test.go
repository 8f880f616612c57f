package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-cli/models"
)

func sampleConditions() *models.CurrentConditions {
	conditions := &models.CurrentConditions{Name: "London"}
	conditions.Sys.Country = "GB"
	conditions.Sys.Sunrise = time.Date(2024, 6, 1, 4, 46, 0, 0, time.Local).Unix()
	conditions.Sys.Sunset = time.Date(2024, 6, 1, 21, 8, 0, 0, time.Local).Unix()
	conditions.Main.Temp = 53.2
	conditions.Main.FeelsLike = 51.1
	conditions.Main.Humidity = 87
	conditions.Wind.Speed = 8.1
	conditions.Weather = []models.Condition{{Description: "light rain", Icon: "10d"}}
	return conditions
}

func TestCurrentWeather_ProjectsAllFields(t *testing.T) {
	current, err := CurrentWeather(sampleConditions())
	require.NoError(t, err)

	assert.Equal(t, "London", current.Location)
	assert.Equal(t, "GB", current.Country)
	assert.Equal(t, "Light rain", current.Condition)
	assert.InDelta(t, 53.2, current.Temperature, 0.001)
	assert.InDelta(t, 51.1, current.FeelsLike, 0.001)
	assert.Equal(t, 87, current.Humidity)
	assert.InDelta(t, 8.1, current.WindSpeed, 0.001)
	assert.Equal(t, "04:46", current.Sunrise)
	assert.Equal(t, "21:08", current.Sunset)
}

func TestCurrentWeather_SunTimesAreClockFormat(t *testing.T) {
	conditions := sampleConditions()
	conditions.Sys.Sunrise = time.Date(2024, 12, 24, 8, 3, 59, 0, time.Local).Unix()
	conditions.Sys.Sunset = time.Date(2024, 12, 24, 15, 55, 0, 0, time.Local).Unix()

	current, err := CurrentWeather(conditions)
	require.NoError(t, err)

	assert.Regexp(t, `^([01]\d|2[0-3]):[0-5]\d$`, current.Sunrise)
	assert.Regexp(t, `^([01]\d|2[0-3]):[0-5]\d$`, current.Sunset)
	assert.Equal(t, "08:03", current.Sunrise)
	assert.Equal(t, "15:55", current.Sunset)
}

func TestCurrentWeather_MissingWeatherField(t *testing.T) {
	conditions := sampleConditions()
	conditions.Weather = nil

	_, err := CurrentWeather(conditions)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weather")
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"light rain", "Light rain"},
		{"LIGHT RAIN", "Light rain"},
		{"clear sky", "Clear sky"},
		{"x", "X"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, capitalize(tt.in), "capitalize(%q)", tt.in)
	}
}
