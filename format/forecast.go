package format

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"weather-cli/models"
)

const dayKeyLayout = "2006-01-02"

// Forecast renders a forecast response as a multi-line text block: samples
// grouped by local calendar day, days in chronological order, truncated to
// the requested day count. Within a day, samples keep payload order.
func Forecast(forecast *models.ForecastResponse, days int) (string, error) {
	byDay := make(map[string][]models.ForecastSample)
	for _, sample := range forecast.List {
		day := time.Unix(sample.Dt, 0).Format(dayKeyLayout)
		byDay[day] = append(byDay[day], sample)
	}

	// ISO day keys sort lexicographically into chronological order.
	sortedDays := make([]string, 0, len(byDay))
	for day := range byDay {
		sortedDays = append(sortedDays, day)
	}
	sort.Strings(sortedDays)

	if days < 0 {
		days = 0
	}
	if days < len(sortedDays) {
		sortedDays = sortedDays[:days]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\nWeather Forecast for %s, %s:\n", forecast.City.Name, forecast.City.Country)

	for _, day := range sortedDays {
		date, err := time.ParseInLocation(dayKeyLayout, day, time.Local)
		if err != nil {
			return "", fmt.Errorf("failed to parse day key %q: %w", day, err)
		}

		header := date.Format("Monday, Jan 02")
		fmt.Fprintf(&b, "\n%s:\n%s\n", header, strings.Repeat("=", len(header)+1))

		for _, sample := range byDay[day] {
			if len(sample.Weather) == 0 {
				return "", fmt.Errorf("forecast sample missing %q field", "weather")
			}

			fmt.Fprintf(&b, "%s: %.1f°F - %s\n",
				time.Unix(sample.Dt, 0).Format("15:04"),
				sample.Main.Temp,
				capitalize(sample.Weather[0].Description))
		}
	}

	return b.String(), nil
}
