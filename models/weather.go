package models

import (
	"fmt"
	"strings"
)

// CurrentWeather is the structured current-weather record projected from a
// CurrentConditions response.
type CurrentWeather struct {
	Location    string  `json:"location"`
	Country     string  `json:"country"`
	Condition   string  `json:"condition"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feelsLike"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Sunrise     string  `json:"sunrise"`
	Sunset      string  `json:"sunset"`
}

// String renders the record as a printable field-per-line block.
func (w CurrentWeather) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Current weather for %s, %s:\n", w.Location, w.Country)
	fmt.Fprintf(&b, "  Condition:   %s\n", w.Condition)
	fmt.Fprintf(&b, "  Temperature: %.1f°F (feels like %.1f°F)\n", w.Temperature, w.FeelsLike)
	fmt.Fprintf(&b, "  Humidity:    %d%%\n", w.Humidity)
	fmt.Fprintf(&b, "  Wind speed:  %.1f mph\n", w.WindSpeed)
	fmt.Fprintf(&b, "  Sunrise:     %s\n", w.Sunrise)
	fmt.Fprintf(&b, "  Sunset:      %s", w.Sunset)

	return b.String()
}
