package datasource

import "net/url"

// Forecast samples arrive in 3-hour steps: 8 per day, 40 max (5 days).
const (
	samplesPerDay = 8
	maxSamples    = 40

	minForecastDays = 1
	maxForecastDays = 5
)

// WeatherQuery describes one lookup: a location (city name or postal code),
// the country it belongs to, and how many forecast days are wanted. Built
// once per invocation and never mutated.
type WeatherQuery struct {
	Location    string
	IsZip       bool
	CountryCode string
	Days        int
}

// NewWeatherQuery builds a query, clamping the forecast day count to the
// provider's 1-5 day range.
func NewWeatherQuery(location string, isZip bool, countryCode string, days int) WeatherQuery {
	if days < minForecastDays {
		days = minForecastDays
	}
	if days > maxForecastDays {
		days = maxForecastDays
	}

	return WeatherQuery{
		Location:    location,
		IsZip:       isZip,
		CountryCode: countryCode,
		Days:        days,
	}
}

// SampleCount converts the day count to the provider's cnt parameter:
// 8 samples per day, capped at the 40-sample limit.
func (q WeatherQuery) SampleCount() int {
	count := q.Days * samplesPerDay
	if count > maxSamples {
		count = maxSamples
	}
	return count
}

// locationParams sets the provider's location parameters: q for city names,
// zip for postal codes, both suffixed with the country code.
func (q WeatherQuery) locationParams(params url.Values) {
	value := q.Location + "," + q.CountryCode
	if q.IsZip {
		params.Set("zip", value)
	} else {
		params.Set("q", value)
	}
}
