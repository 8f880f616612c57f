package models

// Condition is one entry of the "weather" array present in every
// OpenWeatherMap response.
type Condition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CurrentConditions represents the OpenWeatherMap /weather response.
// Only the fields this client consumes are declared.
type CurrentConditions struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []Condition `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Sys struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
}

// ForecastResponse represents the OpenWeatherMap /forecast response: a list
// of 3-hour samples plus city metadata.
type ForecastResponse struct {
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
	List []ForecastSample `json:"list"`
}

// ForecastSample is a single 3-hour forecast data point.
type ForecastSample struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []Condition `json:"weather"`
}
