package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"weather-cli/config"
	"weather-cli/datasource"
	"weather-cli/format"
)

// options holds the parsed command-line arguments.
type options struct {
	location string
	isZip    bool
	country  string
	apiKey   string
	forecast bool
	days     int
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Printf("Error: %v\n", err)
		return
	}

	if err := run(opts); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

func parseArgs(args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet("weather-cli", flag.ContinueOnError)
	fs.BoolVar(&opts.isZip, "zip", false, "Treat the location as a zip code")
	fs.StringVar(&opts.country, "country", "us", "Two-letter country code")
	fs.StringVar(&opts.apiKey, "api-key", "", "OpenWeatherMap API key (overrides the environment)")
	fs.BoolVar(&opts.forecast, "forecast", false, "Also show the forecast")
	fs.IntVar(&opts.days, "days", 3, "Number of days for the forecast")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: weather-cli [flags] <location>\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return options{}, fmt.Errorf("missing location argument")
	}
	opts.location = fs.Arg(0)

	return opts, nil
}

func run(opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// An explicit --api-key wins over the environment value.
	if opts.apiKey != "" {
		cfg.APIKey = opts.apiKey
	}

	client := datasource.NewOpenWeatherMapClient(cfg)
	query := datasource.NewWeatherQuery(opts.location, opts.isZip, opts.country, opts.days)
	ctx := context.Background()

	conditions, err := client.GetCurrentWeather(ctx, query)
	if err != nil {
		return err
	}

	current, err := format.CurrentWeather(conditions)
	if err != nil {
		return err
	}
	fmt.Println(current)

	if opts.forecast {
		forecast, err := client.GetForecast(ctx, query)
		if err != nil {
			return err
		}

		text, err := format.Forecast(forecast, query.Days)
		if err != nil {
			return err
		}
		fmt.Println(text)
	}

	return nil
}
