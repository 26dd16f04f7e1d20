package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/app"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/core/statistics"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
	"weatherdash.app/pkg/logger"
	"weatherdash.app/pkg/validation"
)

// Globals are shared by every subcommand
type Globals struct {
	Timeout  time.Duration `help:"Overall deadline for upstream calls." default:"30s"`
	LogLevel string        `help:"Log level for diagnostics on stderr." default:"warn" env:"LOG_LEVEL"`
	Compact  bool          `help:"Print JSON on a single line."`
}

type CLI struct {
	Globals

	Current  CurrentCmd  `cmd:"" help:"Fetch current weather for a city."`
	Forecast ForecastCmd `cmd:"" help:"Fetch the forecast for a city."`
	Stats    StatsCmd    `cmd:"" help:"Compute dashboard statistics for a city."`
}

// runtime is built once after parsing and bound into every Run method
type runtime struct {
	provider ports.WeatherProvider
	cfg      *config.Config
	out      io.Writer
	compact  bool
}

type CurrentCmd struct {
	City string `arg:"" help:"City name."`
}

func (c *CurrentCmd) Run(ctx context.Context, rt *runtime) error {
	if err := checkCity(c.City); err != nil {
		return err
	}
	sample, err := rt.provider.CurrentByCity(ctx, c.City)
	if err != nil {
		return err
	}
	return rt.print(sample)
}

type ForecastCmd struct {
	City string `arg:"" help:"City name."`
}

func (c *ForecastCmd) Run(ctx context.Context, rt *runtime) error {
	if err := checkCity(c.City); err != nil {
		return err
	}
	forecast, err := rt.provider.ForecastByCity(ctx, c.City)
	if err != nil {
		return err
	}
	if forecast == nil {
		forecast = []ports.ForecastSample{}
	}
	return rt.print(forecast)
}

type StatsCmd struct {
	City string `arg:"" help:"City name."`
}

func (c *StatsCmd) Run(ctx context.Context, rt *runtime) error {
	if err := checkCity(c.City); err != nil {
		return err
	}
	current, err := rt.provider.CurrentByCity(ctx, c.City)
	if err != nil {
		return err
	}
	forecast, err := rt.provider.ForecastByCity(ctx, c.City)
	if err != nil {
		return err
	}

	loc, err := rt.cfg.Statistics.Location()
	if err != nil {
		return err
	}
	return rt.print(statistics.NewAggregator(loc).Compute(current, forecast))
}

func checkCity(city string) error {
	if !validation.IsValidCityName(city) {
		return errors.NewValidationError("invalid city name")
	}
	return nil
}

func (rt *runtime) print(v interface{}) error {
	encoder := json.NewEncoder(rt.out)
	if !rt.compact {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(v)
}

func main() {
	_ = godotenv.Load()

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("weatherctl"),
		kong.Description("Query the upstream weather API the way the dashboard does, without the cache."),
		kong.UsageOnError(),
	)

	// stdout carries the JSON result, so diagnostics go to stderr
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logger.ParseLevel(cli.LogLevel),
	})))

	cfg, err := config.LoadConfig()
	kctx.FatalIfErrorf(err)

	ctx, cancel := context.WithTimeout(context.Background(), cli.Timeout)
	defer cancel()

	rt := &runtime{
		provider: app.BuildWeatherProvider(cfg.Weather, infrastructure.NewSlogLoggerAdapter(slog.Default()), nil),
		cfg:      cfg,
		out:      os.Stdout,
		compact:  cli.Compact,
	}

	kctx.BindTo(ctx, (*context.Context)(nil))
	if err := kctx.Run(rt); err != nil {
		fmt.Fprintln(os.Stderr, "weatherctl:", err)
		os.Exit(1)
	}
}
