package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/core/statistics"
	"weatherdash.app/internal/mocks"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

func newRuntime(t *testing.T) (*runtime, *mocks.WeatherProvider, *bytes.Buffer) {
	provider := mocks.NewWeatherProvider(t)
	out := &bytes.Buffer{}
	return &runtime{
		provider: provider,
		cfg:      &config.Config{Statistics: config.StatisticsConfig{Timezone: "UTC"}},
		out:      out,
		compact:  true,
	}, provider, out
}

func TestCurrentCmd_PrintsSample(t *testing.T) {
	rt, provider, out := newRuntime(t)
	provider.EXPECT().CurrentByCity(mock.Anything, "Kyiv").
		Return(&ports.WeatherSample{CityName: "Kyiv", Temperature: 12.5}, nil)

	require.NoError(t, (&CurrentCmd{City: "Kyiv"}).Run(context.Background(), rt))

	var sample ports.WeatherSample
	require.NoError(t, json.Unmarshal(out.Bytes(), &sample))
	assert.Equal(t, "Kyiv", sample.CityName)
	assert.Equal(t, 12.5, sample.Temperature)
}

func TestForecastCmd_EmptyForecastIsArray(t *testing.T) {
	rt, provider, out := newRuntime(t)
	provider.EXPECT().ForecastByCity(mock.Anything, "Kyiv").Return(nil, nil)

	require.NoError(t, (&ForecastCmd{City: "Kyiv"}).Run(context.Background(), rt))
	assert.Equal(t, "[]\n", out.String())
}

func TestStatsCmd_AggregatesUpstreamData(t *testing.T) {
	rt, provider, out := newRuntime(t)
	now := time.Now().UTC()
	provider.EXPECT().CurrentByCity(mock.Anything, "Kyiv").
		Return(&ports.WeatherSample{CityName: "Kyiv", Temperature: 10, WeatherMain: "Clear", CreatedAt: now}, nil)
	provider.EXPECT().ForecastByCity(mock.Anything, "Kyiv").
		Return([]ports.ForecastSample{
			{CityName: "Kyiv", Date: now.Add(3 * time.Hour), Temperature: 20, WeatherMain: "Rain"},
		}, nil)

	require.NoError(t, (&StatsCmd{City: "Kyiv"}).Run(context.Background(), rt))

	var stats statistics.Statistics
	require.NoError(t, json.Unmarshal(out.Bytes(), &stats))
	assert.Equal(t, 15.0, stats.Temperature.Average)
	assert.Equal(t, statistics.TrendUp, stats.Temperature.Trend)
	assert.Equal(t, 1, stats.Conditions.Sunny)
	assert.Equal(t, 1, stats.Conditions.Rainy)
}

func TestCommands_RejectInvalidCity(t *testing.T) {
	rt, _, out := newRuntime(t)

	err := (&CurrentCmd{City: "   "}).Run(context.Background(), rt)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Empty(t, out.String())
}

func TestCommands_PropagateUpstreamErrors(t *testing.T) {
	rt, provider, _ := newRuntime(t)
	provider.EXPECT().CurrentByCity(mock.Anything, "Atlantis").
		Return(nil, errors.NewNotFoundError("City not found"))

	err := (&StatsCmd{City: "Atlantis"}).Run(context.Background(), rt)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
