package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/adapters/external"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/core/statistics"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/mocks"
	"weatherdash.app/internal/ports"
)

var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Debug(string, ...ports.Field) {}
func (nopLogger) Info(string, ...ports.Field)  {}
func (nopLogger) Warn(string, ...ports.Field)  {}
func (nopLogger) Error(string, ...ports.Field) {}

type staticHealth map[string]ports.HealthStatus

func (h staticHealth) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	return h
}

type testServer struct {
	server   *HTTPServerAdapter
	provider *mocks.WeatherProvider
	history  *mocks.HistoryRepository
	store    *external.MemoryWeatherStore
	metrics  *infrastructure.PrometheusMetricsCollector
}

func newTestServer(t *testing.T, historyEnabled bool) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ts := &testServer{
		provider: mocks.NewWeatherProvider(t),
		history:  mocks.NewHistoryRepository(t),
		store:    external.NewMemoryWeatherStore(),
		metrics:  infrastructure.NewPrometheusMetricsCollector(),
	}
	ts.provider.EXPECT().ProviderName().Return("OpenWeatherMap").Maybe()

	cfg := mocks.NewConfigProvider(t)
	cfg.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{
		CurrentTTL:  10 * time.Minute,
		ForecastTTL: 30 * time.Minute,
		HasAPIKey:   true,
	}).Maybe()
	cfg.EXPECT().GetCacheConfig().Return(ports.CacheConfig{Type: "memory"}).Maybe()
	cfg.EXPECT().GetHistoryConfig().Return(ports.HistoryConfig{
		Enabled:      historyEnabled,
		DefaultLimit: 24,
		MaxLimit:     200,
	}).Maybe()
	if historyEnabled {
		ts.history.EXPECT().Record(mock.Anything, mock.Anything).Return(nil).Maybe()
	}

	useCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Provider: ts.provider,
		Store:    ts.store,
		History:  ts.history,
		Config:   cfg,
		Logger:   nopLogger{},
		Metrics:  ts.metrics,
		Aggregator: &statistics.Aggregator{
			Location: time.UTC,
			Now:      func() time.Time { return testNow },
		},
	})
	require.NoError(t, err)

	ts.server, err = NewHTTPServerAdapter(ServerOptions{
		Config:         ServerConfig{Port: 8080},
		WeatherUseCase: useCase,
		MetricsHandler: ts.metrics.Handler(),
		HealthChecker:  staticHealth{"cache": {Component: "cache", Status: ports.StatusHealthy}},
		Logger:         nopLogger{},
	})
	require.NoError(t, err)

	return ts
}

func (ts *testServer) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	ts.server.GetRouter().ServeHTTP(rec, req)
	return rec
}

func newRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func londonSample() *ports.WeatherSample {
	aqi := 2
	return &ports.WeatherSample{
		CityName:           "London",
		Country:            "GB",
		Latitude:           51.51,
		Longitude:          -0.13,
		Temperature:        15.2,
		FeelsLike:          14.8,
		Humidity:           72,
		Pressure:           1012,
		WindSpeed:          4.1,
		UVIndex:            3.5,
		AirQuality:         &aqi,
		WeatherMain:        "Clouds",
		WeatherDescription: "broken clouds",
		CreatedAt:          testNow,
	}
}

func londonForecast() []ports.ForecastSample {
	var samples []ports.ForecastSample
	for i, temp := range []float64{14, 16, 18} {
		samples = append(samples, ports.ForecastSample{
			CityName:    "London",
			Date:        testNow.Add(time.Duration(i+1) * 24 * time.Hour),
			Temperature: temp,
			Humidity:    70,
			WindSpeed:   4,
			WeatherMain: "Rain",
			CreatedAt:   testNow,
		})
	}
	return samples
}
