package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/pkg/errors"
)

const londonWeatherJSON = `{
	"coord": {"lon": -0.1257, "lat": 51.5085},
	"weather": [{"id": 800, "main": "Clear", "description": "clear sky", "icon": "01d"}],
	"main": {"temp": 15.5, "feels_like": 14.9, "pressure": 1012, "humidity": 78},
	"visibility": 10000,
	"wind": {"speed": 4.1, "deg": 250},
	"sys": {"country": "GB", "sunrise": 1718164800, "sunset": 1718224200},
	"name": "London",
	"cod": 200
}`

const londonForecastJSON = `{
	"list": [
		{"dt": 1718175600, "main": {"temp": 16.2, "temp_min": 15.0, "temp_max": 17.1, "humidity": 70},
		 "weather": [{"main": "Clouds", "description": "few clouds", "icon": "02d"}], "wind": {"speed": 3.2}, "pop": 0.12},
		{"dt": 1718186400, "main": {"temp": 18.4, "temp_min": 18.0, "temp_max": 19.0, "humidity": 61},
		 "weather": [{"main": "Rain", "description": "light rain", "icon": "10d"}], "wind": {"speed": 5.0}, "pop": 0.875}
	],
	"city": {"name": "London", "country": "GB"}
}`

// owmServer routes the endpoints used by the provider and records the requested paths
type owmServer struct {
	*httptest.Server
	mu       sync.Mutex
	paths    []string
	handlers map[string]http.HandlerFunc
}

func newOWMServer(t *testing.T, handlers map[string]http.HandlerFunc) *owmServer {
	t.Helper()

	s := &owmServer{handlers: handlers}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.paths = append(s.paths, r.URL.Path)
		s.mu.Unlock()

		if h, ok := s.handlers[r.URL.Path]; ok {
			h(w, r)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *owmServer) requested() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.paths...)
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func newTestProvider(baseURL, apiKey string, logger *testLogger) *OpenWeatherMapProviderAdapter {
	return NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
		Logger:  logger,
	})
}

func TestOpenWeatherMapProvider_CurrentByCity_Success(t *testing.T) {
	server := newOWMServer(t, map[string]http.HandlerFunc{
		"/weather": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "London", r.URL.Query().Get("q"))
			assert.Equal(t, "test-api-key", r.URL.Query().Get("appid"))
			assert.Equal(t, "metric", r.URL.Query().Get("units"))
			respond(http.StatusOK, londonWeatherJSON)(w, r)
		},
		"/uvi": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "51.5085", r.URL.Query().Get("lat"))
			assert.Equal(t, "-0.1257", r.URL.Query().Get("lon"))
			respond(http.StatusOK, `{"lat": 51.5, "lon": -0.12, "value": 6.2}`)(w, r)
		},
		"/air_pollution": respond(http.StatusOK, `{"list": [{"main": {"aqi": 2}}]}`),
	})

	provider := newTestProvider(server.URL, "test-api-key", &testLogger{})
	sample, err := provider.CurrentByCity(context.Background(), "London")

	require.NoError(t, err)
	assert.Equal(t, "London", sample.CityName)
	assert.Equal(t, "GB", sample.Country)
	assert.Equal(t, 51.5085, sample.Latitude)
	assert.Equal(t, 15.5, sample.Temperature)
	assert.Equal(t, 14.9, sample.FeelsLike)
	assert.Equal(t, 78, sample.Humidity)
	assert.Equal(t, 1012, sample.Pressure)
	assert.Equal(t, 4.1, sample.WindSpeed)
	assert.Equal(t, 250, sample.WindDirection)
	assert.Equal(t, 10000, sample.Visibility)
	assert.Equal(t, "Clear", sample.WeatherMain)
	assert.Equal(t, "clear sky", sample.WeatherDescription)
	assert.Equal(t, "01d", sample.WeatherIcon)
	assert.Equal(t, time.Unix(1718164800, 0).UTC(), sample.Sunrise)
	assert.Equal(t, 6.2, sample.UVIndex)
	require.NotNil(t, sample.AirQuality)
	assert.Equal(t, 2, *sample.AirQuality)
	assert.False(t, sample.CreatedAt.IsZero())

	assert.Equal(t, []string{"/weather", "/uvi", "/air_pollution"}, server.requested())
}

func TestOpenWeatherMapProvider_EnrichmentFailuresAreSwallowed(t *testing.T) {
	server := newOWMServer(t, map[string]http.HandlerFunc{
		"/weather":       respond(http.StatusOK, londonWeatherJSON),
		"/uvi":           respond(http.StatusInternalServerError, `{"message": "boom"}`),
		"/air_pollution": respond(http.StatusOK, `not json`),
	})

	logger := &testLogger{}
	provider := newTestProvider(server.URL, "test-api-key", logger)
	sample, err := provider.CurrentByCity(context.Background(), "London")

	require.NoError(t, err)
	assert.Zero(t, sample.UVIndex)
	assert.Nil(t, sample.AirQuality)
	assert.Len(t, logger.byLevel("WARN"), 2)
}

func TestOpenWeatherMapProvider_CurrentByCoordinates(t *testing.T) {
	server := newOWMServer(t, map[string]http.HandlerFunc{
		"/weather": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "51.5074", r.URL.Query().Get("lat"))
			assert.Equal(t, "-0.1278", r.URL.Query().Get("lon"))
			assert.Empty(t, r.URL.Query().Get("q"))
			respond(http.StatusOK, londonWeatherJSON)(w, r)
		},
		"/uvi":           respond(http.StatusOK, `{"value": 1.5}`),
		"/air_pollution": respond(http.StatusOK, `{"list": []}`),
	})

	provider := newTestProvider(server.URL, "test-api-key", &testLogger{})
	sample, err := provider.CurrentByCoordinates(context.Background(), 51.5074, -0.1278)

	require.NoError(t, err)
	assert.Equal(t, "London", sample.CityName)
	assert.Equal(t, 1.5, sample.UVIndex)
	assert.Nil(t, sample.AirQuality)
}

func TestOpenWeatherMapProvider_ForecastByCity(t *testing.T) {
	server := newOWMServer(t, map[string]http.HandlerFunc{
		"/forecast": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "london", r.URL.Query().Get("q"))
			respond(http.StatusOK, londonForecastJSON)(w, r)
		},
	})

	provider := newTestProvider(server.URL, "test-api-key", &testLogger{})
	samples, err := provider.ForecastByCity(context.Background(), "london")

	require.NoError(t, err)
	require.Len(t, samples, 2)

	assert.Equal(t, "London", samples[0].CityName)
	assert.Equal(t, time.Unix(1718175600, 0).UTC(), samples[0].Date)
	assert.Equal(t, 16.2, samples[0].Temperature)
	assert.Equal(t, 15.0, samples[0].TempMin)
	assert.Equal(t, 17.1, samples[0].TempMax)
	assert.Equal(t, 70, samples[0].Humidity)
	assert.Equal(t, "Clouds", samples[0].WeatherMain)
	assert.Equal(t, 12, samples[0].PrecipitationChance)

	assert.Equal(t, "Rain", samples[1].WeatherMain)
	assert.Equal(t, 88, samples[1].PrecipitationChance)
	assert.True(t, samples[0].Date.Before(samples[1].Date))
	assert.Equal(t, samples[0].CreatedAt, samples[1].CreatedAt)
}

func TestOpenWeatherMapProvider_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected errors.ErrorType
		message  string
	}{
		{"NotFound", http.StatusNotFound, `{"cod": "404", "message": "city not found"}`, errors.NotFoundError, "City not found"},
		{"Unauthorized", http.StatusUnauthorized, `{"cod": 401, "message": "Invalid API key"}`, errors.UpstreamAuthError, "API key"},
		{"ServerError", http.StatusBadGateway, `bad gateway`, errors.ExternalAPIError, "status 502"},
		{"MalformedJSON", http.StatusOK, `{"main": `, errors.ExternalAPIError, "decode"},
		{"MissingName", http.StatusOK, `{"main": {"temp": 1}}`, errors.ExternalAPIError, "no city name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newOWMServer(t, map[string]http.HandlerFunc{
				"/weather": respond(tt.status, tt.body),
			})

			logger := &testLogger{}
			provider := newTestProvider(server.URL, "test-api-key", logger)
			sample, err := provider.CurrentByCity(context.Background(), "Atlantis")

			assert.Nil(t, sample)
			var appErr *errors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.expected, appErr.Type)
			assert.Contains(t, appErr.Message, tt.message)
			assert.Equal(t, []string{"/weather"}, server.requested())
		})
	}
}

func TestOpenWeatherMapProvider_LogsStatusAndBody(t *testing.T) {
	server := newOWMServer(t, map[string]http.HandlerFunc{
		"/weather": respond(http.StatusUnauthorized, `{"message": "Invalid API key"}`),
	})

	logger := &testLogger{}
	provider := newTestProvider(server.URL, "bad-key", logger)
	_, err := provider.CurrentByCity(context.Background(), "London")
	require.Error(t, err)

	errorsLogged := logger.byLevel("ERROR")
	require.Len(t, errorsLogged, 1)
	assert.Equal(t, http.StatusUnauthorized, errorsLogged[0].fields["status"])
	assert.Contains(t, errorsLogged[0].fields["body"], "Invalid API key")
}

func TestOpenWeatherMapProvider_MissingAPIKey(t *testing.T) {
	server := newOWMServer(t, nil)

	provider := newTestProvider(server.URL, "", &testLogger{})
	_, err := provider.CurrentByCity(context.Background(), "London")

	assert.True(t, errors.IsUpstreamAuthError(err))
	assert.Empty(t, server.requested())
}

func TestOpenWeatherMapProvider_EmptyCity(t *testing.T) {
	provider := newTestProvider("http://127.0.0.1:1", "key", &testLogger{})

	_, err := provider.CurrentByCity(context.Background(), " ")
	assert.True(t, errors.IsValidationError(err))

	_, err = provider.ForecastByCity(context.Background(), "")
	assert.True(t, errors.IsValidationError(err))
}

func TestOpenWeatherMapProvider_NetworkError(t *testing.T) {
	provider := newTestProvider("http://127.0.0.1:1", "key", &testLogger{})

	_, err := provider.CurrentByCity(context.Background(), "London")

	assert.True(t, errors.IsExternalAPIError(err))
}

func TestOpenWeatherMapProvider_ContextCancelled(t *testing.T) {
	server := newOWMServer(t, map[string]http.HandlerFunc{
		"/weather": respond(http.StatusOK, londonWeatherJSON),
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	provider := newTestProvider(server.URL, "key", &testLogger{})
	_, err := provider.CurrentByCity(ctx, "London")

	assert.True(t, errors.IsExternalAPIError(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpenWeatherMapProvider_DefaultsAndName(t *testing.T) {
	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{APIKey: "key", Logger: &testLogger{}})

	assert.Equal(t, "https://api.openweathermap.org/data/2.5", provider.baseURL)
	assert.Equal(t, "openweathermap", provider.ProviderName())
}
