package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const (
	defaultOpenWeatherMapURL = "https://api.openweathermap.org/data/2.5"
	defaultRequestTimeout    = 10 * time.Second
	errorBodyExcerptLimit    = 512
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenWeatherMapProviderAdapter implements WeatherProvider port for OpenWeatherMap.
// Current weather is enriched with UV index and air quality, each best-effort.
type OpenWeatherMapProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
	now     func() time.Time
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Logger  ports.Logger
	// Client overrides the default http.Client
	Client HTTPClient
}

type owmCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// OpenWeatherMapCurrentResponse represents the /weather response
type OpenWeatherMapCurrentResponse struct {
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Weather []owmCondition `json:"weather"`
	Main    struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Pressure  float64 `json:"pressure"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Visibility float64 `json:"visibility"`
	Wind       struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Sys struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Name string `json:"name"`
}

// OpenWeatherMapForecastResponse represents the /forecast response
type OpenWeatherMapForecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			TempMin  float64 `json:"temp_min"`
			TempMax  float64 `json:"temp_max"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Weather []owmCondition `json:"weather"`
		Wind    struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Pop float64 `json:"pop"`
	} `json:"list"`
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
}

type owmUVResponse struct {
	Value *float64 `json:"value"`
}

type owmAirPollutionResponse struct {
	List []struct {
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
	} `json:"list"`
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) *OpenWeatherMapProviderAdapter {
	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultOpenWeatherMapURL
	}

	timeout := params.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	return &OpenWeatherMapProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		client:  client,
		logger:  params.Logger,
		now:     time.Now,
	}
}

// CurrentByCity retrieves current weather for a city name
func (p *OpenWeatherMapProviderAdapter) CurrentByCity(ctx context.Context, city string) (*ports.WeatherSample, error) {
	if strings.TrimSpace(city) == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}
	return p.current(ctx, url.Values{"q": {city}})
}

// CurrentByCoordinates retrieves current weather for a coordinate pair
func (p *OpenWeatherMapProviderAdapter) CurrentByCoordinates(ctx context.Context, lat, lon float64) (*ports.WeatherSample, error) {
	return p.current(ctx, url.Values{
		"lat": {formatCoordinate(lat)},
		"lon": {formatCoordinate(lon)},
	})
}

// ForecastByCity retrieves the 5 day / 3 hour forecast, ordered as delivered
func (p *OpenWeatherMapProviderAdapter) ForecastByCity(ctx context.Context, city string) ([]ports.ForecastSample, error) {
	if strings.TrimSpace(city) == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	var resp OpenWeatherMapForecastResponse
	if err := p.getJSON(ctx, "forecast", url.Values{"q": {city}, "units": {"metric"}}, &resp); err != nil {
		return nil, err
	}

	cityName := resp.City.Name
	if cityName == "" {
		cityName = city
	}

	createdAt := p.now()
	samples := make([]ports.ForecastSample, 0, len(resp.List))
	for _, item := range resp.List {
		condition := firstCondition(item.Weather)
		samples = append(samples, ports.ForecastSample{
			CityName:            cityName,
			Date:                time.Unix(item.Dt, 0).UTC(),
			Temperature:         item.Main.Temp,
			TempMin:             item.Main.TempMin,
			TempMax:             item.Main.TempMax,
			Humidity:            int(math.Round(item.Main.Humidity)),
			WindSpeed:           item.Wind.Speed,
			WeatherMain:         condition.Main,
			WeatherDescription:  condition.Description,
			WeatherIcon:         condition.Icon,
			PrecipitationChance: int(math.Round(item.Pop * 100)),
			CreatedAt:           createdAt,
		})
	}

	return samples, nil
}

// ProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) ProviderName() string {
	return "openweathermap"
}

func (p *OpenWeatherMapProviderAdapter) current(ctx context.Context, query url.Values) (*ports.WeatherSample, error) {
	query.Set("units", "metric")

	var resp OpenWeatherMapCurrentResponse
	if err := p.getJSON(ctx, "weather", query, &resp); err != nil {
		return nil, err
	}
	if resp.Name == "" {
		return nil, errors.NewExternalAPIError("OpenWeatherMap response has no city name", nil)
	}

	condition := firstCondition(resp.Weather)
	sample := &ports.WeatherSample{
		CityName:           resp.Name,
		Country:            resp.Sys.Country,
		Latitude:           resp.Coord.Lat,
		Longitude:          resp.Coord.Lon,
		Temperature:        resp.Main.Temp,
		FeelsLike:          resp.Main.FeelsLike,
		Humidity:           int(math.Round(resp.Main.Humidity)),
		Pressure:           int(math.Round(resp.Main.Pressure)),
		WindSpeed:          resp.Wind.Speed,
		WindDirection:      int(math.Round(resp.Wind.Deg)) % 360,
		Visibility:         int(resp.Visibility),
		WeatherMain:        condition.Main,
		WeatherDescription: condition.Description,
		WeatherIcon:        condition.Icon,
		Sunrise:            time.Unix(resp.Sys.Sunrise, 0).UTC(),
		Sunset:             time.Unix(resp.Sys.Sunset, 0).UTC(),
	}

	sample.ApplyUVIndex(p.uvIndex(ctx, resp.Coord.Lat, resp.Coord.Lon))
	sample.ApplyAirQuality(p.airQuality(ctx, resp.Coord.Lat, resp.Coord.Lon))
	sample.CreatedAt = p.now()

	return sample, nil
}

func (p *OpenWeatherMapProviderAdapter) uvIndex(ctx context.Context, lat, lon float64) ports.Enrichment[float64] {
	var resp owmUVResponse
	err := p.getJSON(ctx, "uvi", url.Values{"lat": {formatCoordinate(lat)}, "lon": {formatCoordinate(lon)}}, &resp)
	if err != nil || resp.Value == nil {
		p.logger.Warn("UV index unavailable",
			ports.F("lat", lat),
			ports.F("lon", lon),
			ports.F("error", err))
		return ports.Unavailable[float64]()
	}
	return ports.Measured(math.Max(*resp.Value, 0))
}

func (p *OpenWeatherMapProviderAdapter) airQuality(ctx context.Context, lat, lon float64) ports.Enrichment[int] {
	var resp owmAirPollutionResponse
	err := p.getJSON(ctx, "air_pollution", url.Values{"lat": {formatCoordinate(lat)}, "lon": {formatCoordinate(lon)}}, &resp)
	if err != nil || len(resp.List) == 0 {
		p.logger.Warn("Air quality unavailable",
			ports.F("lat", lat),
			ports.F("lon", lon),
			ports.F("error", err))
		return ports.Unavailable[int]()
	}

	aqi := resp.List[0].Main.AQI
	if aqi < 1 || aqi > 5 {
		return ports.Unavailable[int]()
	}
	return ports.Measured(aqi)
}

// getJSON calls one endpoint and decodes the body into target.
// 404 maps to NotFound, 401 to UpstreamAuth, other failures to ExternalAPI.
func (p *OpenWeatherMapProviderAdapter) getJSON(ctx context.Context, endpoint string, query url.Values, target interface{}) error {
	if p.apiKey == "" {
		return errors.NewUpstreamAuthError("OpenWeatherMap API key is not configured", nil)
	}
	query.Set("appid", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/"+endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return errors.NewExternalAPIError("failed to build OpenWeatherMap request", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.NewExternalAPIError("failed to call OpenWeatherMap", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			p.logger.Warn("Failed to close OpenWeatherMap response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyExcerptLimit))
		p.logger.Error("OpenWeatherMap returned an error",
			ports.F("endpoint", endpoint),
			ports.F("status", resp.StatusCode),
			ports.F("body", string(excerpt)))

		switch resp.StatusCode {
		case http.StatusNotFound:
			return errors.NewNotFoundError("City not found")
		case http.StatusUnauthorized:
			return errors.NewUpstreamAuthError("OpenWeatherMap rejected the API key", nil)
		default:
			return errors.NewExternalAPIError(fmt.Sprintf("OpenWeatherMap returned status %d", resp.StatusCode), nil)
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return errors.NewExternalAPIError("failed to decode OpenWeatherMap response", err)
	}
	return nil
}

func firstCondition(conditions []owmCondition) owmCondition {
	if len(conditions) == 0 {
		return owmCondition{}
	}
	return conditions[0]
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
