package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// getWeather handles GET /api/weather/:city
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	request, ok := s.bindCity(c)
	if !ok {
		return
	}

	sample, err := s.weatherUseCase.GetCurrent(c.Request.Context(), request)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, sample)
}

// getWeatherByCoordinates handles GET /api/weather/coords?lat=&lon=
func (s *HTTPServerAdapter) getWeatherByCoordinates(c *gin.Context) {
	request, ok := s.bindCoordinates(c)
	if !ok {
		return
	}

	sample, err := s.weatherUseCase.GetCurrentByCoordinates(c.Request.Context(), request)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, sample)
}

// getForecast handles GET /api/forecast/:city
func (s *HTTPServerAdapter) getForecast(c *gin.Context) {
	request, ok := s.bindCity(c)
	if !ok {
		return
	}

	forecast, err := s.weatherUseCase.GetForecast(c.Request.Context(), request)
	if err != nil {
		s.handleError(c, err)
		return
	}
	if forecast == nil {
		forecast = []ports.ForecastSample{}
	}

	c.JSON(http.StatusOK, forecast)
}

// getStatistics handles GET /api/weather/statistics/:city
func (s *HTTPServerAdapter) getStatistics(c *gin.Context) {
	request, ok := s.bindCity(c)
	if !ok {
		return
	}

	stats, err := s.weatherUseCase.GetStatistics(c.Request.Context(), request)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// getStatisticsByCoordinates handles GET /api/weather/statistics/coords?lat=&lon=
func (s *HTTPServerAdapter) getStatisticsByCoordinates(c *gin.Context) {
	request, ok := s.bindCoordinates(c)
	if !ok {
		return
	}

	stats, err := s.weatherUseCase.GetStatisticsByCoordinates(c.Request.Context(), request)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// getHistory handles GET /api/weather/history/:city?limit=
func (s *HTTPServerAdapter) getHistory(c *gin.Context) {
	cityRequest, ok := s.bindCity(c)
	if !ok {
		return
	}

	var query historyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, errors.NewValidationError("limit must be a positive integer"))
		return
	}

	observations, err := s.weatherUseCase.GetHistory(c.Request.Context(), weather.HistoryRequest{
		City:  cityRequest.City,
		Limit: query.Limit,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}
	if observations == nil {
		observations = []ports.Observation{}
	}

	c.JSON(http.StatusOK, observations)
}

func (s *HTTPServerAdapter) bindCity(c *gin.Context) (weather.CityRequest, bool) {
	var params cityParams
	if err := c.ShouldBindUri(&params); err != nil {
		s.handleError(c, errors.NewValidationError("city must be a non-empty name of at most 100 characters"))
		return weather.CityRequest{}, false
	}
	return weather.CityRequest{City: params.City}, true
}

func (s *HTTPServerAdapter) bindCoordinates(c *gin.Context) (weather.CoordinatesRequest, bool) {
	var query coordinatesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, errors.NewValidationError("lat and lon query parameters must be valid coordinates"))
		return weather.CoordinatesRequest{}, false
	}
	return weather.CoordinatesRequest{Latitude: *query.Lat, Longitude: *query.Lon}, true
}
