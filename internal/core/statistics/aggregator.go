package statistics

import (
	"math"
	"time"

	"weatherdash.app/internal/ports"
)

const weekDays = 7

// Aggregator computes statistics against an injectable clock and timezone
type Aggregator struct {
	Location *time.Location
	Now      func() time.Time
}

func NewAggregator(loc *time.Location) *Aggregator {
	if loc == nil {
		loc = time.Local
	}
	return &Aggregator{Location: loc, Now: time.Now}
}

func (a *Aggregator) Compute(current *ports.WeatherSample, forecast []ports.ForecastSample) Statistics {
	return Aggregate(current, forecast, a.CurrentTime(), a.Location)
}

// CurrentTime reads the aggregator clock
func (a *Aggregator) CurrentTime() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

// Aggregate derives Statistics from a current sample and its forecast.
// current must not be nil. Weekly buckets use calendar days in loc.
func Aggregate(current *ports.WeatherSample, forecast []ports.ForecastSample, now time.Time, loc *time.Location) Statistics {
	temps := make([]float64, 0, len(forecast)+1)
	humidities := make([]float64, 0, len(forecast)+1)
	winds := make([]float64, 0, len(forecast)+1)

	temps = append(temps, current.Temperature)
	humidities = append(humidities, float64(current.Humidity))
	winds = append(winds, current.WindSpeed)

	var conditions ConditionCounts
	conditions.add(current.WeatherMain)

	for _, f := range forecast {
		temps = append(temps, f.Temperature)
		humidities = append(humidities, float64(f.Humidity))
		winds = append(winds, f.WindSpeed)
		conditions.add(f.WeatherMain)
	}

	minTemp, maxTemp := minMax(temps)

	return Statistics{
		Temperature: TemperatureStats{
			Current: current.Temperature,
			Average: roundHalfUp(mean(temps)),
			Min:     minTemp,
			Max:     maxTemp,
			Trend:   trendOf(temps),
		},
		Humidity: MetricStats{
			Current: float64(current.Humidity),
			Average: roundHalfUp(mean(humidities)),
			Trend:   trendOf(humidities),
		},
		Wind: MetricStats{
			Current: current.WindSpeed,
			Average: roundHalfUp(mean(winds)),
			Trend:   trendOf(winds),
		},
		Conditions: conditions,
		WeeklyData: weekly(current, forecast, now, loc),
	}
}

// trendOf compares the last value to the first (current) one. Equal values count as down.
func trendOf(values []float64) Trend {
	if len(values) < 2 {
		return TrendStable
	}
	if values[len(values)-1] > values[0] {
		return TrendUp
	}
	return TrendDown
}

func weekly(current *ports.WeatherSample, forecast []ports.ForecastSample, now time.Time, loc *time.Location) []WeeklyDayStatistic {
	if loc == nil {
		loc = time.Local
	}
	today := now.In(loc)

	days := make([]WeeklyDayStatistic, 0, weekDays)
	for i := 0; i < weekDays; i++ {
		target := today.AddDate(0, 0, i)

		var temps, humidities, winds []float64
		var mains []string
		for _, f := range forecast {
			if !sameDay(f.Date.In(loc), target) {
				continue
			}
			temps = append(temps, f.Temperature)
			humidities = append(humidities, float64(f.Humidity))
			winds = append(winds, f.WindSpeed)
			mains = append(mains, f.WeatherMain)
		}

		switch {
		case len(temps) > 0:
			days = append(days, WeeklyDayStatistic{
				Day:       shortDay(target),
				Temp:      roundHalfUp(mean(temps)),
				Humidity:  roundHalfUp(mean(humidities)),
				Wind:      roundHalfUp(mean(winds)),
				Condition: modal(mains),
			})
		case i == 0:
			days = append(days, WeeklyDayStatistic{
				Day:       shortDay(target),
				Temp:      roundHalfUp(current.Temperature),
				Humidity:  float64(current.Humidity),
				Wind:      roundHalfUp(current.WindSpeed),
				Condition: current.WeatherMain,
			})
		}
	}
	return days
}

// modal returns the most frequent value; on a tie the one seen first wins
func modal(values []string) string {
	counts := make(map[string]int, len(values))
	best, bestCount := "", 0
	for _, v := range values {
		counts[v]++
	}
	for _, v := range values {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func shortDay(t time.Time) string {
	return t.Weekday().String()[:3]
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func minMax(values []float64) (float64, float64) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
