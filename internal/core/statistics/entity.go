package statistics

// Trend is the direction of a metric from the current sample to the last forecast slice
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// TemperatureStats summarizes temperatures over current + forecast
type TemperatureStats struct {
	Current float64 `json:"current"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Trend   Trend   `json:"trend"`
}

// MetricStats summarizes humidity or wind
type MetricStats struct {
	Current float64 `json:"current"`
	Average float64 `json:"average"`
	Trend   Trend   `json:"trend"`
}

// ConditionCounts tallies samples per condition category
type ConditionCounts struct {
	Sunny  int `json:"sunny"`
	Cloudy int `json:"cloudy"`
	Rainy  int `json:"rainy"`
	Stormy int `json:"stormy"`
}

// Total is the sum over all categories. It can exceed the sample count
// when one condition matches several categories.
func (c ConditionCounts) Total() int {
	return c.Sunny + c.Cloudy + c.Rainy + c.Stormy
}

// WeeklyDayStatistic holds the rounded daily averages of one calendar day
type WeeklyDayStatistic struct {
	Day       string  `json:"day"`
	Temp      float64 `json:"temp"`
	Humidity  float64 `json:"humidity"`
	Wind      float64 `json:"wind"`
	Condition string  `json:"condition"`
}

// Statistics is the derived view over one current sample and its forecast
type Statistics struct {
	Temperature TemperatureStats     `json:"temperature"`
	Humidity    MetricStats          `json:"humidity"`
	Wind        MetricStats          `json:"wind"`
	Conditions  ConditionCounts      `json:"conditions"`
	WeeklyData  []WeeklyDayStatistic `json:"weeklyData"`
}
