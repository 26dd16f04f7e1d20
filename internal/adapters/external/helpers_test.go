package external

import (
	"context"
	"sync"
	"time"

	"weatherdash.app/internal/ports"
)

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

type testLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) {
	l.addEntry("DEBUG", msg, fields...)
}

func (l *testLogger) Info(msg string, fields ...ports.Field) {
	l.addEntry("INFO", msg, fields...)
}

func (l *testLogger) Warn(msg string, fields ...ports.Field) {
	l.addEntry("WARN", msg, fields...)
}

func (l *testLogger) Error(msg string, fields ...ports.Field) {
	l.addEntry("ERROR", msg, fields...)
}

func (l *testLogger) addEntry(level, message string, fields ...ports.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fieldMap := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		fieldMap[f.Key] = f.Value
	}
	l.entries = append(l.entries, logEntry{level: level, message: message, fields: fieldMap})
}

func (l *testLogger) byLevel(level string) []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []logEntry
	for _, e := range l.entries {
		if e.level == level {
			out = append(out, e)
		}
	}
	return out
}

// testWeatherProvider returns canned results and counts calls
type testWeatherProvider struct {
	mu       sync.Mutex
	name     string
	current  *ports.WeatherSample
	forecast []ports.ForecastSample
	err      error
	delay    time.Duration
	calls    int
}

func (p *testWeatherProvider) CurrentByCity(ctx context.Context, city string) (*ports.WeatherSample, error) {
	p.record()
	if p.err != nil {
		return nil, p.err
	}
	return p.current, nil
}

func (p *testWeatherProvider) CurrentByCoordinates(ctx context.Context, lat, lon float64) (*ports.WeatherSample, error) {
	return p.CurrentByCity(ctx, "")
}

func (p *testWeatherProvider) ForecastByCity(ctx context.Context, city string) ([]ports.ForecastSample, error) {
	p.record()
	if p.err != nil {
		return nil, p.err
	}
	return p.forecast, nil
}

func (p *testWeatherProvider) ProviderName() string {
	return p.name
}

func (p *testWeatherProvider) record() {
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
}

func (p *testWeatherProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
