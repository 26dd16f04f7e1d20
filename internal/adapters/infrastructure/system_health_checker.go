package infrastructure

import (
	"context"

	"weatherdash.app/internal/ports"
)

const (
	StatusHealthy   = ports.StatusHealthy
	StatusDegraded  = ports.StatusDegraded
	StatusUnhealthy = ports.StatusUnhealthy
)

// SystemHealthChecker aggregates all component checks by name
type SystemHealthChecker struct {
	checkers map[string]ports.HealthChecker
}

func NewSystemHealthChecker(checkers map[string]ports.HealthChecker) *SystemHealthChecker {
	registered := make(map[string]ports.HealthChecker, len(checkers))
	for name, checker := range checkers {
		if checker != nil {
			registered[name] = checker
		}
	}
	return &SystemHealthChecker{checkers: registered}
}

func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers))
	for name, checker := range s.checkers {
		results[name] = checker.Check(ctx)
	}
	return results
}
