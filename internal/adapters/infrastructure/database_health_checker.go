package infrastructure

import (
	"context"
	"time"

	"gorm.io/gorm"
	"weatherdash.app/internal/ports"
)

const historyPingTimeout = 2 * time.Second

// DatabaseHealthChecker pings the observation history database and reports pool usage
type DatabaseHealthChecker struct {
	db *gorm.DB
}

func NewDatabaseHealthChecker(db *gorm.DB) *DatabaseHealthChecker {
	return &DatabaseHealthChecker{db: db}
}

func (d *DatabaseHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	unhealthy := func(reason string) ports.HealthStatus {
		return ports.HealthStatus{Component: "history", Status: StatusUnhealthy, Error: reason}
	}

	if d.db == nil {
		return unhealthy("database instance is nil")
	}

	sqlDB, err := d.db.DB()
	if err != nil {
		return unhealthy("failed to get underlying database connection")
	}

	pingCtx, cancel := context.WithTimeout(ctx, historyPingTimeout)
	defer cancel()

	started := time.Now()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return unhealthy(err.Error())
	}

	stats := sqlDB.Stats()
	return ports.HealthStatus{
		Component: "history",
		Status:    StatusHealthy,
		Details: map[string]interface{}{
			"connected":       true,
			"latencyMs":       time.Since(started).Milliseconds(),
			"openConnections": stats.OpenConnections,
			"inUse":           stats.InUse,
		},
	}
}
