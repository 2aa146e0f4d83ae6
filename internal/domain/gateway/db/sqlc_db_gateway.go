package db

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"weather-dashboard/internal/domain/model"
)

type SQLCHealthDBGateway struct {
	DB *sql.DB
}

var _ HealthDBGateway = (*SQLCHealthDBGateway)(nil)

func NewSQLCHealthDBGateway(db *sql.DB) *SQLCHealthDBGateway {
	return &SQLCHealthDBGateway{DB: db}
}

// Health pings the pool and reports its usage
func (gateway *SQLCHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	err := gateway.DB.PingContext(ctx)
	stats := gateway.DB.Stats()
	details := map[string]string{
		"open_connections": strconv.Itoa(stats.OpenConnections),
		"in_use":           strconv.Itoa(stats.InUse),
		"idle":             strconv.Itoa(stats.Idle),
	}

	if err != nil {
		details["message"] = err.Error()
		return model.ComponentHealthStatus{
			Status:  model.StatusDown,
			Details: details,
		}
	}

	details["message"] = string(model.StatusUp)
	return model.ComponentHealthStatus{
		Status:  model.StatusUp,
		Details: details,
	}
}
