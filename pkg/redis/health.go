package redis

import (
	"context"
	"strconv"
	"time"
)

// HealthCheck pings the server and reports connection pool statistics.
func (c *Client) HealthCheck(ctx context.Context) HealthCheck {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	err := c.Ping(ctx)
	latency := time.Since(start)

	stats := c.rdb.PoolStats()
	details := map[string]string{
		"host":        c.config.Host,
		"port":        strconv.Itoa(c.config.Port),
		"database":    strconv.Itoa(c.config.Database),
		"latency":     latency.String(),
		"total_conns": strconv.FormatUint(uint64(stats.TotalConns), 10),
		"idle_conns":  strconv.FormatUint(uint64(stats.IdleConns), 10),
		"timeouts":    strconv.FormatUint(uint64(stats.Timeouts), 10),
	}

	if err != nil {
		details["message"] = err.Error()
		return HealthCheck{Status: StatusDown, Details: details}
	}

	details["message"] = string(StatusUp)
	return HealthCheck{Status: StatusUp, Details: details}
}
