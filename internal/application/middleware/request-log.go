package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

// HandlerErrorKey holds the error a handler answered with, for handlers that render errors themselves
const HandlerErrorKey = "handler_error"

// SetupRequestLogger registers the request id and request logging middlewares.
func SetupRequestLogger(e *echo.Echo) {
	e.Use(echomw.RequestID())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return strings.HasSuffix(path, "/health") || strings.Contains(path, "/swagger/")
		},
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			err := v.Error
			if err == nil {
				err, _ = c.Get(HandlerErrorKey).(error)
			}

			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}

			switch {
			case err == nil:
				log.Info(msg.GetMessage("app.req-end", v.Method, v.URI, v.Status, v.Latency, v.RequestID), fields...)
			case v.Status >= 500:
				log.Error(msg.GetMessage("app.req-fail", v.Method, v.URI, v.Status, v.Latency, v.RequestID, err), append(fields, zap.Error(err))...)
			default:
				log.Warn(msg.GetMessage("app.req-fail", v.Method, v.URI, v.Status, v.Latency, v.RequestID, err), append(fields, zap.Error(err))...)
			}
			return nil
		},
	}))
}
