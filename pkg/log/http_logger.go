package log

import "go.uber.org/zap"

// HTTPLogger writes outbound HTTP client events to the application logger.
// Request and response bodies are only emitted at debug level.
type HTTPLogger struct{}

func NewHTTPLogger() *HTTPLogger {
	return &HTTPLogger{}
}

func (l *HTTPLogger) LogRequest(method, url string, headers map[string]string, body string) {
	logger.Debug("http request",
		zap.String("method", method),
		zap.String("url", url),
		zap.String("body", body))
}

func (l *HTTPLogger) LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	logger.Info("http response",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
	logger.Debug("http response body", zap.String("url", url), zap.String("body", responseBody))
}

func (l *HTTPLogger) LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	logger.Warn("http response error",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response", responseBody),
		zap.Error(err))
}

func (l *HTTPLogger) LogRequestRetry(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error, retryCount, maxRetries int) {
	logger.Warn("http request retry",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int("retry", retryCount),
		zap.Int("max_retries", maxRetries),
		zap.Error(err))
}
