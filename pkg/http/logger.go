package http

// HTTPLogger receives the lifecycle of every outbound request sent by a Client.
type HTTPLogger interface {
	// LogRequest is called before the request is sent.
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called after a 2xx response has been read.
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after a transport failure (httpStatus 0) or a non-2xx response.
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)

	// LogRequestRetry is called before a retry is scheduled by the backoff.
	LogRequestRetry(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error, retryCount, maxRetries int)
}
