package http

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	charsetpkg "golang.org/x/net/html/charset"
)

var (
	// ErrHTTPStatus wraps every non-2xx response.
	ErrHTTPStatus = errors.New("http error")
	// ErrDecodeResponse wraps failures to unmarshal a response body.
	ErrDecodeResponse = errors.New("failed to decode response")
)

// StatusError carries the status code of a non-2xx response. It matches ErrHTTPStatus with errors.Is.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d", ErrHTTPStatus, e.StatusCode)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrHTTPStatus
}

// Client represents an HTTP client with configuration options.
type Client struct {
	baseURL            string
	client             *http.Client
	dismiss404         bool
	defaultHeaders     map[string]string
	defaultContentType string
	backoff            *BackoffConfig
	logger             HTTPLogger
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect      bool
	Dismiss404          bool
	DefaultHeaders      map[string]string
	DefaultContentType  string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	ReadTimeout         time.Duration
	Backoff             *BackoffConfig
	Logger              HTTPLogger
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 200
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 20
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 60 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 60 * time.Second
	}
	if opts.DefaultContentType == "" {
		opts.DefaultContentType = "application/json"
	}

	transport := &http.Transport{
		MaxIdleConns:        opts.MaxIdleConns,
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
		IdleConnTimeout:     opts.IdleConnTimeout,
		DialContext: (&net.Dialer{
			Timeout: opts.ConnectionTimeout,
		}).DialContext,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{
		baseURL:            strings.TrimRight(baseURL, "/"),
		client:             client,
		dismiss404:         opts.Dismiss404,
		defaultHeaders:     opts.DefaultHeaders,
		defaultContentType: opts.DefaultContentType,
		backoff:            opts.Backoff,
		logger:             opts.Logger,
	}
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// attempt is the outcome of a single round trip.
type attempt struct {
	successResp  any
	errorResp    any
	status       int
	responseBody string
	err          error
}

// doRequest sends one request and decodes the response into successResp or errorResp.
func (hc *Client) doRequest(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any) attempt {
	fullURL := hc.buildURL(path)
	if len(queryParams) > 0 {
		fullURL += "?" + buildQueryString(queryParams)
	}

	bodyReader, contentType, rawBody, err := hc.encodeBody(body)
	if err != nil {
		return attempt{err: err}
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return attempt{err: err}
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	if hc.logger != nil {
		hc.logger.LogRequest(method, fullURL, headers, rawBody)
	}

	start := time.Now()
	resp, err := hc.client.Do(req)
	if err != nil {
		if hc.logger != nil {
			hc.logger.LogResponseError(method, fullURL, headers, rawBody, 0, "", time.Since(start).Milliseconds(), err)
		}
		return attempt{err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		return attempt{status: resp.StatusCode, err: err}
	}

	respContentType := resp.Header.Get("Content-Type")
	if respContentType == "" {
		respContentType = hc.defaultContentType
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if hc.logger != nil {
			hc.logger.LogResponseSuccess(method, fullURL, headers, rawBody, resp.StatusCode, string(bodyBytes), latency)
		}
		if successResp != nil {
			if err := hc.unmarshalResponse(bodyBytes, respContentType, successResp); err != nil {
				return attempt{status: resp.StatusCode, responseBody: string(bodyBytes), err: fmt.Errorf("%w: %v", ErrDecodeResponse, err)}
			}
		}
		return attempt{successResp: successResp, status: resp.StatusCode}
	}

	if resp.StatusCode == http.StatusNotFound && hc.dismiss404 {
		return attempt{status: resp.StatusCode}
	}

	statusErr := &StatusError{StatusCode: resp.StatusCode}
	if hc.logger != nil {
		hc.logger.LogResponseError(method, fullURL, headers, rawBody, resp.StatusCode, string(bodyBytes), latency, statusErr)
	}

	if errorResp != nil {
		if err := hc.unmarshalResponse(bodyBytes, respContentType, errorResp); err != nil {
			// the status is what matters to callers, an undecodable error body is dropped
			errorResp = nil
		}
	}

	return attempt{errorResp: errorResp, status: resp.StatusCode, responseBody: string(bodyBytes), err: statusErr}
}

// encodeBody serializes the request body according to its type and the client's default content type.
func (hc *Client) encodeBody(body any) (io.Reader, string, string, error) {
	if body == nil {
		return nil, "", "", nil
	}

	switch b := body.(type) {
	case string:
		return bytes.NewBufferString(b), "text/plain", b, nil
	case []byte:
		return bytes.NewBuffer(b), "application/octet-stream", "", nil
	}

	switch hc.defaultContentType {
	case "application/xml":
		xmlBody, err := xml.Marshal(body)
		if err != nil {
			return nil, "", "", fmt.Errorf("failed to marshal request body to XML: %w", err)
		}
		return bytes.NewBuffer(xmlBody), "application/xml", string(xmlBody), nil
	case "text/plain":
		s := fmt.Sprintf("%v", body)
		return bytes.NewBufferString(s), "text/plain", s, nil
	default:
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, "", "", fmt.Errorf("failed to marshal request body to JSON: %w", err)
		}
		return bytes.NewBuffer(jsonBody), "application/json", string(jsonBody), nil
	}
}

// unmarshalResponse unmarshals response body based on content type
func (hc *Client) unmarshalResponse(bodyBytes []byte, contentType string, target any) error {
	mainContentType := strings.TrimSpace(strings.Split(contentType, ";")[0])

	switch mainContentType {
	case "application/xml", "text/xml":
		dec := xml.NewDecoder(bytes.NewReader(bodyBytes))
		dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
			return charsetpkg.NewReaderLabel(charset, input)
		}
		return dec.Decode(target)
	case "text/plain":
		if strPtr, ok := target.(*string); ok {
			*strPtr = string(bodyBytes)
			return nil
		}
		return json.Unmarshal(bodyBytes, target)
	case "application/octet-stream":
		if bytePtr, ok := target.(*[]byte); ok {
			*bytePtr = bodyBytes
			return nil
		}
		return json.Unmarshal(bodyBytes, target)
	default:
		return json.Unmarshal(bodyBytes, target)
	}
}

// buildURL joins baseURL and path with exactly one slash.
func (hc *Client) buildURL(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return hc.baseURL + path
}

// buildQueryString builds an escaped query string, keys sorted.
func buildQueryString(params map[string]string) string {
	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}
	return values.Encode()
}
