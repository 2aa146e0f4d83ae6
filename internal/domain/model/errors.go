package model

import "errors"

var (
	// ErrNotFound means the requested city is not stored, or the provider returned no match.
	ErrNotFound = errors.New("not found")
	// ErrUpstreamUnavailable means a provider could not be reached, timed out or answered with a non-2xx status.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrUpstreamDataInvalid means a provider answered 2xx with a payload that is not usable.
	ErrUpstreamDataInvalid = errors.New("upstream data invalid")
	// ErrInvalidInput means the caller sent missing or out of range parameters.
	ErrInvalidInput = errors.New("invalid input")
)
