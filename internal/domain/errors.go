package domain

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrRateLimited         = errors.New("rate limited")
	ErrMalformedPayload    = errors.New("malformed upstream payload")
	ErrResponseParse       = errors.New("unparseable completion response")
	ErrContextDone         = errors.New("context cancelled")
)
