package transport

import (
	"net/http"
)

// Decorator applies headers to outgoing page requests.
type Decorator interface {
	Apply(req *http.Request)
}

// NoHeaders leaves requests untouched.
type NoHeaders struct{}

// Apply implements the Decorator interface for NoHeaders.
func (NoHeaders) Apply(_ *http.Request) {}

// UserAgent sets the User-Agent header.
type UserAgent string

// Apply implements the Decorator interface for UserAgent.
func (ua UserAgent) Apply(req *http.Request) {
	if ua != "" {
		req.Header.Set("User-Agent", string(ua))
	}
}

// Headers sets a fixed header set, overwriting existing values.
type Headers map[string]string

// Apply implements the Decorator interface for Headers.
func (h Headers) Apply(req *http.Request) {
	for k, v := range h {
		req.Header.Set(k, v)
	}
}

// Decorators applies each decorator in order.
type Decorators []Decorator

// Apply implements the Decorator interface for Decorators.
func (d Decorators) Apply(req *http.Request) {
	for _, dec := range d {
		if dec != nil {
			dec.Apply(req)
		}
	}
}
