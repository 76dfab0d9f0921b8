package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client for outbound calls to the user directory and
// listing catalog services. Embedding exposes the full resty API while
// leaving room for application-specific helpers.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own configuration and
// connection pool. Each upstream adapter owns one.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
