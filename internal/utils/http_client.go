package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a thin wrapper around resty.Client. It embeds *resty.Client
// to expose all of its methods directly while leaving room for
// application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a ready-to-use HTTP client. Each call returns an
// independent instance with its own configuration and connection pool.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
