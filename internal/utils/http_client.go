package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty-backed client for the registry API.
//
// address may be a full base URL or a bare "host:port", in which case
// "http://" is prepended. Every request gets a JSON Accept header and the
// given timeout; a zero timeout leaves the resty default in place.
func NewHTTPClient(address string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(normalizeBaseURL(address)).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

func normalizeBaseURL(address string) string {
	address = strings.TrimRight(strings.TrimSpace(address), "/")
	if address == "" {
		return ""
	}

	if !strings.HasPrefix(address, "http://") && !strings.HasPrefix(address, "https://") {
		address = "http://" + address
	}

	return address
}
