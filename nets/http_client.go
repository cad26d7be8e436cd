package nets

import (
	"net/http"
	"time"
)

type HTTPClient = *http.Client

// FetchTimeout bounds a whole remote source request.
type FetchTimeout time.Duration

func (Module) FetchTimeout() FetchTimeout {
	return FetchTimeout(30 * time.Second)
}

func (Module) HTTPClient(
	dialer Dialer,
	timeout FetchTimeout,
) HTTPClient {
	return &http.Client{
		Timeout: time.Duration(timeout),
		Transport: &http.Transport{
			DialContext:         dialer.DialContext,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}
}
