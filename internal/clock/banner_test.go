package clock

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestBannerNowFallsBackOnFailure(t *testing.T) {
	// Point the client at a transport that always fails so the banner
	// must fall back to the local clock.
	orig := bannerClient
	bannerClient = &http.Client{
		Timeout:   time.Second,
		Transport: failingTransport{},
	}
	defer func() { bannerClient = orig }()

	got := BannerNow(context.Background())
	if _, err := Parse(got); err != nil {
		t.Errorf("fallback banner %q is not a wire-format timestamp: %v", got, err)
	}
}

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, http.ErrHandlerTimeout
}
