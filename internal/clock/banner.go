package clock

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// worldTimeURL serves an authoritative reading of the current Beijing time
// for the extraction prompt banner.
const worldTimeURL = "https://worldtimeapi.org/api/timezone/Asia/Shanghai"

const bannerTimeout = 5 * time.Second

// bannerClient is swapped in tests.
var bannerClient = &http.Client{Timeout: bannerTimeout}

// BannerNow returns the current time in wire format for the extraction
// prompt. It prefers the WorldTimeAPI reading and falls back to the local
// clock on any failure; the banner is an optional enhancement, so this never
// returns an error.
func BannerNow(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, worldTimeURL, nil)
	if err != nil {
		return Format(Now())
	}
	resp, err := bannerClient.Do(req)
	if err != nil {
		slog.Debug("banner time fetch failed, using local clock", "error", err)
		return Format(Now())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Format(Now())
	}
	var payload struct {
		Datetime string `json:"datetime"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Datetime == "" {
		return Format(Now())
	}
	t, err := time.Parse(time.RFC3339Nano, payload.Datetime)
	if err != nil {
		return Format(Now())
	}
	return Format(t)
}
