package electrician

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// preflightToken performs client-credentials token calls until one
// succeeds or budget is spent, backing off 250ms, 500ms, 1s, 2s.
func preflightToken(ctx context.Context, hc *http.Client, cfg RelayConfig, budget time.Duration) error {
	tokenURL := strings.TrimRight(cfg.OAuthIssuer, "/") + cfg.OAuthTokenPath
	if _, err := url.Parse(tokenURL); err != nil {
		return fmt.Errorf("electrician: token url: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	if len(cfg.OAuthScopes) > 0 {
		form.Set("scope", strings.Join(cfg.OAuthScopes, " "))
	}
	form.Set("client_id", cfg.OAuthClientID)
	form.Set("client_secret", cfg.OAuthClientSecret)
	body := form.Encode()

	sleep := 250 * time.Millisecond
	var last error
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(body))
		if err != nil {
			return fmt.Errorf("electrician: token request: %w", err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := hc.Do(req)
		if err == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return nil
			}
			err = fmt.Errorf("token endpoint returned %s", resp.Status)
		}
		last = err

		select {
		case <-ctx.Done():
			return fmt.Errorf("electrician: oauth preflight: %w", last)
		case <-time.After(sleep):
		}
		if sleep < 2*time.Second {
			sleep *= 2
		}
	}
}
