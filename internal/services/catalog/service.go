package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gcottom/go-zaplog"
	"github.com/gcottom/media-lookup/internal"
	"go.uber.org/zap"
)

// SearchTitle searches TMDB for title under mediaType ("tv" when empty) and
// returns the provider's first result untouched. A year narrows movie and tv
// searches and is ignored for any other media type. No match, a blank title
// included, yields a nil result and a nil error.
func (s *Service) SearchTitle(ctx context.Context, title, mediaType, year string) (json.RawMessage, error) {
	if s.APIKey == "" {
		zaplog.ErrorC(ctx, "tmdb api key is not configured")
		return nil, fmt.Errorf("tmdb: %w", internal.ErrMissingCredentials)
	}
	if mediaType == "" {
		mediaType = MediaTypeTV
	}
	zaplog.InfoC(ctx, "searching tmdb", zap.String("title", title), zap.String("type", mediaType), zap.String("year", year))

	searchURL, err := s.SearchURL(title, mediaType, year)
	if err != nil {
		zaplog.ErrorC(ctx, "failed to build tmdb search url", zap.Error(err))
		return nil, fmt.Errorf("failed to build tmdb search url: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		err = redactError(err)
		zaplog.ErrorC(ctx, "failed to create tmdb request", zap.Error(err))
		return nil, fmt.Errorf("failed to create tmdb request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		err = redactError(err)
		zaplog.ErrorC(ctx, "failed to search tmdb", zap.String("title", title), zap.Error(err))
		return nil, fmt.Errorf("%w: tmdb search request failed: %w", internal.ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		err = redactError(err)
		zaplog.ErrorC(ctx, "failed to read tmdb response", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to read tmdb response: %w", internal.ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err = statusError(resp.StatusCode, body)
		zaplog.ErrorC(ctx, "tmdb search rejected", zap.Int("status", resp.StatusCode), zap.Error(err))
		return nil, err
	}

	var data SearchResponse
	if err = json.Unmarshal(body, &data); err != nil {
		zaplog.ErrorC(ctx, "failed to unmarshal tmdb response", zap.Error(err))
		return nil, fmt.Errorf("%w: tmdb search response: %w", internal.ErrMalformedResponse, err)
	}

	if s.LogResults {
		zaplog.InfoC(ctx, "tmdb search results",
			zap.String("title", title),
			zap.String("type", mediaType),
			zap.String("year", year),
			zap.Int("count", len(data.Results)),
			zap.ByteString("results", body))
	}

	if len(data.Results) == 0 || isNull(data.Results[0]) {
		zaplog.InfoC(ctx, "no tmdb result found", zap.String("title", title), zap.String("type", mediaType))
		return nil, nil
	}
	return data.Results[0], nil
}

// SearchURL builds the /search/{mediaType} request URL.
func (s *Service) SearchURL(title, mediaType, year string) (string, error) {
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return "", err
	}
	u = u.JoinPath("search", url.PathEscape(mediaType))

	q := url.Values{}
	q.Set("api_key", s.APIKey)
	q.Set("query", title)
	q.Set("language", DefaultLanguage)
	if year != "" {
		switch mediaType {
		case MediaTypeMovie:
			q.Set("year", year)
		case MediaTypeTV:
			q.Set("first_air_date_year", year)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// redactError strips the api key from any request URL carried by err.
func redactError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = redactURL(urlErr.URL)
	}
	return err
}

func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<unparseable url>"
	}
	q := u.Query()
	if q.Has("api_key") {
		q.Set("api_key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}

func statusError(status int, body []byte) error {
	var apiErr ErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.StatusMessage != "" {
		return fmt.Errorf("%w: tmdb returned %d: %s", internal.ErrAuth, status, apiErr.StatusMessage)
	}
	return fmt.Errorf("%w: tmdb returned %d: %s", internal.ErrAuth, status, http.StatusText(status))
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
