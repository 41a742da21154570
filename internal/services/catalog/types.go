package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/gcottom/media-lookup/config"
	"github.com/gcottom/media-lookup/internal"
)

const (
	MediaTypeTV    = "tv"
	MediaTypeMovie = "movie"

	DefaultLanguage = "en-US"
)

type Service struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	LogResults bool
}

type SearchResponse struct {
	Page    int               `json:"page"`
	Results []json.RawMessage `json:"results"`
}

type ErrorResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		APIKey:     cfg.TMDBAPIKey,
		BaseURL:    cfg.TMDBBaseURL,
		HTTPClient: internal.NewHTTPClient(cfg.RequestTimeout),
		LogResults: cfg.LogSearchResults,
	}
}
