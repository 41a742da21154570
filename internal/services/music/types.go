package music

import (
	"net/http"
	"strings"

	"github.com/gcottom/media-lookup/config"
	"github.com/gcottom/media-lookup/internal"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

type Service struct {
	SpotifyConfig *clientcredentials.Config
	APIURL        string
	HTTPClient    *http.Client
	LogResults    bool
}

// AlbumResult is the reshaped first album of a Spotify search.
type AlbumResult struct {
	Title    string `json:"title"`
	Img      string `json:"img"`
	Overview string `json:"overview"`
	Artist   string `json:"artist"`
}

func NewService(cfg *config.Config) *Service {
	apiURL := cfg.SpotifyAPIURL
	if !strings.HasSuffix(apiURL, "/") {
		apiURL += "/"
	}
	return &Service{
		SpotifyConfig: &clientcredentials.Config{
			ClientID:     cfg.SpotifyClientID,
			ClientSecret: cfg.SpotifyClientSecret,
			TokenURL:     cfg.SpotifyTokenURL,
			AuthStyle:    oauth2.AuthStyleInHeader,
		},
		APIURL:     apiURL,
		HTTPClient: internal.NewHTTPClient(cfg.RequestTimeout),
		LogResults: cfg.LogSearchResults,
	}
}
