package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"time"

	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"gopkg.in/yaml.v2"
)

const (
	DefaultConfigPath     = "./config/config.yaml"
	DefaultSpotifyAPIURL  = "https://api.spotify.com/v1/"
	DefaultTMDBBaseURL    = "https://api.themoviedb.org/3"
	DefaultRequestTimeout = 10 * time.Second
	DefaultListenAddr     = ":50999"
)

// LoadConfigFromFile reads the yaml config at path, applies environment
// overrides and fills defaults. A missing file is only an error when the
// caller asked for a specific path.
func LoadConfigFromFile(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	var config Config
	file, err := os.Open(path)
	switch {
	case err == nil:
		defer file.Close()
		dec := yaml.NewDecoder(file)
		if err = dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, err
	}

	config.applyEnv()
	config.applyDefaults()
	return &config, nil
}

type Config struct {
	ListenAddr          string        `yaml:"listen_addr"`
	RequestTimeout      time.Duration `yaml:"request_timeout"`
	LogSearchResults    bool          `yaml:"log_search_results"`
	SpotifyClientID     string        `yaml:"spotify_client_id"`
	SpotifyClientSecret string        `yaml:"spotify_client_secret"`
	SpotifyTokenURL     string        `yaml:"spotify_token_url"`
	SpotifyAPIURL       string        `yaml:"spotify_api_url"`
	TMDBAPIKey          string        `yaml:"tmdb_api_key"`
	TMDBBaseURL         string        `yaml:"tmdb_base_url"`
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SPOTIFY_CLIENT_ID"); v != "" {
		c.SpotifyClientID = v
	}
	if v := os.Getenv("SPOTIFY_CLIENT_SECRET"); v != "" {
		c.SpotifyClientSecret = v
	}
	if v := os.Getenv("TMDB_API_KEY"); v != "" {
		c.TMDBAPIKey = v
	}
}

func (c *Config) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	if c.SpotifyTokenURL == "" {
		c.SpotifyTokenURL = spotifyauth.TokenURL
	}
	if c.SpotifyAPIURL == "" {
		c.SpotifyAPIURL = DefaultSpotifyAPIURL
	}
	if c.TMDBBaseURL == "" {
		c.TMDBBaseURL = DefaultTMDBBaseURL
	}
}
