package music

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gcottom/go-zaplog"
	"github.com/gcottom/media-lookup/internal"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// SearchAlbum looks up the best album match for title. A fresh token is
// exchanged for every call. No match yields a nil result and a nil error.
func (s *Service) SearchAlbum(ctx context.Context, title string) (*AlbumResult, error) {
	if strings.TrimSpace(title) == "" {
		zaplog.WarnC(ctx, "spotify album search without title")
		return nil, internal.ErrEmptyQuery
	}
	zaplog.InfoC(ctx, "searching spotify album", zap.String("title", title))

	token, err := s.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	authClient := spotifyauth.New().Client(internal.WithHTTPClient(ctx, s.HTTPClient), token)
	// oauth2 keeps only the base transport, not the timeout
	if s.HTTPClient != nil {
		authClient.Timeout = s.HTTPClient.Timeout
	}
	spotifyClient := spotify.New(authClient, spotify.WithBaseURL(s.APIURL))

	res, err := spotifyClient.Search(ctx, title, spotify.SearchTypeAlbum, spotify.Limit(1))
	if err != nil {
		err = classifySearchError(err)
		zaplog.ErrorC(ctx, "failed to search spotify", zap.String("title", title), zap.Error(err))
		return nil, err
	}

	if res.Albums == nil || len(res.Albums.Albums) == 0 {
		zaplog.InfoC(ctx, "no spotify album found", zap.String("title", title))
		return nil, nil
	}

	album := NewAlbumResult(res.Albums.Albums[0])
	if s.LogResults {
		zaplog.InfoC(ctx, "spotify search result", zap.String("title", title), zap.Any("result", album))
	}
	return album, nil
}

// GetAccessToken runs the client credentials exchange. The token is never
// cached.
func (s *Service) GetAccessToken(ctx context.Context) (*oauth2.Token, error) {
	if s.SpotifyConfig == nil || s.SpotifyConfig.ClientID == "" || s.SpotifyConfig.ClientSecret == "" {
		zaplog.ErrorC(ctx, "spotify client credentials are not configured")
		return nil, fmt.Errorf("spotify: %w", internal.ErrMissingCredentials)
	}
	token, err := s.SpotifyConfig.Token(internal.WithHTTPClient(ctx, s.HTTPClient))
	if err != nil {
		err = classifyTokenError(err)
		zaplog.ErrorC(ctx, "failed to get spotify token", zap.Error(err))
		return nil, err
	}
	return token, nil
}

func NewAlbumResult(album spotify.SimpleAlbum) *AlbumResult {
	res := &AlbumResult{Title: album.Name}
	if len(album.Images) > 0 {
		res.Img = album.Images[0].URL
	}
	if len(album.Artists) > 0 {
		res.Artist = album.Artists[0].Name
	}
	res.Overview = fmt.Sprintf("Artista: %s · Lanzamiento: %s", res.Artist, album.ReleaseDate)
	return res
}

func classifyTokenError(err error) error {
	var retrieveErr *oauth2.RetrieveError
	switch {
	case errors.As(err, &retrieveErr):
		status := 0
		if retrieveErr.Response != nil {
			status = retrieveErr.Response.StatusCode
		}
		return fmt.Errorf("%w: spotify token endpoint returned %d: %w", internal.ErrAuth, status, err)
	case internal.IsNetworkError(err):
		return fmt.Errorf("%w: spotify token request failed: %w", internal.ErrNetwork, err)
	default:
		// missing access_token or a body oauth2 could not parse
		return fmt.Errorf("%w: spotify token response: %w", internal.ErrMalformedResponse, err)
	}
}

func classifySearchError(err error) error {
	var apiErr spotify.Error
	switch {
	case errors.As(err, &apiErr):
		return fmt.Errorf("%w: spotify search returned %d: %w", internal.ErrAuth, apiErr.Status, err)
	case internal.IsNetworkError(err):
		return fmt.Errorf("%w: spotify search request failed: %w", internal.ErrNetwork, err)
	case strings.HasPrefix(err.Error(), "spotify: "):
		// status errors the client could not decode into spotify.Error
		return fmt.Errorf("%w: %w", internal.ErrAuth, err)
	default:
		return fmt.Errorf("%w: spotify search response: %w", internal.ErrMalformedResponse, err)
	}
}
