package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gcottom/go-zaplog"
	"github.com/gcottom/media-lookup/config"
	"github.com/gcottom/media-lookup/internal"
	"github.com/gcottom/media-lookup/internal/services/catalog"
	"github.com/gcottom/media-lookup/internal/services/music"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAlbums struct {
	res   *music.AlbumResult
	err   error
	title string
}

func (f *fakeAlbums) SearchAlbum(_ context.Context, title string) (*music.AlbumResult, error) {
	f.title = title
	return f.res, f.err
}

type fakeTitles struct {
	res       json.RawMessage
	err       error
	title     string
	mediaType string
	year      string
}

func (f *fakeTitles) SearchTitle(_ context.Context, title, mediaType, year string) (json.RawMessage, error) {
	f.title, f.mediaType, f.year = title, mediaType, year
	return f.res, f.err
}

func serve(t *testing.T, albums *fakeAlbums, titles *fakeTitles, target string) *httptest.ResponseRecorder {
	t.Helper()
	ctx := zaplog.CreateAndInject(context.Background())
	engine := NewEngine(&ctx, albums, titles)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestSearchAlbumHandler(t *testing.T) {
	albums := &fakeAlbums{res: &music.AlbumResult{
		Title:    "Abbey Road",
		Img:      "https://i.scdn.co/image/abbey-640",
		Overview: "Artista: The Beatles · Lanzamiento: 1969-09-26",
		Artist:   "The Beatles",
	}}

	rec := serve(t, albums, &fakeTitles{}, "/album?title=Abbey+Road")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Abbey Road", albums.title)
	assert.JSONEq(t, `{
		"title": "Abbey Road",
		"img": "https://i.scdn.co/image/abbey-640",
		"overview": "Artista: The Beatles · Lanzamiento: 1969-09-26",
		"artist": "The Beatles"
	}`, rec.Body.String())
}

func TestSearchTitleHandler(t *testing.T) {
	titles := &fakeTitles{res: json.RawMessage(`{"id":603,"title":"The Matrix","release_date":"1999-03-30"}`)}

	rec := serve(t, &fakeAlbums{}, titles, "/title?title=The+Matrix&type=movie&year=1999")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "The Matrix", titles.title)
	assert.Equal(t, "movie", titles.mediaType)
	assert.Equal(t, "1999", titles.year)
	assert.JSONEq(t, `{"id":603,"title":"The Matrix","release_date":"1999-03-30"}`, rec.Body.String())
}

func TestSearchTitleHandlerDefaultsToTV(t *testing.T) {
	titles := &fakeTitles{res: json.RawMessage(`{"id":1}`)}

	rec := serve(t, &fakeAlbums{}, titles, "/title?title=Lost")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tv", titles.mediaType)
	assert.Equal(t, "", titles.year)
}

func TestHandlerStatuses(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		want   int
	}{
		{"album missing title", "/album", nil, http.StatusBadRequest},
		{"title missing title", "/title?type=movie", nil, http.StatusBadRequest},
		{"album no match", "/album?title=x", nil, http.StatusNotFound},
		{"title no match", "/title?title=x", nil, http.StatusNotFound},
		{"album network", "/album?title=x", fmt.Errorf("%w: boom", internal.ErrNetwork), http.StatusBadGateway},
		{"title auth", "/title?title=x", fmt.Errorf("%w: 401", internal.ErrAuth), http.StatusBadGateway},
		{"title malformed", "/title?title=x", fmt.Errorf("%w: bad json", internal.ErrMalformedResponse), http.StatusBadGateway},
		{"album credentials", "/album?title=x", fmt.Errorf("spotify: %w", internal.ErrMissingCredentials), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &fakeAlbums{err: tt.err}, &fakeTitles{err: tt.err}, tt.target)
			assert.Equal(t, tt.want, rec.Code)

			var failure Failure
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &failure))
			assert.NotEmpty(t, failure.Error)
		})
	}
}

func TestBadGatewayHidesUpstreamDetail(t *testing.T) {
	tmdb := httptest.NewServer(http.NotFoundHandler())
	titles := catalog.NewService(&config.Config{
		TMDBAPIKey:     "super-secret-key",
		TMDBBaseURL:    tmdb.URL + "/3",
		RequestTimeout: 2 * time.Second,
	})
	tmdb.Close()

	ctx := zaplog.CreateAndInject(context.Background())
	engine := NewEngine(&ctx, &fakeAlbums{}, titles)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/title?title=Lost", nil))

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.NotContains(t, rec.Body.String(), "super-secret-key")
	assert.JSONEq(t, `{"error":"network error"}`, rec.Body.String())
}
