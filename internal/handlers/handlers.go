package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gcottom/go-zaplog"
	"github.com/gcottom/media-lookup/internal/services/music"
	"github.com/gcottom/qgin/qgin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var ErrNoMatch = errors.New("no match found")

type AlbumSearcher interface {
	SearchAlbum(ctx context.Context, title string) (*music.AlbumResult, error)
}

type TitleSearcher interface {
	SearchTitle(ctx context.Context, title, mediaType, year string) (json.RawMessage, error)
}

type Handlers struct {
	Albums AlbumSearcher
	Titles TitleSearcher
}

// NewEngine builds the gin engine with logging, CORS and the lookup routes.
func NewEngine(ctx *context.Context, albums AlbumSearcher, titles TitleSearcher) *gin.Engine {
	ginws := qgin.NewGinEngine(ctx, &qgin.Config{
		UseContextMW:       true,
		UseLoggingMW:       true,
		UseRequestIDMW:     false,
		InjectRequestIDCTX: false,
		LogRequestID:       false,
		ProdMode:           true,
	})
	ginws.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	SetupRoutes(ginws, albums, titles)
	return ginws
}

func SetupRoutes(router *gin.Engine, albums AlbumSearcher, titles TitleSearcher) {
	handler := &Handlers{Albums: albums, Titles: titles}
	router.GET("/album", handler.SearchAlbum)
	router.GET("/title", handler.SearchTitle)
}

func (h *Handlers) SearchAlbum(ctx *gin.Context) {
	title := ctx.Query("title")
	if title == "" {
		zaplog.WarnC(ctx, "album search request without title present: title is required")
		ResponseFailure(ctx, errors.New("album search request without title present: title is required"))
		return
	}
	zaplog.InfoC(ctx, "album search request received", zap.String("title", title))
	album, err := h.Albums.SearchAlbum(ctx, title)
	if err != nil {
		zaplog.ErrorC(ctx, "error searching album", zap.Error(err))
		ResponseLookupError(ctx, err)
		return
	}
	if album == nil {
		zaplog.InfoC(ctx, "album search found nothing", zap.String("title", title))
		ResponseNotFound(ctx, ErrNoMatch)
		return
	}
	ResponseSuccess(ctx, album)
}

func (h *Handlers) SearchTitle(ctx *gin.Context) {
	title := ctx.Query("title")
	if title == "" {
		zaplog.WarnC(ctx, "title search request without title present: title is required")
		ResponseFailure(ctx, errors.New("title search request without title present: title is required"))
		return
	}
	mediaType := ctx.DefaultQuery("type", "tv")
	year := ctx.Query("year")
	zaplog.InfoC(ctx, "title search request received", zap.String("title", title), zap.String("type", mediaType), zap.String("year", year))
	res, err := h.Titles.SearchTitle(ctx, title, mediaType, year)
	if err != nil {
		zaplog.ErrorC(ctx, "error searching title", zap.Error(err))
		ResponseLookupError(ctx, err)
		return
	}
	if res == nil {
		zaplog.InfoC(ctx, "title search found nothing", zap.String("title", title))
		ResponseNotFound(ctx, ErrNoMatch)
		return
	}
	ResponseRaw(ctx, res)
}
