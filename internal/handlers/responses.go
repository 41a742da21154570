package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gcottom/media-lookup/internal"
	"github.com/gin-gonic/gin"
)

type Failure struct {
	Error string `json:"error"`
}

func ResponseFailure(ctx *gin.Context, err error) {
	abortWithFailure(ctx, http.StatusBadRequest, err)
}

func ResponseNotFound(ctx *gin.Context, err error) {
	abortWithFailure(ctx, http.StatusNotFound, err)
}

func ResponseInternalError(ctx *gin.Context, err error) {
	abortWithFailure(ctx, http.StatusInternalServerError, err)
}

// ResponseBadGateway reports only the kind of upstream failure. The detail
// stays in the request's error list for logging.
func ResponseBadGateway(ctx *gin.Context, err error) {
	_ = ctx.Error(err)
	ctx.AbortWithStatusJSON(http.StatusBadGateway, Failure{Error: upstreamKind(err).Error()})
}

// ResponseLookupError maps a lookup error kind onto an HTTP status.
func ResponseLookupError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, internal.ErrEmptyQuery):
		ResponseFailure(ctx, err)
	case errors.Is(err, internal.ErrMissingCredentials):
		ResponseInternalError(ctx, err)
	default:
		ResponseBadGateway(ctx, err)
	}
}

func ResponseSuccess(ctx *gin.Context, data any) {
	ctx.JSON(http.StatusOK, data)
}

// ResponseRaw writes provider JSON through without re-encoding it.
func ResponseRaw(ctx *gin.Context, data json.RawMessage) {
	ctx.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

var errUpstream = errors.New("upstream provider error")

func upstreamKind(err error) error {
	for _, kind := range []error{internal.ErrNetwork, internal.ErrAuth, internal.ErrMalformedResponse} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return errUpstream
}

func abortWithFailure(ctx *gin.Context, status int, err error) {
	_ = ctx.Error(err)
	ctx.AbortWithStatusJSON(status, Failure{Error: err.Error()})
}
