package internal

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// WithHTTPClient makes the oauth2 stack use client for token exchanges and
// authorized requests built from ctx.
func WithHTTPClient(ctx context.Context, client *http.Client) context.Context {
	if client == nil {
		return ctx
	}
	return context.WithValue(ctx, oauth2.HTTPClient, client)
}
