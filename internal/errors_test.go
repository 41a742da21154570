package internal

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNetworkError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"url error", &url.Error{Op: "Get", URL: "http://x", Err: errors.New("connection refused")}, true},
		{"wrapped url error", fmt.Errorf("search: %w", &url.Error{Op: "Get", URL: "http://x", Err: errors.New("eof")}), true},
		{"deadline", context.DeadlineExceeded, true},
		{"plain", errors.New("json: cannot unmarshal string"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNetworkError(tt.err))
		})
	}
}
