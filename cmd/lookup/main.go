package main

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/gcottom/go-zaplog"
)

func main() {
	ctx := zaplog.CreateAndInject(context.Background())
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
