package main

import (
	"context"
	"flag"
	"net/http"

	"github.com/fatih/color"
	"github.com/gcottom/go-zaplog"
	"github.com/gcottom/media-lookup/config"
	"github.com/gcottom/media-lookup/internal/handlers"
	"github.com/gcottom/media-lookup/internal/services/catalog"
	"github.com/gcottom/media-lookup/internal/services/music"
	"go.uber.org/zap"
)

func init() {
	c := color.New(color.FgCyan)
	c.Print(`
|------------------------------------------------------------------------------------|
|                     Media Lookup Service: albums, films and series                 |
|------------------------------------------------------------------------------------|
   `)
}

func main() {
	configPath := flag.String("config", "", "path to config yaml")
	flag.Parse()
	if err := RunServer(*configPath); err != nil {
		panic(err)
	}
}

func RunServer(configPath string) error {
	ctx := zaplog.CreateAndInject(context.Background())
	zaplog.InfoC(ctx, "starting media lookup server...")

	cfg, err := config.LoadConfigFromFile(configPath)
	if err != nil {
		zaplog.ErrorC(ctx, "failed to load config", zap.Error(err))
		return err
	}

	zaplog.InfoC(ctx, "creating music service...")
	musicService := music.NewService(cfg)

	zaplog.InfoC(ctx, "creating catalog service...")
	catalogService := catalog.NewService(cfg)

	zaplog.InfoC(ctx, "creating gin engine and routes...")
	ginws := handlers.NewEngine(&ctx, musicService, catalogService)

	zaplog.InfoC(ctx, "setup complete, starting server...", zap.String("addr", cfg.ListenAddr))
	return http.ListenAndServe(cfg.ListenAddr, ginws)
}
