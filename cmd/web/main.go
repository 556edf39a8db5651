package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"thirdcoast.systems/adrevenue/cmd/web/internal/web"
	"thirdcoast.systems/adrevenue/cmd/web/session"
	"thirdcoast.systems/adrevenue/internal/config"
	"thirdcoast.systems/adrevenue/internal/metrics"
	"thirdcoast.systems/adrevenue/internal/model"
	"thirdcoast.systems/adrevenue/internal/youtube"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Starting web service")

	conf, err := config.LoadConfig(ctx)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// No prediction is possible without the model; fail before serving anything.
	scorer, err := model.Load(conf.ModelPath)
	if err != nil {
		slog.Error("failed to load model artifact", "path", conf.ModelPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Model artifact loaded", "name", scorer.Name, "version", scorer.Version)

	var statsSource youtube.StatsSource
	if conf.YouTubeAPIKey != "" {
		client, err := youtube.NewClient(ctx, conf.YouTubeAPIKey, time.Duration(conf.YouTubeTimeoutSeconds)*time.Second)
		if err != nil {
			slog.Error("failed to create youtube client", "error", err)
			os.Exit(1)
		}
		statsSource = client
	} else {
		slog.Warn("YOUTUBE_API_KEY not set; link-based lookups are disabled")
	}

	sessionMgr := session.NewManager(os.Getenv("SESSION_SECRET"))

	e, err := web.NewWebserver(scorer, statsSource, sessionMgr, metrics.New())
	if err != nil {
		slog.Error("failed to create webserver", "error", err)
		os.Exit(1)
	}

	addr := ":" + strconv.Itoa(conf.WebServerPort)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)
	}()

	slog.Info("Listening", "addr", addr)
	if err := e.Start(addr); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		// Echo returns an error on Shutdown; treat it as normal if context is done.
		if ctx.Err() != nil {
			return
		}
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
