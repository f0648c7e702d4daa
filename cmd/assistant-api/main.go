package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"assistant/internal/platform/clock"
	"assistant/internal/platform/config"
	"assistant/internal/platform/logger"
	phttp "assistant/internal/platform/net/http"
	"assistant/internal/platform/store"

	"assistant/internal/services/api"
)

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	root := config.New()
	logger.Init(logger.FromEnv())
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.FromConf(root), store.WithLogger(l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	srv := phttp.NewServer(root.Prefix("API_"))

	rt := api.Mount(srv.Router(), api.Options{
		Config: root,
		Store:  st,
		Logger: l,
		Clock:  clock.System(),
	})
	if err := rt.StartJobs(); err != nil {
		l.Panic().Err(err).Msg("background jobs failed to start")
	}
	defer rt.StopJobs()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			l.Error().Err(err).Msg("shutdown failed")
		}
	}()

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
