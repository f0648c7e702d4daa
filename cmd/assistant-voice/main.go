// The assistant-voice binary serves only the websocket voice gateway,
// so voice traffic can scale apart from the REST API
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

	"assistant/internal/modkit"
	"assistant/internal/modkit/httpkit"
	"assistant/internal/modkit/module"

	apptmod "assistant/internal/services/appointments/module"
	asstmod "assistant/internal/services/assistant/module"
	voicemod "assistant/internal/services/voice/module"
)

func main() {
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

	deps := modkit.Deps{
		Log:   l,
		Cfg:   root,
		DB:    st.DB,
		Clock: clock.System(),
	}
	assistant := asstmod.New(deps)
	appointments := apptmod.New(deps)

	module.Register(assistant.Name(), assistant.Ports())
	module.Register(appointments.Name(), appointments.Ports())

	asst, ok := module.PortsAs[asstmod.Ports](assistant.Name())
	if !ok {
		l.Panic().Msg("assistant ports not registered")
	}
	appt, ok := module.PortsAs[apptmod.Ports](appointments.Name())
	if !ok {
		l.Panic().Msg("appointments ports not registered")
	}

	voice := voicemod.New(deps, modkit.WithPorts(voicemod.Ports{
		Query:        asst.Query,
		Appointments: appt.CRUD,
	}))

	srv := phttp.NewServer(root.Prefix("VOICE_"))
	httpkit.MountAPIV1(srv.Router(), httpkit.CommonStack(), func(api httpkit.Router) {
		voice.MountRoutes(api)
	})

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
