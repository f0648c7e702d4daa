// Package api composes the HTTP API for the application
package api

import (
	"net/http"

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
	contactsmod "assistant/internal/services/contacts/module"
	subsmod "assistant/internal/services/subscribers/module"
	voicemod "assistant/internal/services/voice/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger
	Clock  clock.Clock
}

// Runtime exposes the background jobs the composed API owns
type Runtime struct {
	subs *subsmod.Module
}

// StartJobs arms recurring background work (the weekly digest)
func (rt *Runtime) StartJobs() error { return rt.subs.StartJobs() }

// StopJobs stops recurring background work
func (rt *Runtime) StopJobs() { rt.subs.StopJobs() }

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) *Runtime {
	deps := modkit.Deps{
		Log:   opt.Logger,
		Cfg:   opt.Config,
		DB:    opt.Store.DB,
		Clock: opt.Clock,
	}

	assistant := asstmod.New(deps)
	appointments := apptmod.New(deps)
	contacts := contactsmod.New(deps)
	subscribers := subsmod.New(deps)

	// register the sibling ports first so the voice gateway can look them up
	module.Register(assistant.Name(), assistant.Ports())
	module.Register(appointments.Name(), appointments.Ports())

	asst, ok := module.PortsAs[asstmod.Ports](assistant.Name())
	if !ok {
		panic("api: assistant ports not registered")
	}
	appt, ok := module.PortsAs[apptmod.Ports](appointments.Name())
	if !ok {
		panic("api: appointments ports not registered")
	}

	voice := voicemod.New(deps, modkit.WithPorts(voicemod.Ports{
		Query:        asst.Query,
		Appointments: appt.CRUD,
	}))

	mods := []module.Module{assistant, appointments, contacts, subscribers, voice}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("."))
	})

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})

	return &Runtime{subs: subscribers}
}
