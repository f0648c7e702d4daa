// Package module wires the subscribers service into the API using modkit
package module

import (
	"fmt"
	"net/http"

	"assistant/internal/adapters/mail"
	"assistant/internal/modkit"
	"assistant/internal/modkit/httpkit"
	str "assistant/internal/platform/strings"
	"assistant/internal/services/subscribers/domain"
	shttp "assistant/internal/services/subscribers/http"
	"assistant/internal/services/subscribers/repo"
	"assistant/internal/services/subscribers/service"
)

// Ports exposed by the subscribers module
type Ports struct {
	Subscribe domain.SubscribePort
}

// Module implements the subscribers service module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports Ports
	svc   *service.Service

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs the subscribers module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("subscribers"),
		modkit.WithPrefix("/subscribe"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)

	from := cfg.From
	if from == "" && cfg.Username != "" {
		from = fmt.Sprintf("Personal Assistant App Team <%s>", cfg.Username)
	}
	sender := mail.NewSender(mail.Options{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Username: cfg.Username,
		Password: cfg.Password,
		From:     from,
	})

	svc := service.New(deps.Log, deps.DB, repo.NewSQL(), sender, deps.Clock)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		svc:       svc,
		subrouter: b.Subrouter,
	}
	m.ports = Ports{Subscribe: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		shttp.MountRoutes(r, m.ports.Subscribe)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports returns the module port set
func (m *Module) Ports() any { return m.ports }

// StartJobs arms the weekly digest cron
func (m *Module) StartJobs() error {
	return m.svc.StartWeeklyDigest(FromConfig(m.deps.Cfg).Schedule)
}

// StopJobs tears the cron down
func (m *Module) StopJobs() { m.svc.StopDigest() }
