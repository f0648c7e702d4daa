// Package module wires the assistant service into the API using modkit
package module

import (
	"net/http"

	"assistant/internal/adapters/llm"
	"assistant/internal/modkit"
	"assistant/internal/modkit/httpkit"
	str "assistant/internal/platform/strings"
	"assistant/internal/services/assistant/domain"
	ahttp "assistant/internal/services/assistant/http"
	"assistant/internal/services/assistant/repo"
	"assistant/internal/services/assistant/service"
)

// Ports exposed by the assistant module
type Ports struct {
	Query   domain.QueryPort
	History domain.HistoryPort
}

// Module implements the assistant service module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports Ports

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs the assistant module, wiring the provider chain in
// fixed fallback order from whichever credentials are configured
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("assistant"),
		modkit.WithPrefix("/assistant"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)
	providers := []llm.Provider{
		llm.NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel),
		llm.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel),
		llm.NewWolfram(cfg.WolframAppID),
		llm.NewSearch(cfg.GoogleAPIKey, cfg.GoogleCSEID),
	}
	chain := service.NewChain(deps.Log, service.NewWeatherer(), providers)
	svc := service.New(deps.Log, deps.DB, repo.NewSQL(), chain, deps.Clock)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
	}
	m.ports = Ports{Query: svc, History: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		ahttp.MountRoutes(r, m.ports.Query, m.ports.History)
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
