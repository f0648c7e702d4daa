package service

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"assistant/internal/adapters/geo"
	"assistant/internal/adapters/llm"
	"assistant/internal/core/persona"
	"assistant/internal/core/places"
	"assistant/internal/platform/logger"
	"assistant/internal/platform/retry"
)

// DefaultWeatherLocation is used when a weather prompt names no place
const DefaultWeatherLocation = "Lagos, Nigeria"

// interProviderPause is the cooldown between exhausted providers
const interProviderPause = 500 * time.Millisecond

// Weatherer answers free-form weather prompts for a location
type Weatherer interface {
	Summary(ctx context.Context, location string) (string, error)
}

// Chain resolves a prompt by trying local answers first, then walking
// the configured providers in order until one returns text
type Chain struct {
	log       *logger.Logger
	weather   Weatherer
	providers []llm.Provider
	sleep     retry.Sleeper
	randFn    func(n int) int
}

// ChainOption tweaks Chain construction
type ChainOption func(*Chain)

// WithSleeper overrides the pause primitive (tests)
func WithSleeper(s retry.Sleeper) ChainOption {
	return func(c *Chain) { c.sleep = s }
}

// WithRand overrides the fallback picker (tests)
func WithRand(fn func(n int) int) ChainOption {
	return func(c *Chain) { c.randFn = fn }
}

// NewChain wires the chain. Disabled providers are filtered out up front
func NewChain(log *logger.Logger, weather Weatherer, providers []llm.Provider, opts ...ChainOption) *Chain {
	c := &Chain{
		log:     log,
		weather: weather,
		sleep:   retry.SleepCtx,
		randFn:  rand.Intn,
	}
	for _, p := range providers {
		if p != nil && p.Enabled() {
			c.providers = append(c.providers, p)
		}
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// NewWeatherer builds the default weather backend
func NewWeatherer() Weatherer { return geo.NewClient(geo.Options{}) }

// Resolve implements domain.Resolver
func (c *Chain) Resolve(ctx context.Context, prompt string) (string, error) {
	if out, ok := c.resolveLocal(ctx, prompt); ok {
		return out, nil
	}

	for i, p := range c.providers {
		out, err := retry.Do(ctx, func() (string, error) {
			return p.Query(ctx, prompt)
		}, retry.Options{Sleep: c.sleep})
		if err == nil && strings.TrimSpace(out) != "" {
			return out, nil
		}
		if err != nil {
			c.log.Warn().Err(err).Str("provider", p.Name()).Msg("provider exhausted")
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if i < len(c.providers)-1 {
			if err := c.sleep(ctx, interProviderPause); err != nil {
				return "", err
			}
		}
	}

	return persona.Fallbacks[c.randFn(len(persona.Fallbacks))], nil
}

// resolveLocal answers prompts that never need a network round trip,
// plus the weather shape which uses the forecast backend directly
func (c *Chain) resolveLocal(ctx context.Context, prompt string) (string, bool) {
	lower := strings.ToLower(prompt)

	if out, ok := persona.Lookup(prompt); ok {
		return out, true
	}

	if strings.Contains(lower, "weather") || strings.Contains(lower, "forecast") {
		loc := weatherLocation(lower)
		out, err := c.weather.Summary(ctx, loc)
		if err != nil {
			c.log.Warn().Err(err).Str("location", loc).Msg("weather lookup failed")
			return "I couldn't reach the weather service just now. Please try again shortly.", true
		}
		return out, true
	}

	if strings.Contains(lower, "states in nigeria") || strings.Contains(lower, "nigerian states") {
		return places.StatesSentence(), true
	}

	if strings.Contains(lower, "creator") || strings.Contains(lower, "who made you") {
		return persona.CreatorDescription, true
	}

	if strings.Contains(lower, "who are you") || strings.Contains(lower, "your name") {
		return persona.Identity, true
	}

	return "", false
}

func weatherLocation(lower string) string {
	for _, prep := range []string{" in ", " for ", " at "} {
		idx := strings.Index(lower, prep)
		if idx < 0 {
			continue
		}
		loc := strings.TrimSpace(lower[idx+len(prep):])
		loc = strings.TrimSuffix(loc, "?")
		loc = strings.TrimSuffix(loc, ".")
		for _, tail := range []string{" today", " tomorrow", " right now", " now"} {
			loc = strings.TrimSuffix(loc, tail)
		}
		if loc != "" {
			return loc
		}
	}
	return DefaultWeatherLocation
}
