package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"assistant/internal/adapters/llm"
	perr "assistant/internal/platform/errors"
	"assistant/internal/platform/retry"
	"assistant/internal/platform/testkit"
	"assistant/internal/services/assistant/service"
)

type fakeProvider struct {
	name    string
	enabled bool
	answers []string
	errs    []error
	calls   int
}

func (f *fakeProvider) Name() string  { return f.name }
func (f *fakeProvider) Enabled() bool { return f.enabled }

func (f *fakeProvider) Query(context.Context, string) (string, error) {
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.answers) {
		return f.answers[i], nil
	}
	return "", perr.Unavailablef("exhausted")
}

type fakeWeather struct {
	summary string
	calls   int
}

func (f *fakeWeather) Summary(_ context.Context, loc string) (string, error) {
	f.calls++
	f.summary = "Current weather in " + loc
	return f.summary, nil
}

func recordingSleeper(delays *[]time.Duration) retry.Sleeper {
	return func(_ context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		return nil
	}
}

func newChain(w service.Weatherer, providers []*fakeProvider, delays *[]time.Duration) *service.Chain {
	list := make([]llm.Provider, 0, len(providers))
	for _, p := range providers {
		list = append(list, p)
	}
	return service.NewChain(testkit.NopLogger(), w, list,
		service.WithSleeper(recordingSleeper(delays)),
		service.WithRand(func(int) int { return 0 }),
	)
}

func TestChain_AllDisabledReturnsCannedFallback(t *testing.T) {
	var delays []time.Duration
	c := newChain(&fakeWeather{}, []*fakeProvider{
		{name: "a", enabled: false},
		{name: "b", enabled: false},
	}, &delays)

	out, err := c.Resolve(context.Background(), "what is the meaning of life")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if out != "I'm still learning. Could you rephrase that?" {
		t.Fatalf("expected the first canned fallback got %q", out)
	}
}

func TestChain_FirstNonEmptyAnswerStops(t *testing.T) {
	var delays []time.Duration
	a := &fakeProvider{name: "a", enabled: true, answers: []string{"forty-two"}}
	b := &fakeProvider{name: "b", enabled: true, answers: []string{"nope"}}
	c := newChain(&fakeWeather{}, []*fakeProvider{a, b}, &delays)

	out, err := c.Resolve(context.Background(), "meaning of life")
	if err != nil || out != "forty-two" {
		t.Fatalf("expected forty-two got %q err=%v", out, err)
	}
	if b.calls != 0 {
		t.Fatalf("second provider must not be called, got %d calls", b.calls)
	}
	if len(delays) != 0 {
		t.Fatalf("no sleeps expected got %v", delays)
	}
}

func TestChain_TerminalErrorSkipsToNextProvider(t *testing.T) {
	var delays []time.Duration
	notFound := perr.WithStatus(perr.Unavailablef("no such model"), http.StatusNotFound)
	a := &fakeProvider{name: "a", enabled: true, errs: []error{notFound}}
	b := &fakeProvider{name: "b", enabled: true, answers: []string{"from b"}}
	c := newChain(&fakeWeather{}, []*fakeProvider{a, b}, &delays)

	out, err := c.Resolve(context.Background(), "meaning of life")
	if err != nil || out != "from b" {
		t.Fatalf("expected from b got %q err=%v", out, err)
	}
	if a.calls != 1 {
		t.Fatalf("404 must not be retried, got %d calls", a.calls)
	}
	// only the 500ms inter-provider pause
	if len(delays) != 1 || delays[0] != 500*time.Millisecond {
		t.Fatalf("expected one 500ms pause got %v", delays)
	}
}

func TestChain_ServerErrorRetriedWithBackoff(t *testing.T) {
	var delays []time.Duration
	down := perr.WithStatus(perr.Unavailablef("downstream down"), http.StatusServiceUnavailable)
	a := &fakeProvider{name: "a", enabled: true, errs: []error{down, down, down}}
	b := &fakeProvider{name: "b", enabled: true, answers: []string{"from b"}}
	c := newChain(&fakeWeather{}, []*fakeProvider{a, b}, &delays)

	out, err := c.Resolve(context.Background(), "meaning of life")
	if err != nil || out != "from b" {
		t.Fatalf("expected from b got %q err=%v", out, err)
	}
	if a.calls != 3 {
		t.Fatalf("503 retried 3 times total, got %d calls", a.calls)
	}
	want := []time.Duration{time.Second, 2 * time.Second, 500 * time.Millisecond}
	if len(delays) != 3 || delays[0] != want[0] || delays[1] != want[1] || delays[2] != want[2] {
		t.Fatalf("expected 1s, 2s then the provider pause got %v", delays)
	}
}

func TestChain_LocalKnowledgeBeatsProviders(t *testing.T) {
	var delays []time.Duration
	a := &fakeProvider{name: "a", enabled: true, answers: []string{"should not be used"}}
	c := newChain(&fakeWeather{}, []*fakeProvider{a}, &delays)

	out, err := c.Resolve(context.Background(), "who created you?")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if a.calls != 0 {
		t.Fatal("local answers must not reach a provider")
	}
	if out == "" {
		t.Fatal("expected a local answer")
	}
}

func TestChain_WeatherShapeUsesForecastBackend(t *testing.T) {
	var delays []time.Duration
	w := &fakeWeather{}
	a := &fakeProvider{name: "a", enabled: true, answers: []string{"should not be used"}}
	c := newChain(w, []*fakeProvider{a}, &delays)

	out, err := c.Resolve(context.Background(), "what is the weather in Abuja")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if w.calls != 1 {
		t.Fatalf("expected one forecast call got %d", w.calls)
	}
	if out != "Current weather in abuja" {
		t.Fatalf("unexpected answer %q", out)
	}
	if a.calls != 0 {
		t.Fatal("weather prompts must not reach a provider")
	}
}

func TestChain_ForecastKeywordUsesForecastBackend(t *testing.T) {
	var delays []time.Duration
	w := &fakeWeather{}
	a := &fakeProvider{name: "a", enabled: true, answers: []string{"should not be used"}}
	c := newChain(w, []*fakeProvider{a}, &delays)

	out, err := c.Resolve(context.Background(), "what is the forecast in Abuja")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if w.calls != 1 {
		t.Fatalf("expected one forecast call got %d", w.calls)
	}
	if out != "Current weather in abuja" {
		t.Fatalf("unexpected answer %q", out)
	}
	if a.calls != 0 {
		t.Fatal("forecast prompts must not reach a provider")
	}
}
