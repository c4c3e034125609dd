// Package guidance fetches themed quotes from generative-text backends.
//
// A primary Gemini backend is always configured; an optional local Ollama
// backend can be enabled ahead of it, in which case backends are tried in
// priority order and a failing or empty backend falls through to the next.
package guidance

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/shristy0611/Wisdom-Bridge/internal/config"
	"github.com/shristy0611/Wisdom-Bridge/internal/quote"
)

// ErrAPIKey signals a missing or invalid credential. Fatal to the request;
// the UI directs the user to credential setup instead of offering a retry.
var ErrAPIKey = errors.New("missing or invalid API key")

// FetchError is a retryable backend failure: unreachable, empty, or
// unparsable. Detail carries a short diagnostic suffix.
type FetchError struct {
	Detail string
	Err    error
}

func (e *FetchError) Error() string {
	msg := "fetching guidance failed"
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error { return e.Err }

// Provider is one generative backend able to answer both fetch shapes.
type Provider interface {
	Name() string
	// FetchGuidance returns up to 5 quotes relevant to theme. Items the
	// backend returns without all three fields are dropped, not fatal.
	FetchGuidance(ctx context.Context, theme string, lang quote.Language) ([]quote.Quote, error)
	// FetchQuoteOfTheDay returns a single universally inspirational quote.
	FetchQuoteOfTheDay(ctx context.Context, lang quote.Language) (*quote.Quote, error)
}

// Chain tries providers in priority order, falling through on error or empty
// result. Only the final provider's failure propagates.
type Chain struct {
	providers []Provider
}

func NewChain(providers ...Provider) *Chain {
	return &Chain{providers: providers}
}

func (c *Chain) Name() string { return "chain" }

func (c *Chain) FetchGuidance(ctx context.Context, theme string, lang quote.Language) ([]quote.Quote, error) {
	var lastErr error
	for i, p := range c.providers {
		quotes, err := p.FetchGuidance(ctx, theme, lang)
		if err == nil && len(quotes) > 0 {
			return quotes, nil
		}
		if err == nil {
			err = &FetchError{Detail: "empty result from " + p.Name()}
		}
		lastErr = err
		if i < len(c.providers)-1 {
			log.Warn("guidance backend failed, falling through", "backend", p.Name(), "err", err)
		}
	}
	return nil, lastErr
}

func (c *Chain) FetchQuoteOfTheDay(ctx context.Context, lang quote.Language) (*quote.Quote, error) {
	var lastErr error
	for i, p := range c.providers {
		q, err := p.FetchQuoteOfTheDay(ctx, lang)
		if err == nil && q != nil {
			return q, nil
		}
		if err == nil {
			err = &FetchError{Detail: "empty result from " + p.Name()}
		}
		lastErr = err
		if i < len(c.providers)-1 {
			log.Warn("quote-of-the-day backend failed, falling through", "backend", p.Name(), "err", err)
		}
	}
	return nil, lastErr
}

// New builds the provider stack from config: Gemini as primary, with Ollama
// tried first when enabled.
func New(cfg *config.Config) Provider {
	client := &http.Client{Timeout: 60 * time.Second}

	gemini := newGemini(cfg.APIKey(), cfg.Backend.Model, client)
	if !cfg.Ollama.Enabled {
		return gemini
	}
	return NewChain(newOllama(cfg.Ollama.URL, cfg.Ollama.Model, client), gemini)
}
