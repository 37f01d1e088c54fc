// Package describe writes marketing copy for dresses through the remote
// text-generation API. Failures never reach the caller: they turn into the
// locale's fallback text.
package describe

import (
	"context"
	"dress-rental-service/internal/locale"
	"dress-rental-service/pkg/genai"
	"dress-rental-service/prometheus"
	"errors"
	"time"

	"github.com/eapache/go-resiliency/breaker"
	"go.uber.org/zap"
)

// ErrIncompleteDress is returned when name, color or category is missing
var ErrIncompleteDress = errors.New("description needs a name, a color and a category")

// Generation outcomes, used as metric labels
const (
	OutcomeGenerated    = "generated"
	OutcomeFailed       = "failed"
	OutcomeBreakerOpen  = "breaker_open"
	OutcomeUnconfigured = "unconfigured"
)

// TextGenerator produces text for a prompt
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Describer generates dress descriptions
type Describer struct {
	gen     TextGenerator
	loc     locale.Locale
	breaker *breaker.Breaker
	metrics *prometheus.Metrics
	logger  *zap.Logger
}

// Options tunes the circuit breaker around the remote call. BreakerErrors
// failures within BreakerTimeout of each other open it; after BreakerTimeout
// one trial call is let through.
type Options struct {
	BreakerErrors  int
	BreakerTimeout time.Duration
}

func New(gen TextGenerator, loc locale.Locale, opts Options, metrics *prometheus.Metrics, logger *zap.Logger) *Describer {
	return &Describer{
		gen:     gen,
		loc:     loc,
		breaker: breaker.New(max(opts.BreakerErrors, 1), 1, opts.BreakerTimeout),
		metrics: metrics,
		logger:  logger,
	}
}

// Describe returns marketing copy for the dress. Any failure of the remote
// call yields the fallback text. The errors are ErrIncompleteDress, and the
// context's error when the caller cancelled before the call finished.
func (d *Describer) Describe(ctx context.Context, name, color, category string) (string, error) {
	if name == "" || color == "" || category == "" {
		return "", ErrIncompleteDress
	}

	done := d.metrics.TrackDescription()
	prompt := d.loc.DescriptionPrompt(name, color, category)

	var (
		text    string
		callErr error
	)
	err := d.breaker.Run(func() error {
		text, callErr = d.gen.GenerateText(ctx, prompt)
		// a cancelled caller or a missing key says nothing about the remote side
		if errors.Is(callErr, genai.ErrMissingAPIKey) || errors.Is(ctx.Err(), context.Canceled) {
			return nil
		}
		return callErr
	})
	if err == nil {
		err = callErr
	}
	if err == nil {
		done(OutcomeGenerated)
		d.logger.Info("Description generated",
			zap.String("dress_name", name),
			zap.Int("length", len(text)))
		return text, nil
	}

	if errors.Is(ctx.Err(), context.Canceled) {
		d.logger.Debug("Description request cancelled", zap.String("dress_name", name))
		return "", ctx.Err()
	}

	outcome := OutcomeFailed
	switch {
	case errors.Is(err, breaker.ErrBreakerOpen):
		outcome = OutcomeBreakerOpen
	case errors.Is(err, genai.ErrMissingAPIKey):
		outcome = OutcomeUnconfigured
	}
	done(outcome)
	d.logger.Warn("Description generation failed, using fallback",
		zap.String("dress_name", name),
		zap.String("outcome", outcome),
		zap.Error(err))
	return d.loc.Fallback, nil
}
