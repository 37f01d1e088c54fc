package describe

import (
	"context"
	"dress-rental-service/internal/locale"
	"dress-rental-service/pkg/genai"
	"dress-rental-service/prometheus"
	"errors"
	"testing"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

type fakeGenerator struct {
	text    string
	err     error
	calls   int
	prompts []string
}

func (f *fakeGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func newDescriber(gen TextGenerator, loc locale.Locale) *Describer {
	return New(gen, loc, Options{BreakerErrors: 2, BreakerTimeout: time.Minute}, nil, zap.NewNop())
}

func TestDescribeReturnsGeneratedText(t *testing.T) {
	gen := &fakeGenerator{text: "Pure elegance."}
	d := newDescriber(gen, locale.For(language.English))

	text, err := d.Describe(context.Background(), "Night Sky", "Navy", "Evening")

	require.NoError(t, err)
	assert.Equal(t, "Pure elegance.", text)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], `"Night Sky"`)
	assert.Contains(t, gen.prompts[0], "Navy")
	assert.Contains(t, gen.prompts[0], "Evening")
}

func TestDescribeFallsBackOnFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	d := newDescriber(gen, locale.Default())

	text, err := d.Describe(context.Background(), "שמלה", "Red", "Party")

	require.NoError(t, err)
	assert.Equal(t, "שמלה מרהיבה ומעוצבת לאירוע המושלם שלך.", text)
}

func TestDescribeFallsBackWithoutAPIKey(t *testing.T) {
	gen := &fakeGenerator{err: genai.ErrMissingAPIKey}
	metrics := prometheus.NewMetrics("test", promclient.NewRegistry())
	d := New(gen, locale.For(language.English), Options{BreakerErrors: 2, BreakerTimeout: time.Minute}, metrics, zap.NewNop())

	for i := 0; i < 5; i++ {
		text, err := d.Describe(context.Background(), "A", "B", "Party")
		require.NoError(t, err)
		assert.Equal(t, locale.For(language.English).Fallback, text)
	}

	// a missing key never opens the breaker
	assert.Equal(t, 5, gen.calls)
	assert.Equal(t, 5.0, testutil.ToFloat64(metrics.DescriptionRequestsCounter.WithLabelValues(OutcomeUnconfigured)))
	assert.Zero(t, testutil.ToFloat64(metrics.DescriptionRequestsCounter.WithLabelValues(OutcomeBreakerOpen)))
}

func TestDescribeCancelledDoesNotOpenBreaker(t *testing.T) {
	gen := &fakeGenerator{err: context.Canceled}
	metrics := prometheus.NewMetrics("test", promclient.NewRegistry())
	d := New(gen, locale.Default(), Options{BreakerErrors: 2, BreakerTimeout: time.Minute}, metrics, zap.NewNop())

	for i := 0; i < 3; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		text, err := d.Describe(ctx, "A", "B", "Party")
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, text)
	}
	assert.Zero(t, testutil.ToFloat64(metrics.DescriptionRequestsCounter.WithLabelValues(OutcomeFailed)))

	gen.err = nil
	gen.text = "fresh copy"
	text, err := d.Describe(context.Background(), "A", "B", "Party")

	require.NoError(t, err)
	assert.Equal(t, "fresh copy", text)
	assert.Equal(t, 4, gen.calls)
}

func TestDescribeTimeoutCountsAsFailure(t *testing.T) {
	gen := &fakeGenerator{err: context.DeadlineExceeded}
	d := newDescriber(gen, locale.Default())

	for i := 0; i < 3; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 0)
		text, err := d.Describe(ctx, "A", "B", "Party")
		cancel()
		require.NoError(t, err)
		assert.Equal(t, locale.Default().Fallback, text)
	}

	assert.Equal(t, 2, gen.calls)
}

func TestDescribeRequiresFields(t *testing.T) {
	gen := &fakeGenerator{text: "x"}
	d := newDescriber(gen, locale.Default())

	for _, args := range [][3]string{
		{"", "Red", "Party"},
		{"Name", "", "Party"},
		{"Name", "Red", ""},
	} {
		_, err := d.Describe(context.Background(), args[0], args[1], args[2])
		assert.ErrorIs(t, err, ErrIncompleteDress)
	}
	assert.Zero(t, gen.calls)
}

func TestDescribeBreakerStopsCalling(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("down")}
	d := newDescriber(gen, locale.Default())

	for i := 0; i < 5; i++ {
		text, err := d.Describe(context.Background(), "A", "B", "C")
		require.NoError(t, err)
		assert.Equal(t, locale.Default().Fallback, text)
	}

	// the breaker opens after the second failure
	assert.Equal(t, 2, gen.calls)
}
