package telemetry

import (
	"context"
	"strings"
	"testing"
	"time"

	"agentdeck/internal/config"
	"agentdeck/internal/deck"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newRecorded(t *testing.T, titles []string) (*Recorder, *tracetest.SpanRecorder, *fakeClock) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	exp := NewExporterWithProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr)))
	clock := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	return NewRecorder(context.Background(), exp, titles, WithClock(clock.now)), sr, clock
}

func attrs(kv []attribute.KeyValue) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value, len(kv))
	for _, a := range kv {
		out[a.Key] = a.Value
	}
	return out
}

func TestRecorder_DwellAndVisits(t *testing.T) {
	r, _, clock := newRecorded(t, []string{"Intro", "Spectrum", "Outro"})

	clock.advance(10 * time.Second)
	r.Observe(deck.Change{From: 0, To: 1, Direction: deck.Forward})
	clock.advance(30 * time.Second)
	r.Observe(deck.Change{From: 1, To: 0, Direction: deck.Backward})
	clock.advance(5 * time.Second)
	r.Observe(deck.Change{From: 0, To: 1, Direction: deck.Forward})
	clock.advance(15 * time.Second)

	got := r.Summary()
	require.Len(t, got, 3)
	assert.Equal(t, Dwell{Index: 0, Title: "Intro", Duration: 15 * time.Second, Visits: 2}, got[0])
	assert.Equal(t, Dwell{Index: 1, Title: "Spectrum", Duration: 45 * time.Second, Visits: 2}, got[1])
	assert.Equal(t, Dwell{Index: 2, Title: "Outro"}, got[2])
}

func TestRecorder_Spans(t *testing.T) {
	r, sr, clock := newRecorded(t, []string{"Intro", "Spectrum"})

	clock.advance(2 * time.Second)
	r.Observe(deck.Change{From: 0, To: 1, Direction: deck.Forward})
	clock.advance(3 * time.Second)
	require.NoError(t, r.Close(context.Background()))

	ended := sr.Ended()
	require.Len(t, ended, 3)

	session := ended[2]
	assert.Equal(t, SpanSession, session.Name())
	_, err := uuid.Parse(attrs(session.Attributes())[AttrSessionID].AsString())
	assert.NoError(t, err, "session id should be a UUID")
	assert.Equal(t, 5*time.Second, session.EndTime().Sub(session.StartTime()))

	for i, s := range ended[:2] {
		assert.Equal(t, SpanSlide, s.Name())
		assert.Equal(t, session.SpanContext().SpanID(), s.Parent().SpanID())
		a := attrs(s.Attributes())
		assert.Equal(t, int64(i), a[AttrSlideIndex].AsInt64())
	}

	first := attrs(ended[0].Attributes())
	assert.Equal(t, "Intro", first[AttrSlideTitle].AsString())
	assert.Equal(t, "none", first[AttrDirection].AsString())
	assert.Equal(t, 2*time.Second, ended[0].EndTime().Sub(ended[0].StartTime()))

	second := attrs(ended[1].Attributes())
	assert.Equal(t, "forward", second[AttrDirection].AsString())
}

func TestRecorder_CloseTwice(t *testing.T) {
	r, _, _ := newRecorded(t, []string{"Only"})
	require.NoError(t, r.Close(context.Background()))
	assert.ErrorIs(t, r.Close(context.Background()), ErrClosed)

	r.Observe(deck.Change{From: 0, To: 0})
	assert.Equal(t, 1, r.Summary()[0].Visits, "observations after close are ignored")
}

func TestRecorder_FollowsDeck(t *testing.T) {
	d, err := deck.NewDeck([]int{0, 2, 0})
	require.NoError(t, err)
	r, sr, clock := newRecorded(t, []string{"a", "b", "c"})
	d.Observe(r.Observe)

	nav := d.Navigator()
	nav.GoToNext()
	clock.advance(time.Second)
	d.Active().Advance()
	d.Active().Advance()
	d.Active().Advance()

	assert.Equal(t, 2, d.Index())
	assert.Len(t, sr.Ended(), 2)
	assert.Equal(t, time.Second, r.Summary()[1].Duration)
}

func TestNewExporter_DisabledWithoutEndpoint(t *testing.T) {
	exp, err := NewExporter(context.Background(), config.TelemetryConfig{})
	require.NoError(t, err)
	assert.False(t, exp.Enabled())
	assert.NoError(t, exp.Shutdown(context.Background()))

	r := NewRecorder(context.Background(), exp, []string{"x"})
	assert.NotEmpty(t, r.SessionID())
	assert.NoError(t, r.Close(context.Background()))
}

func TestNewExporter_Endpoint(t *testing.T) {
	exp, err := NewExporter(context.Background(), config.TelemetryConfig{
		Endpoint:    "localhost:4318",
		ServiceName: "deck-test",
		Insecure:    true,
	})
	require.NoError(t, err)
	assert.True(t, exp.Enabled())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = exp.Shutdown(ctx)
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary([]Dwell{
		{Index: 0, Title: "Intro", Duration: 65 * time.Second, Visits: 1},
		{Index: 1, Title: "Spectrum", Duration: 125*time.Second + 400*time.Millisecond, Visits: 2},
	})
	for _, want := range []string{"Intro", "Spectrum", "1:05", "2:05", "Total: 3:10"} {
		assert.True(t, strings.Contains(out, want), "missing %q in:\n%s", want, out)
	}
}
