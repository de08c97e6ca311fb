package telemetry

import (
	"context"
	"errors"
	"sync"
	"time"

	"agentdeck/internal/deck"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Span and attribute names.
const (
	SpanSession = "deck.session"
	SpanSlide   = "slide"

	AttrSessionID  = attribute.Key("agentdeck.session.id")
	AttrSlideIndex = attribute.Key("agentdeck.slide.index")
	AttrSlideTitle = attribute.Key("agentdeck.slide.title")
	AttrDirection  = attribute.Key("agentdeck.direction")
)

// ErrClosed is returned when a closed recorder is closed again.
var ErrClosed = errors.New("telemetry: recorder already closed")

// Dwell is the time spent on one slide across all of its visits.
type Dwell struct {
	Index    int
	Title    string
	Duration time.Duration
	Visits   int
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) { r.now = now }
}

// Recorder follows the deck and keeps one span open for the visible slide.
type Recorder struct {
	mu sync.Mutex

	exporter  *Exporter
	now       func() time.Time
	sessionID string

	ctx     context.Context
	session oteltrace.Span
	slide   oteltrace.Span
	current int
	entered time.Time
	dwell   []Dwell
	closed  bool
}

// NewRecorder opens the session span and a span for the first slide.
// titles lists the slides in deck order.
func NewRecorder(ctx context.Context, exp *Exporter, titles []string, opts ...Option) *Recorder {
	r := &Recorder{
		exporter:  exp,
		now:       time.Now,
		sessionID: uuid.NewString(),
		dwell:     make([]Dwell, len(titles)),
	}
	for _, o := range opts {
		o(r)
	}
	for i, t := range titles {
		r.dwell[i] = Dwell{Index: i, Title: t}
	}

	r.ctx, r.session = exp.Tracer().Start(ctx, SpanSession,
		oteltrace.WithTimestamp(r.now()),
		oteltrace.WithAttributes(AttrSessionID.String(r.sessionID)),
	)
	r.enter(0, deck.None)
	return r
}

// SessionID identifies this run in exported traces.
func (r *Recorder) SessionID() string { return r.sessionID }

// Observe records a slide change. Register it with deck.Deck.Observe.
func (r *Recorder) Observe(c deck.Change) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.leave()
	r.enter(c.To, c.Direction)
}

func (r *Recorder) enter(index int, dir deck.Direction) {
	r.current = index
	r.entered = r.now()
	if index < len(r.dwell) {
		r.dwell[index].Visits++
	}
	_, r.slide = r.exporter.Tracer().Start(r.ctx, SpanSlide,
		oteltrace.WithTimestamp(r.entered),
		oteltrace.WithAttributes(
			AttrSlideIndex.Int(index),
			AttrSlideTitle.String(r.title(index)),
			AttrDirection.String(dir.String()),
		),
	)
}

func (r *Recorder) leave() {
	end := r.now()
	if r.current < len(r.dwell) {
		r.dwell[r.current].Duration += end.Sub(r.entered)
	}
	r.slide.End(oteltrace.WithTimestamp(end))
}

func (r *Recorder) title(index int) string {
	if index < len(r.dwell) {
		return r.dwell[index].Title
	}
	return ""
}

// Summary returns dwell per slide in deck order, counting the open visit up to now.
func (r *Recorder) Summary() []Dwell {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]Dwell(nil), r.dwell...)
	if !r.closed && r.current < len(out) {
		out[r.current].Duration += r.now().Sub(r.entered)
	}
	return out
}

// Close ends the open spans and flushes the exporter.
func (r *Recorder) Close(ctx context.Context) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrClosed
	}
	r.leave()
	r.session.End(oteltrace.WithTimestamp(r.now()))
	r.closed = true
	r.mu.Unlock()

	return r.exporter.Shutdown(ctx)
}
