package suggest

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mwhite7112/cityform/internal/metrics"
)

// Options tunes the engine's timings. Zero values take the defaults.
type Options struct {
	Debounce      time.Duration
	BlurDelay     time.Duration
	LookupTimeout time.Duration
}

const (
	DefaultDebounce      = 300 * time.Millisecond
	DefaultBlurDelay     = 150 * time.Millisecond
	DefaultLookupTimeout = 5 * time.Second
)

func (o Options) withDefaults() Options {
	if o.Debounce <= 0 {
		o.Debounce = DefaultDebounce
	}
	if o.BlurDelay <= 0 {
		o.BlurDelay = DefaultBlurDelay
	}
	if o.LookupTimeout <= 0 {
		o.LookupTimeout = DefaultLookupTimeout
	}
	return o
}

// Engine debounces input, picks an upstream source, and renders the latest
// result. Every scheduled lookup carries a sequence number; a result whose
// number is no longer the latest issued is dropped, so a slow response for an
// old keystroke never overwrites a newer list.
type Engine struct {
	pincode PincodeLookup
	cities  CityLookup
	input   Input
	surface Surface
	opts    Options

	// renderMu serializes every call into surface and input.
	renderMu sync.Mutex

	mu        sync.Mutex
	timer     *time.Timer
	blurTimer *time.Timer
	seq       uint64
	closed    bool
}

// NewEngine wires an engine to its lookups and UI handles. input and surface
// may be nil when only Suggest is used.
func NewEngine(pincode PincodeLookup, cities CityLookup, input Input, surface Surface, opts Options) *Engine {
	return &Engine{
		pincode: pincode,
		cities:  cities,
		input:   input,
		surface: surface,
		opts:    opts.withDefaults(),
	}
}

// OnInput handles one change of the input text. Empty text hides the list
// immediately; anything else replaces the pending lookup with a new one that
// fires after the debounce delay.
func (e *Engine) OnInput(text string) {
	q := strings.TrimSpace(text)

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.seq++
	seq := e.seq
	if q == "" {
		e.mu.Unlock()
		e.renderMu.Lock()
		e.hide()
		e.renderMu.Unlock()
		return
	}
	e.timer = time.AfterFunc(e.opts.Debounce, func() { e.fire(seq, q) })
	e.mu.Unlock()

	log.Debug().Uint64("seq", seq).Str("query", q).Msg("lookup scheduled")
}

func (e *Engine) fire(seq uint64, q string) {
	if !e.isLatest(seq) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), e.opts.LookupTimeout)
	defer cancel()
	items := e.Suggest(ctx, q)

	e.renderMu.Lock()
	defer e.renderMu.Unlock()
	if !e.isLatest(seq) {
		log.Debug().Uint64("seq", seq).Str("query", q).Msg("discarding stale suggestions")
		metrics.RecordStaleResult()
		return
	}
	e.render(items)
}

func (e *Engine) isLatest(seq uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.closed && seq == e.seq
}

// Suggest runs one lookup for text without debouncing. Queries shorter than
// the minimum for their kind are not sent upstream. The result is never nil.
func (e *Engine) Suggest(ctx context.Context, text string) []Suggestion {
	q := strings.TrimSpace(text)
	kind := Classify(q)
	if q == "" || !meetsMinimum(q, kind) {
		return []Suggestion{}
	}

	ctx, cancel := context.WithTimeout(ctx, e.opts.LookupTimeout)
	defer cancel()

	if kind == Numeric {
		return e.lookupByCode(ctx, q)
	}
	return e.lookupByName(ctx, q)
}

// lookupByCode and lookupByName swallow every upstream failure: the user
// sees an empty list, the log and metrics see the cause.
func (e *Engine) lookupByCode(ctx context.Context, code string) []Suggestion {
	start := time.Now()
	resp, err := e.pincode.LookupPincode(ctx, code)
	if err != nil {
		log.Warn().Err(err).Str("code", code).Msg("pincode lookup failed")
		metrics.RecordLookup("pincode", "error", time.Since(start))
		return []Suggestion{}
	}
	out := fromPincode(code, resp)
	metrics.RecordLookup("pincode", outcome(out), time.Since(start))
	return out
}

func (e *Engine) lookupByName(ctx context.Context, text string) []Suggestion {
	start := time.Now()
	resp, err := e.cities.SearchCities(ctx, text, CitySearchLimit)
	if err != nil {
		log.Warn().Err(err).Str("query", text).Msg("city search failed")
		metrics.RecordLookup("city", "error", time.Since(start))
		return []Suggestion{}
	}
	out := fromCitySearch(resp)
	metrics.RecordLookup("city", outcome(out), time.Since(start))
	return out
}

func outcome(items []Suggestion) string {
	if len(items) == 0 {
		return "empty"
	}
	return "ok"
}

// Render shows items, or hides the list when there are none.
func (e *Engine) Render(items []Suggestion) {
	e.renderMu.Lock()
	defer e.renderMu.Unlock()
	e.render(items)
}

func (e *Engine) render(items []Suggestion) {
	if e.surface == nil {
		return
	}
	e.surface.Clear()
	if len(items) == 0 {
		e.surface.Hide()
		e.surface.SetHidden(true)
		return
	}
	for _, item := range items {
		item := item
		e.surface.Append(item.Display, func() { e.Select(item) })
	}
	e.surface.Show()
	e.surface.SetHidden(false)
}

// Select commits item into the input and closes the list. A lookup still
// pending at that point is cancelled so the list does not reopen.
func (e *Engine) Select(item Suggestion) {
	e.mu.Lock()
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.seq++
	e.mu.Unlock()

	e.renderMu.Lock()
	defer e.renderMu.Unlock()
	if e.input != nil {
		e.input.SetValue(item.Value)
	}
	if e.surface != nil {
		e.surface.Clear()
		e.surface.Hide()
	}
}

// OnBlur hides the list after the blur delay, leaving time for a click on an
// entry to register first.
func (e *Engine) OnBlur() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	if e.blurTimer != nil {
		e.blurTimer.Stop()
	}
	e.blurTimer = time.AfterFunc(e.opts.BlurDelay, func() {
		e.mu.Lock()
		closed := e.closed
		e.mu.Unlock()
		if closed {
			return
		}
		e.renderMu.Lock()
		defer e.renderMu.Unlock()
		if e.surface != nil {
			e.surface.Hide()
		}
	})
}

// Close stops pending timers. Later input is ignored.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	if e.timer != nil {
		e.timer.Stop()
	}
	if e.blurTimer != nil {
		e.blurTimer.Stop()
	}
}

func (e *Engine) hide() {
	if e.surface == nil {
		return
	}
	e.surface.Clear()
	e.surface.Hide()
	e.surface.SetHidden(true)
}
