package form

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mwhite7112/cityform/internal/metrics"
)

// Status messages shown to the user.
const (
	MsgIncomplete   = "Please complete the required fields."
	MsgReceived     = "Thank you — your enquiry has been received."
	MsgSubmitFailed = "We could not send your enquiry. Please try again."
)

// DefaultResetDelay is how long the success message stays before the form clears.
const DefaultResetDelay = 1200 * time.Millisecond

// ErrSubmitFailed wraps any error returned by the Submitter.
var ErrSubmitFailed = errors.New("enquiry submission failed")

// StatusKind selects how a status message is styled.
type StatusKind int

const (
	StatusError StatusKind = iota
	StatusSuccess
)

func (k StatusKind) String() string {
	if k == StatusSuccess {
		return "success"
	}
	return "error"
}

// OtherEventRow is the row holding the free-text event field.
type OtherEventRow interface {
	SetVisible(visible bool)
	SetRequired(required bool)
}

type StatusDisplay interface {
	SetStatus(msg string, kind StatusKind)
}

// FieldReporter is implemented by a StatusDisplay that can point at a single
// field. The gate calls it with the first invalid field's JSON name.
type FieldReporter interface {
	ReportField(field string)
}

// Resetter clears every field of the form.
type Resetter interface {
	Reset()
}

// Submitter delivers a validated enquiry.
type Submitter interface {
	Submit(ctx context.Context, enq Enquiry) (Ack, error)
}

// Gate owns the event-type toggle and the submit flow.
type Gate struct {
	row        OtherEventRow
	status     StatusDisplay
	resetter   Resetter
	submitter  Submitter
	resetDelay time.Duration

	mu            sync.Mutex
	otherRequired bool
	resetTimer    *time.Timer
}

// NewGate wires a gate to its UI handles. resetter may be nil when the caller
// has nothing to clear, and resetDelay <= 0 takes DefaultResetDelay.
func NewGate(row OtherEventRow, status StatusDisplay, resetter Resetter, submitter Submitter, resetDelay time.Duration) *Gate {
	if resetDelay <= 0 {
		resetDelay = DefaultResetDelay
	}
	return &Gate{
		row:        row,
		status:     status,
		resetter:   resetter,
		submitter:  submitter,
		resetDelay: resetDelay,
	}
}

// OnEventTypeChange reveals and requires the other-event field for "Others",
// and hides and un-requires it for anything else.
func (g *Gate) OnEventTypeChange(value string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.setOther(value == EventTypeOthers)
}

func (g *Gate) setOther(on bool) {
	g.otherRequired = on
	g.row.SetVisible(on)
	g.row.SetRequired(on)
}

// OtherRequired reports the current toggle state.
func (g *Gate) OtherRequired() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.otherRequired
}

// Validate checks enq against the form rules under the current toggle state.
func (g *Gate) Validate(enq Enquiry) error {
	return validateEnquiry(enq.trimmed(), g.OtherRequired())
}

// Submit validates and delivers the enquiry. On a *ValidationError or a
// submitter failure the status shows an error message and nothing is reset;
// a status display that is also a FieldReporter is told the first invalid field.
// On success the status shows the received message and the form is reset
// after the reset delay.
func (g *Gate) Submit(ctx context.Context, fields Enquiry) (Ack, error) {
	enq := fields.trimmed()

	if err := validateEnquiry(enq, g.OtherRequired()); err != nil {
		metrics.RecordSubmission("invalid")
		g.status.SetStatus(MsgIncomplete, StatusError)
		var verr *ValidationError
		if errors.As(err, &verr) {
			log.Debug().Str("field", verr.Field).Str("problems", verr.Error()).Msg("enquiry rejected")
			if fr, ok := g.status.(FieldReporter); ok {
				fr.ReportField(verr.Field)
			}
		}
		return Ack{}, err
	}

	ack, err := g.submitter.Submit(ctx, enq)
	if err != nil {
		log.Error().Err(err).Msg("enquiry submission failed")
		metrics.RecordSubmission("failed")
		g.status.SetStatus(MsgSubmitFailed, StatusError)
		return Ack{}, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	log.Info().Str("enquiry_id", ack.ID.String()).Str("event_type", enq.EventType).Msg("enquiry received")
	metrics.RecordSubmission("accepted")
	g.status.SetStatus(MsgReceived, StatusSuccess)
	g.scheduleReset()
	return ack, nil
}

func (g *Gate) scheduleReset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.resetTimer != nil {
		g.resetTimer.Stop()
	}
	g.resetTimer = time.AfterFunc(g.resetDelay, func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		if g.resetter != nil {
			g.resetter.Reset()
		}
		g.setOther(false)
	})
}

// Close cancels a pending reset.
func (g *Gate) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.resetTimer != nil {
		g.resetTimer.Stop()
	}
}
