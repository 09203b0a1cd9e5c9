package form

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRow struct {
	mu       sync.Mutex
	visible  bool
	required bool
}

func (r *recordingRow) SetVisible(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visible = v
}

func (r *recordingRow) SetRequired(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.required = v
}

func (r *recordingRow) state() (visible, required bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.visible, r.required
}

type recordingStatus struct {
	msg  string
	kind StatusKind
}

func (s *recordingStatus) SetStatus(msg string, kind StatusKind) {
	s.msg = msg
	s.kind = kind
}

// fieldStatus is a status display that also records the reported field.
type fieldStatus struct {
	recordingStatus
	fields []string
}

func (s *fieldStatus) ReportField(field string) {
	s.fields = append(s.fields, field)
}

type countingResetter struct {
	mu    sync.Mutex
	count int
}

func (r *countingResetter) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count++
}

func (r *countingResetter) resets() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// stubSubmitter records the last enquiry and returns err when set.
type stubSubmitter struct {
	got   *Enquiry
	err   error
	calls int
}

func (s *stubSubmitter) Submit(_ context.Context, enq Enquiry) (Ack, error) {
	s.calls++
	s.got = &enq
	if s.err != nil {
		return Ack{}, s.err
	}
	return Ack{ID: uuid.New(), ReceivedAt: time.Now()}, nil
}

type gateFixture struct {
	gate      *Gate
	row       *recordingRow
	status    *recordingStatus
	resetter  *countingResetter
	submitter *stubSubmitter
}

func newGateFixture(t *testing.T) gateFixture {
	t.Helper()

	f := gateFixture{
		row:       &recordingRow{},
		status:    &recordingStatus{},
		resetter:  &countingResetter{},
		submitter: &stubSubmitter{},
	}
	f.gate = NewGate(f.row, f.status, f.resetter, f.submitter, 30*time.Millisecond)
	t.Cleanup(f.gate.Close)
	return f
}

func validEnquiry() Enquiry {
	return Enquiry{
		Name:      "Asha Rao",
		Email:     "asha@example.com",
		Mobile:    "98765 43210",
		City:      "Fort, Maharashtra",
		EventType: "Wedding",
		Message:   "Looking for a venue in March.",
	}
}

func TestOnEventTypeChange_TogglesOtherField(t *testing.T) {
	t.Parallel()

	f := newGateFixture(t)

	f.gate.OnEventTypeChange("Others")
	visible, required := f.row.state()
	assert.True(t, visible)
	assert.True(t, required)
	assert.True(t, f.gate.OtherRequired())

	f.gate.OnEventTypeChange("Wedding")
	visible, required = f.row.state()
	assert.False(t, visible)
	assert.False(t, required)
	assert.False(t, f.gate.OtherRequired())
}

func TestOnEventTypeChange_CaseSensitive(t *testing.T) {
	t.Parallel()

	f := newGateFixture(t)
	f.gate.OnEventTypeChange("others")

	visible, _ := f.row.state()
	assert.False(t, visible)
}

func TestSubmit_RequiredFieldBlocksThenSucceeds(t *testing.T) {
	t.Parallel()

	f := newGateFixture(t)
	enq := validEnquiry()
	enq.City = "   "

	_, err := f.gate.Submit(context.Background(), enq)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "city", verr.Field)
	assert.Equal(t, MsgIncomplete, f.status.msg)
	assert.Equal(t, StatusError, f.status.kind)
	assert.Zero(t, f.submitter.calls)

	enq.City = "Fort, Maharashtra"
	ack, err := f.gate.Submit(context.Background(), enq)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, ack.ID)
	assert.Equal(t, MsgReceived, f.status.msg)
	assert.Equal(t, StatusSuccess, f.status.kind)
	assert.Equal(t, 0, f.resetter.resets())
	require.Eventually(t, func() bool { return f.resetter.resets() == 1 }, time.Second, 5*time.Millisecond)
}

func TestSubmit_ReportsFirstInvalidField(t *testing.T) {
	t.Parallel()

	status := &fieldStatus{}
	submitter := &stubSubmitter{}
	gate := NewGate(&recordingRow{}, status, nil, submitter, 30*time.Millisecond)
	t.Cleanup(gate.Close)

	enq := validEnquiry()
	enq.Email = "not-an-email"
	enq.City = ""

	_, err := gate.Submit(context.Background(), enq)

	require.Error(t, err)
	assert.Equal(t, []string{"email"}, status.fields)
	assert.Equal(t, MsgIncomplete, status.msg)
	assert.Zero(t, submitter.calls)

	_, err = gate.Submit(context.Background(), validEnquiry())

	require.NoError(t, err)
	assert.Equal(t, []string{"email"}, status.fields)
}

func TestSubmit_TrimsFieldsBeforeDelivery(t *testing.T) {
	t.Parallel()

	f := newGateFixture(t)
	enq := validEnquiry()
	enq.Name = "  Asha Rao  "
	enq.Message = "\n hello \n"

	_, err := f.gate.Submit(context.Background(), enq)

	require.NoError(t, err)
	require.NotNil(t, f.submitter.got)
	assert.Equal(t, "Asha Rao", f.submitter.got.Name)
	assert.Equal(t, "hello", f.submitter.got.Message)
}

func TestSubmit_OtherEventRequiredOnlyWhenToggled(t *testing.T) {
	t.Parallel()

	f := newGateFixture(t)
	enq := validEnquiry()
	enq.EventType = "Others"

	f.gate.OnEventTypeChange("Others")
	_, err := f.gate.Submit(context.Background(), enq)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "otherEvent", verr.Field)

	enq.OtherEvent = "Book launch"
	_, err = f.gate.Submit(context.Background(), enq)
	require.NoError(t, err)

	// The successful reset also clears the toggle.
	require.Eventually(t, func() bool { return !f.gate.OtherRequired() }, time.Second, 5*time.Millisecond)
	visible, required := f.row.state()
	assert.False(t, visible)
	assert.False(t, required)
}

func TestSubmit_SubmitterFailure(t *testing.T) {
	t.Parallel()

	f := newGateFixture(t)
	f.submitter.err = errors.New("connection reset")

	_, err := f.gate.Submit(context.Background(), validEnquiry())

	require.ErrorIs(t, err, ErrSubmitFailed)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, MsgSubmitFailed, f.status.msg)
	assert.Equal(t, StatusError, f.status.kind)

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, f.resetter.resets())
}

func TestValidate_FirstInvalidFieldInFormOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Enquiry)
		field  string
		msg    string
	}{
		{"missing name", func(e *Enquiry) { e.Name = "" }, "name", "name is required"},
		{"bad email", func(e *Enquiry) { e.Email = "asha-at-example" }, "email", "email must be a valid email address"},
		{"short mobile", func(e *Enquiry) { e.Mobile = "12345" }, "mobile", "mobile must be a valid 10-digit mobile number"},
		{"missing event type", func(e *Enquiry) { e.EventType = "" }, "eventType", "eventType is required"},
		{"email before message", func(e *Enquiry) {
			e.Message = string(make([]byte, 2001))
			e.Email = ""
		}, "email", "email is required"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newGateFixture(t)
			enq := validEnquiry()
			tc.mutate(&enq)

			err := f.gate.Validate(enq)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
			assert.Equal(t, tc.msg, verr.Problems[0].Message)
		})
	}
}

func TestValidateMobile(t *testing.T) {
	t.Parallel()

	valid := []string{"9876543210", "98765 43210", "+91 98765-43210", "+919876543210", "09876543210"}
	invalid := []string{"", "5876543210", "987654321", "98765432100", "+1 9876543210", "98765abc10"}

	for _, m := range valid {
		enq := validEnquiry()
		enq.Mobile = m
		assert.NoError(t, validateEnquiry(enq, false), "mobile %q", m)
	}
	for _, m := range invalid {
		enq := validEnquiry()
		enq.Mobile = m
		assert.Error(t, validateEnquiry(enq, false), "mobile %q", m)
	}
}
