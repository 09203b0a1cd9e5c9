package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mwhite7112/cityform/internal/form"
	"github.com/mwhite7112/cityform/internal/metrics"
	"github.com/mwhite7112/cityform/internal/suggest"
)

// NewRouter wires all routes.
func NewRouter(engine *suggest.Engine, submitter form.Submitter) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(AccessLog)

	r.Get("/healthz", handleHealth)
	r.Handle("/metrics", metrics.Handler())

	r.Get("/suggestions", handleSuggestions(engine))
	r.Get("/form/event-type", handleEventType)
	r.Post("/enquiries", handleSubmitEnquiry(submitter))

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok")) //nolint:errcheck
}

// --- GET /suggestions?q= ---

func handleSuggestions(engine *suggest.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := strings.TrimSpace(r.URL.Query().Get("q"))
		items := engine.Suggest(r.Context(), q)
		jsonOK(w, map[string]any{
			"kind":  suggest.Classify(q).String(),
			"items": items,
		})
	}
}

// --- GET /form/event-type?value= ---

func handleEventType(w http.ResponseWriter, r *http.Request) {
	row := &rowState{}
	gate := form.NewGate(row, &statusCapture{}, nil, nil, 0)
	gate.OnEventTypeChange(r.URL.Query().Get("value"))
	jsonOK(w, map[string]bool{
		"other_visible":  row.visible,
		"other_required": row.required,
	})
}

// --- POST /enquiries ---

func handleSubmitEnquiry(submitter form.Submitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req form.Enquiry
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}

		status := &statusCapture{}
		gate := form.NewGate(&rowState{}, status, nil, submitter, 0)
		defer gate.Close()
		gate.OnEventTypeChange(req.EventType)

		ack, err := gate.Submit(r.Context(), req)
		var verr *form.ValidationError
		switch {
		case errors.As(err, &verr):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
				"error":    verr.Error(),
				"field":    status.field,
				"problems": verr.Problems,
				"status":   status.msg,
			})
		case err != nil:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(map[string]string{ //nolint:errcheck
				"error":  "failed to submit enquiry",
				"status": status.msg,
			})
		default:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
				"id":          ack.ID,
				"received_at": ack.ReceivedAt,
				"status":      status.msg,
			})
		}
	}
}

// --- helpers ---

// rowState and statusCapture stand in for the page elements on a request
// that has no page: they record what the gate asked for.
type rowState struct {
	visible  bool
	required bool
}

func (s *rowState) SetVisible(v bool)  { s.visible = v }
func (s *rowState) SetRequired(v bool) { s.required = v }

type statusCapture struct {
	msg   string
	kind  form.StatusKind
	field string
}

func (s *statusCapture) ReportField(field string) { s.field = field }

func (s *statusCapture) SetStatus(msg string, kind form.StatusKind) {
	s.msg = msg
	s.kind = kind
}

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg}) //nolint:errcheck
}
