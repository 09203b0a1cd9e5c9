package suggest

import (
	"context"
	"sync"

	"github.com/mwhite7112/cityform/internal/clients"
)

// fakeLookups records every upstream call. A query listed in gates blocks
// until its channel is closed.
type fakeLookups struct {
	mu       sync.Mutex
	codes    []string
	names    []string
	limits   []int
	pincodes map[string]clients.PincodeResponse
	cities   map[string][]string
	gates    map[string]chan struct{}
	started  chan string
	err      error
}

func newFakeLookups() *fakeLookups {
	return &fakeLookups{
		pincodes: map[string]clients.PincodeResponse{},
		cities:   map[string][]string{},
		gates:    map[string]chan struct{}{},
		started:  make(chan string, 16),
	}
}

func (f *fakeLookups) LookupPincode(ctx context.Context, code string) (clients.PincodeResponse, error) {
	f.mu.Lock()
	f.codes = append(f.codes, code)
	resp, gate, err := f.pincodes[code], f.gates[code], f.err
	f.mu.Unlock()

	f.started <- code
	if gate != nil {
		<-gate
	}
	return resp, err
}

func (f *fakeLookups) SearchCities(ctx context.Context, query string, limit int) (clients.CitySearchResponse, error) {
	f.mu.Lock()
	f.names = append(f.names, query)
	f.limits = append(f.limits, limit)
	names, gate, err := f.cities[query], f.gates[query], f.err
	f.mu.Unlock()

	f.started <- query
	if gate != nil {
		<-gate
	}
	return clients.CitySearchResponse{MatchingFullNames: names}, err
}

func (f *fakeLookups) calls() (codes, names []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.codes...), append([]string(nil), f.names...)
}

type recordedEntry struct {
	label    string
	activate func()
}

type recordingSurface struct {
	mu       sync.Mutex
	entries  []recordedEntry
	visible  bool
	hidden   bool
	renders  int
	hideCall int
}

func (s *recordingSurface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

func (s *recordingSurface) Append(label string, activate func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, recordedEntry{label: label, activate: activate})
}

func (s *recordingSurface) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = true
	s.renders++
}

func (s *recordingSurface) Hide() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = false
	s.hideCall++
}

func (s *recordingSurface) SetHidden(hidden bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hidden = hidden
}

func (s *recordingSurface) labels() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.label)
	}
	return out
}

func (s *recordingSurface) isVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

func (s *recordingSurface) isHidden() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hidden
}

func (s *recordingSurface) hides() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hideCall
}

func (s *recordingSurface) entry(i int) recordedEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[i]
}

type recordingInput struct {
	mu    sync.Mutex
	value string
}

func (in *recordingInput) SetValue(v string) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.value = v
}

func (in *recordingInput) get() string {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.value
}
