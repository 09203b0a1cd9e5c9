// Package console renders the suggestion list on a terminal.
package console

import (
	"fmt"
	"io"
	"sync"
)

// Surface prints the suggestion list as a numbered menu whenever it is shown.
type Surface struct {
	out io.Writer

	mu       sync.Mutex
	labels   []string
	activate []func()
	visible  bool
	hidden   bool
}

func NewSurface(out io.Writer) *Surface {
	return &Surface{out: out, hidden: true}
}

func (s *Surface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.labels = nil
	s.activate = nil
}

func (s *Surface) Append(label string, activate func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.labels = append(s.labels, label)
	s.activate = append(s.activate, activate)
}

func (s *Surface) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = true
	for i, l := range s.labels {
		fmt.Fprintf(s.out, "  %d) %s\n", i+1, l)
	}
}

func (s *Surface) Hide() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.visible {
		fmt.Fprintln(s.out, "  (no suggestions)")
	}
	s.visible = false
}

func (s *Surface) SetHidden(hidden bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hidden = hidden
}

// Activate triggers entry n (1-based) the way a click would. It reports
// false when the list is hidden or n is out of range.
func (s *Surface) Activate(n int) bool {
	s.mu.Lock()
	if !s.visible || n < 1 || n > len(s.activate) {
		s.mu.Unlock()
		return false
	}
	fn := s.activate[n-1]
	s.mu.Unlock()

	fn()
	return true
}

// Input holds the committed field value.
type Input struct {
	out io.Writer

	mu    sync.Mutex
	value string
}

func NewInput(out io.Writer) *Input {
	return &Input{out: out}
}

func (in *Input) SetValue(v string) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.value = v
	fmt.Fprintf(in.out, "city = %q\n", v)
}

func (in *Input) Value() string {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.value
}
