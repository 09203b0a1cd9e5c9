// Package suggest turns keystrokes in a city field into a short list of
// place suggestions, looked up by postal code or by city name.
package suggest

import "unicode/utf8"

const (
	// MaxSuggestions caps every rendered list.
	MaxSuggestions = 8
	// MinCodeLength is the shortest all-digit query sent to the postal lookup.
	MinCodeLength = 3
	// MinNameLength is the shortest text query sent to the city search.
	MinNameLength = 2
	// CitySearchLimit is the result count requested from the city search.
	CitySearchLimit = 10
)

// Suggestion is one autocomplete candidate. Display is the label shown in the
// list; Value is what gets written into the input on selection.
type Suggestion struct {
	Display string `json:"display"`
	Value   string `json:"value"`
}

// Kind decides which upstream source a query goes to.
type Kind int

const (
	Textual Kind = iota
	Numeric
)

func (k Kind) String() string {
	if k == Numeric {
		return "numeric"
	}
	return "textual"
}

// Classify reports Numeric when text is non-empty and made only of ASCII digits.
func Classify(text string) Kind {
	if text == "" {
		return Textual
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return Textual
		}
	}
	return Numeric
}

// meetsMinimum reports whether q is long enough to be looked up for its kind.
func meetsMinimum(q string, kind Kind) bool {
	n := utf8.RuneCountInString(q)
	if kind == Numeric {
		return n >= MinCodeLength
	}
	return n >= MinNameLength
}
