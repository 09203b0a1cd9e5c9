package suggest

import (
	"strings"

	"github.com/mwhite7112/cityform/internal/clients"
)

const pincodeSuccess = "Success"

// fromPincode shapes a postal lookup into suggestions. Anything other than a
// "Success" status yields nothing. Entries are de-duplicated on their
// "Name, State" value, keeping the first occurrence.
func fromPincode(code string, resp clients.PincodeResponse) []Suggestion {
	out := []Suggestion{}
	if resp.Status != pincodeSuccess {
		return out
	}

	seen := make(map[string]struct{}, len(resp.PostOffices))
	for _, po := range resp.PostOffices {
		if po.Name == "" {
			continue
		}
		city := po.Name
		if po.State != "" {
			city += ", " + po.State
		}
		if _, dup := seen[city]; dup {
			continue
		}
		seen[city] = struct{}{}
		out = append(out, Suggestion{Display: city + " — " + code, Value: city})
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}

// fromCitySearch keeps only Indian cities. The value is the city name before
// the first comma of the full name.
func fromCitySearch(resp clients.CitySearchResponse) []Suggestion {
	out := []Suggestion{}
	for _, full := range resp.MatchingFullNames {
		if !strings.Contains(strings.ToLower(full), ", india") {
			continue
		}
		name, _, _ := strings.Cut(full, ",")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out = append(out, Suggestion{Display: full, Value: name})
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}
