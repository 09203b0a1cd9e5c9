package suggest

import (
	"context"

	"github.com/mwhite7112/cityform/internal/clients"
)

// PincodeLookup abstracts the postal-code client for testing and caching.
type PincodeLookup interface {
	LookupPincode(ctx context.Context, code string) (clients.PincodeResponse, error)
}

// CityLookup abstracts the city search client for testing and caching.
type CityLookup interface {
	SearchCities(ctx context.Context, query string, limit int) (clients.CitySearchResponse, error)
}

// Input is the text field the suggestions complete.
type Input interface {
	SetValue(value string)
}

// Surface is the list the suggestions are rendered into. activate must be
// called when the user clicks an entry or presses Enter on it.
type Surface interface {
	Clear()
	Append(label string, activate func())
	Show()
	Hide()
	// SetHidden sets the assistive-technology hidden flag.
	SetHidden(hidden bool)
}
