package cache

import (
	"context"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/mwhite7112/cityform/internal/clients"
	"github.com/mwhite7112/cityform/internal/metrics"
)

type pincodeLookup interface {
	LookupPincode(ctx context.Context, code string) (clients.PincodeResponse, error)
}

type cityLookup interface {
	SearchCities(ctx context.Context, query string, limit int) (clients.CitySearchResponse, error)
}

// PincodeCache is a read-through cache in front of a postal-code lookup.
// Only successful upstream answers are stored; a Redis failure falls back to
// the upstream call.
type PincodeCache struct {
	store *Client
	next  pincodeLookup
}

func NewPincodeCache(store *Client, next pincodeLookup) *PincodeCache {
	return &PincodeCache{store: store, next: next}
}

func (c *PincodeCache) LookupPincode(ctx context.Context, code string) (clients.PincodeResponse, error) {
	key := "pincode:" + code

	var cached clients.PincodeResponse
	hit, err := c.store.Get(ctx, key, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}
	if hit {
		metrics.RecordCacheHit("pincode")
		return cached, nil
	}
	metrics.RecordCacheMiss("pincode")

	resp, err := c.next.LookupPincode(ctx, code)
	if err != nil {
		return resp, err
	}
	if err := c.store.Set(ctx, key, resp); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
	return resp, nil
}

// CityCache is a read-through cache in front of a city search.
type CityCache struct {
	store *Client
	next  cityLookup
}

func NewCityCache(store *Client, next cityLookup) *CityCache {
	return &CityCache{store: store, next: next}
}

func (c *CityCache) SearchCities(ctx context.Context, query string, limit int) (clients.CitySearchResponse, error) {
	key := "city:" + strconv.Itoa(limit) + ":" + query

	var cached clients.CitySearchResponse
	hit, err := c.store.Get(ctx, key, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}
	if hit {
		metrics.RecordCacheHit("city")
		return cached, nil
	}
	metrics.RecordCacheMiss("city")

	resp, err := c.next.SearchCities(ctx, query, limit)
	if err != nil {
		return resp, err
	}
	if err := c.store.Set(ctx, key, resp); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
	return resp, nil
}
