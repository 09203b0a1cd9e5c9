package clients

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// searchResultsKey holds the result list inside the _embedded object.
const searchResultsKey = "city:search-results"

// CityClient calls the free-text city search service.
type CityClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewCityClient(baseURL string, httpClient *http.Client) *CityClient {
	return &CityClient{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// CitySearchResponse carries the matching_full_name of each result, in
// upstream relevance order. Results without the field are kept as "".
type CitySearchResponse struct {
	MatchingFullNames []string `json:"matching_full_names"`
}

// SearchCities runs GET /api/cities/?search={query}&limit={limit}.
func (c *CityClient) SearchCities(ctx context.Context, query string, limit int) (CitySearchResponse, error) {
	params := url.Values{}
	params.Set("search", query)
	params.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/cities/?"+params.Encode(), nil)
	if err != nil {
		return CitySearchResponse{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return CitySearchResponse{}, fmt.Errorf("city search: %w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return CitySearchResponse{}, fmt.Errorf("city search: %w %d", ErrUpstreamStatus, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return CitySearchResponse{}, fmt.Errorf("city search read: %w: %w", ErrNetwork, err)
	}
	return parseCitySearch(raw)
}

// parseCitySearch treats a missing result list as zero results; only a body
// that is not a JSON object is a format mismatch.
func parseCitySearch(raw []byte) (CitySearchResponse, error) {
	if !gjson.ValidBytes(raw) {
		return CitySearchResponse{}, fmt.Errorf("city search decode: %w: invalid json", ErrFormatMismatch)
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return CitySearchResponse{}, fmt.Errorf("city search decode: %w: body is not an object", ErrFormatMismatch)
	}

	out := CitySearchResponse{MatchingFullNames: []string{}}
	results, ok := root.Get("_embedded").Map()[searchResultsKey]
	if !ok || !results.IsArray() {
		return out, nil
	}
	results.ForEach(func(_, r gjson.Result) bool {
		out.MatchingFullNames = append(out.MatchingFullNames, r.Get("matching_full_name").String())
		return true
	})
	return out, nil
}
