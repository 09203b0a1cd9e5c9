package clients

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
)

// PincodeClient calls the postal-code lookup service.
type PincodeClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewPincodeClient(baseURL string, httpClient *http.Client) *PincodeClient {
	return &PincodeClient{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// PostOffice is a single post-office record for a postal code.
type PostOffice struct {
	Name     string `json:"name"`
	State    string `json:"state"`
	District string `json:"district,omitempty"`
}

// PincodeResponse is the first element of the GET /pincode/{code} body.
// Status is passed through untouched; only "Success" means PostOffices is usable.
type PincodeResponse struct {
	Status      string       `json:"status"`
	PostOffices []PostOffice `json:"post_offices"`
}

// LookupPincode resolves a raw numeric code to its post offices.
func (c *PincodeClient) LookupPincode(ctx context.Context, code string) (PincodeResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/pincode/"+url.PathEscape(code), nil)
	if err != nil {
		return PincodeResponse{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return PincodeResponse{}, fmt.Errorf("pincode lookup: %w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return PincodeResponse{}, fmt.Errorf("pincode lookup: %w %d", ErrUpstreamStatus, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return PincodeResponse{}, fmt.Errorf("pincode lookup read: %w: %w", ErrNetwork, err)
	}
	return parsePincode(raw)
}

func parsePincode(raw []byte) (PincodeResponse, error) {
	if !gjson.ValidBytes(raw) {
		return PincodeResponse{}, fmt.Errorf("pincode lookup decode: %w: invalid json", ErrFormatMismatch)
	}
	root := gjson.ParseBytes(raw)
	if !root.IsArray() {
		return PincodeResponse{}, fmt.Errorf("pincode lookup decode: %w: body is not an array", ErrFormatMismatch)
	}
	first := root.Get("0")
	if !first.IsObject() {
		return PincodeResponse{}, fmt.Errorf("pincode lookup decode: %w: missing first element", ErrFormatMismatch)
	}

	out := PincodeResponse{Status: first.Get("Status").String()}
	if offices := first.Get("PostOffice"); offices.IsArray() {
		offices.ForEach(func(_, po gjson.Result) bool {
			out.PostOffices = append(out.PostOffices, PostOffice{
				Name:     po.Get("Name").String(),
				State:    po.Get("State").String(),
				District: po.Get("District").String(),
			})
			return true
		})
	}
	return out, nil
}
