package graph

import (
	"context"
	"net/url"
	"sort"
)

// Client defines the Graph API operations used by the application.
type Client interface {
	// Search runs a /search query of the given type and returns its data records.
	Search(ctx context.Context, queryType string, params Params) ([]Record, error)
	// Get reads the object at path.
	Get(ctx context.Context, path string, params Params) (Record, error)
	// Post writes body to the object or edge at path.
	Post(ctx context.Context, path string, body Params) (Record, error)
	// Delete removes the object at path.
	Delete(ctx context.Context, path string) (bool, error)
	// Batch executes requests in a single round-trip.
	// The returned slice is aligned with requests.
	Batch(ctx context.Context, requests []Request) ([]Response, error)
}

// Record is a decoded Graph API JSON object.
type Record map[string]any

// Params are query or form parameters for a Graph API call.
type Params map[string]string

// Encode renders the parameters as a sorted, URL-encoded query string.
func (p Params) Encode() string {
	values := url.Values{}
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		values.Set(k, p[k])
	}
	return values.Encode()
}

// Request is a single sub-request of a batch call.
type Request struct {
	// Method is the HTTP method (GET, POST, DELETE).
	Method string `json:"method"`
	// RelativeURL is the path and query relative to the versioned endpoint.
	RelativeURL string `json:"relative_url"`
	// Body is the form encoded body for POST sub-requests.
	Body string `json:"body,omitempty"`
}

// NewGetRequest builds a GET sub-request for path with the given query parameters.
func NewGetRequest(path string, params Params) Request {
	rel := path
	if len(params) > 0 {
		rel += "?" + params.Encode()
	}
	return Request{Method: "GET", RelativeURL: rel}
}

// Response is the outcome of a single batch sub-request.
// Exactly one of Data or Err is meaningful.
type Response struct {
	Data Record
	Err  error
}

// Failed reports whether the sub-request returned an error.
func (r Response) Failed() bool {
	return r.Err != nil
}
