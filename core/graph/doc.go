// Package graph provides the Facebook Graph API collaborator used by the targeting feature.
//
// It defines the Client interface the rest of the application depends on and a thin
// HTTP implementation of the Graph wire format. The HTTP client performs no retries;
// callers receive transport and API failures as *Error values.
//
// # Operations
//
//   - Search: GET /search?type=<query type>, returns the "data" array.
//   - Get: GET /<path>, returns the decoded object.
//   - Post: POST /<path> with a form body.
//   - Delete: DELETE /<path>.
//   - Batch: POST / with a "batch" form field. The returned responses align positionally
//     with the requests; a failed sub-request is a Response whose Err is set.
//
// # Usage
//
//	client, err := graph.NewClient(cfg.Graph)
//	results, err := client.Search(ctx, "adkeywordvalid", graph.Params{"keyword_list": "foo"})
package graph
