package observability

import (
	"context"
	"time"

	"reach-estimator/core/graph"
)

// InstrumentedClient is a decorator recording metrics for every Graph API call.
type InstrumentedClient struct {
	inner graph.Client
}

// Ensure InstrumentedClient implements graph.Client
var _ graph.Client = (*InstrumentedClient)(nil)

// NewInstrumentedClient wraps inner with metrics.
func NewInstrumentedClient(inner graph.Client) *InstrumentedClient {
	return &InstrumentedClient{inner: inner}
}

func observe(operation string, start time.Time, err error) {
	graphRequestLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	graphRequests.WithLabelValues(operation, resultOf(err)).Inc()
}

func (c *InstrumentedClient) Search(ctx context.Context, queryType string, params graph.Params) ([]graph.Record, error) {
	start := time.Now()
	res, err := c.inner.Search(ctx, queryType, params)
	observe("search", start, err)
	return res, err
}

func (c *InstrumentedClient) Get(ctx context.Context, path string, params graph.Params) (graph.Record, error) {
	start := time.Now()
	res, err := c.inner.Get(ctx, path, params)
	observe("get", start, err)
	return res, err
}

func (c *InstrumentedClient) Post(ctx context.Context, path string, body graph.Params) (graph.Record, error) {
	start := time.Now()
	res, err := c.inner.Post(ctx, path, body)
	observe("post", start, err)
	return res, err
}

func (c *InstrumentedClient) Delete(ctx context.Context, path string) (bool, error) {
	start := time.Now()
	res, err := c.inner.Delete(ctx, path)
	observe("delete", start, err)
	return res, err
}

func (c *InstrumentedClient) Batch(ctx context.Context, requests []graph.Request) ([]graph.Response, error) {
	start := time.Now()
	res, err := c.inner.Batch(ctx, requests)
	observe("batch", start, err)
	if err == nil {
		for _, r := range res {
			if r.Failed() {
				batchSubRequests.WithLabelValues(ResultError).Inc()
			} else {
				batchSubRequests.WithLabelValues(ResultSuccess).Inc()
			}
		}
	}
	return res, err
}
