package targeting

import (
	"context"
	"encoding/json"

	"reach-estimator/core/graph"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MaxBatchSize is the largest number of sub-requests the Graph batch endpoint accepts.
const MaxBatchSize = 50

// BatchResult is the outcome of one reach lookup inside a batch.
type BatchResult struct {
	Success bool
	// Data is the raw reach estimate payload when Success is true.
	Data graph.Record
	// Err is the failure when Success is false.
	Err error
}

func (r BatchResult) MarshalJSON() ([]byte, error) {
	if r.Success {
		return json.Marshal(struct {
			Success bool         `json:"success"`
			Data    graph.Record `json:"data"`
		}{true, r.Data})
	}

	msg := ""
	if r.Err != nil {
		msg = r.Err.Error()
	}
	return json.Marshal(struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}{false, msg})
}

type batchConfig struct {
	concurrency int
	logger      *zap.Logger
}

// BatchOption configures BatchReaches.
type BatchOption func(*batchConfig)

// WithConcurrency sets how many chunks may be in flight at once. Values below 1 mean 1.
func WithConcurrency(n int) BatchOption {
	return func(c *batchConfig) {
		c.concurrency = n
	}
}

// WithBatchLogger sets the logger used for per-chunk diagnostics.
func WithBatchLogger(l *zap.Logger) BatchOption {
	return func(c *batchConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// BatchReaches estimates the reach of every option set, issuing one batch call per
// MaxBatchSize consecutive option sets. The results align with options. Failures
// never abort other items: a failed sub-request or a failed batch call is recorded
// on the affected items only.
func BatchReaches(ctx context.Context, client graph.Client, account string, options []Options, opts ...BatchOption) []BatchResult {
	cfg := batchConfig{concurrency: 1, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.concurrency < 1 {
		cfg.concurrency = 1
	}

	specs := make([]*Spec, len(options))
	for i, o := range options {
		specs[i] = New(client, account, o).WithLogger(cfg.logger)
	}

	results := make([]BatchResult, len(specs))

	var g errgroup.Group
	g.SetLimit(cfg.concurrency)
	for start := 0; start < len(specs); start += MaxBatchSize {
		end := min(start+MaxBatchSize, len(specs))
		chunk, out := specs[start:end], results[start:end]
		g.Go(func() error {
			runChunk(ctx, client, chunk, out, cfg.logger.With(zap.Int("offset", start)))
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// runChunk sends one batch call for the whole chunk and writes one result per spec
// into out. Specs are not validated locally: the Graph API's answer for each
// sub-request becomes that item's record.
func runChunk(ctx context.Context, client graph.Client, specs []*Spec, out []BatchResult, logger *zap.Logger) {
	requests := make([]graph.Request, len(specs))
	for i, s := range specs {
		requests[i] = s.reachRequest()
	}

	responses, err := client.Batch(ctx, requests)
	if err != nil {
		logger.Warn("Batch call failed", zap.Int("requests", len(requests)), zap.Error(err))
		for i := range out {
			out[i] = BatchResult{Err: err}
		}
		return
	}
	if len(responses) != len(requests) {
		logger.Warn("Batch response length mismatch",
			zap.Int("requests", len(requests)),
			zap.Int("responses", len(responses)),
		)
	}

	for i := range out {
		if i >= len(responses) {
			out[i] = BatchResult{Err: ErrBatchMisaligned}
			continue
		}
		if resp := responses[i]; resp.Failed() {
			out[i] = BatchResult{Err: resp.Err}
		} else {
			out[i] = BatchResult{Success: true, Data: resp.Data}
		}
	}
}
