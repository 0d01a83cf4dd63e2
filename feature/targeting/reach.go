package targeting

import (
	"context"
	"fmt"

	"reach-estimator/core/graph"
	"reach-estimator/core/utils"

	"go.uber.org/zap"
)

// Reach is an estimated audience size.
type Reach struct {
	// Users is the estimated number of people matching the targeting spec.
	Users int64 `json:"users"`
	// Data is the raw reach estimate payload.
	Data graph.Record `json:"data"`
}

// FetchReach validates the Spec and requests its reach estimate.
func (s *Spec) FetchReach(ctx context.Context) (*Reach, error) {
	if err := s.checkReachable(); err != nil {
		return nil, err
	}

	path := reachPath(s.account)
	params := s.Normalized()
	s.logger.Debug("Fetching reach estimate", zap.String("path", path), zap.Any("params", params))

	rec, err := s.client.Get(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reach estimate: %w", err)
	}
	return newReach(rec)
}

// FetchReach is shorthand for New(client, account, options).FetchReach(ctx).
func FetchReach(ctx context.Context, client graph.Client, account string, options Options) (*Reach, error) {
	return New(client, account, options).FetchReach(ctx)
}

func newReach(rec graph.Record) (*Reach, error) {
	users, ok := rec["users"]
	if !ok {
		return nil, ErrMalformedReach
	}
	return &Reach{Users: utils.ToInt64(users), Data: rec}, nil
}
