package targeting

import (
	"context"
	"errors"

	"reach-estimator/core/graph"
	"reach-estimator/core/observability"

	"go.uber.org/zap"
)

// Service estimates reach and validates keywords for a default ad account.
type Service struct {
	client  graph.Client
	account string
	cfg     Config
	logger  *zap.Logger
}

// NewService creates a new targeting service.
func NewService(client graph.Client, account string, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:  client,
		account: account,
		cfg:     cfg,
		logger:  logger,
	}
}

func (s *Service) resolveAccount(account string) (string, error) {
	if account == "" {
		account = s.account
	}
	if account == "" {
		return "", ErrMissingAccount
	}
	return account, nil
}

// Reach estimates the reach of a single targeting spec. When keyword validation is
// enabled every keyword is checked first.
func (s *Service) Reach(ctx context.Context, account string, options Options) (*Reach, error) {
	account, err := s.resolveAccount(account)
	if err != nil {
		return nil, err
	}

	spec := New(s.client, account, options).WithLogger(s.logger)

	if s.cfg.ValidateKeywords {
		if err := spec.ValidateKeywords(ctx); err != nil {
			s.record(err)
			return nil, err
		}
	}

	reach, err := spec.FetchReach(ctx)
	s.record(err)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Reach estimated", zap.String("account", account), zap.Int64("users", reach.Users))
	return reach, nil
}

func (s *Service) record(err error) {
	switch {
	case err == nil:
		observability.RecordReach(observability.ResultSuccess)
	case IsValidationError(err), errors.Is(err, ErrMissingAccount):
		observability.RecordReach(observability.ResultInvalid)
	default:
		observability.RecordReach(observability.ResultError)
	}
}

// BatchReach estimates the reach of many targeting specs in batches.
func (s *Service) BatchReach(ctx context.Context, account string, options []Options) ([]BatchResult, error) {
	account, err := s.resolveAccount(account)
	if err != nil {
		return nil, err
	}

	results := BatchReaches(ctx, s.client, account, options,
		WithConcurrency(s.cfg.Concurrency),
		WithBatchLogger(s.logger),
	)

	failed := 0
	for _, r := range results {
		s.record(r.Err)
		if !r.Success {
			failed++
		}
	}

	s.logger.Info("Batch reach estimation completed",
		zap.String("account", account),
		zap.Int("total", len(results)),
		zap.Int("failed", failed),
	)
	return results, nil
}

// KeywordResult is the validity of a single keyword.
type KeywordResult struct {
	Keyword string `json:"keyword"`
	Valid   bool   `json:"valid"`
}

// ValidateKeywords checks each keyword independently. Unlike Spec.ValidateKeywords it
// does not stop at the first invalid keyword.
func (s *Service) ValidateKeywords(ctx context.Context, keywords []string) []KeywordResult {
	spec := New(s.client, s.account, Options{}).WithLogger(s.logger)

	results := make([]KeywordResult, len(keywords))
	for i, word := range keywords {
		valid := spec.ValidateKeyword(ctx, word)
		results[i] = KeywordResult{Keyword: word, Valid: valid}
		if valid {
			observability.RecordKeyword(observability.ResultValid)
		} else {
			observability.RecordKeyword(observability.ResultInvalid)
		}
	}
	return results
}

// Catalog returns the constraint catalog.
func (s *Service) Catalog() Catalog {
	return GetCatalog()
}
