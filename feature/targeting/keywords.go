package targeting

import (
	"context"
	"fmt"
	"strings"

	"reach-estimator/core/graph"

	"go.uber.org/zap"
)

// KeywordValidQuery is the search type answering whether keywords can be targeted.
const KeywordValidQuery = "adkeywordvalid"

// escapedComma replaces literal commas inside a keyword. The keyword_list
// parameter is itself comma separated, so the Graph API expects embedded
// commas percent-encoded before the list is joined.
const escapedComma = "%2C"

func escapeKeyword(word string) string {
	return strings.ReplaceAll(word, ",", escapedComma)
}

func joinKeywords(words []string) string {
	escaped := make([]string, len(words))
	for i, w := range words {
		escaped[i] = escapeKeyword(w)
	}
	return strings.Join(escaped, ",")
}

// ValidateKeyword asks the Graph API whether word can be targeted.
// Transport failures are logged and reported as false.
func (s *Spec) ValidateKeyword(ctx context.Context, word string) bool {
	valid, err := s.checkKeyword(ctx, word)
	if err != nil {
		s.logger.Warn("Keyword validation failed", zap.String("keyword", word), zap.Error(err))
		return false
	}
	return valid
}

// ValidateKeywords checks every keyword in order and stops at the first one the Graph
// API rejects, returning an *InvalidKeywordError. A transport failure is returned as
// is and matches graph.ErrTransport.
func (s *Spec) ValidateKeywords(ctx context.Context) error {
	for _, word := range s.options.Keywords {
		valid, err := s.checkKeyword(ctx, word)
		if err != nil {
			return fmt.Errorf("failed to validate keyword %q: %w", word, err)
		}
		if !valid {
			return &InvalidKeywordError{Keyword: word}
		}
	}
	return nil
}

func (s *Spec) checkKeyword(ctx context.Context, word string) (bool, error) {
	results, err := s.client.Search(ctx, KeywordValidQuery, graph.Params{"keyword_list": escapeKeyword(word)})
	if err != nil {
		return false, err
	}
	if len(results) == 0 {
		return false, nil
	}
	valid, _ := results[0]["valid"].(bool)
	return valid, nil
}
