package targeting

import (
	"context"
	"errors"
	"testing"

	"reach-estimator/core/graph"
	"reach-estimator/core/graph/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var (
	validKeywordResult   = []graph.Record{{"name": "foo", "valid": true}}
	invalidKeywordResult = []graph.Record{{"name": "sdjf", "valid": false}}
)

func expectKeyword(m *mocks.Client, sent string, result []graph.Record, err error) *mock.Call {
	return m.On("Search", mock.Anything, KeywordValidQuery, graph.Params{"keyword_list": sent}).Return(result, err)
}

func TestValidateKeyword(t *testing.T) {
	tests := []struct {
		name   string
		word   string
		sent   string
		result []graph.Record
		want   bool
	}{
		{"Escapes commas", "foo,bar", "foo%2Cbar", []graph.Record{}, false},
		{"Escapes every comma", "a,b,c", "a%2Cb%2Cc", validKeywordResult, true},
		{"Valid", "foo", "foo", validKeywordResult, true},
		{"Invalid", "sdjf", "sdjf", invalidKeywordResult, false},
		{"Nil result", "foo", "foo", nil, false},
		{"Missing valid field", "foo", "foo", []graph.Record{{"name": "foo"}}, false},
		{"Only first element counts", "foo", "foo", []graph.Record{{"valid": false}, {"valid": true}}, false},
		{"Numeric one is not true", "foo", "foo", []graph.Record{{"valid": float64(1)}}, false},
		{"String true is not true", "foo", "foo", []graph.Record{{"valid": "true"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := new(mocks.Client)
			expectKeyword(mockClient, tt.sent, tt.result, nil).Once()

			s := New(mockClient, testAccount, Options{})
			assert.Equal(t, tt.want, s.ValidateKeyword(context.Background(), tt.word))
			mockClient.AssertExpectations(t)
		})
	}
}

func TestValidateKeyword_TransportErrorIsFalse(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	mockClient := new(mocks.Client)
	expectKeyword(mockClient, "foo", nil, &graph.Error{Message: "timeout"}).Once()

	s := New(mockClient, testAccount, Options{}).WithLogger(zap.New(core))
	assert.False(t, s.ValidateKeyword(context.Background(), "foo"))
	assert.Equal(t, 1, logs.FilterMessage("Keyword validation failed").Len())
}

func TestValidateKeywords(t *testing.T) {
	t.Run("All valid", func(t *testing.T) {
		mockClient := new(mocks.Client)
		expectKeyword(mockClient, "Eminem", validKeywordResult, nil).Once()
		expectKeyword(mockClient, "Sting", validKeywordResult, nil).Once()

		s := New(mockClient, testAccount, Options{Countries: []string{"us"}, Keywords: StringList{"Eminem", "Sting"}})
		assert.NoError(t, s.ValidateKeywords(context.Background()))
		mockClient.AssertExpectations(t)
	})

	t.Run("Stops at first invalid keyword", func(t *testing.T) {
		mockClient := new(mocks.Client)
		expectKeyword(mockClient, "Eminem", validKeywordResult, nil).Once()
		expectKeyword(mockClient, "invalidsssssssssssssss", invalidKeywordResult, nil).Once()

		s := New(mockClient, testAccount, Options{
			Countries: []string{"us"},
			Keywords:  StringList{"Eminem", "invalidsssssssssssssss", "Sting"},
		})

		err := s.ValidateKeywords(context.Background())
		require.Error(t, err)
		assert.EqualError(t, err, "invalidsssssssssssssss")
		assert.ErrorIs(t, err, ErrInvalidKeyword)

		var kwErr *InvalidKeywordError
		require.True(t, errors.As(err, &kwErr))
		assert.Equal(t, "invalidsssssssssssssss", kwErr.Keyword)

		mockClient.AssertExpectations(t)
		mockClient.AssertNotCalled(t, "Search", mock.Anything, KeywordValidQuery, graph.Params{"keyword_list": "Sting"})
	})

	t.Run("Transport failure is not an invalid keyword", func(t *testing.T) {
		mockClient := new(mocks.Client)
		expectKeyword(mockClient, "Eminem", nil, &graph.Error{StatusCode: 500, Message: "down"}).Once()

		s := New(mockClient, testAccount, Options{Keywords: StringList{"Eminem", "Sting"}})

		err := s.ValidateKeywords(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, graph.ErrTransport)
		assert.NotErrorIs(t, err, ErrInvalidKeyword)
		assert.False(t, IsValidationError(err))
		mockClient.AssertNumberOfCalls(t, "Search", 1)
	})

	t.Run("No keywords", func(t *testing.T) {
		mockClient := new(mocks.Client)
		s := New(mockClient, testAccount, Options{Connections: []string{"1"}})
		assert.NoError(t, s.ValidateKeywords(context.Background()))
		mockClient.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestJoinKeywords(t *testing.T) {
	assert.Equal(t, "foo%2Cbar,baz", joinKeywords([]string{"foo,bar", "baz"}))
	assert.Equal(t, "", joinKeywords(nil))
}
