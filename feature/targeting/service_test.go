package targeting

import (
	"context"
	"testing"

	"reach-estimator/core/graph"
	"reach-estimator/core/graph/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_Reach(t *testing.T) {
	t.Run("Uses default account", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("Get", mock.Anything, testAccount+"/reachestimate", mock.Anything).
			Return(graph.Record{"users": float64(5)}, nil).Once()

		svc := NewService(mockClient, testAccount, Config{}, zap.NewNop())
		reach, err := svc.Reach(context.Background(), "", Options{Countries: []string{"US"}, Keywords: StringList{"foo"}})
		require.NoError(t, err)
		assert.Equal(t, int64(5), reach.Users)
	})

	t.Run("Explicit account wins", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("Get", mock.Anything, "act_99/reachestimate", mock.Anything).
			Return(graph.Record{"users": float64(7)}, nil).Once()

		svc := NewService(mockClient, testAccount, Config{}, nil)
		reach, err := svc.Reach(context.Background(), "act_99", Options{Countries: []string{"US"}, Keywords: StringList{"foo"}})
		require.NoError(t, err)
		assert.Equal(t, int64(7), reach.Users)
	})

	t.Run("Missing account", func(t *testing.T) {
		svc := NewService(new(mocks.Client), "", Config{}, nil)
		_, err := svc.Reach(context.Background(), "", Options{Countries: []string{"US"}, Keywords: StringList{"foo"}})
		assert.ErrorIs(t, err, ErrMissingAccount)
	})

	t.Run("Validates keywords first when enabled", func(t *testing.T) {
		mockClient := new(mocks.Client)
		expectKeyword(mockClient, "bogus", invalidKeywordResult, nil).Once()

		svc := NewService(mockClient, testAccount, Config{ValidateKeywords: true}, nil)
		_, err := svc.Reach(context.Background(), "", Options{Countries: []string{"US"}, Keywords: StringList{"bogus"}})
		assert.ErrorIs(t, err, ErrInvalidKeyword)
		mockClient.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Valid keywords then reach", func(t *testing.T) {
		mockClient := new(mocks.Client)
		expectKeyword(mockClient, "Sting", validKeywordResult, nil).Once()
		mockClient.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(graph.Record{"users": float64(38000)}, nil).Once()

		svc := NewService(mockClient, testAccount, Config{ValidateKeywords: true}, nil)
		reach, err := svc.Reach(context.Background(), "", Options{Countries: []string{"US"}, Keywords: StringList{"Sting"}})
		require.NoError(t, err)
		assert.Equal(t, int64(38000), reach.Users)
		mockClient.AssertExpectations(t)
	})
}

func TestService_BatchReach(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("Batch", mock.Anything, batchOfLen(3)).Return(okResponses(3), nil).Once()

	svc := NewService(mockClient, testAccount, Config{Concurrency: 2}, zap.NewNop())
	results, err := svc.BatchReach(context.Background(), "", validOptions(3))
	require.NoError(t, err)
	assert.Len(t, results, 3)

	_, err = NewService(mockClient, "", Config{}, nil).BatchReach(context.Background(), "", validOptions(1))
	assert.ErrorIs(t, err, ErrMissingAccount)
}

func TestService_ValidateKeywords(t *testing.T) {
	mockClient := new(mocks.Client)
	expectKeyword(mockClient, "foo", validKeywordResult, nil).Once()
	expectKeyword(mockClient, "sdjf", invalidKeywordResult, nil).Once()
	expectKeyword(mockClient, "a%2Cb", nil, &graph.Error{Message: "down"}).Once()

	svc := NewService(mockClient, "", Config{}, nil)
	results := svc.ValidateKeywords(context.Background(), []string{"foo", "sdjf", "a,b"})

	assert.Equal(t, []KeywordResult{
		{Keyword: "foo", Valid: true},
		{Keyword: "sdjf", Valid: false},
		{Keyword: "a,b", Valid: false},
	}, results)
	mockClient.AssertExpectations(t)
}
