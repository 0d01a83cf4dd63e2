package mocks

import (
	"context"

	"reach-estimator/core/graph"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of graph.Client
type Client struct {
	mock.Mock
}

func (m *Client) Search(ctx context.Context, queryType string, params graph.Params) ([]graph.Record, error) {
	args := m.Called(ctx, queryType, params)
	if records, ok := args.Get(0).([]graph.Record); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Get(ctx context.Context, path string, params graph.Params) (graph.Record, error) {
	args := m.Called(ctx, path, params)
	if record, ok := args.Get(0).(graph.Record); ok {
		return record, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Post(ctx context.Context, path string, body graph.Params) (graph.Record, error) {
	args := m.Called(ctx, path, body)
	if record, ok := args.Get(0).(graph.Record); ok {
		return record, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Delete(ctx context.Context, path string) (bool, error) {
	args := m.Called(ctx, path)
	return args.Bool(0), args.Error(1)
}

func (m *Client) Batch(ctx context.Context, requests []graph.Request) ([]graph.Response, error) {
	args := m.Called(ctx, requests)
	if fn, ok := args.Get(0).(func(context.Context, []graph.Request) []graph.Response); ok {
		return fn(ctx, requests), args.Error(1)
	}
	if responses, ok := args.Get(0).([]graph.Response); ok {
		return responses, args.Error(1)
	}
	return nil, args.Error(1)
}
