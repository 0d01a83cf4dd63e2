package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type httpClient struct {
	base  string
	token string
	http  *http.Client
}

// NewClient creates a Graph API client based on the configuration.
func NewClient(cfg Config) (Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("graph endpoint is required")
	}
	u, err := url.Parse(cfg.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid graph endpoint %q", cfg.Endpoint)
	}

	base := strings.TrimSuffix(u.String(), "/")
	if v := strings.Trim(cfg.Version, "/"); v != "" {
		base += "/" + v
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &httpClient{
		base:  base,
		token: cfg.AccessToken,
		http:  &http.Client{Transport: transport, Timeout: timeoutDuration},
	}, nil
}

func (c *httpClient) Search(ctx context.Context, queryType string, params Params) ([]Record, error) {
	q := Params{"type": queryType}
	for k, v := range params {
		q[k] = v
	}

	raw, err := c.do(ctx, http.MethodGet, "search", q)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data []Record `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, newTransportError("failed to decode search response", err)
	}
	return envelope.Data, nil
}

func (c *httpClient) Get(ctx context.Context, path string, params Params) (Record, error) {
	raw, err := c.do(ctx, http.MethodGet, path, params)
	if err != nil {
		return nil, err
	}
	return decodeRecord(raw)
}

func (c *httpClient) Post(ctx context.Context, path string, body Params) (Record, error) {
	raw, err := c.do(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}
	return decodeRecord(raw)
}

func (c *httpClient) Delete(ctx context.Context, path string) (bool, error) {
	raw, err := c.do(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return false, err
	}

	var ok bool
	if err := json.Unmarshal(raw, &ok); err == nil {
		return ok, nil
	}
	var status struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(raw, &status); err != nil {
		return false, newTransportError("failed to decode delete response", err)
	}
	return status.Success, nil
}

// batchItem is one element of the batch response array. The API answers null
// for sub-requests it did not run.
type batchItem struct {
	Code int    `json:"code"`
	Body string `json:"body"`
}

func (c *httpClient) Batch(ctx context.Context, requests []Request) ([]Response, error) {
	if len(requests) == 0 {
		return nil, nil
	}

	encoded, err := json.Marshal(requests)
	if err != nil {
		return nil, fmt.Errorf("failed to encode batch: %w", err)
	}

	raw, err := c.do(ctx, http.MethodPost, "", Params{"batch": string(encoded)})
	if err != nil {
		return nil, err
	}

	var items []*batchItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, newTransportError("failed to decode batch response", err)
	}

	responses := make([]Response, len(items))
	for i, item := range items {
		switch {
		case item == nil:
			responses[i] = Response{Err: &Error{Message: "batch sub-request was not executed"}}
		case item.Code < 200 || item.Code > 299:
			responses[i] = Response{Err: decodeError(item.Code, []byte(item.Body))}
		default:
			rec, err := decodeRecord([]byte(item.Body))
			if err != nil {
				responses[i] = Response{Err: err}
				continue
			}
			responses[i] = Response{Data: rec}
		}
	}
	return responses, nil
}

// do performs a single HTTP call and returns the raw body of a successful response.
func (c *httpClient) do(ctx context.Context, method, path string, params Params) ([]byte, error) {
	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	if c.token != "" {
		values.Set("access_token", c.token)
	}

	endpoint := c.base + "/" + strings.TrimPrefix(path, "/")

	var body io.Reader
	if method == http.MethodPost {
		body = strings.NewReader(values.Encode())
	} else if len(values) > 0 {
		endpoint += "?" + values.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, newTransportError("failed to build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, newTransportError(fmt.Sprintf("%s %s failed", method, path), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newTransportError("failed to read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp.StatusCode, raw)
	}
	return raw, nil
}

// decodeRecord decodes an object body, unwrapping a lone {"data": {...}} envelope.
func decodeRecord(raw []byte) (Record, error) {
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, newTransportError("failed to decode response", err)
	}
	if len(rec) == 1 {
		if inner, ok := rec["data"].(map[string]any); ok {
			return Record(inner), nil
		}
	}
	return rec, nil
}

func decodeError(status int, raw []byte) *Error {
	var envelope struct {
		Error *Error `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != nil {
		envelope.Error.StatusCode = status
		return envelope.Error
	}

	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &Error{StatusCode: status, Message: msg}
}
