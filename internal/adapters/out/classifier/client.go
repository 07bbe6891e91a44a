// Package classifier is the HTTP client for the external intent classifier.
//
// The classifier accepts POST {"message": "..."} and answers
// {"intent": "...", "order_id": 42}. Any transport failure, timeout,
// non-2xx status or undecodable body is returned as an error; the caller
// decides how to surface it.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"supportbot/internal/core/domain/model/chat"
	"supportbot/internal/core/domain/model/kernel"
)

const (
	DefaultURL     = "http://localhost:5001/predict"
	DefaultTimeout = 3 * time.Second

	maxResponseBytes = 1 << 20
)

// ErrUnexpectedStatus is wrapped when the classifier answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected classifier status")

// Client implements ports.IntentClassifier over HTTP.
type Client struct {
	url        string
	timeout    time.Duration
	httpClient *http.Client
}

// New creates a classifier client. A zero timeout selects DefaultTimeout.
func New(url string, timeout time.Duration) (*Client, error) {
	if url == "" {
		return nil, errors.New("classifier: url is required")
	}
	if timeout < 0 {
		return nil, fmt.Errorf("classifier: negative timeout %s", timeout)
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		url:        url,
		timeout:    timeout,
		httpClient: &http.Client{},
	}, nil
}

// WithHTTPClient overrides the underlying HTTP client.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.httpClient = httpClient
	return c
}

// Classify sends the message to the classifier and maps the answer onto a
// chat.Classification. Unknown intent labels map to chat.Unrecognized.
// order_id is only read for get_order answers.
func (c *Client) Classify(ctx context.Context, message string) (chat.Classification, error) {
	resp, err := c.predict(ctx, message)
	if err != nil {
		return chat.Classification{}, err
	}

	intent := chat.ParseIntent(resp.Intent)
	if intent != chat.GetOrder {
		return chat.NewClassification(intent), nil
	}

	id, err := decodeOrderID(resp.OrderID)
	if err != nil {
		return chat.Classification{}, fmt.Errorf("classifier: %w", err)
	}

	switch {
	case id.isAbsent():
		return chat.NewClassification(intent), nil
	case id.reference != "":
		return chat.NewClassificationWithOrderReference(intent, id.reference)
	}

	number, err := kernel.NewOrderNumber(id.number)
	if err != nil {
		return chat.Classification{}, fmt.Errorf("classifier: %w", err)
	}
	return chat.NewClassificationWithOrderNumber(intent, number)
}

// Ping checks that the classifier answers a request with a decodable body.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.predict(ctx, "")
	return err
}

func (c *Client) predict(ctx context.Context, message string) (PredictResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	bodyBytes, err := json.Marshal(PredictRequest{Message: message})
	if err != nil {
		return PredictResponse{}, fmt.Errorf("classifier: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(bodyBytes))
	if err != nil {
		return PredictResponse{}, fmt.Errorf("classifier: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return PredictResponse{}, fmt.Errorf("classifier: failed to call %s: %w", c.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return PredictResponse{}, fmt.Errorf("classifier: %w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var predictResp PredictResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&predictResp); err != nil {
		return PredictResponse{}, fmt.Errorf("classifier: failed to decode response: %w", err)
	}

	return predictResp, nil
}
