// Package monarch talks to the budgeting provider's GraphQL API and turns
// its responses into model types at the boundary. The analysis core never
// sees raw provider JSON.
package monarch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// DefaultBaseURL is the provider's GraphQL endpoint.
const DefaultBaseURL = "https://api.monarchmoney.com/graphql"

// DefaultTransactionLimit is the page size for transaction fetches.
const DefaultTransactionLimit = 2000

// Client is one authenticated session handle. Create one per run and pass
// it explicitly; there is no shared global client.
type Client struct {
	baseURL    string
	token      string
	deviceUUID string
	txnLimit   int
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different endpoint (tests).
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTransactionLimit overrides the transaction page size.
func WithTransactionLimit(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.txnLimit = n
		}
	}
}

// NewClient creates a Client with a session token. Each client carries a
// fresh device UUID, matching what the provider expects per session.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		token:      token,
		deviceUUID: uuid.NewString(),
		txnLimit:   DefaultTransactionLimit,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type graphqlRequest struct {
	OperationName string         `json:"operationName"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

// query executes one GraphQL operation and unmarshals the data payload
// into out.
func (c *Client) query(ctx context.Context, operation, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphqlRequest{
		OperationName: operation,
		Query:         query,
		Variables:     variables,
	})
	if err != nil {
		return fmt.Errorf("marshaling %s request: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Client-Platform", "web")
	req.Header.Set("Device-UUID", c.deviceUUID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s response: %w", operation, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: provider returned %s", operation, resp.Status)
	}

	var gr graphqlResponse
	if err := json.Unmarshal(data, &gr); err != nil {
		return fmt.Errorf("parsing %s response: %w", operation, err)
	}
	if len(gr.Errors) > 0 {
		return fmt.Errorf("%s: provider error: %s", operation, gr.Errors[0].Message)
	}

	if err := json.Unmarshal(gr.Data, out); err != nil {
		return fmt.Errorf("parsing %s data: %w", operation, err)
	}
	return nil
}
