// Package client talks to a running animes GraphQL server.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client struct {
	httpClient *http.Client
	endpoint   string
}

// New returns a client posting to endpoint, e.g. http://localhost:5000/graphql.
func New(endpoint string) *Client {
	return &Client{httpClient: http.DefaultClient, endpoint: endpoint}
}

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type GraphQLError struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

// ResponseError is returned when the server answers with GraphQL errors.
type ResponseError struct {
	StatusCode int
	Errors     []GraphQLError
}

func (e *ResponseError) Error() string {
	messages := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		messages[i] = err.Message
	}
	return fmt.Sprintf("graphql: %s", strings.Join(messages, "; "))
}

// Raw sends query and returns the response body untouched.
func (c *Client) Raw(ctx context.Context, query string, vars map[string]any) ([]byte, error) {
	_, raw, err := c.post(ctx, query, vars)
	return raw, err
}

func (c *Client) post(ctx context.Context, query string, vars map[string]any) (int, []byte, error) {
	body, err := json.Marshal(request{Query: query, Variables: vars})
	if err != nil {
		return 0, nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusBadRequest {
		return 0, nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.StatusCode, raw, nil
}

// Do sends query and decodes the "data" member of the response into out.
// GraphQL errors are returned as a *ResponseError.
func (c *Client) Do(ctx context.Context, query string, vars map[string]any, out any) error {
	status, raw, err := c.post(ctx, query, vars)
	if err != nil {
		return err
	}

	var envelope struct {
		Data   jsoniter.RawMessage `json:"data"`
		Errors []GraphQLError      `json:"errors"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return &ResponseError{StatusCode: status, Errors: envelope.Errors}
	}
	if out == nil || len(envelope.Data) == 0 {
		return nil
	}
	return json.Unmarshal(envelope.Data, out)
}
