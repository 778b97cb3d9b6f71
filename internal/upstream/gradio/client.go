// Package gradio implements the small slice of the gradio Space HTTP API
// this service needs: submit a call, wait for the server-sent "complete"
// event, and download produced files. There is no Go gradio SDK, so the
// client speaks the wire format directly.
package gradio

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to one Space endpoint. It is created once at startup and is
// safe for concurrent use; all per-call state lives on the stack.
type Client struct {
	baseURL string
	apiName string
	httpc   *http.Client
}

// NewClient builds a client for the given Space base URL and api name
// (the "/generate_image" in gradio terms, without the slash).
func NewClient(baseURL, apiName string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiName: strings.Trim(apiName, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the Space base URL, used to resolve relative file paths.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Predict submits the positional payload and blocks until the Space reports
// a result. The returned slice is the event's decoded "data" array.
func (c *Client) Predict(ctx context.Context, data []any) ([]any, error) {
	eventID, err := c.submit(ctx, data)
	if err != nil {
		return nil, err
	}
	return c.await(ctx, eventID)
}

// FetchFile downloads a file produced by the Space.
func (c *Client) FetchFile(ctx context.Context, fileURL string) ([]byte, error) {
	if strings.HasPrefix(fileURL, "/") {
		fileURL = c.baseURL + fileURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", fileURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("file download returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) callURL() string {
	return c.baseURL + "/gradio_api/call/" + c.apiName
}

func (c *Client) submit(ctx context.Context, data []any) (string, error) {
	body, err := json.Marshal(map[string]any{"data": data})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.callURL(), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to submit call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("call submission returned status %d", resp.StatusCode)
	}

	var payload struct {
		EventID string `json:"event_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode call response: %w", err)
	}
	if payload.EventID == "" {
		return "", fmt.Errorf("call response missing event_id")
	}
	return payload.EventID, nil
}

// await reads the SSE result stream until a terminal event arrives.
// Frames look like "event: complete" followed by "data: [...]".
func (c *Client) await(ctx context.Context, eventID string) ([]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.callURL()+"/"+eventID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to open result stream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("result stream returned status %d", resp.StatusCode)
	}

	var event string
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			raw := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			switch event {
			case "complete":
				var data []any
				if err := json.Unmarshal([]byte(raw), &data); err != nil {
					return nil, fmt.Errorf("failed to decode result data: %w", err)
				}
				return data, nil
			case "error":
				return nil, fmt.Errorf("space reported an error: %s", raw)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("result stream interrupted: %w", err)
	}
	return nil, fmt.Errorf("result stream ended without a complete event")
}
