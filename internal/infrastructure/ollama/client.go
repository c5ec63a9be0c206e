// Package ollama implements the generator collaborator on top of a local
// Ollama server: chat and generate completions plus the vision fallback
// chain for image analysis.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/pocketai/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client handles communication with the Ollama API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	model       string
	visionModel string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new Ollama API client. baseURL points at the API
// root, e.g. "http://localhost:11434/api".
func NewClient(baseURL, model, visionModel string) *Client {
	// A local model server saturates quickly; pace requests to 2/sec with
	// a small burst instead of queueing unbounded work on it.
	limiter := rate.NewLimiter(rate.Limit(2), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		baseURL:     baseURL,
		model:       model,
		visionModel: visionModel,
		rateLimiter: limiter,
	}
}

// SetDebug enables verbose request/response logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// chatRequest is the wire format for the /chat endpoint
type chatRequest struct {
	Model    string           `json:"model"`
	Messages []domain.Message `json:"messages"`
	Stream   bool             `json:"stream"`
}

// chatResponse is the wire format of a non-streamed /chat completion
type chatResponse struct {
	Message domain.Message `json:"message"`
}

// generateRequest is the wire format for the /generate endpoint. Images
// are base64-encoded when a vision model is addressed.
type generateRequest struct {
	Model  string   `json:"model"`
	Prompt string   `json:"prompt"`
	Images []string `json:"images,omitempty"`
	Stream bool     `json:"stream"`
}

// generateResponse is the wire format of a non-streamed /generate completion
type generateResponse struct {
	Response string `json:"response"`
}

// Chat sends the conversation to the chat endpoint and returns the
// assistant's reply. When the chat endpoint fails after retries, the last
// user message is replayed through the plain generate endpoint before
// giving up.
func (c *Client) Chat(ctx context.Context, messages []domain.Message) (string, error) {
	payload := chatRequest{Model: c.model, Messages: messages, Stream: false}

	body, err := c.post(ctx, "/chat", payload)
	if err == nil {
		var resp chatResponse
		if jsonErr := json.Unmarshal(body, &resp); jsonErr == nil && resp.Message.Content != "" {
			return resp.Message.Content, nil
		}
		err = fmt.Errorf("%w: empty chat completion", domain.ErrGeneratorUnavailable)
	}

	log.Printf("[OLLAMA] Chat endpoint failed (%v), falling back to generate", err)

	// Fallback: replay the last user message through /generate.
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == domain.RoleUser {
			return c.Generate(ctx, messages[i].Content, nil)
		}
	}
	return "", err
}

// Generate sends a single prompt (optionally with base64 images) to the
// generate endpoint.
func (c *Client) Generate(ctx context.Context, prompt string, images []string) (string, error) {
	model := c.model
	if len(images) > 0 {
		model = c.visionModel
	}
	payload := generateRequest{Model: model, Prompt: prompt, Images: images, Stream: false}

	body, err := c.post(ctx, "/generate", payload)
	if err != nil {
		return "", err
	}

	var resp generateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return resp.Response, nil
}

// post executes a JSON POST against the given endpoint, retrying transient
// failures up to 3 times with backoff.
func (c *Client) post(ctx context.Context, endpoint string, payload interface{}) ([]byte, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	reqURL := c.baseURL + endpoint

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			log.Printf("[OLLAMA] Request error (attempt %d): %v", attempt, err)
			lastErr = fmt.Errorf("%w: %v", domain.ErrGeneratorUnavailable, err)
			sleepBackoff(ctx, attempt)
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			log.Printf("[OLLAMA] API error (attempt %d) - Status: %d, Body: %s", attempt, resp.StatusCode, string(body))
			lastErr = fmt.Errorf("%w: status %d", domain.ErrGeneratorUnavailable, resp.StatusCode)
			sleepBackoff(ctx, attempt)
			continue
		}

		if c.debug {
			log.Printf("[OLLAMA] %s completed (%d bytes)", endpoint, len(body))
		}
		return body, nil
	}

	return nil, lastErr
}

// exponentialBackoff returns the wait before the next retry attempt
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(250<<uint(attempt)) * time.Millisecond
}

func sleepBackoff(ctx context.Context, attempt int) {
	select {
	case <-time.After(exponentialBackoff(attempt)):
	case <-ctx.Done():
	}
}
