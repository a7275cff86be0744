package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// InferenceClient relays prompts to a hosted text-generation endpoint
// (Hugging Face Inference API wire format).
//
// It is safe for concurrent use: the token and URL are read-only after construction and
// every call builds its own request. There is no admission control; each concurrent
// caller issues its own outbound request.
type InferenceClient struct {
	URL    string
	Token  string
	client *http.Client
}

// NewInferenceClient creates a new inference client.
// The token is not validated; an empty token is sent as "Bearer ".
func NewInferenceClient(url, token string) *InferenceClient {
	return &InferenceClient{
		URL:    url,
		Token:  token,
		client: http.DefaultClient,
	}
}

// WithHTTPClient replaces the HTTP client used for outbound calls.
func (c *InferenceClient) WithHTTPClient(hc *http.Client) *InferenceClient {
	if hc != nil {
		c.client = hc
	}
	return c
}

// Infer sends the prompt to the endpoint and returns the generated text.
// Exactly one HTTP request is made; there is no retry. Every failure is an *InferenceError.
func (c *InferenceClient) Infer(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	text, outcome, err := c.do(ctx, prompt)
	observeInference(outcome, time.Since(start).Seconds())
	if err != nil {
		return "", err
	}
	return text, nil
}

func (c *InferenceClient) do(ctx context.Context, prompt string) (string, string, error) {
	body, err := json.Marshal(NewInferenceRequest(prompt))
	if err != nil {
		return "", outcomeTransportError, newInferenceError(0, fmt.Errorf("failed to marshal request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return "", outcomeTransportError, newInferenceError(0, fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.Token))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", outcomeTransportError, newInferenceError(0, fmt.Errorf("failed to send request: %w", err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused; the body is deliberately dropped.
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", outcomeUpstreamError, newInferenceError(resp.StatusCode, fmt.Errorf("bad status %d", resp.StatusCode))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", outcomeTransportError, newInferenceError(resp.StatusCode, fmt.Errorf("failed to read response: %w", err))
	}

	text, err := parseGeneratedText(raw)
	if err != nil {
		return "", outcomeDecodeError, newInferenceError(resp.StatusCode, err)
	}
	return text, outcomeSuccess, nil
}

// parseGeneratedText extracts generated_text from a success body.
//
// A JSON array must carry generated_text on its first element. A JSON object yields its
// generated_text, or "" when the key is absent. An explicit null is an error in both shapes.
func parseGeneratedText(raw []byte) (string, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return "", errors.New("failed to decode response: empty body")
	}

	switch trimmed[0] {
	case '[':
		var gens []Generation
		if err := json.Unmarshal(trimmed, &gens); err != nil {
			return "", fmt.Errorf("failed to decode response: %w", err)
		}
		if len(gens) == 0 {
			return "", errors.New("no generations returned")
		}
		if gens[0].GeneratedText == nil {
			return "", errors.New("first generation has no generated_text")
		}
		return *gens[0].GeneratedText, nil
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return "", fmt.Errorf("failed to decode response: %w", err)
		}
		rawText, ok := fields["generated_text"]
		if !ok {
			return "", nil
		}
		var text *string
		if err := json.Unmarshal(rawText, &text); err != nil {
			return "", fmt.Errorf("failed to decode generated_text: %w", err)
		}
		if text == nil {
			return "", errors.New("generated_text is null")
		}
		return *text, nil
	default:
		return "", fmt.Errorf("failed to decode response: unexpected JSON value starting with %q", trimmed[0])
	}
}
