// Package analysis talks to the external narrative-analysis collaborator and
// falls back to a local heuristic when it is unreachable or unusable.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ukydev/printer-maintenance/internal/models"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultMaxTokens   = 3000
	defaultTemperature = 0.3
)

// Analyzer is the contract the rest of the system depends on. Implementations
// must be fully substitutable, including a stub for tests.
type Analyzer interface {
	Analyze(ctx context.Context, input models.AnalysisInput) (*models.AnalysisResult, error)
}

// Client calls a chat-completions style API and extracts a structured
// AnalysisResult out of the reply text.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient creates a remote analysis client. The timeout bounds the whole
// round trip; zero means the default.
func NewClient(apiKey, baseURL, model string, timeout time.Duration) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key cannot be empty")
	}
	if baseURL == "" {
		return nil, fmt.Errorf("base URL cannot be empty")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Analyze sends the aggregated payload and parses the embedded JSON object
// out of the reply. Any transport, status or parse problem is returned as an
// error; the caller decides how to fall back.
func (c *Client) Analyze(ctx context.Context, input models.AnalysisInput) (*models.AnalysisResult, error) {
	prompt, err := buildPrompt(input)
	if err != nil {
		return nil, fmt.Errorf("build prompt: %w", err)
	}

	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analysis request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("analysis API returned status %d", resp.StatusCode)
	}

	var reply chatResponse
	if err := json.Unmarshal(raw, &reply); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(reply.Choices) == 0 {
		return nil, fmt.Errorf("analysis response has no choices")
	}

	embedded, err := ExtractJSON(reply.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	var result models.AnalysisResult
	if err := json.Unmarshal(embedded, &result); err != nil {
		return nil, fmt.Errorf("parse analysis result: %w", err)
	}
	return &result, nil
}

// buildPrompt embeds the aggregated JSON in the instruction text. Only
// aggregates go out, never raw records beyond the incident summaries.
func buildPrompt(input models.AnalysisInput) (string, error) {
	payload, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`You are an expert in spare-part inventory management for printer fleets. Analyze EXACTLY this aggregated data and provide specific recommendations.

Rules:
- Only reference parts and locations that appear in the data
- Base quantities on the real usage frequencies provided
- The stock should cover %d week(s)
- Do not include consumables (cartridges, toner) or tools

AGGREGATED DATA:
%s

Respond ONLY with valid JSON in this exact structure:
{
  "recommendations": ["..."],
  "criticalParts": [{"name": "...", "reason": "...", "action": "...", "urgency": "high"}],
  "trends": ["..."],
  "optimizations": ["..."]
}

Respond ONLY with the JSON, no additional explanation.`, input.CoverageWeeks, payload), nil
}

// ExtractJSON returns the first balanced {...} block in text, tolerating
// surrounding prose. Braces inside JSON strings are handled.
func ExtractJSON(text string) ([]byte, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			if start >= 0 {
				inString = true
			}
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start >= 0 {
				depth--
				if depth == 0 {
					return []byte(text[start : i+1]), nil
				}
			}
		}
	}
	return nil, fmt.Errorf("no JSON object found in response")
}
