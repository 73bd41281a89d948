// internal/driver/llm.go
package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ticket-routing/internal/common/config"
	"ticket-routing/internal/common/logger"
	"ticket-routing/internal/orchestrator"

	commonerrors "ticket-routing/internal/common/errors"

	"github.com/cenkalti/backoff/v4"
)

// LLMDriver gathers tool evidence, embeds it in the prompt, and asks the
// GenAI gateway for the routing verdict. Gateway failures map onto the
// driver error taxonomy so the orchestrator can pick the right fallback.
type LLMDriver struct {
	config *config.GenAIConfig
	client *http.Client
	logger logger.Logger
}

func NewLLMDriver(cfg *config.GenAIConfig, log logger.Logger) *LLMDriver {
	return &LLMDriver{
		config: cfg,
		// No client timeout, the per-cycle context bounds every request.
		client: &http.Client{},
		logger: log.WithFields(map[string]interface{}{"driver": "llm"}),
	}
}

func (d *LLMDriver) Decide(ctx context.Context, prompt string, tools orchestrator.ToolInvoker) (string, error) {
	facts := parseTicketFacts(prompt)

	ev, err := gatherEvidence(ctx, facts, tools)
	if err != nil {
		return "", err
	}

	if d.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(d.config.Timeout)*time.Millisecond)
		defer cancel()
	}

	return d.generate(ctx, prompt, ev)
}

func (d *LLMDriver) generate(ctx context.Context, prompt string, ev *evidence) (string, error) {
	requestBody := map[string]interface{}{
		"prompt":      d.buildPrompt(prompt, ev),
		"context":     map[string]interface{}{"tools": ev},
		"max_tokens":  d.config.MaxTokens,
		"temperature": d.config.Temperature,
	}
	body, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", commonerrors.ErrUpstreamUnavailable, err)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(d.config.MaxRetries)),
		ctx,
	)

	text, err := backoff.RetryWithData(func() (string, error) {
		return d.request(ctx, body)
	}, policy)
	if err != nil {
		return "", err
	}
	return text, nil
}

func (d *LLMDriver) request(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.config.BaseURL+"/api/ai/generate", bytes.NewReader(body))
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("%w: build request: %v", commonerrors.ErrUpstreamUnavailable, err))
	}
	req.Header.Set("Content-Type", "application/json")
	if d.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+d.config.APIKey)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", backoff.Permanent(commonerrors.NewDriverTimeoutError(time.Duration(d.config.Timeout) * time.Millisecond))
		}
		if ctx.Err() != nil {
			return "", backoff.Permanent(ctx.Err())
		}
		return "", fmt.Errorf("%w: %v", commonerrors.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp.StatusCode); err != nil {
		d.logger.Warn("gateway request failed", map[string]interface{}{
			"status": resp.StatusCode,
		})
		return "", err
	}

	var apiResponse struct {
		Text       string  `json:"text"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", commonerrors.ErrUpstreamUnavailable, err)
	}
	if strings.TrimSpace(apiResponse.Text) == "" {
		return "", backoff.Permanent(fmt.Errorf("%w: empty completion", commonerrors.ErrUpstreamUnavailable))
	}

	text := apiResponse.Text
	if apiResponse.Confidence > 0 && apiResponse.Confidence <= 1.0 &&
		!strings.Contains(strings.ToLower(text), "confidence") {
		text += fmt.Sprintf("\nConfidence Score: %.0f%%", apiResponse.Confidence*100)
	}
	return text, nil
}

// classifyStatus maps gateway HTTP statuses onto the driver error taxonomy.
// Auth failures are permanent; rate limits and server errors retry.
func classifyStatus(status int) error {
	switch {
	case status == http.StatusOK:
		return nil
	case status == http.StatusTooManyRequests:
		return commonerrors.NewDriverRateLimitedError(fmt.Sprintf("status %d", status))
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return backoff.Permanent(commonerrors.NewDriverAccessDeniedError(fmt.Sprintf("status %d", status)))
	case status >= 500:
		return commonerrors.NewDriverUnavailableError(fmt.Errorf("status %d", status))
	default:
		return backoff.Permanent(commonerrors.NewDriverUnavailableError(fmt.Errorf("unexpected status %d", status)))
	}
}

func (d *LLMDriver) buildPrompt(base string, ev *evidence) string {
	var parts []string

	parts = append(parts, "You are a support-ticket routing assistant. Decide the team and priority based ONLY on the provided data.")
	parts = append(parts, "\n"+base)

	evidenceJSON, err := json.MarshalIndent(ev, "", "  ")
	if err == nil {
		parts = append(parts, "\nTool Evidence:")
		parts = append(parts, string(evidenceJSON))
	}

	parts = append(parts, "\nInstructions:")
	parts = append(parts, "- State the assigned team and priority level explicitly")
	parts = append(parts, "- Include a confidence score between 0 and 100")
	parts = append(parts, "- Mention manual review when confidence is low")

	parts = append(parts, "\nDecision:")

	return strings.Join(parts, "\n")
}
