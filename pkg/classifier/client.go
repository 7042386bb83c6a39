// Package classifier provides emotion model implementations of the
// emotion.Classifier interface: an HTTP client for a hosted
// text-classification endpoint and an offline lexicon-based fallback.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SinlessRook/BayMax-Backend/pkg/emotion"
)

// InferenceConfig holds configuration for the hosted inference client
type InferenceConfig struct {
	BaseURL   string        `yaml:"base_url" json:"base_url" env:"MODEL_BASE_URL"`
	APIKey    string        `yaml:"api_key" json:"api_key" env:"MODEL_API_KEY"`
	Model     string        `yaml:"model" json:"model" env:"MODEL_NAME"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" env:"MODEL_TIMEOUT"`
	Retries   int           `yaml:"retries" json:"retries" env:"MODEL_RETRIES"`
	UserAgent string        `yaml:"user_agent" json:"user_agent"`
}

// DefaultInferenceConfig returns default inference client configuration
func DefaultInferenceConfig() *InferenceConfig {
	return &InferenceConfig{
		Model:     "bhadresh-savani/bert-base-uncased-emotion",
		Timeout:   30 * time.Second,
		Retries:   3,
		UserAgent: "baymax-go-client/1.0",
	}
}

// InferenceClient calls a hosted text-classification endpoint that speaks the
// Hugging Face Inference API wire format: POST {"inputs": text} returning a
// nested list of {label, score} candidates. Only the top-scoring label is
// used. The client is safe for concurrent use.
type InferenceClient struct {
	config     *InferenceConfig
	httpClient *http.Client
	endpoint   string
}

// NewInferenceClient creates a new inference client
func NewInferenceClient(config *InferenceConfig) (*InferenceClient, error) {
	if config == nil {
		return nil, fmt.Errorf("inference config is required")
	}
	if config.BaseURL == "" {
		return nil, fmt.Errorf("inference base URL is required")
	}
	if config.Model == "" {
		config.Model = DefaultInferenceConfig().Model
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	if config.Retries < 0 {
		config.Retries = 3
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultInferenceConfig().UserAgent
	}

	return &InferenceClient{
		config:   config,
		endpoint: strings.TrimSuffix(config.BaseURL, "/") + "/models/" + config.Model,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}, nil
}

// inferenceRequest matches the inference API request body
type inferenceRequest struct {
	Inputs  string            `json:"inputs"`
	Options *inferenceOptions `json:"options,omitempty"`
}

type inferenceOptions struct {
	WaitForModel bool `json:"wait_for_model,omitempty"`
}

// labelScore is one classification candidate in the inference response
type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify sends one text to the hosted model and returns the top-scoring
// emotion label with its confidence.
func (c *InferenceClient) Classify(ctx context.Context, text string) (emotion.Prediction, error) {
	if text == "" {
		return emotion.Prediction{}, fmt.Errorf("text cannot be empty")
	}

	body, err := json.Marshal(inferenceRequest{
		Inputs:  text,
		Options: &inferenceOptions{WaitForModel: true},
	})
	if err != nil {
		return emotion.Prediction{}, fmt.Errorf("failed to encode request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.config.Retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return emotion.Prediction{}, ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}

		candidates, retryable, err := c.doRequest(ctx, body)
		if err == nil {
			return topPrediction(candidates)
		}

		lastErr = err
		if !retryable {
			break
		}
	}

	return emotion.Prediction{}, fmt.Errorf("inference request failed: %w", lastErr)
}

// doRequest performs a single inference call. The second return value reports
// whether the failure is transient (model loading, 5xx) and worth retrying.
func (c *InferenceClient) doRequest(ctx context.Context, body []byte) ([]labelScore, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		retryable := resp.StatusCode >= 500 || resp.StatusCode == http.StatusServiceUnavailable
		return nil, retryable, fmt.Errorf("inference API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	candidates, err := decodeCandidates(data)
	if err != nil {
		return nil, false, err
	}

	return candidates, false, nil
}

// decodeCandidates handles both response shapes the inference API produces:
// [[{label,score},...]] for single inputs and [{label,score},...] from some
// deployments.
func decodeCandidates(data []byte) ([]labelScore, error) {
	var nested [][]labelScore
	if err := json.Unmarshal(data, &nested); err == nil && len(nested) > 0 {
		return nested[0], nil
	}

	var flat []labelScore
	if err := json.Unmarshal(data, &flat); err == nil && len(flat) > 0 {
		return flat, nil
	}

	return nil, fmt.Errorf("unexpected inference response: %s", strings.TrimSpace(string(data)))
}

func topPrediction(candidates []labelScore) (emotion.Prediction, error) {
	if len(candidates) == 0 {
		return emotion.Prediction{}, fmt.Errorf("inference response contained no candidates")
	}

	top := candidates[0]
	for _, c := range candidates[1:] {
		if c.Score > top.Score {
			top = c
		}
	}

	return emotion.Prediction{
		Label: emotion.Label(strings.ToLower(top.Label)),
		Score: top.Score,
	}, nil
}

// Name returns the classifier name
func (c *InferenceClient) Name() string {
	return "inference:" + c.config.Model
}

// HealthCheck verifies the hosted model answers a canned classification
func (c *InferenceClient) HealthCheck(ctx context.Context) error {
	_, err := c.Classify(ctx, "health check ping")
	return err
}
