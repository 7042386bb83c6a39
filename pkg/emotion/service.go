package emotion

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/SinlessRook/BayMax-Backend/pkg/chatparse"
)

// Analyzer orchestrates transcript extraction, per-message classification and
// aggregation. It holds the single process-wide classifier handle, which is
// initialized at startup and shared read-only across requests.
type Analyzer struct {
	classifier Classifier
	responder  *Responder
	config     *ServiceConfig

	metrics *AnalysisMetrics
	tracer  trace.Tracer

	mu        sync.RWMutex
	semaphore chan struct{}
}

// ServiceConfig contains configuration for the analyzer service
type ServiceConfig struct {
	MaxConcurrentAnalyses int           `yaml:"max_concurrent_analyses" env:"MAX_CONCURRENT_ANALYSES"`
	DefaultTimeout        time.Duration `yaml:"default_timeout" env:"ANALYSIS_TIMEOUT"`
	MaxTextLength         int           `yaml:"max_text_length" env:"MAX_TEXT_LENGTH"`
	MaxMessages           int           `yaml:"max_messages" env:"MAX_MESSAGES"`
	KeywordLimit          int           `yaml:"keyword_limit" env:"KEYWORD_LIMIT"`
}

// DefaultServiceConfig returns default analyzer configuration
func DefaultServiceConfig() *ServiceConfig {
	return &ServiceConfig{
		MaxConcurrentAnalyses: 10,
		DefaultTimeout:        30 * time.Second,
		MaxTextLength:         1000000, // 1MB
		MaxMessages:           5000,
		KeywordLimit:          7,
	}
}

// NewAnalyzer creates a new analyzer service
func NewAnalyzer(classifier Classifier, responder *Responder, config *ServiceConfig) *Analyzer {
	if config == nil {
		config = DefaultServiceConfig()
	}
	if responder == nil {
		responder = NewResponder(nil)
	}

	return &Analyzer{
		classifier: classifier,
		responder:  responder,
		config:     config,
		metrics: &AnalysisMetrics{
			AnalysesByPlatform: make(map[string]int64),
			MessagesByLabel:    make(map[Label]int64),
		},
		tracer:    otel.Tracer("emotion-analyzer"),
		semaphore: make(chan struct{}, config.MaxConcurrentAnalyses),
	}
}

// AnalyzeTranscript extracts one participant's messages from a chat export,
// classifies each message and aggregates the results. An empty extraction is
// a valid zero-message case, not an error: the distribution is all-zero, the
// score is 0 and the emotional state is Euphoria.
func (a *Analyzer) AnalyzeTranscript(ctx context.Context, input *TranscriptInput) (*TranscriptAnalysis, error) {
	select {
	case a.semaphore <- struct{}{}:
		defer func() { <-a.semaphore }()
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	startTime := time.Now()

	ctx, span := a.tracer.Start(ctx, "analyze_transcript")
	defer span.End()

	if err := a.validateInput(input); err != nil {
		span.RecordError(err)
		a.updateMetrics(false, time.Since(startTime))
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	platform, err := chatparse.ParsePlatform(input.Platform)
	if err != nil {
		span.RecordError(err)
		a.updateMetrics(false, time.Since(startTime))
		return nil, err
	}

	span.SetAttributes(
		attribute.String("transcript.platform", string(platform)),
		attribute.Int("transcript.length", len(input.Text)),
	)

	ctx, cancel := context.WithTimeout(ctx, a.config.DefaultTimeout)
	defer cancel()

	messages, err := chatparse.Extract(input.Text, input.Person, platform)
	if err != nil {
		span.RecordError(err)
		a.updateMetrics(false, time.Since(startTime))
		return nil, err
	}

	if a.config.MaxMessages > 0 && len(messages) > a.config.MaxMessages {
		messages = messages[:a.config.MaxMessages]
	}

	preds := make([]Prediction, 0, len(messages))
	for _, msg := range messages {
		pred, err := a.classifier.Classify(ctx, msg)
		if err != nil {
			span.RecordError(err)
			a.updateMetrics(false, time.Since(startTime))
			return nil, fmt.Errorf("classification failed: %w", err)
		}
		preds = append(preds, pred)
	}

	score := Score(preds)
	keywords := Keywords(messages)
	if len(keywords) > a.config.KeywordLimit {
		keywords = keywords[:a.config.KeywordLimit]
	}

	processingTime := time.Since(startTime)
	result := &TranscriptAnalysis{
		Distribution:   Distribute(preds),
		Score:          score,
		Keywords:       keywords,
		Emotion:        State(score),
		MessageCount:   len(messages),
		ProcessingTime: processingTime,
	}

	a.updateMetrics(true, processingTime)
	a.updateCounters(string(platform), preds)

	span.SetAttributes(
		attribute.Int("transcript.messages", len(messages)),
		attribute.Float64("transcript.score", score),
		attribute.String("transcript.emotion", string(result.Emotion)),
		attribute.Int64("processing.time_ms", processingTime.Milliseconds()),
	)

	return result, nil
}

// AnalyzeUtterance classifies a single free-form utterance and returns a
// templated conversational reply referencing the detected emotion.
func (a *Analyzer) AnalyzeUtterance(ctx context.Context, text string) (string, error) {
	select {
	case a.semaphore <- struct{}{}:
		defer func() { <-a.semaphore }()
	case <-ctx.Done():
		return "", ctx.Err()
	}

	startTime := time.Now()

	ctx, span := a.tracer.Start(ctx, "analyze_utterance")
	defer span.End()

	if text == "" {
		a.updateMetrics(false, time.Since(startTime))
		return "", fmt.Errorf("invalid input: text cannot be empty")
	}
	if len(text) > a.config.MaxTextLength {
		a.updateMetrics(false, time.Since(startTime))
		return "", fmt.Errorf("invalid input: text length %d exceeds maximum %d", len(text), a.config.MaxTextLength)
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.DefaultTimeout)
	defer cancel()

	pred, err := a.classifier.Classify(ctx, text)
	if err != nil {
		span.RecordError(err)
		a.updateMetrics(false, time.Since(startTime))
		return "", fmt.Errorf("classification failed: %w", err)
	}

	span.SetAttributes(
		attribute.String("utterance.label", string(pred.Label)),
		attribute.Float64("utterance.score", pred.Score),
	)

	a.updateMetrics(true, time.Since(startTime))
	a.updateCounters(string(chatparse.PlatformChat), []Prediction{pred})

	return a.responder.Reply(pred), nil
}

// validateInput validates a transcript analysis input
func (a *Analyzer) validateInput(input *TranscriptInput) error {
	if input == nil {
		return fmt.Errorf("input cannot be nil")
	}
	if input.Text == "" {
		return fmt.Errorf("text cannot be empty")
	}
	if len(input.Text) > a.config.MaxTextLength {
		return fmt.Errorf("text length %d exceeds maximum %d", len(input.Text), a.config.MaxTextLength)
	}
	return nil
}

// updateMetrics updates aggregate service metrics
func (a *Analyzer) updateMetrics(success bool, processingTime time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.metrics.TotalAnalyses++
	if success {
		a.metrics.SuccessfulAnalyses++
	} else {
		a.metrics.FailedAnalyses++
	}

	totalTime := a.metrics.AverageProcessingTime * time.Duration(a.metrics.TotalAnalyses-1)
	a.metrics.AverageProcessingTime = (totalTime + processingTime) / time.Duration(a.metrics.TotalAnalyses)

	a.metrics.ErrorRate = float64(a.metrics.FailedAnalyses) / float64(a.metrics.TotalAnalyses)

	now := time.Now()
	a.metrics.LastAnalysisAt = &now
}

// updateCounters updates per-platform and per-label counters
func (a *Analyzer) updateCounters(platform string, preds []Prediction) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.metrics.AnalysesByPlatform[platform]++
	for _, p := range preds {
		a.metrics.MessagesByLabel[p.Label]++
		a.metrics.MessagesClassified++
	}
}

// Metrics returns a copy of the current analyzer metrics
func (a *Analyzer) Metrics() *AnalysisMetrics {
	a.mu.RLock()
	defer a.mu.RUnlock()

	metrics := &AnalysisMetrics{
		TotalAnalyses:         a.metrics.TotalAnalyses,
		SuccessfulAnalyses:    a.metrics.SuccessfulAnalyses,
		FailedAnalyses:        a.metrics.FailedAnalyses,
		MessagesClassified:    a.metrics.MessagesClassified,
		AverageProcessingTime: a.metrics.AverageProcessingTime,
		LastAnalysisAt:        a.metrics.LastAnalysisAt,
		ErrorRate:             a.metrics.ErrorRate,
		AnalysesByPlatform:    make(map[string]int64),
		MessagesByLabel:       make(map[Label]int64),
	}

	for k, v := range a.metrics.AnalysesByPlatform {
		metrics.AnalysesByPlatform[k] = v
	}
	for k, v := range a.metrics.MessagesByLabel {
		metrics.MessagesByLabel[k] = v
	}

	return metrics
}

// HealthCheck round-trips a canned utterance through the classifier
func (a *Analyzer) HealthCheck(ctx context.Context) error {
	if a.classifier == nil {
		return fmt.Errorf("no classifier configured")
	}

	if err := a.classifier.HealthCheck(ctx); err != nil {
		return fmt.Errorf("classifier health check failed: %w", err)
	}

	return nil
}
