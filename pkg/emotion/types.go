package emotion

import (
	"context"
	"time"
)

// Label represents one of the six emotion categories produced by the classifier
type Label string

const (
	LabelAnger    Label = "anger"
	LabelSadness  Label = "sadness"
	LabelFear     Label = "fear"
	LabelDisgust  Label = "disgust"
	LabelSurprise Label = "surprise"
	LabelJoy      Label = "joy"
)

// Labels returns the fixed set of emotion labels in canonical order
func Labels() []Label {
	return []Label{LabelAnger, LabelSadness, LabelFear, LabelDisgust, LabelSurprise, LabelJoy}
}

// Prediction represents a single classifier output for one message
type Prediction struct {
	Label Label   `json:"label"`
	Score float64 `json:"score"`
}

// Distribution maps each emotion label to its percentage share of messages.
// All six labels are always present; percentages are rounded to two decimals
// and may not sum to exactly 100.
type Distribution map[Label]float64

// EmotionalState represents a named decile of the composite score, ordered
// from least to most distress. Spellings match the production API contract.
type EmotionalState string

const (
	StateEuphoria       EmotionalState = "Euphoria"
	StateExcitment      EmotionalState = "Excitment"
	StateHappiness      EmotionalState = "Happiness"
	StateSatisfaction   EmotionalState = "Satisfaction"
	StateContentment    EmotionalState = "Contentment"
	StateIndifference   EmotionalState = "Indifference"
	StateDisappointment EmotionalState = "Disappointment"
	StateFrustation     EmotionalState = "Frustation"
	StateDeepSadness    EmotionalState = "Deep Sadness"
	StateDespair        EmotionalState = "Despair"

	// StateUnknown is returned for composite scores outside [0,100), which the
	// unclamped score formula can produce.
	StateUnknown EmotionalState = ""
)

// Classifier defines the interface for emotion classifiers. Implementations
// must be safe for concurrent use; the service holds a single shared instance
// for the lifetime of the process.
type Classifier interface {
	// Classify returns the dominant emotion for a single text
	Classify(ctx context.Context, text string) (Prediction, error)

	// Name returns the classifier name
	Name() string

	// HealthCheck performs a health check
	HealthCheck(ctx context.Context) error
}

// TranscriptInput represents a transcript analysis request
type TranscriptInput struct {
	Text     string `json:"text"`
	Person   string `json:"person"`
	Platform string `json:"platform"`
}

// TranscriptAnalysis represents the aggregated result for one participant's
// messages. The JSON field names are the wire contract.
type TranscriptAnalysis struct {
	Distribution Distribution   `json:"piegraph"`
	Score        float64        `json:"score"`
	Keywords     []string       `json:"keywords"`
	Emotion      EmotionalState `json:"emotion"`

	MessageCount   int           `json:"-"`
	ProcessingTime time.Duration `json:"-"`
}

// AnalysisMetrics represents analyzer performance metrics
type AnalysisMetrics struct {
	TotalAnalyses         int64            `json:"total_analyses"`
	SuccessfulAnalyses    int64            `json:"successful_analyses"`
	FailedAnalyses        int64            `json:"failed_analyses"`
	MessagesClassified    int64            `json:"messages_classified"`
	AverageProcessingTime time.Duration    `json:"average_processing_time"`
	AnalysesByPlatform    map[string]int64 `json:"analyses_by_platform"`
	MessagesByLabel       map[Label]int64  `json:"messages_by_label"`
	LastAnalysisAt        *time.Time       `json:"last_analysis_at"`
	ErrorRate             float64          `json:"error_rate"`
}
