package classifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SinlessRook/BayMax-Backend/pkg/emotion"
)

func TestLexiconClassifier(t *testing.T) {
	clf := NewLexiconClassifier()

	tests := []struct {
		name     string
		text     string
		expected emotion.Label
	}{
		{"joy", "I am so happy and excited today!", emotion.LabelJoy},
		{"anger", "I absolutely hate this, it makes me furious", emotion.LabelAnger},
		{"fear", "I'm terrified and anxious about tomorrow", emotion.LabelFear},
		{"sadness", "feeling lonely and heartbroken tonight", emotion.LabelSadness},
		{"disgust", "that was disgusting, truly revolting", emotion.LabelDisgust},
		{"surprise", "wow, I am completely stunned", emotion.LabelSurprise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred, err := clf.Classify(context.Background(), tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, pred.Label)
			assert.Greater(t, pred.Score, 0.5)
			assert.LessOrEqual(t, pred.Score, 1.0)
		})
	}

	t.Run("no evidence defaults to low-confidence surprise", func(t *testing.T) {
		pred, err := clf.Classify(context.Background(), "the quarterly report is attached")
		require.NoError(t, err)
		assert.Equal(t, emotion.LabelSurprise, pred.Label)
		assert.Equal(t, 0.3, pred.Score)
	})

	t.Run("negation flips valence", func(t *testing.T) {
		pred, err := clf.Classify(context.Background(), "I am not happy about this")
		require.NoError(t, err)
		assert.Equal(t, emotion.LabelSadness, pred.Label)
	})

	t.Run("intensifier can flip the dominant label", func(t *testing.T) {
		plain, err := clf.Classify(context.Background(), "happy and worried and worried")
		require.NoError(t, err)
		assert.Equal(t, emotion.LabelFear, plain.Label)

		boosted, err := clf.Classify(context.Background(), "extremely happy and worried and worried")
		require.NoError(t, err)
		assert.Equal(t, emotion.LabelJoy, boosted.Label)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := clf.Classify(ctx, "happy")
		assert.Error(t, err)
	})
}

func TestLexiconClassifierName(t *testing.T) {
	assert.Equal(t, "lexicon", NewLexiconClassifier().Name())
}
