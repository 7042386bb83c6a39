package classifier

import (
	"context"
	"strings"

	"github.com/SinlessRook/BayMax-Backend/pkg/emotion"
)

// LexiconClassifier is an offline, lexicon-based emotion classifier used when
// no hosted model is configured and in tests. It scores each of the six
// emotion categories against per-emotion word lexicons with intensifier and
// negation handling, and reports the dominant category with a confidence
// derived from its share of the total evidence.
type LexiconClassifier struct {
	lexicons     map[emotion.Label]map[string]float64
	intensifiers map[string]float64
	negators     map[string]struct{}
}

// NewLexiconClassifier creates a new lexicon classifier
func NewLexiconClassifier() *LexiconClassifier {
	c := &LexiconClassifier{
		intensifiers: map[string]float64{
			"very": 1.5, "extremely": 2.0, "incredibly": 1.8, "absolutely": 1.7,
			"completely": 1.6, "totally": 1.5, "really": 1.3, "quite": 1.2,
			"so": 1.3, "deeply": 1.4, "truly": 1.3, "somewhat": 0.8, "slightly": 0.7,
		},
		negators: map[string]struct{}{
			"not": {}, "no": {}, "never": {}, "hardly": {}, "barely": {},
			"don't": {}, "doesn't": {}, "didn't": {}, "won't": {}, "can't": {},
			"cannot": {}, "isn't": {}, "aren't": {}, "wasn't": {}, "weren't": {},
		},
	}

	c.initializeLexicons()
	return c
}

// Classify scores the text against every emotion lexicon and returns the
// dominant label. Text with no lexicon evidence defaults to a low-confidence
// surprise prediction.
func (c *LexiconClassifier) Classify(ctx context.Context, text string) (emotion.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return emotion.Prediction{}, err
	}

	words := strings.Fields(strings.ToLower(text))
	scores := make(map[emotion.Label]float64)

	for i, word := range words {
		word = strings.Trim(word, ".,!?;:\"'()")
		if word == "" {
			continue
		}

		for label, lexicon := range c.lexicons {
			weight, ok := lexicon[word]
			if !ok {
				continue
			}

			weight *= c.intensifierAt(words, i)

			if c.negatedAt(words, i) {
				// A negated hit is weak evidence for the opposite valence.
				weight /= 2
				label = oppositeValence(label)
			}

			scores[label] += weight
		}
	}

	var total float64
	for _, s := range scores {
		total += s
	}

	if total == 0 {
		return emotion.Prediction{Label: emotion.LabelSurprise, Score: 0.3}, nil
	}

	top := emotion.LabelSurprise
	var topScore float64
	for _, label := range emotion.Labels() {
		if scores[label] > topScore {
			top = label
			topScore = scores[label]
		}
	}

	// Confidence grows with the dominant category's share of the evidence.
	confidence := 0.5 + 0.5*(topScore/total)
	if confidence > 1 {
		confidence = 1
	}

	return emotion.Prediction{Label: top, Score: confidence}, nil
}

// Name returns the classifier name
func (c *LexiconClassifier) Name() string {
	return "lexicon"
}

// HealthCheck always succeeds; the lexicons are in memory
func (c *LexiconClassifier) HealthCheck(ctx context.Context) error {
	return ctx.Err()
}

// intensifierAt returns the multiplier contributed by an intensifier in the
// two words preceding index i, with reduced impact at distance two.
func (c *LexiconClassifier) intensifierAt(words []string, i int) float64 {
	multiplier := 1.0
	if i > 0 {
		if m, ok := c.intensifiers[words[i-1]]; ok {
			multiplier *= m
		}
	}
	if i > 1 {
		if m, ok := c.intensifiers[words[i-2]]; ok {
			multiplier *= m * 0.8
		}
	}
	return multiplier
}

// negatedAt reports whether a negator appears in the three words before i
func (c *LexiconClassifier) negatedAt(words []string, i int) bool {
	start := i - 3
	if start < 0 {
		start = 0
	}
	for j := start; j < i; j++ {
		if _, ok := c.negators[words[j]]; ok {
			return true
		}
	}
	return false
}

// oppositeValence maps negated joy to sadness and negated negative emotions
// to joy; surprise stays put.
func oppositeValence(label emotion.Label) emotion.Label {
	switch label {
	case emotion.LabelJoy:
		return emotion.LabelSadness
	case emotion.LabelSadness, emotion.LabelAnger, emotion.LabelFear, emotion.LabelDisgust:
		return emotion.LabelJoy
	default:
		return label
	}
}

func (c *LexiconClassifier) initializeLexicons() {
	c.lexicons = map[emotion.Label]map[string]float64{
		emotion.LabelJoy: {
			"happy": 0.8, "joy": 0.9, "joyful": 0.9, "glad": 0.7, "great": 0.6,
			"love": 0.8, "loved": 0.8, "wonderful": 0.8, "amazing": 0.8, "excited": 0.7,
			"awesome": 0.8, "fantastic": 0.8, "delighted": 0.8, "grateful": 0.7,
			"cheerful": 0.7, "pleased": 0.6, "proud": 0.6, "fun": 0.6, "smile": 0.6,
			"laughing": 0.7, "celebrate": 0.7, "best": 0.5,
		},
		emotion.LabelSadness: {
			"sad": 0.8, "unhappy": 0.7, "depressed": 0.9, "miserable": 0.9,
			"crying": 0.8, "cried": 0.8, "lonely": 0.7, "heartbroken": 0.9,
			"grief": 0.9, "hopeless": 0.8, "down": 0.5, "blue": 0.5, "hurt": 0.6,
			"loss": 0.6, "miss": 0.5, "sorrow": 0.8, "tears": 0.7, "gloomy": 0.7,
		},
		emotion.LabelAnger: {
			"angry": 0.8, "mad": 0.7, "furious": 0.9, "rage": 0.9, "hate": 0.8,
			"annoyed": 0.6, "irritated": 0.6, "frustrated": 0.7, "outraged": 0.9,
			"livid": 0.9, "resent": 0.7, "pissed": 0.8, "infuriating": 0.8,
			"unfair": 0.6, "betrayed": 0.7,
		},
		emotion.LabelFear: {
			"afraid": 0.8, "scared": 0.8, "terrified": 0.9, "anxious": 0.7,
			"worried": 0.6, "nervous": 0.6, "panic": 0.8, "dread": 0.8,
			"frightened": 0.8, "fear": 0.8, "horror": 0.8, "uneasy": 0.6,
			"threatened": 0.7, "helpless": 0.6,
		},
		emotion.LabelDisgust: {
			"disgusting": 0.9, "gross": 0.8, "revolting": 0.9, "nasty": 0.7,
			"sickening": 0.8, "repulsive": 0.9, "vile": 0.8, "awful": 0.6,
			"horrible": 0.6, "creepy": 0.6, "yuck": 0.8, "ew": 0.7,
		},
		emotion.LabelSurprise: {
			"surprised": 0.8, "shocked": 0.8, "wow": 0.7, "unexpected": 0.7,
			"unbelievable": 0.7, "astonished": 0.9, "stunned": 0.8, "sudden": 0.5,
			"whoa": 0.7, "incredible": 0.6, "speechless": 0.7,
		},
	}
}
