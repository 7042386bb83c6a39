package emotion

import (
	"sort"
	"strings"
)

// emotionLexicon is the fixed set of emotion-associated words recognized by
// the keyword extractor: joy, anger, fear, sadness and surprise adjacent
// terms plus some cognitive-state terms.
var emotionLexicon = buildLexicon([]string{
	"joy", "joyful", "enjoy", "enjoyed", "enjoying", "happiness", "happy", "happier", "happiest",
	"excite", "excited", "exciting", "love", "loved", "loving", "satisfy", "satisfied", "satisfying",
	"content", "contented", "contenting", "optimism", "optimistic", "gratitude", "grateful",
	"enthusiasm", "enthusiastic", "hope", "hopeful", "hoping", "pride", "proud", "amuse", "amused", "amusing",
	"relieve", "relieved", "relieving", "affection", "affectionate", "euphoria", "euphoric", "cheerful",
	"cheering", "delight", "delighted", "delighting", "trust", "trusting", "trusted", "awe", "awed", "awesome",
	"bliss", "blissful", "pleasure", "pleased", "pleasing", "admire", "admired", "admiring", "serenity",
	"serene", "confidence", "confident", "compassion", "compassionate", "relax", "relaxed", "relaxing",

	"sad", "sadder", "saddest", "sadness", "cry", "cried", "crying", "anger", "angry", "infuriate", "infuriated", "infuriating",
	"fear", "feared", "fearing", "scare", "scared", "scaring", "anxiety", "anxious", "frustrate", "frustrated", "frustrating",
	"disappoint", "disappointed", "disappointing", "despair", "desperate", "grief", "grieving", "envy", "envious",
	"jealous", "jealousy", "guilt", "guilty", "shame", "shamed", "ashamed", "lonely", "loneliness", "hate", "hated", "hating",
	"disgust", "disgusted", "disgusting", "hopeless", "hopelessness", "insecure", "insecurity", "embarrass", "embarrassed", "embarrassing",
	"worry", "worried", "worrying", "contempt", "contemptuous", "rage", "raging", "annoy", "annoyed", "annoying", "panic", "panicked",
	"resent", "resented", "resenting", "nervous", "nervousness", "mourn", "mourned", "mourning", "blame", "blamed", "blaming", "betray", "betrayed",

	"surprise", "surprised", "surprising", "curious", "curiosity", "anticipate", "anticipated", "anticipating",
	"confuse", "confused", "confusing", "shock", "shocked", "shocking", "indifferent", "indifference", "ambivalent",
	"puzzle", "puzzled", "puzzling", "interest", "interested", "interesting", "think", "thought", "thinking",
	"wonder", "wondered", "wondering", "expect", "expected", "expecting", "observe", "observed", "observing",
	"reflect", "reflected", "reflecting", "analyze", "analyzed", "analyzing", "consider", "considered", "considering",
	"speculate", "speculated", "speculating", "meditate", "meditated", "meditating", "focus", "focused", "focusing",
	"alert", "alerted", "alerting", "contemplate", "contemplated", "contemplating", "stillness", "balance",
})

func buildLexicon(words []string) map[string]struct{} {
	lexicon := make(map[string]struct{}, len(words))
	for _, w := range words {
		lexicon[w] = struct{}{}
	}
	return lexicon
}

// Keywords scans raw message text for emotion-lexicon words and returns the
// deduplicated matches in lexical order. Tokenization is whitespace-only;
// punctuation is not stripped, so "happy," does not match the lexicon entry
// "happy".
func Keywords(messages []string) []string {
	seen := make(map[string]struct{})
	for _, msg := range messages {
		for _, word := range strings.Fields(msg) {
			word = strings.ToLower(word)
			if _, ok := emotionLexicon[word]; ok {
				seen[word] = struct{}{}
			}
		}
	}

	keywords := make([]string, 0, len(seen))
	for word := range seen {
		keywords = append(keywords, word)
	}
	sort.Strings(keywords)

	return keywords
}
