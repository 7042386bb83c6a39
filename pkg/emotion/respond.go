package emotion

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Responder generates a templated natural-language reply for a single
// classified utterance. Labels without a dedicated template set (surprise,
// disgust) fall back to the default set. The random source is injectable so
// template selection can be made deterministic in tests.
type Responder struct {
	templates map[Label][]string
	fallback  []string

	mu  sync.Mutex
	rng *rand.Rand
}

// NewResponder creates a responder with the production template sets. A nil
// rng is replaced with a time-seeded source.
func NewResponder(rng *rand.Rand) *Responder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Responder{
		templates: map[Label][]string{
			LabelJoy:     joyTemplates,
			LabelAnger:   angerTemplates,
			LabelFear:    fearTemplates,
			LabelSadness: sadnessTemplates,
		},
		fallback: defaultTemplates,
		rng:      rng,
	}
}

// Reply picks one template uniformly at random for the prediction's label and
// substitutes {label} and {confidence}, where confidence is the score as a
// percentage rounded to two decimals.
func (r *Responder) Reply(pred Prediction) string {
	confidence := round2(pred.Score * 100)

	templates, ok := r.templates[pred.Label]
	if !ok {
		templates = r.fallback
	}

	r.mu.Lock()
	template := templates[r.rng.Intn(len(templates))]
	r.mu.Unlock()

	reply := strings.ReplaceAll(template, "{label}", string(pred.Label))
	reply = strings.ReplaceAll(reply, "{confidence}", formatConfidence(confidence))
	return reply
}

// formatConfidence renders a confidence percentage with at least one decimal
// place, so an integral 87 reads "87.0" like the original replies.
func formatConfidence(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

var joyTemplates = []string{
	"You're radiating joy with {confidence}% confidence! 🌟",
	"I sense a lot of happiness — about {confidence}% sure you're feeling joyful! 😊",
	"It's a bright day for you! Joy is leading the way at {confidence}% certainty.",
	"Feeling joyful today? I’m {confidence}% confident you are! 🎉",
	"Happiness overload detected at {confidence}% certainty! 😄",
	"Smiles all around! You're {confidence}% filled with joy.",
	"That sparkle in your mood? {confidence}% chance it's pure joy! ✨",
	"Joy is contagious, and you're glowing at {confidence}% confidence.",
	"Looks like you’re on cloud nine with {confidence}% certainty! ☁️",
	"A happy heart beats strong — {confidence}% sure you're feeling joyful! ❤️",
	"Positive vibes incoming! Joy is leading at {confidence}%.",
	"The sun seems to be shining on your day — {confidence}% joyful! 🌞",
	"Radiating happiness with a {confidence}% confidence level!",
	"Laughter and smiles detected at {confidence}% certainty. 😆",
	"Your happiness meter is at {confidence}% today!",
	"I can feel the good vibes — {confidence}% sure you’re full of joy. 🎈",
	"What a cheerful day! You’re feeling joy with {confidence}% certainty.",
	"You’re glowing with positivity — {confidence}% joyful! 💫",
	"That happy energy? It’s at {confidence}% confidence right now.",
	"Seems like you're riding a wave of joy — {confidence}% sure! 🌊",
}

var angerTemplates = []string{
	"Hmm, I can feel some tension. About {confidence}% sure you're feeling angry. 😠",
	"Take a deep breath — there's {confidence}% confidence you're experiencing anger.",
	"I detect some frustration with {confidence}% certainty. Hang in there! 💢",
	"Seems like you're a bit heated today — {confidence}% confident you're angry.",
	"Anger levels rising — about {confidence}% sure you're feeling mad. 🔥",
	"Is something bothering you? {confidence}% certainty of anger detected.",
	"Frustration detected at {confidence}% confidence. Try to stay calm. 🙏",
	"Tensions seem high — {confidence}% sure anger is taking over.",
	"I can sense the heat — {confidence}% confidence you're feeling upset.",
	"You seem irritated today — {confidence}% sure you're angry. 😤",
	"Storm clouds detected — {confidence}% sure you're feeling anger. 🌩️",
	"Feeling on edge? I'm {confidence}% sure you're experiencing anger.",
	"A bit of rage creeping in? {confidence}% confidence says so.",
	"The frustration is noticeable — about {confidence}% sure.",
	"Anger levels at {confidence}%, remember to breathe deeply. 😌",
	"Your emotions seem intense — {confidence}% confident it's anger.",
	"That fiery energy? {confidence}% chance it’s frustration. 🔥",
	"Looks like something upset you — {confidence}% confidence detected.",
	"I’m picking up some strong anger vibes — {confidence}% sure.",
	"Seems like you're having a tough moment — {confidence}% anger detected.",
}

var fearTemplates = []string{
	"Is something worrying you? I'm {confidence}% sure you're feeling fear. 😟",
	"Fear seems to be creeping in — about {confidence}% confidence detected.",
	"Stay strong! I sense fear with {confidence}% certainty.",
	"Looks like you're a bit anxious — I'm {confidence}% confident about that.",
	"Anxiety detected at {confidence}% certainty — it's okay to feel that way.",
	"You seem a bit on edge — {confidence}% sure you're experiencing fear.",
	"Worry levels rising — {confidence}% confidence you're feeling fear.",
	"It’s normal to feel scared — {confidence}% sure that’s happening now.",
	"I can sense some nervousness — {confidence}% confidence detected.",
	"A bit of fear in the air? {confidence}% sure you're anxious. 😰",
	"Uncertainty can be tough — I'm {confidence}% confident you're afraid.",
	"Courage is just fear that has said its prayers — you're at {confidence}% fear.",
	"You seem a little uneasy — about {confidence}% sure of that.",
	"Shadows of fear detected at {confidence}% certainty.",
	"Your heart seems to be racing — {confidence}% chance it's fear.",
	"It’s okay to be scared sometimes — {confidence}% confidence detected.",
	"Apprehension levels high — {confidence}% sure you're feeling fear.",
	"I’m sensing some worry — about {confidence}% certainty.",
	"There’s a bit of nervousness in the air — {confidence}% sure of it.",
	"That anxious feeling? I’m {confidence}% confident you're experiencing it.",
}

var sadnessTemplates = []string{
	"I sense some sadness in you with {confidence}% certainty. Remember, it's okay to feel this way. 💙",
	"Feeling down? I’m {confidence}% sure you're experiencing sadness. 🥺",
	"Sending positive vibes your way — there's {confidence}% confidence you're feeling sad.",
	"I detect some sadness with {confidence}% certainty. You're not alone! 🌧️",
	"Your heart feels heavy — about {confidence}% sure you're feeling sad.",
	"A wave of sadness seems to be passing through — {confidence}% detected.",
	"Tough times never last — but I’m {confidence}% sure you’re feeling down right now.",
	"Cloudy skies ahead — {confidence}% confidence you're feeling sad. ☁️",
	"I sense some emotional weight — {confidence}% sure you're sad.",
	"A bit of sorrow detected at {confidence}% certainty. 🌧️",
	"It’s okay to feel blue — about {confidence}% sure you're experiencing that now.",
	"There’s a softness in your mood — {confidence}% sure it’s sadness.",
	"You seem to be carrying some emotional weight — {confidence}% sure.",
	"That lonely feeling? {confidence}% chance you're feeling it now.",
	"I’m here with you — sadness detected at {confidence}% confidence. 🤗",
	"The world feels heavier today — {confidence}% chance you're feeling sad.",
	"Melancholy vibes are present — {confidence}% certainty of sadness.",
	"A little tear in your heart? {confidence}% sure you’re feeling down.",
	"It’s okay not to be okay — {confidence}% confidence detected.",
	"Wishing you brighter days — you're at {confidence}% sadness.",
}

var defaultTemplates = []string{
	"I think you're feeling {label} with {confidence}% confidence today.",
	"Your mood seems to be {label}, with a {confidence}% certainty.",
	"I’m picking up on some {label} vibes — about {confidence}% sure.",
	"You seem to be experiencing {label} with {confidence}% confidence.",
	"Your emotions are leaning towards {label} — {confidence}% certainty.",
	"It looks like you're feeling {label} today, at {confidence}% confidence.",
	"I’m detecting {label} in your mood — about {confidence}% sure.",
	"There's a strong sense of {label} — {confidence}% detected.",
	"Your emotional state points to {label} with {confidence}% certainty.",
	"A wave of {label} is present — {confidence}% confidence.",
	"Seems like you're experiencing some {label} — {confidence}% sure.",
	"Feeling a bit of {label}? I’m {confidence}% certain.",
	"Your vibes hint at {label} — {confidence}% detected.",
	"I’m sensing a mood of {label} today — {confidence}% confidence.",
	"Could it be {label}? I’m about {confidence}% sure.",
	"Your energy reflects {label} — {confidence}% certainty.",
	"The atmosphere suggests {label} — around {confidence}% sure.",
	"I’m getting {label} signals with {confidence}% confidence.",
	"Your current mood seems to be {label}, at {confidence}% certainty.",
	"Picking up on some {label} vibes — {confidence}% confident.",
}
