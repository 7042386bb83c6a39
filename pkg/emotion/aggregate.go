package emotion

import "math"

// scoreWeights are the per-label contributions to the composite distress
// score. Joy is negative and pulls the score down; surprise is mildly
// positive. Labels outside the fixed six contribute zero but still count
// toward the message total.
var scoreWeights = map[Label]float64{
	LabelAnger:    80,
	LabelSadness:  70,
	LabelFear:     90,
	LabelDisgust:  85,
	LabelSurprise: 20,
	LabelJoy:      -50,
}

// Distribute computes the percentage of messages carrying each of the six
// emotion labels, rounded to two decimals. An empty input yields an all-zero
// distribution.
func Distribute(preds []Prediction) Distribution {
	dist := Distribution{}
	for _, label := range Labels() {
		dist[label] = 0
	}

	count := 0
	for _, p := range preds {
		count++
		if _, ok := dist[p.Label]; ok {
			dist[p.Label]++
		}
	}

	if count == 0 {
		return dist
	}

	for label, n := range dist {
		dist[label] = round2(n / float64(count) * 100)
	}

	return dist
}

// Score computes the weighted composite distress score for a set of
// predictions. The weighted sum is floor-divided by the message count and
// rescaled from the nominal [-50,90] range onto a 0-100 scale. The result is
// intentionally not clamped: confidences of 1.0 on the heaviest labels push
// it above 100 (all-fear input scores 107.69). Empty input returns 0.
func Score(preds []Prediction) float64 {
	var sum float64
	count := 0

	for _, p := range preds {
		sum += scoreWeights[p.Label] * p.Score
		count++
	}

	if count == 0 {
		return 0
	}

	sum = math.Floor(sum / float64(count))
	return round2((sum + 50) / 130 * 100)
}

// State buckets a composite score into ten-point deciles, each bound to one
// named emotional state, ascending from least to most distress. Scores
// outside [0,100) fall through every bucket and yield StateUnknown.
func State(score float64) EmotionalState {
	switch {
	case score >= 90 && score < 100:
		return StateDespair
	case score >= 80 && score < 90:
		return StateDeepSadness
	case score >= 70 && score < 80:
		return StateFrustation
	case score >= 60 && score < 70:
		return StateDisappointment
	case score >= 50 && score < 60:
		return StateIndifference
	case score >= 40 && score < 50:
		return StateContentment
	case score >= 30 && score < 40:
		return StateSatisfaction
	case score >= 20 && score < 30:
		return StateHappiness
	case score >= 10 && score < 20:
		return StateExcitment
	case score >= 0 && score < 10:
		return StateEuphoria
	}
	return StateUnknown
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
