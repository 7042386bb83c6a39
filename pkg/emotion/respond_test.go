package emotion

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponderReply(t *testing.T) {
	t.Run("substitutes confidence as a percentage", func(t *testing.T) {
		r := NewResponder(rand.New(rand.NewSource(1)))

		reply := r.Reply(Prediction{Label: LabelJoy, Score: 0.87})

		assert.Contains(t, reply, "87.0")
		assert.NotContains(t, reply, "{confidence}")
		assert.NotContains(t, reply, "{label}")
	})

	t.Run("integral confidence keeps one decimal place", func(t *testing.T) {
		r := NewResponder(rand.New(rand.NewSource(3)))

		for i := 0; i < 50; i++ {
			reply := r.Reply(Prediction{Label: LabelJoy, Score: 0.87})
			assert.Contains(t, reply, "87.0")
			assert.NotContains(t, reply, "87.00")
		}
	})

	t.Run("rounds confidence to two decimals", func(t *testing.T) {
		r := NewResponder(rand.New(rand.NewSource(1)))

		reply := r.Reply(Prediction{Label: LabelSadness, Score: 0.876543})

		assert.Contains(t, reply, "87.65")
	})

	t.Run("no template leaves a placeholder behind", func(t *testing.T) {
		r := NewResponder(rand.New(rand.NewSource(42)))

		for _, label := range Labels() {
			for i := 0; i < 50; i++ {
				reply := r.Reply(Prediction{Label: label, Score: 0.5})
				require.NotEmpty(t, reply)
				assert.False(t, strings.Contains(reply, "{"), "unreplaced placeholder in %q", reply)
			}
		}
	})

	t.Run("labels without a dedicated set use the fallback", func(t *testing.T) {
		r := NewResponder(rand.New(rand.NewSource(7)))

		reply := r.Reply(Prediction{Label: LabelSurprise, Score: 0.6})

		assert.Contains(t, reply, "surprise")
	})

	t.Run("same seed yields same reply", func(t *testing.T) {
		first := NewResponder(rand.New(rand.NewSource(9))).Reply(Prediction{Label: LabelFear, Score: 0.4})
		second := NewResponder(rand.New(rand.NewSource(9))).Reply(Prediction{Label: LabelFear, Score: 0.4})

		assert.Equal(t, first, second)
	})
}
