package problemgen

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/abhisek/mathquest/internal/progress"
)

// distractorRetries is the rejection-sampling budget per distractor
// pass before the guess window widens. The window starts at ±5 around
// the answer; widening guarantees termination even when the answer sits
// at the edge of the allowed range.
const (
	distractorRetries = 64
	distractorWindow  = 5
)

// Generator produces arithmetic questions from an owned random source.
// Not safe for concurrent use; each consumer creates its own.
type Generator struct {
	rnd *rand.Rand
}

// New creates a time-seeded generator.
func New() *Generator {
	now := uint64(time.Now().UnixNano())
	return NewSeeded(now, now>>32)
}

// NewSeeded creates a deterministic generator for tests.
func NewSeeded(seed1, seed2 uint64) *Generator {
	return &Generator{rnd: rand.New(rand.NewPCG(seed1, seed2))}
}

// Question generates one question for the skill and difficulty. For
// multiplication, table > 0 pins the first operand to that table and
// samples the second from 0..12.
//
// Guarantees: subtraction answers are never negative (operands swap
// when needed); division is always exact with a positive divisor.
func (g *Generator) Question(skill progress.SkillKey, difficulty Difficulty, table int) Question {
	max := difficulty.OperandMax()
	a := g.between(0, max)
	b := g.between(1, max)

	switch {
	case skill == progress.SkillMultiplication && table > 0:
		a = table
		b = g.between(0, 12)

	case skill == progress.SkillSubtraction:
		if a < b {
			a, b = b, a
		}

	case skill == progress.SkillDivision:
		// Resample so the quotient is exact: pick the divisor, pick the
		// quotient, derive the dividend.
		b = g.between(1, maxInt(1, max/2))
		q := g.between(1, max/b)
		a = q * b
	}

	answer := compute(skill, a, b)
	choices := append(g.distractors(answer, max), answer)
	g.rnd.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	return Question{
		Prompt:  fmt.Sprintf("%d %s %d = ?", a, skill.Symbol(), b),
		Answer:  answer,
		Choices: choices,
	}
}

// compute applies the skill's operation. Division is exact by
// construction, so integer division loses nothing.
func compute(skill progress.SkillKey, a, b int) int {
	switch skill {
	case progress.SkillAddition:
		return a + b
	case progress.SkillSubtraction:
		return a - b
	case progress.SkillMultiplication:
		return a * b
	case progress.SkillDivision:
		return a / b
	default:
		return 0
	}
}

// distractors samples ChoiceCount-1 distinct wrong answers near the
// correct one, each within [0, 2*max]. Rejection sampling is bounded:
// when a pass exhausts its retry budget the window widens, so the
// search always terminates.
func (g *Generator) distractors(answer, max int) []int {
	seen := map[int]bool{answer: true}
	out := make([]int, 0, ChoiceCount-1)

	window := distractorWindow
	for len(out) < ChoiceCount-1 {
		for attempt := 0; attempt < distractorRetries && len(out) < ChoiceCount-1; attempt++ {
			guess := answer + g.between(-window, window)
			if guess < 0 || guess > 2*max || seen[guess] {
				continue
			}
			seen[guess] = true
			out = append(out, guess)
		}
		window += distractorWindow
	}

	return out
}

// between returns a uniform value in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rnd.IntN(hi-lo+1)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
