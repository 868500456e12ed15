package problemgen

import (
	"fmt"
	"strings"
	"testing"

	"github.com/abhisek/mathquest/internal/progress"
)

const trials = 500

func TestQuestionChoices(t *testing.T) {
	g := NewSeeded(1, 2)

	for _, skill := range progress.AllSkills() {
		for _, diff := range []Difficulty{Easy, Medium, Hard} {
			for i := 0; i < trials; i++ {
				q := g.Question(skill, diff, 0)

				if len(q.Choices) != ChoiceCount {
					t.Fatalf("%s/%s: %d choices", skill, diff, len(q.Choices))
				}
				seen := map[int]bool{}
				for _, c := range q.Choices {
					if c < 0 {
						t.Fatalf("%s/%s: negative choice %d in %v", skill, diff, c, q.Choices)
					}
					if seen[c] {
						t.Fatalf("%s/%s: duplicate choice %d in %v", skill, diff, c, q.Choices)
					}
					seen[c] = true
				}
				if !seen[q.Answer] {
					t.Fatalf("%s/%s: answer %d missing from %v", skill, diff, q.Answer, q.Choices)
				}
			}
		}
	}
}

func TestQuestionArithmetic(t *testing.T) {
	g := NewSeeded(3, 4)

	for _, skill := range progress.AllSkills() {
		for i := 0; i < trials; i++ {
			q := g.Question(skill, Medium, 0)

			var a, b int
			var symbol string
			if _, err := fmt.Sscanf(q.Prompt, "%d %s %d = ?", &a, &symbol, &b); err != nil {
				t.Fatalf("unparseable prompt %q: %v", q.Prompt, err)
			}
			if symbol != skill.Symbol() {
				t.Fatalf("prompt %q uses %q, want %q", q.Prompt, symbol, skill.Symbol())
			}

			switch skill {
			case progress.SkillAddition:
				if q.Answer != a+b {
					t.Fatalf("%q answer %d", q.Prompt, q.Answer)
				}
			case progress.SkillSubtraction:
				if q.Answer != a-b || q.Answer < 0 {
					t.Fatalf("%q answer %d", q.Prompt, q.Answer)
				}
			case progress.SkillMultiplication:
				if q.Answer != a*b {
					t.Fatalf("%q answer %d", q.Prompt, q.Answer)
				}
			case progress.SkillDivision:
				if b < 1 || a%b != 0 || q.Answer != a/b {
					t.Fatalf("%q answer %d (inexact or bad divisor)", q.Prompt, q.Answer)
				}
			}
		}
	}
}

func TestQuestionOperandRanges(t *testing.T) {
	tests := []struct {
		diff Difficulty
		max  int
	}{
		{Easy, 10},
		{Medium, 20},
		{Hard, 50},
	}

	g := NewSeeded(5, 6)
	for _, tt := range tests {
		for i := 0; i < trials; i++ {
			q := g.Question(progress.SkillAddition, tt.diff, 0)
			var a, b int
			var sym string
			fmt.Sscanf(q.Prompt, "%d %s %d = ?", &a, &sym, &b)
			if a < 0 || a > tt.max || b < 1 || b > tt.max {
				t.Fatalf("%s: operands %d, %d outside [0, %d]", tt.diff, a, b, tt.max)
			}
		}
	}
}

func TestQuestionTablePinning(t *testing.T) {
	g := NewSeeded(7, 8)

	for table := 2; table <= 12; table++ {
		for i := 0; i < 50; i++ {
			q := g.Question(progress.SkillMultiplication, Easy, table)
			prefix := fmt.Sprintf("%d × ", table)
			if !strings.HasPrefix(q.Prompt, prefix) {
				t.Fatalf("table %d prompt %q", table, q.Prompt)
			}
			if q.Answer%table != 0 || q.Answer > table*12 {
				t.Fatalf("table %d answer %d", table, q.Answer)
			}
		}
	}
}

func TestAnswerIndex(t *testing.T) {
	q := Question{Answer: 7, Choices: []int{3, 9, 7, 12}}
	if got := q.AnswerIndex(); got != 2 {
		t.Errorf("AnswerIndex() = %d, want 2", got)
	}
}

func TestNewSeededIsDeterministic(t *testing.T) {
	a := NewSeeded(42, 42)
	b := NewSeeded(42, 42)
	for i := 0; i < 20; i++ {
		qa := a.Question(progress.SkillDivision, Hard, 0)
		qb := b.Question(progress.SkillDivision, Hard, 0)
		if qa.Prompt != qb.Prompt || qa.Answer != qb.Answer {
			t.Fatalf("diverged at %d: %q vs %q", i, qa.Prompt, qb.Prompt)
		}
	}
}

func TestDifficultyValid(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		if !d.Valid() {
			t.Errorf("%s should be valid", d)
		}
	}
	if Difficulty("brutal").Valid() {
		t.Error("unknown difficulty accepted")
	}
}
