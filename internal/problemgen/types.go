package problemgen

// Difficulty selects the operand ceiling for generated questions.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Valid reports whether d names a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// OperandMax returns the difficulty's operand ceiling.
func (d Difficulty) OperandMax() int {
	switch d {
	case Medium:
		return 20
	case Hard:
		return 50
	default:
		return 10
	}
}

// ChoiceCount is the number of answer choices per question.
const ChoiceCount = 4

// Question is a generated practice question ready for display.
// Ephemeral: never persisted.
type Question struct {
	// Prompt is the displayed question, e.g. "7 × 8 = ?".
	Prompt string

	// Answer is the correct result.
	Answer int

	// Choices holds ChoiceCount distinct values, one of which is the
	// answer, in shuffled order.
	Choices []int
}

// AnswerIndex returns the position of the correct answer in Choices.
func (q *Question) AnswerIndex() int {
	for i, c := range q.Choices {
		if c == q.Answer {
			return i
		}
	}
	return -1
}
