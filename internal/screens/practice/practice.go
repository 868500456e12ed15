// Package practice implements the interactive practice-round screen:
// a fixed-length round of multiple-choice questions with feedback,
// scoring, and an end-of-round summary.
package practice

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathquest/internal/problemgen"
	"github.com/abhisek/mathquest/internal/progress"
	"github.com/abhisek/mathquest/internal/session"
	"github.com/abhisek/mathquest/internal/sound"
	"github.com/abhisek/mathquest/internal/ui/components"
)

// PointsPerCorrect is the reward for one correct answer.
const PointsPerCorrect = 5

// feedbackDelay is how long the right/wrong highlight stays up before
// the next question. Kids need a moment to see it.
const feedbackDelay = time.Second

// Options configures a practice round.
type Options struct {
	Manager     *session.Manager
	Generator   *problemgen.Generator
	Sounds      sound.Player
	Skill       progress.SkillKey
	Difficulty  problemgen.Difficulty
	Table       int
	RoundLength int
}

// feedbackDoneMsg ends the feedback display period.
type feedbackDoneMsg struct{}

// roundLoggedMsg reports the persisted round outcome.
type roundLoggedMsg struct {
	Outcome       *session.SessionOutcome
	DailyUnlocked []string
	Err           error
}

// Model is the Bubble Tea model for a practice round.
type Model struct {
	opts Options

	mc         components.MultiChoice
	question   problemgen.Question
	roundIndex int
	score      int
	awaiting   bool // feedback delay in progress
	finished   bool

	outcome       *session.SessionOutcome
	dailyUnlocked []string
	logErr        error

	startTime time.Time
	width     int
	height    int
}

// New creates a practice round model.
func New(opts Options) *Model {
	if opts.RoundLength <= 0 {
		opts.RoundLength = 10
	}
	if opts.Sounds == nil {
		opts.Sounds = sound.Nop{}
	}
	m := &Model{opts: opts, startTime: time.Now()}
	m.nextQuestion()
	return m
}

func (m *Model) nextQuestion() {
	m.question = m.opts.Generator.Question(m.opts.Skill, m.opts.Difficulty, m.opts.Table)
	m.mc = components.NewMultiChoice(m.question.Prompt, m.question.Choices, m.question.AnswerIndex())
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case feedbackDoneMsg:
		return m.advance()

	case roundLoggedMsg:
		m.outcome = msg.Outcome
		m.dailyUnlocked = msg.DailyUnlocked
		m.logErr = msg.Err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
		if m.finished {
			if msg.String() == "enter" || msg.String() == "q" {
				return m, tea.Quit
			}
			return m, nil
		}
		if m.awaiting {
			return m, nil
		}

		var cmd tea.Cmd
		m.mc, cmd = m.mc.Update(msg)
		if m.mc.Submitted {
			return m.answered()
		}
		return m, cmd
	}

	return m, nil
}

// answered handles a just-submitted choice: scoring, the point award,
// and the feedback pause.
func (m *Model) answered() (tea.Model, tea.Cmd) {
	m.awaiting = true

	if m.mc.IsCorrect() {
		m.score++
		m.opts.Sounds.Play(sound.CueCorrect)
		// Persisting the award happens on the session manager's
		// serialized path, so rapid-fire answers can't clobber state.
		if _, err := m.opts.Manager.AddPoints(context.Background(), PointsPerCorrect); err != nil {
			m.logErr = err
		}
	} else {
		m.opts.Sounds.Play(sound.CueIncorrect)
	}

	return m, tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{}
	})
}

// advance moves past the feedback pause: next question, or end the
// round and persist it.
func (m *Model) advance() (tea.Model, tea.Cmd) {
	m.awaiting = false
	m.roundIndex++

	if m.roundIndex < m.opts.RoundLength {
		m.nextQuestion()
		return m, nil
	}

	m.finished = true
	return m, m.logRound()
}

func (m *Model) logRound() tea.Cmd {
	res := progress.SessionResult{
		Correct: m.score,
		Total:   m.opts.RoundLength,
		Skill:   m.opts.Skill,
		Table:   m.opts.Table,
	}
	duration := time.Since(m.startTime)

	return func() tea.Msg {
		ctx := context.Background()
		outcome, err := m.opts.Manager.LogSession(ctx, res, duration)
		if err != nil {
			return roundLoggedMsg{Err: err}
		}
		daily, err := m.opts.Manager.UpdateDailyChallenge(ctx, m.opts.Skill, m.opts.RoundLength)
		return roundLoggedMsg{Outcome: outcome, DailyUnlocked: daily, Err: err}
	}
}
