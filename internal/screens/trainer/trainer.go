// Package trainer implements the multiplication-table drill: an
// open-ended run of typed-answer questions for one table. Unlike a
// practice round it has no fixed length; each answer is credited
// immediately and the learner leaves whenever they want.
package trainer

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/achievements"
	"github.com/abhisek/mathquest/internal/problemgen"
	"github.com/abhisek/mathquest/internal/progress"
	"github.com/abhisek/mathquest/internal/session"
	"github.com/abhisek/mathquest/internal/sound"
	"github.com/abhisek/mathquest/internal/ui/components"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

// Point awards per correct answer.
const (
	PracticePoints  = 5
	ChallengePoints = 10
)

const feedbackDelay = time.Second

// Options configures a table drill.
type Options struct {
	Manager   *session.Manager
	Generator *problemgen.Generator
	Sounds    sound.Player
	Table     int

	// Challenge doubles the point reward.
	Challenge bool
}

type feedbackDoneMsg struct{}

// Model is the Bubble Tea model for the table drill.
type Model struct {
	opts Options

	question problemgen.Question
	input    components.AnswerInput
	awaiting bool
	lastOK   bool

	attempts int
	correct  int
	unlocked []string

	width  int
	height int
}

// New creates a drill model for the given table.
func New(opts Options) *Model {
	if opts.Sounds == nil {
		opts.Sounds = sound.Nop{}
	}
	m := &Model{
		opts:  opts,
		input: components.NewAnswerInput("Type your answer..."),
	}
	m.nextQuestion()
	return m
}

func (m *Model) nextQuestion() {
	m.question = m.opts.Generator.Question(progress.SkillMultiplication, problemgen.Easy, m.opts.Table)
	m.input.Reset()
}

func (m *Model) Init() tea.Cmd {
	return m.input.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case feedbackDoneMsg:
		m.awaiting = false
		m.nextQuestion()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if !m.awaiting {
				return m.answered()
			}
			return m, nil
		}
	}

	if m.awaiting {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) answered() (tea.Model, tea.Cmd) {
	value, err := m.input.Value()
	if err != nil {
		return m, nil // nothing typed yet
	}

	m.awaiting = true
	m.attempts++
	m.lastOK = value == m.question.Answer
	m.input.Submit(m.lastOK)

	ctx := context.Background()
	correctDelta := 0
	if m.lastOK {
		correctDelta = 1
		m.correct++
		m.opts.Sounds.Play(sound.CueCorrect)

		points := PracticePoints
		if m.opts.Challenge {
			points = ChallengePoints
		}
		awarded, _ := m.opts.Manager.AddPoints(ctx, points)
		m.unlocked = append(m.unlocked, awarded...)
	} else {
		m.opts.Sounds.Play(sound.CueIncorrect)
	}

	newly, _ := m.opts.Manager.UpdateSkill(ctx, progress.SkillMultiplication, correctDelta, 1, m.opts.Table)
	m.unlocked = append(m.unlocked, newly...)

	return m, tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{}
	})
}

func (m *Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}

	var b strings.Builder

	header := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %d× table drill", m.opts.Table))
	counter := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d/%d correct", m.correct, m.attempts))

	pad := m.width - lipgloss.Width(header) - lipgloss.Width(counter) - 4
	if pad < 1 {
		pad = 1
	}
	b.WriteString(header + strings.Repeat(" ", pad) + counter)
	b.WriteString("\n\n")

	card := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.question.Prompt) +
		"\n\n" + m.input.View()
	b.WriteString(theme.Card.Render(card))
	b.WriteString("\n\n")

	switch {
	case m.awaiting && m.lastOK:
		b.WriteString(theme.Correct.Render("  Correct!"))
	case m.awaiting:
		b.WriteString(theme.Incorrect.Render(fmt.Sprintf("  The answer is %d", m.question.Answer)))
	default:
		b.WriteString(theme.Hint.Render("  Enter to answer, Esc to finish"))
	}

	for _, id := range m.unlocked {
		if a, ok := achievements.ByID(id); ok {
			b.WriteString("\n" + theme.Reward.Render("  🏅 "+a.Title))
		}
	}

	v.SetContent(b.String())
	return v
}
