package practice

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/achievements"
	"github.com/abhisek/mathquest/internal/ui/components"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

func (m *Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if m.finished {
		v.SetContent(m.renderSummary())
		return v
	}
	v.SetContent(m.renderRound())
	return v
}

func (m *Model) renderRound() string {
	var b strings.Builder

	header := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · %s", m.opts.Skill.DisplayName(), m.opts.Difficulty))

	counter := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d/%d   Score %d", m.roundIndex+1, m.opts.RoundLength, m.score))

	pad := m.width - lipgloss.Width(header) - lipgloss.Width(counter) - 4
	if pad < 1 {
		pad = 1
	}
	b.WriteString(header + strings.Repeat(" ", pad) + counter)
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(m.roundIndex)/float64(m.opts.RoundLength), false, m.width-4)
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	b.WriteString(theme.Card.Render(m.mc.View()))
	b.WriteString("\n\n")

	if m.awaiting {
		if m.mc.IsCorrect() {
			b.WriteString(theme.Correct.Render("  Correct! +5 points"))
		} else {
			b.WriteString(theme.Incorrect.Render(fmt.Sprintf("  Not quite — the answer is %d", m.question.Answer)))
		}
	} else {
		b.WriteString(theme.Hint.Render("  ↑↓ or 1-4 to choose, Enter to answer, Esc to quit"))
	}

	return b.String()
}

func (m *Model) renderSummary() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(m.width).Render("Round complete!"))
	b.WriteString("\n\n")

	line := fmt.Sprintf("You got %d out of %d right.", m.score, m.opts.RoundLength)
	b.WriteString(theme.Subtitle.Width(m.width).Render(line))
	b.WriteString("\n\n")

	if m.score*10 >= m.opts.RoundLength*8 {
		b.WriteString(theme.Reward.Width(m.width).Align(lipgloss.Center).Render("★ Amazing work! ★"))
		b.WriteString("\n\n")
	}

	if m.outcome != nil {
		streak := fmt.Sprintf("Practice streak: %d day(s)", m.outcome.StreakDays)
		b.WriteString(theme.Body.Width(m.width).Align(lipgloss.Center).Render(streak))
		b.WriteString("\n")

		for _, id := range append(m.outcome.Unlocked, m.dailyUnlocked...) {
			if a, ok := achievements.ByID(id); ok {
				b.WriteString(theme.Reward.Width(m.width).Align(lipgloss.Center).Render("🏅 " + a.Title))
				b.WriteString("\n")
			}
		}
	}

	if m.logErr != nil {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Width(m.width).Align(lipgloss.Center).Render("Couldn't save everything: " + m.logErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Width(m.width).Align(lipgloss.Center).Render("Press Enter to finish"))

	return b.String()
}
