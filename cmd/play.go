package cmd

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathquest/internal/problemgen"
	"github.com/abhisek/mathquest/internal/progress"
	"github.com/abhisek/mathquest/internal/screens/practice"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice round",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPractice(cmd)
	},
}

func init() {
	playCmd.Flags().String("skill", string(progress.SkillAddition), "Skill to practice (addition, subtraction, multiplication, division)")
	playCmd.Flags().String("difficulty", "", "Difficulty (easy, medium, hard; overrides config)")
	playCmd.Flags().Int("length", 0, "Questions per round (overrides config)")
	playCmd.Flags().Int("table", 0, "Pin multiplication questions to one table (2-12)")
}

// runPractice opens the store, builds dependencies, and launches the
// practice round TUI. Also backs the bare `mathquest` invocation, which
// runs with all defaults.
func runPractice(cmd *cobra.Command) error {
	env, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	skillFlag, _ := cmd.Flags().GetString("skill")
	if skillFlag == "" {
		skillFlag = string(progress.SkillAddition)
	}
	skill := progress.SkillKey(skillFlag)
	if !skill.Valid() {
		return fmt.Errorf("unknown skill %q", skillFlag)
	}

	difficulty := problemgen.Difficulty(env.settings.Difficulty)
	if d, _ := cmd.Flags().GetString("difficulty"); d != "" {
		difficulty = problemgen.Difficulty(d)
	}
	if !difficulty.Valid() {
		return fmt.Errorf("unknown difficulty %q", difficulty)
	}

	length := env.settings.RoundLength
	if n, _ := cmd.Flags().GetInt("length"); n > 0 {
		length = n
	}

	table, _ := cmd.Flags().GetInt("table")
	if table != 0 && skill != progress.SkillMultiplication {
		return fmt.Errorf("--table only applies to multiplication")
	}
	if table != 0 && (table < 2 || table > 12) {
		return fmt.Errorf("table must be between 2 and 12")
	}

	model := practice.New(practice.Options{
		Manager:     env.manager,
		Generator:   problemgen.New(),
		Sounds:      env.sounds,
		Skill:       skill,
		Difficulty:  difficulty,
		Table:       table,
		RoundLength: length,
	})

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
