package cmd

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathquest/internal/problemgen"
	"github.com/abhisek/mathquest/internal/screens/trainer"
)

var trainerCmd = &cobra.Command{
	Use:   "trainer",
	Short: "Drill one multiplication table with typed answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, _ := cmd.Flags().GetInt("table")
		if table < 2 || table > 12 {
			return fmt.Errorf("table must be between 2 and 12")
		}
		challenge, _ := cmd.Flags().GetBool("challenge")

		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		model := trainer.New(trainer.Options{
			Manager:   env.manager,
			Generator: problemgen.New(),
			Sounds:    env.sounds,
			Table:     table,
			Challenge: challenge,
		})

		p := tea.NewProgram(model)
		if _, err := p.Run(); err != nil {
			fmt.Fprintln(os.Stderr, "Error running program:", err)
			return err
		}
		return nil
	},
}

func init() {
	trainerCmd.Flags().Int("table", 2, "Multiplication table to drill (2-12)")
	trainerCmd.Flags().Bool("challenge", false, "Challenge mode: double points per correct answer")
}
