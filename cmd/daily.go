package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Show today's challenge",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		dc := env.manager.DailyChallenge()

		fmt.Printf("Today's challenge: answer %d %s questions\n", dc.Target, dc.Skill.DisplayName())
		fmt.Printf("Progress: %d/%d", dc.Progress, dc.Target)
		if dc.Completed {
			fmt.Printf("  ✓ done (+%d coins)\n", dc.Reward)
		} else {
			fmt.Printf("  (reward: %d coins)\n", dc.Reward)
			fmt.Printf("\nPlay a round to make progress: mathquest play --skill %s\n", dc.Skill)
		}
		return nil
	},
}
