package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathquest/internal/achievements"
	"github.com/abhisek/mathquest/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress and lifetime statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		snap := env.manager.Progress()

		fmt.Printf("Points: %d   Coins: %d   Streak: %d day(s)\n\n", snap.Points, snap.Coins, snap.StreakDays)

		fmt.Printf("%-16s  %5s  %9s  %8s\n", "Skill", "Level", "Answered", "Accuracy")
		fmt.Println(strings.Repeat("─", 45))
		for _, key := range progress.AllSkills() {
			sp := snap.Skills.Get(key)
			fmt.Printf("%-16s  %5d  %9d  %7.0f%%\n",
				key.DisplayName(), sp.Level, sp.TotalAnswers, sp.Accuracy()*100)
		}

		if tables := snap.Skills.Multiplication.Tables; len(tables) > 0 {
			nums := make([]int, 0, len(tables))
			for n := range tables {
				nums = append(nums, n)
			}
			sort.Ints(nums)

			fmt.Printf("\n%-8s  %9s  %8s\n", "Table", "Answered", "Mastered")
			fmt.Println(strings.Repeat("─", 30))
			for _, n := range nums {
				tp := tables[n]
				mark := ""
				if tp.Mastered {
					mark = "✓"
				}
				fmt.Printf("%-8s  %9d  %8s\n", fmt.Sprintf("%d×", n), tp.Total, mark)
			}
		}

		if len(snap.Achievements) > 0 {
			fmt.Printf("\nAchievements (%d/%d):\n", len(snap.Achievements), len(achievements.Catalog()))
			for _, id := range snap.Achievements {
				if a, ok := achievements.ByID(id); ok {
					fmt.Printf("  \U0001F3C5 %s — %s\n", a.Title, a.Description)
				}
			}
		}

		totals, err := env.st.EventRepo().Totals(cmd.Context())
		if err != nil {
			return fmt.Errorf("load lifetime totals: %w", err)
		}
		if len(totals) > 0 {
			fmt.Printf("\nLifetime rounds:\n")
			fmt.Printf("%-16s  %6s  %9s  %8s\n", "Skill", "Rounds", "Answered", "Accuracy")
			fmt.Println(strings.Repeat("─", 46))
			for _, t := range totals {
				acc := 0.0
				if t.Total > 0 {
					acc = float64(t.Correct) / float64(t.Total) * 100
				}
				fmt.Printf("%-16s  %6d  %9d  %7.0f%%\n",
					progress.SkillKey(t.Skill).DisplayName(), t.Rounds, t.Total, acc)
			}
		}

		return nil
	},
}
