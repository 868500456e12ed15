package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathquest/internal/achievements"
	"github.com/abhisek/mathquest/internal/session"
	"github.com/abhisek/mathquest/internal/shop"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Browse and buy room decorations",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		snap := env.manager.Progress()
		category, _ := cmd.Flags().GetString("category")

		items := shop.Catalog()
		if category != "" {
			items = shop.ByCategory(shop.Category(category))
			if len(items) == 0 {
				return fmt.Errorf("no items in category %q", category)
			}
		}

		fmt.Printf("Coins: %d\n\n", snap.Coins)
		fmt.Printf("%-20s  %-24s  %-12s  %5s  %s\n", "ID", "Name", "Category", "Price", "")
		fmt.Println(strings.Repeat("─", 72))
		for _, it := range items {
			owned := ""
			if snap.Room.Owns(it.ID) {
				owned = "owned"
			}
			fmt.Printf("%-20s  %-24s  %-12s  %5d  %s\n", it.ID, it.Name, it.Category, it.Cost, owned)
		}
		fmt.Println("\nBuy with: mathquest shop buy <id>")
		return nil
	},
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy <id>",
	Short: "Buy an item with coins",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, ok := shop.ByID(args[0])
		if !ok {
			return fmt.Errorf("unknown item %q", args[0])
		}

		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		unlocked, err := env.manager.Purchase(cmd.Context(), item)
		if err != nil {
			if errors.Is(err, session.ErrCannotAfford) {
				return fmt.Errorf("not enough coins for %s (costs %d, you have %d)",
					item.Name, item.Cost, env.manager.Progress().Coins)
			}
			return err
		}

		fmt.Printf("Bought %s for %d coins. %d coins left.\n",
			item.Name, item.Cost, env.manager.Progress().Coins)
		for _, id := range unlocked {
			if a, ok := achievements.ByID(id); ok {
				fmt.Printf("\U0001F3C5 Achievement unlocked: %s\n", a.Title)
			}
		}
		return nil
	},
}

func init() {
	shopCmd.Flags().String("category", "", "Filter by category (furniture, decoration, pet, electronics, background, outfit, hair, accessory)")
	shopCmd.AddCommand(shopBuyCmd)
}
