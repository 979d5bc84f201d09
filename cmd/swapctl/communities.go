package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var communitiesCmd = &cobra.Command{
	Use:   "communities",
	Short: "List communities, most popular first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := catalogStore()
		for _, c := range store.Communities() {
			fmt.Printf("%s %-22s ★ %-4d %d subcategories (%s)\n",
				c.Emoji, c.Name, c.Popularity, len(c.Subs), c.Id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(communitiesCmd)
}
