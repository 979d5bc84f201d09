package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillswap/skillswap-be/app"
)

var searchCommunity string

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog with auto-suggestions",
	Long: `Search matches the query as a case-insensitive substring against
community, subcategory and skill labels. With --community the search
narrows to that community, like searching from inside its page.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nav := app.NewNavigator(catalogStore())
		if searchCommunity != "" {
			nav.OpenCommunity(searchCommunity)
			if nav.State().View == app.ViewMain {
				return fmt.Errorf("unknown community %q", searchCommunity)
			}
		}
		suggestions := nav.Search(args[0])
		if len(suggestions) == 0 {
			fmt.Println("No matches.")
			return nil
		}
		for _, s := range suggestions {
			fmt.Printf("[%s] %s\n", s.Kind, s.Label)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchCommunity, "community", "", "narrow the search to one community")
	rootCmd.AddCommand(searchCmd)
}
