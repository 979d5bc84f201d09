package main

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/skillswap/skillswap-be/app"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Walk the catalog interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store := catalogStore()
		nav := app.NewNavigator(store)
		api := newClient(cfg)

		for {
			state := nav.State()
			switch state.View {
			case app.ViewMain:
				items := []string{}
				for _, c := range store.Communities() {
					items = append(items, fmt.Sprintf("%s %s (★ %d)", c.Emoji, c.Name, c.Popularity))
				}
				items = append(items, "Quit")
				idx, _, err := (&promptui.Select{Label: "Communities", Items: items}).Run()
				if err != nil {
					return err
				}
				if idx == len(items)-1 {
					return nil
				}
				nav.OpenCommunity(store.Communities()[idx].Id)

			case app.ViewSubcategoryList:
				community, _ := store.Community(state.ActiveCommunity)
				items := []string{}
				for _, sub := range community.Subs {
					items = append(items, fmt.Sprintf("%s (%d skills)", sub.Name, len(sub.Skills)))
				}
				items = append(items, fmt.Sprintf("All %s Skills", community.Name), "Back")
				idx, _, err := (&promptui.Select{Label: "Home / " + community.Name, Items: items}).Run()
				if err != nil {
					return err
				}
				switch idx {
				case len(items) - 1:
					nav.GoBack()
				case len(items) - 2:
					nav.OpenSkillPage(community.Id, "")
				default:
					nav.OpenSkillPage(community.Id, community.Subs[idx].Slug)
				}

			case app.ViewSkillPage:
				community, _ := store.Community(state.ActiveCommunity)
				crumb := "Home / " + community.Name + " / All"
				if sub, ok := store.Subcategory(community.Id, state.ActiveSub); ok {
					crumb = "Home / " + community.Name + " / " + sub.Name
					fmt.Printf("%s\nSkills: %v\n", crumb, sub.Skills)
				} else {
					fmt.Printf("%s\n%d subcategories\n", crumb, len(community.Subs))
				}

				fmt.Println("Recent questions:")
				questions, err := api.FetchQuestions(cmd.Context(), community.FeedId)
				if err != nil {
					fmt.Printf("could not load questions: %v\n", err)
				} else {
					printFeed(questions)
				}
				nav.GoBack()
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
