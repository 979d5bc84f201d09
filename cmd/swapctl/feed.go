package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillswap/skillswap-be/client"
	"github.com/skillswap/skillswap-be/model"
)

var feedCmd = &cobra.Command{
	Use:   "feed <community>",
	Short: "Show a community's question feed",
	Long: `Shows questions newest first with their replies ordered by like
count. The community may be a slug (tech) or a skill name (java).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store := catalogStore()
		feedId, ok := store.ResolveFeedId(args[0])
		if !ok {
			return fmt.Errorf("unknown community %q", args[0])
		}
		// A skill-name argument resolves to a feed id; show which
		// community's feed that actually is.
		if community, ok := store.CommunityByFeedId(feedId); ok {
			fmt.Printf("%s %s\n", community.Emoji, community.Name)
		}
		questions, err := newClient(cfg).FetchQuestions(cmd.Context(), feedId)
		if err != nil {
			return err
		}
		printFeed(questions)
		return nil
	},
}

func printFeed(questions []*model.Question) {
	if len(questions) == 0 {
		fmt.Println("No questions yet. Be the first to ask!")
		return
	}
	for _, q := range questions {
		fmt.Printf("#%d %s\n", q.Id, q.QuestionText)
		fmt.Printf("    posted by %s\n", q.Name)
		for _, r := range client.SortRepliesForDisplay(q.Replies) {
			fmt.Printf("    @%s: %s  [%d likes, reply #%d]\n", r.Name, r.ReplyText, r.Likes, r.Id)
		}
	}
}

func init() {
	rootCmd.AddCommand(feedCmd)
}
