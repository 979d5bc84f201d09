package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skillswap/skillswap-be/client"
	"github.com/skillswap/skillswap-be/util"
)

var askCmd = &cobra.Command{
	Use:   "ask <community> <text>...",
	Short: "Post a question to a community",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		feedId, ok := catalogStore().ResolveFeedId(args[0])
		if !ok {
			return fmt.Errorf("unknown community %q", args[0])
		}

		sess, err := sessionStore(cfg).Load()
		if err != nil {
			return err
		}
		var userId int64
		if sess != nil {
			userId = sess.Id
		} else {
			fmt.Printf("Not logged in; posting as %s\n", util.GenerateAlias())
		}

		api := newClient(cfg)
		text := strings.Join(args[1:], " ")
		if err := api.PostQuestion(cmd.Context(), feedId, userId, text); err != nil {
			if errors.Is(err, client.ErrEmptyText) {
				return fmt.Errorf("please enter a question")
			}
			return err
		}

		// The canonical list always comes from the backend.
		questions, err := api.FetchQuestions(cmd.Context(), feedId)
		if err != nil {
			return err
		}
		printFeed(questions)
		return nil
	},
}

var replyCmd = &cobra.Command{
	Use:   "reply <questionId> <text>...",
	Short: "Reply to a question",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		questionId, httpErr := util.ParseId(args[0])
		if httpErr != nil {
			return fmt.Errorf("invalid question id %q", args[0])
		}

		sess, err := sessionStore(cfg).Load()
		if err != nil {
			return err
		}
		var userId int64
		if sess != nil {
			userId = sess.Id
		}

		text := strings.Join(args[1:], " ")
		if err := newClient(cfg).PostReply(cmd.Context(), questionId, userId, text); err != nil {
			if errors.Is(err, client.ErrEmptyText) {
				return fmt.Errorf("reply cannot be empty")
			}
			return err
		}
		fmt.Println("Reply posted.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(replyCmd)
}
