package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillswap/skillswap-be/util"
)

var likeCmd = &cobra.Command{
	Use:   "like <replyId>",
	Short: "Like a reply",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		replyId, httpErr := util.ParseId(args[0])
		if httpErr != nil {
			return fmt.Errorf("invalid reply id %q", args[0])
		}
		if err := newClient(cfg).LikeReply(cmd.Context(), replyId); err != nil {
			return err
		}
		fmt.Println("Liked.")
		return nil
	},
}

var reportCmd = &cobra.Command{
	Use:   "report <replyId>",
	Short: "Report a reply for review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		replyId, httpErr := util.ParseId(args[0])
		if httpErr != nil {
			return fmt.Errorf("invalid reply id %q", args[0])
		}
		reference, err := newClient(cfg).ReportReply(cmd.Context(), replyId)
		if err != nil {
			return err
		}
		fmt.Printf("This reply has been reported for review (reference %s).\n", reference)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(likeCmd)
	rootCmd.AddCommand(reportCmd)
}
