package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/skillswap/skillswap-be/catalog"
	"github.com/skillswap/skillswap-be/client"
	"github.com/skillswap/skillswap-be/config"
	"github.com/skillswap/skillswap-be/session"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "swapctl",
	Short: "Terminal client for the SkillSwap community Q&A",
	Long: `swapctl browses the SkillSwap community catalog, searches it with
auto-suggestions, and reads and posts to community question feeds.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "skillswap.yml", "config file path")
}

func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

func newClient(cfg *config.Config) *client.Client {
	return client.New(cfg.Client.BaseURL,
		client.WithTimeout(time.Duration(cfg.Client.TimeoutSeconds)*time.Second),
		client.WithLookupConcurrency(cfg.Client.LookupConcurrency),
	)
}

func sessionStore(cfg *config.Config) *session.Store {
	return session.NewStore(cfg.Client.SessionFile)
}

func catalogStore() *catalog.Store {
	return catalog.NewStore(catalog.Default)
}
