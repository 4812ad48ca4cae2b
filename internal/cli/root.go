package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "partyctl",
		Short: "CLI tool for the party game API",
		Long: `partyctl is a CLI tool for interacting with the party game JSON API.

It supports setting a display name, lobby operations, imposter game
actions, spin-the-bottle, and polling a lobby for changes.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client = NewClient(cfg.ServerURL, cfg.Username)
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: PARTYGAME_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Username, "username", cfg.Username, "Display name sent as identity (env: PARTYGAME_USERNAME)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	rootCmd.AddCommand(newUserCmd())
	rootCmd.AddCommand(newLobbyCmd())
	rootCmd.AddCommand(newImposterCmd())
	rootCmd.AddCommand(newSpinCmd())
	rootCmd.AddCommand(newCategoriesCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
