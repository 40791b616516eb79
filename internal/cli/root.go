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
		Use:   "wcadvisor",
		Short: "Move advisor for the word-capture board game",
		Long: `wcadvisor suggests the strongest moves for a word-capture board position.

Positions can be analyzed locally against a word list, or through an advisor
server, which also hosts games between two sides and bot playouts.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load key from file if not provided via flag/env
			if err := cfg.LoadKey(); err != nil {
				return err
			}

			// Create HTTP client
			client = NewClient(cfg.ServerURL, cfg.APIKey)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: WCAP_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.APIKey, "key", cfg.APIKey, "API key (env: WCAP_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&cfg.KeyFile, "key-file", cfg.KeyFile, "API key file path (env: WCAP_API_KEY_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newKeyCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
