package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordcapture/internal/services/auth"
)

func newKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "API key commands",
	}

	cmd.AddCommand(newKeyHashCmd())
	cmd.AddCommand(newKeySaveCmd())

	return cmd
}

func newKeyHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <name> <key>",
		Short: "Print the server config entry for a new API key",
		Long: `Hash a key with bcrypt and print the "name:hash" entry to add to the
server's auth.keys setting (env: WCAP_AUTH_KEYS).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashKey(args[1])
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("%s:%s", args[0], hash))
			return nil
		},
	}
}

func newKeySaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <key>",
		Short: "Save an API key to the key file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.SaveKey(args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Key saved to " + cfg.KeyFile)
			return nil
		},
	}
}
