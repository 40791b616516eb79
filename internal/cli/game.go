package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordcapture/internal/api/request"
	"github.com/mcoot/wordcapture/internal/api/response"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGamePlayCmd())
	cmd.AddCommand(newGamePassCmd())
	cmd.AddCommand(newGameSuggestCmd())
	cmd.AddCommand(newGamePlayoutCmd())
	cmd.AddCommand(newGameDeleteCmd())

	return cmd
}

func newGameCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create [letters]...",
		Short: "Create a game, on a random board when no letters are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.CreateGameRequest{Board: strings.Join(args, "")}
			var result response.Game

			if err := client.Post(cmd.Context(), "/api/v1/games", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get current game state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Game

			if err := client.Get(cmd.Context(), gamePath(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGamePlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play <id> <side> <word> <row,col>...",
		Short: "Play a word on the given squares",
		Args:  cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			squares, err := parseSquares(args[3:])
			if err != nil {
				return err
			}

			req := request.PlayRequest{
				Side:    args[1],
				Word:    args[2],
				Squares: squares,
			}
			var result response.Game

			if err := client.Post(cmd.Context(), gamePath(args[0])+"/play", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGamePassCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pass <id> <side>",
		Short: "Pass the turn",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.PassRequest{Side: args[1]}
			var result response.Game

			if err := client.Post(cmd.Context(), gamePath(args[0])+"/pass", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <id>",
		Short: "Suggest moves for the side to move",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Analysis

			if err := client.Get(cmd.Context(), gamePath(args[0])+"/suggest", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGamePlayoutCmd() *cobra.Command {
	var (
		req  request.PlayoutRequest
		seed uint64
	)

	cmd := &cobra.Command{
		Use:   "playout <id>",
		Short: "Let bots play one or both sides",
		Long: `Let bots play the sides given a strategy (top or random). The playout stops
when the game completes or a side without a strategy is to move.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Blue == "" && req.Red == "" {
				return fmt.Errorf("a strategy for --blue or --red is required")
			}
			if cmd.Flags().Changed("seed") {
				req.Seed = &seed
			}

			var result response.Playout

			if err := client.Post(cmd.Context(), gamePath(args[0])+"/playout", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Blue, "blue", "", "Strategy for blue")
	cmd.Flags().StringVar(&req.Red, "red", "", "Strategy for red")
	cmd.Flags().IntVar(&req.MaxTurns, "max-turns", 0, "Maximum moves to make; 0 means no limit")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for random strategies")

	return cmd
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(cmd.Context(), gamePath(args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Game deleted")
			return nil
		},
	}
}

func gamePath(id string) string {
	return "/api/v1/games/" + strings.ToUpper(id)
}
