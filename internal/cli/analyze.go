package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordcapture/internal/api/request"
	"github.com/mcoot/wordcapture/internal/api/response"
	"github.com/mcoot/wordcapture/internal/factory"
	"github.com/mcoot/wordcapture/internal/model"
	"github.com/mcoot/wordcapture/internal/services/analysis"
	"github.com/mcoot/wordcapture/internal/services/movegen"
)

type analyzeOptions struct {
	ours    []string
	theirs  []string
	words   []string
	exclude []string

	local      bool
	dictionary string
	rows       int
	cols       int
	threshold  int
	workers    int
}

func newAnalyzeCmd() *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze <letters>...",
		Short: "Suggest the best moves for a position",
		Long: `Analyze a board from the side to move's perspective. Letters are given
row-major; several arguments are joined, so each row may be passed separately.

Owned squares are given as row,col pairs:

  wcadvisor analyze catsd ogshe artmi neroa dwell --ours 4,4 --theirs 0,0

With --local the analysis runs in-process against --dictionary instead of
calling the server.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			letters := strings.Join(args, "")

			ours, err := parseSquares(opts.ours)
			if err != nil {
				return err
			}
			theirs, err := parseSquares(opts.theirs)
			if err != nil {
				return err
			}

			req := request.AnalyzeRequest{
				Board:         letters,
				OursSquares:   ours,
				TheirsSquares: theirs,
				Words:         opts.words,
				Exclude:       opts.exclude,
			}

			var result response.Analysis
			if opts.local {
				result, err = analyzeLocal(cmd.Context(), req, opts)
			} else {
				err = client.Post(cmd.Context(), "/api/v1/analyze", req, &result)
			}
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&opts.ours, "ours", nil, "Square held by the side to move, as row,col (repeatable)")
	cmd.Flags().StringArrayVar(&opts.theirs, "theirs", nil, "Square held by the opponent, as row,col (repeatable)")
	cmd.Flags().StringArrayVar(&opts.words, "word", nil, "Candidate word, most common first; replaces the dictionary (repeatable)")
	cmd.Flags().StringArrayVar(&opts.exclude, "exclude", nil, "Word already played (repeatable)")

	cmd.Flags().BoolVar(&opts.local, "local", false, "Analyze in-process instead of calling the server")
	cmd.Flags().StringVar(&opts.dictionary, "dictionary", "data/words.txt", "Word list for --local, one word per line, most common first")
	cmd.Flags().IntVar(&opts.rows, "rows", model.DefaultRows, "Board rows for --local")
	cmd.Flags().IntVar(&opts.cols, "cols", model.DefaultCols, "Board columns for --local")
	cmd.Flags().IntVar(&opts.threshold, "threshold", 0, "Squares needed to win for --local; 0 means a majority")
	cmd.Flags().IntVar(&opts.workers, "workers", 4, "Words generated concurrently for --local")

	return cmd
}

// analyzeLocal runs the analysis in-process with memory storage
func analyzeLocal(ctx context.Context, req request.AnalyzeRequest, opts analyzeOptions) (response.Analysis, error) {
	threshold := opts.threshold
	if threshold == 0 {
		threshold = model.MajorityThreshold(opts.rows * opts.cols)
	}
	rules, err := model.NewRules(opts.rows, opts.cols, threshold)
	if err != nil {
		return response.Analysis{}, err
	}

	app, err := factory.New(factory.Config{
		Rules:           rules,
		GeneratorConfig: movegen.Config{Workers: opts.workers},
		Logger:          newLocalLogger(),
	})
	if err != nil {
		return response.Analysis{}, err
	}

	if len(req.Words) == 0 {
		if err := app.DictionaryService.LoadFromFile(ctx, opts.dictionary); err != nil {
			return response.Analysis{}, err
		}
	}

	ours, err := app.BoardService.MaskOf(toPositions(req.OursSquares))
	if err != nil {
		return response.Analysis{}, err
	}
	theirs, err := app.BoardService.MaskOf(toPositions(req.TheirsSquares))
	if err != nil {
		return response.Analysis{}, err
	}

	result, err := app.AnalysisService.Analyze(ctx, analysis.Request{
		Board:   req.Board,
		Ours:    ours,
		Theirs:  theirs,
		Words:   req.Words,
		Exclude: req.Exclude,
	})
	if err != nil {
		return response.Analysis{}, err
	}
	return response.AnalysisFromModel(result), nil
}

func toPositions(squares []request.Square) []model.Position {
	positions := make([]model.Position, len(squares))
	for i, sq := range squares {
		positions[i] = model.Position{Row: sq.Row, Col: sq.Col}
	}
	return positions
}
