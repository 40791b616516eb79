package scoring

import (
	"sort"

	"github.com/mcoot/wordcapture/internal/bitboard"
	"github.com/mcoot/wordcapture/internal/model"
)

// MaxSuggestions is the most moves TopMoves returns
const MaxSuggestions = 19

// Service scores candidate moves against the current ownership state
type Service struct {
	rules model.Rules
}

// New creates a new scoring Service for the given rules
func New(rules model.Rules) *Service {
	return &Service{
		rules: rules,
	}
}

// Rules returns the rules the service scores against
func (s *Service) Rules() model.Rules {
	return s.rules
}

// ApplyCapture returns the ownership masks after ours plays placement.
// Squares the opponent holds protected are not captured.
func ApplyCapture(rules model.Rules, placement, ours, theirs model.Mask) (newOurs, newTheirs model.Mask) {
	theirsProtected := bitboard.Protected(rules, theirs)
	newOurs = (placement &^ theirsProtected) | ours
	newTheirs = theirs &^ newOurs
	return newOurs, newTheirs
}

// ScoreMove computes the resulting state and heuristic values for one move
func (s *Service) ScoreMove(raw model.RawMove, ours, theirs model.Mask) model.ScoredMove {
	return s.scoreMove(raw, ours, bitboard.Protected(s.rules, theirs), theirs)
}

// scoreMove takes the opponent's protected squares precomputed, as they are
// the same for every move in a batch
func (s *Service) scoreMove(raw model.RawMove, ours, theirsProtected, theirs model.Mask) model.ScoredMove {
	newOurs := (raw.Placement &^ theirsProtected) | ours
	newOursProtected := bitboard.Protected(s.rules, newOurs)
	newTheirs := theirs &^ newOurs
	newTheirsProtected := bitboard.Protected(s.rules, newTheirs)

	scored := model.ScoredMove{
		RawMove:              raw,
		NewOurs:              newOurs,
		NewTheirs:            newTheirs,
		NewOursProtected:     newOursProtected,
		NewTheirsProtected:   newTheirsProtected,
		OursCount:            bitboard.Count(newOurs),
		TheirsCount:          bitboard.Count(newTheirs),
		OursProtectedCount:   bitboard.Count(newOursProtected),
		TheirsProtectedCount: bitboard.Count(newTheirsProtected),
		Vulnerability:        bitboard.Vulnerability(s.rules, newOursProtected, newOurs),
	}
	scored.ProtectedDiff = scored.OursProtectedCount - scored.TheirsProtectedCount
	scored.CountDiff = scored.OursCount - scored.TheirsCount
	scored.GameEnder = s.gameEnder(newOurs, newTheirs, scored.OursCount)

	return scored
}

// gameEnder reports whether the move fills the board, and if so whether the
// mover has enough squares to win
func (s *Service) gameEnder(newOurs, newTheirs model.Mask, oursCount int) int {
	if newOurs|newTheirs != s.rules.FullBoard() {
		return model.GameEnderNone
	}
	if oursCount >= s.rules.WinThreshold() {
		return model.GameEnderWin
	}
	return model.GameEnderLoss
}

// ScoreMoves scores every raw move
func (s *Service) ScoreMoves(raw []model.RawMove, ours, theirs model.Mask) []model.ScoredMove {
	theirsProtected := bitboard.Protected(s.rules, theirs)
	scored := make([]model.ScoredMove, 0, len(raw))
	for _, r := range raw {
		scored = append(scored, s.scoreMove(r, ours, theirsProtected, theirs))
	}
	return scored
}

// Better reports whether a ranks strictly ahead of b
func Better(a, b model.ScoredMove) bool {
	if a.GameEnder != b.GameEnder {
		return a.GameEnder > b.GameEnder
	}
	if a.ProtectedDiff != b.ProtectedDiff {
		return a.ProtectedDiff > b.ProtectedDiff
	}
	if a.Vulnerability != b.Vulnerability {
		return a.Vulnerability < b.Vulnerability
	}
	if a.CountDiff != b.CountDiff {
		return a.CountDiff > b.CountDiff
	}
	return a.Word.Rank < b.Word.Rank
}

// Rank sorts moves best first. Moves that tie on every key keep their
// generation order.
func Rank(moves []model.ScoredMove) {
	sort.SliceStable(moves, func(i, j int) bool {
		return Better(moves[i], moves[j])
	})
}

// Filter walks ranked moves and drops any whose word was already kept or
// whose total equals that of the last kept move. At most limit moves are
// returned.
func Filter(moves []model.ScoredMove, limit int) []model.ScoredMove {
	var (
		kept      []model.ScoredMove
		seen      = make(map[string]struct{})
		lastTotal int
		haveLast  bool
	)

	for _, m := range moves {
		if len(kept) >= limit {
			break
		}
		if _, ok := seen[m.Word.Text]; ok {
			continue
		}
		if haveLast && m.Total() == lastTotal {
			continue
		}

		kept = append(kept, m)
		seen[m.Word.Text] = struct{}{}
		lastTotal = m.Total()
		haveLast = true
	}

	return kept
}

// TopMoves scores, ranks and filters raw moves, returning the best
// suggestions first
func (s *Service) TopMoves(raw []model.RawMove, ours, theirs model.Mask) []model.Suggestion {
	scored := s.ScoreMoves(raw, ours, theirs)
	Rank(scored)
	kept := Filter(scored, MaxSuggestions)

	suggestions := make([]model.Suggestion, 0, len(kept))
	for _, m := range kept {
		suggestions = append(suggestions, model.Suggestion{
			Word:      m.Word.Text,
			Placement: m.Placement,
			NewOurs:   m.NewOurs,
			NewTheirs: m.NewTheirs,
			GameEnder: m.GameEnder,
		})
	}
	return suggestions
}

// Interface for dependency injection
type ServiceInterface interface {
	ScoreMove(raw model.RawMove, ours, theirs model.Mask) model.ScoredMove
	ScoreMoves(raw []model.RawMove, ours, theirs model.Mask) []model.ScoredMove
	TopMoves(raw []model.RawMove, ours, theirs model.Mask) []model.Suggestion
}

var _ ServiceInterface = (*Service)(nil)
