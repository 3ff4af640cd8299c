package board

// TerminalReason identifies why a position has no further play.
type TerminalReason int

const (
	NotTerminal TerminalReason = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	FiftyMoveRule
	ThreefoldRepetition
)

// IsTerminal reports whether the game is over in this position and why.
// Checkmate/stalemate are derived from the absence of legal moves; draws
// by insufficient material, the 50-move rule, and repetition are checked
// independently since they can occur with legal moves still available.
//
// Repetition is tracked only across the history accumulated since this
// Position was constructed or its last irreversible move: a game
// replayed via "position ... moves ..." carries that full history, but
// a position handed to the engine out of context (e.g. directly from a
// FEN mid-analysis) cannot know about earlier occurrences and will
// under-detect repetition. This mirrors the limitation of relying on
// the rules engine's own history.
func (p *Position) IsTerminal(t *AttackTables) (TerminalReason, bool) {
	if p.HalfmoveClock >= 100 {
		return FiftyMoveRule, true
	}
	if p.isRepetition() {
		return ThreefoldRepetition, true
	}
	if p.hasInsufficientMaterial() {
		return InsufficientMaterial, true
	}
	if len(p.GenerateLegalMoves(t)) == 0 {
		if p.IsInCheck(t) {
			return Checkmate, true
		}
		return Stalemate, true
	}
	return NotTerminal, false
}

// isRepetition reports threefold repetition. p.history records the hash
// after every move since the last irreversible move, including the
// current position, so three occurrences in that list is a threefold.
func (p *Position) isRepetition() bool {
	count := 0
	for _, h := range p.history {
		if h == p.Hash {
			count++
		}
	}
	return count >= 3
}

func (p *Position) hasInsufficientMaterial() bool {
	if p.pieces[White][Pawn]|p.pieces[Black][Pawn] != 0 {
		return false
	}
	if p.pieces[White][Rook]|p.pieces[Black][Rook] != 0 {
		return false
	}
	if p.pieces[White][Queen]|p.pieces[Black][Queen] != 0 {
		return false
	}
	whiteMinors := p.pieces[White][Knight].PopCount() + p.pieces[White][Bishop].PopCount()
	blackMinors := p.pieces[Black][Knight].PopCount() + p.pieces[Black][Bishop].PopCount()
	// K vs K, K+minor vs K, K vs K+minor are drawn; anything with two or
	// more minors on the board might still mate (e.g. two bishops), so only
	// the lone-minor-or-bare-king cases are treated as insufficient here.
	return whiteMinors <= 1 && blackMinors <= 1 && whiteMinors+blackMinors <= 1
}
