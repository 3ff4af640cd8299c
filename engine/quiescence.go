package engine

import "github.com/kalinauskas/corvid/board"

// quiescence extends the search along captures only, until the
// position is "quiet", to avoid misjudging a position right before a
// decisive capture sequence (the horizon effect). It does not extend
// on being in check — a known, documented limitation shared with the
// full-width search's simplicity goal; an implementer may add
// check-evasion extension later without changing the contract.
func (s *Search) quiescence(pos *board.Position, alpha, beta Score, ply int) (Score, bool) {
	if s.shouldStop() {
		return 0, false
	}
	s.qnodes++

	if reason, terminal := pos.IsTerminal(s.tables); terminal {
		return terminalScore(reason, ply), true
	}

	standPat := Evaluate(pos)
	if standPat >= beta {
		return beta, true
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := captureMoves(pos.GenerateLegalMoves(s.tables))
	orderMoves(moves, board.Move{})

	for _, m := range moves {
		undo := pos.MakeMove(m)
		score, ok := s.quiescence(pos, -beta, -alpha, ply+1)
		pos.UnmakeMove(m, undo)
		if !ok {
			return 0, false
		}
		score = -score

		if score >= beta {
			return beta, true
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha, true
}
