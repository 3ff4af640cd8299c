package engine

import "github.com/kalinauskas/corvid/board"

// Evaluate returns the static score of pos from the side-to-move's
// perspective: positive means the side to move stands better. It
// depends only on the position — no randomness, no clock, no search
// state — and never runs on a terminal position; checkmate, stalemate,
// and draws are detected and scored by the search itself (search.go).
func Evaluate(pos *board.Position) Score {
	white := EvaluatePeSTO(pos)
	if pos.SideToMove == board.Black {
		return -white
	}
	return white
}
