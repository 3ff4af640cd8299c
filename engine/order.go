package engine

import (
	"sort"

	"github.com/kalinauskas/corvid/board"
)

// orderMoves sorts moves in place for best alpha-beta performance: the
// hash move first (if present among the legal moves), then captures
// and capture-promotions by MVV-LVA, then quiet moves in generation
// order. It never drops or duplicates a move — it only permutes the
// slice.
func orderMoves(moves []board.Move, hashMove board.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return moveOrderKey(moves[i], hashMove) > moveOrderKey(moves[j], hashMove)
	})
}

const hashMoveKey = 1 << 20

// captureTier is added to every capture's MVV-LVA key so it always
// outranks every quiet move's key of 0, even when the raw
// 10*victim-attacker arithmetic goes negative (e.g. a king capturing
// a minor piece) — §4.E requires all captures ordered as a group
// ahead of all quiets, regardless of the MVV-LVA tiebreak among them.
const captureTier = 1 << 16

// moveOrderKey returns a sort key: higher means searched earlier.
func moveOrderKey(m board.Move, hashMove board.Move) int {
	if !hashMove.IsZero() && m == hashMove {
		return hashMoveKey
	}
	if m.IsCapture() {
		// Captures are keyed on the actual captured piece, including
		// capture-promotions (the piece being captured, not the piece the
		// pawn becomes). Only a non-capture promotion substitutes a
		// synthetic victim value below, per the ordering contract.
		return captureTier + 10*int(PieceValue[m.Captured]) - int(PieceValue[m.Piece])
	}
	if m.Promotion != board.Empty {
		// non-capture promotion, treated as a capture of the promoted
		// piece minus the pawn it replaces, per the ordering contract
		return captureTier + 10*int(PieceValue[m.Promotion]-PieceValue[board.Pawn]) - int(PieceValue[board.Pawn])
	}
	return 0
}

// captureMoves filters moves down to captures and promotions, for
// quiescence search, preserving MVV-LVA order (callers should order
// first, then filter, or filter then order — both are applied here by
// quiescence.go).
func captureMoves(moves []board.Move) []board.Move {
	out := moves[:0:0]
	for _, m := range moves {
		if m.IsCapture() || m.Promotion != board.Empty {
			out = append(out, m)
		}
	}
	return out
}
