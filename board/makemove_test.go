package board

import (
	"testing"

	"github.com/kalinauskas/corvid/generator"
	"github.com/stretchr/testify/assert"
)

// TestPushPopIdentity is the universal invariant from the testable
// properties: pushing then popping any sequence of legal moves restores
// the position exactly, by Zobrist key and by piece layout.
func TestPushPopIdentity(t *testing.T) {
	tables := generator.New()
	fens := []string{
		InitialPosition,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
	}

	for _, fen := range fens {
		pos := ParseFEN(fen)
		original := pos
		moves := pos.GenerateLegalMoves(tables)

		for _, m := range moves {
			before := pos
			undo := pos.MakeMove(m)
			pos.UnmakeMove(m, undo)

			assert.Equal(t, before.Hash, pos.Hash, "hash mismatch after push/pop of %s", m.ToUCI())
			assert.Equal(t, before.pieces, pos.pieces, "piece layout mismatch after push/pop of %s", m.ToUCI())
			assert.Equal(t, before.SideToMove, pos.SideToMove)
			assert.Equal(t, before.CastleRights, pos.CastleRights)
			assert.Equal(t, before.EnPassant, pos.EnPassant)
		}

		assert.Equal(t, original.Hash, pos.Hash, "fen %s: position drifted after round trip", fen)
	}
}

func TestMakeMove_UpdatesHashIncrementally(t *testing.T) {
	tables := generator.New()
	pos := ParseFEN(InitialPosition)
	moves := pos.GenerateLegalMoves(tables)

	m := moves[0]
	undo := pos.MakeMove(m)
	recomputed := pos.computeHash()
	assert.Equal(t, recomputed, pos.Hash, "incremental hash must match a from-scratch recomputation")
	pos.UnmakeMove(m, undo)
}

func TestCastlingMovesRookToo(t *testing.T) {
	pos := ParseFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	m := Move{From: 4, To: 6, Piece: King, Flags: FlagCastling}
	pos.MakeMove(m)

	pc, color := pos.PieceAt(5) // f1
	assert.Equal(t, Rook, pc)
	assert.Equal(t, White, color)

	emptyPc, _ := pos.PieceAt(7) // h1 vacated
	assert.Equal(t, Empty, emptyPc)
}

// TestGenerateLegalMovesDoesNotCorruptHistory guards against a scratch-copy
// aliasing bug: GenerateLegalMoves checks each pseudo-legal move's legality
// via `scratch := *p`, a shallow copy that shares p's history backing array.
// If an irreversible candidate move (pawn push or capture) among those
// pseudo-legal moves truncated history in place before appending, it would
// silently corrupt the real position's own history, even though the real
// position was never pushed.
func TestGenerateLegalMovesDoesNotCorruptHistory(t *testing.T) {
	tables := generator.New()
	pos := ParseFEN(InitialPosition)

	undo1 := pos.MakeMove(Move{From: 12, To: 28, Piece: Pawn, Flags: FlagDoublePawnPush}) // e2e4
	undo2 := pos.MakeMove(Move{From: 51, To: 35, Piece: Pawn, Flags: FlagDoublePawnPush}) // e7e5
	before := append([]uint64(nil), pos.history...)

	// Legal move generation is read-only from the caller's perspective: it
	// must not mutate pos.history, even though some pseudo-legal candidates
	// it evaluates internally (pawn pushes, captures) are irreversible.
	_ = pos.GenerateLegalMoves(tables)

	assert.Equal(t, before, pos.history, "GenerateLegalMoves must not mutate the real position's history")

	pos.UnmakeMove(Move{From: 51, To: 35, Piece: Pawn, Flags: FlagDoublePawnPush}, undo2)
	pos.UnmakeMove(Move{From: 12, To: 28, Piece: Pawn, Flags: FlagDoublePawnPush}, undo1)
	assert.Empty(t, pos.history, "history must be restored to empty after unwinding both irreversible pushes")
}

func TestFENRoundTrip(t *testing.T) {
	for _, fen := range []string{
		InitialPosition,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
	} {
		pos := ParseFEN(fen)
		assert.Equal(t, fen, pos.FEN())
	}
}
