package engine

import (
	"testing"

	"github.com/kalinauskas/corvid/board"
	"github.com/stretchr/testify/assert"
)

func TestQuiescenceStandPatFailsHigh(t *testing.T) {
	// White, already up a rook and nothing to capture: stand-pat alone
	// should fail high against a very low beta.
	pos := board.ParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	s := newTestSearch()
	score, ok := s.quiescence(&pos, -Inf, -300, 0)
	assert.True(t, ok)
	assert.Equal(t, Score(-300), score)
}

// S4 — quiescence corrects a horizon-effect blunder that a static
// evaluation at the leaf would miss: an undefended queen sitting on
// the same open file as the opponent's queen looks roughly balanced
// until the capture is actually played out.
func TestQuiescenceCorrectsHangingQueen(t *testing.T) {
	// White queen d1 attacks the undefended black queen on d4 down the
	// open d-file; nothing recaptures.
	pos := board.ParseFEN("4k3/8/8/8/3q4/8/8/3QK3 w - - 0 1")

	staticEval := Evaluate(&pos)

	s := newTestSearch()
	quiescent, ok := s.quiescence(&pos, -Inf, Inf, 0)
	assert.True(t, ok)

	assert.GreaterOrEqual(t, quiescent-staticEval, Score(500))
}
