package engine

import (
	"testing"

	"github.com/kalinauskas/corvid/board"
	"github.com/stretchr/testify/assert"
)

func TestPeSTOInitialPositionIsSymmetric(t *testing.T) {
	pos := board.ParseFEN(board.InitialPosition)
	assert.Equal(t, Score(0), EvaluatePeSTO(&pos))
}

func TestPeSTOPieceValues(t *testing.T) {
	assert.Equal(t, Score(82), mgPieceValue[board.Pawn])
	assert.Equal(t, Score(337), mgPieceValue[board.Knight])
	assert.Equal(t, Score(365), mgPieceValue[board.Bishop])
	assert.Equal(t, Score(477), mgPieceValue[board.Rook])
	assert.Equal(t, Score(1025), mgPieceValue[board.Queen])

	assert.Equal(t, Score(94), egPieceValue[board.Pawn])
	assert.Equal(t, Score(281), egPieceValue[board.Knight])
	assert.Equal(t, Score(297), egPieceValue[board.Bishop])
	assert.Equal(t, Score(512), egPieceValue[board.Rook])
	assert.Equal(t, Score(936), egPieceValue[board.Queen])
}

func TestPeSTOMaterialAdvantage(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		minScore Score
		maxScore Score
	}{
		{"white up a queen", "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 800, 1200},
		{"white up a rook", "rnbqkbn1/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQq - 0 1", 400, 600},
		{"white up a knight", "r1bqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 250, 450},
		{"white up a pawn", "rnbqkbnr/ppppppp1/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 50, 150},
		{"black up a queen", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNB1KBNR w KQkq - 0 1", -1200, -800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := board.ParseFEN(tt.fen)
			score := EvaluatePeSTO(&pos)
			assert.GreaterOrEqual(t, score, tt.minScore)
			assert.LessOrEqual(t, score, tt.maxScore)
		})
	}
}

func TestPeSTOAdvancedPawnScoresHigher(t *testing.T) {
	advanced := board.ParseFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	start := board.ParseFEN("4k3/8/8/8/8/8/P7/4K3 w - - 0 1")

	assert.Greater(t, EvaluatePeSTO(&advanced), EvaluatePeSTO(&start))
}

func TestGamePhase(t *testing.T) {
	full := board.ParseFEN(board.InitialPosition)
	assert.Equal(t, 24, gamePhase(&full))

	bare := board.ParseFEN("4k3/pppppppp/8/8/8/8/PPPPPPPP/4K3 w - - 0 1")
	assert.Equal(t, 0, gamePhase(&bare))

	noQueens := board.ParseFEN("rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNB1KBNR w KQkq - 0 1")
	assert.Equal(t, 16, gamePhase(&noQueens))
}
