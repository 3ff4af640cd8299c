package engine

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/kalinauskas/corvid/board"
	"github.com/kalinauskas/corvid/generator"
)

// Config is the engine façade's configuration surface, loaded from
// YAML or applied piecemeal via UCI setoption.
type Config struct {
	TTSizeMB        int
	MaxDepth        int
	DefaultMoveMS   int
	UseQuiescence   bool
	EmitDepthLog    bool
}

// DefaultConfig matches the defaults documented for the configuration
// surface: a 128MB table, depth 6 when unconstrained, a one-second
// fallback move time, quiescence on, depth logging off.
func DefaultConfig() Config {
	return Config{
		TTSizeMB:      128,
		MaxDepth:      6,
		DefaultMoveMS: 1000,
		UseQuiescence: true,
	}
}

// Engine is the façade: it owns the persistent transposition table,
// the configuration, and the current position, and exposes the four
// operations a UCI adapter drives it through. It keeps no statistics
// of its own: each ChooseMove returns the statistics of that one
// search, and nothing is accumulated across a game.
type Engine struct {
	config Config
	tt     *TranspositionTable
	tables *board.AttackTables
	pos    board.Position
	logger *Logger

	// current is read by Stop, which the UCI adapter calls from the
	// command-reading goroutine while ChooseMove's search runs on its
	// own goroutine (uci/uci.go); an atomic pointer keeps that handoff
	// race-free without a mutex on the façade's hot path.
	current atomic.Pointer[Search]
}

// New constructs an engine with cfg applied and a fresh position at
// the standard starting setup.
func New(cfg Config, logger *Logger) *Engine {
	return &Engine{
		config: cfg,
		tt:     NewTranspositionTable(cfg.TTSizeMB),
		tables: generator.New(),
		pos:    board.ParseFEN(board.InitialPosition),
		logger: logger,
	}
}

// NewGame resets engine state for a new game: a fresh TT generation
// (not a full clear, to avoid the cost of zeroing a large table).
func (e *Engine) NewGame() {
	e.tt.NewGeneration()
	e.logger.LogGameStart(fmt.Sprintf("hash=%dMB depth=%d", e.config.TTSizeMB, e.config.MaxDepth))
}

// SetConfig applies a `setoption`-driven configuration change. A changed
// Hash size reallocates the table from scratch (UCI's own contract for
// resizing Hash mid-game: the old table's contents do not survive a
// resize); every other field just replaces the stored value and takes
// effect on the next ChooseMove.
func (e *Engine) SetConfig(cfg Config) {
	if cfg.TTSizeMB != e.config.TTSizeMB {
		e.tt = NewTranspositionTable(cfg.TTSizeMB)
	}
	e.config = cfg
}

// SetPosition delegates to the rules engine: start from fen (or the
// standard startpos) and replay moves in order. An illegal move
// string aborts the whole setup and leaves the prior position
// unchanged (a ProtocolError); so does a malformed FEN.
func (e *Engine) SetPosition(fen string, moves []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed position: %v", r)
		}
	}()
	if fen == "" || fen == "startpos" {
		fen = board.InitialPosition
	}
	next := board.ParseFEN(fen)
	for _, alg := range moves {
		m, ok := findLegalMove(&next, e.tables, alg)
		if !ok {
			return fmt.Errorf("illegal move %q for current position", alg)
		}
		next.MakeMove(m)
	}
	e.pos = next
	return nil
}

func findLegalMove(pos *board.Position, tables *board.AttackTables, alg string) (board.Move, bool) {
	for _, m := range pos.GenerateLegalMoves(tables) {
		if m.ToUCI() == alg {
			return m, true
		}
	}
	return board.Move{}, false
}

// ChooseMoveResult is what one choose_move call returns to the
// adapter: the move to play, plus enough of the search's findings to
// emit `info` lines along the way (via onIteration) and a final
// bestmove.
type ChooseMoveResult struct {
	Move  board.Move
	Score Score
	Depth int
	Stats Stats
}

// ChooseMove runs the time manager and iterative deepening to pick a
// move for the current position. onIteration, if non-nil, is called
// once per completed depth with enough information to emit a UCI
// `info` line.
func (e *Engine) ChooseMove(clock ClockReport, onIteration func(RootResult)) ChooseMoveResult {
	budget := AllocateTime(clock, e.pos.SideToMove == board.White, e.config.DefaultMoveMS)
	maxDepth := e.config.MaxDepth
	if clock.FixedDepth > 0 {
		maxDepth = clock.FixedDepth
	}
	if maxDepth > MaxPly {
		maxDepth = MaxPly
	}

	s := newSearch(e.tt, e.tables, budget, e.config.UseQuiescence)
	e.current.Store(s)

	last, stats := s.IterativeDeepening(&e.pos, maxDepth, onIteration)

	if last.Move.IsZero() {
		if moves := e.pos.GenerateLegalMoves(e.tables); len(moves) > 0 {
			last.Move = moves[0]
		}
	}

	e.current.Store(nil)
	if e.logger != nil {
		e.logger.Log(LogInfo{
			Timestamp: time.Now(),
			FEN:       e.pos.FEN(),
			Move:      last.Move.ToUCI(),
			Score:     scoreLabel(last.Score),
			Depth:     last.Depth,
			Nodes:     stats.Nodes,
			Duration:  stats.Elapsed,
		})
	}

	return ChooseMoveResult{Move: last.Move, Score: last.Score, Depth: last.Depth, Stats: stats}
}

func scoreLabel(s Score) string {
	if IsMateScore(s) {
		return fmt.Sprintf("mate %d", MateIn(s))
	}
	return fmt.Sprintf("%dcp", s)
}

// Stop requests the in-flight search to return its best move so far.
// Safe to call from another goroutine than the one running ChooseMove.
func (e *Engine) Stop() {
	if s := e.current.Load(); s != nil {
		s.Stop()
	}
}

// Position exposes the current position for the adapter (e.g. to
// print a board, or answer `d`-style debug commands).
func (e *Engine) Position() *board.Position {
	return &e.pos
}

// LegalMoves returns the legal moves in the current position.
func (e *Engine) LegalMoves() []board.Move {
	return e.pos.GenerateLegalMoves(e.tables)
}

// InCheck reports whether the side to move is in check.
func (e *Engine) InCheck() bool {
	return e.pos.IsInCheck(e.tables)
}
