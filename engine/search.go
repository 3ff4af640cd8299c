package engine

import (
	"sync/atomic"
	"time"

	"github.com/kalinauskas/corvid/board"
)

// nodeCheckInterval is how often (in nodes) the search consults the
// wall clock; the stop flag itself is checked on every node, since
// that check is effectively free next to a clock read.
const nodeCheckInterval = 2048

// Stats accumulates counters over one choose_move invocation.
type Stats struct {
	Nodes       int64
	QNodes      int64
	TTProbes    int64
	TTHits      int64
	Cutoffs     int64
	DepthReached int
	Elapsed     time.Duration
}

// Search holds everything one choose_move invocation needs: the TT
// (owned by the engine façade and reused across calls), the move
// generator's attack tables, and the cooperative cancellation state.
// It is constructed fresh per call and discarded on return, per the
// Search state lifecycle.
type Search struct {
	tt     *TranspositionTable
	tables *board.AttackTables

	start    time.Time
	deadline time.Time
	infinite bool
	stopped  atomic.Bool

	nodes  int64
	qnodes int64

	ttProbes int64
	ttHits   int64
	cutoffs  int64

	useQuiescence bool

	pv [MaxPly + 1][MaxPly + 1]board.Move
	pvLen [MaxPly + 1]int
}

func newSearch(tt *TranspositionTable, tables *board.AttackTables, budget time.Duration, useQuiescence bool) *Search {
	s := &Search{
		tt:            tt,
		tables:        tables,
		start:         time.Now(),
		useQuiescence: useQuiescence,
	}
	if budget < 0 {
		s.infinite = true
	} else {
		s.deadline = s.start.Add(budget)
	}
	return s
}

// Stop requests cancellation; safe to call from another goroutine.
func (s *Search) Stop() {
	s.stopped.Store(true)
}

func (s *Search) shouldStop() bool {
	if s.stopped.Load() {
		return true
	}
	if s.infinite {
		return false
	}
	if (s.nodes+s.qnodes)&(nodeCheckInterval-1) != 0 {
		return false
	}
	if time.Now().After(s.deadline) {
		s.stopped.Store(true)
		return true
	}
	return false
}

// terminalScore returns a terminal position's score relative to the
// node at ply. The ply-adjust helpers (score.go) are applied only at
// the TT read/write boundary, not here: this value is returned
// straight through negamax's own recursive negation, never stored
// directly, so applying adjustMateStore at this call site would
// collapse every mate distance to the constant ±Mate.
func terminalScore(reason board.TerminalReason, ply int) Score {
	switch reason {
	case board.Checkmate:
		return -(Mate - Score(ply))
	default:
		return 0
	}
}

// negamax is the recursive full-width search: negamax(pos, depth,
// ply, alpha, beta) -> score, ok. ok is false only on cancellation, in
// which case score must be ignored and no TT store performed by any
// caller up the stack.
func (s *Search) negamax(pos *board.Position, depth, ply int, alpha, beta Score) (Score, bool) {
	if s.shouldStop() {
		return 0, false
	}
	s.nodes++

	if reason, terminal := pos.IsTerminal(s.tables); terminal {
		return terminalScore(reason, ply), true
	}

	if depth == 0 {
		if !s.useQuiescence {
			return Evaluate(pos), true
		}
		return s.quiescence(pos, alpha, beta, ply)
	}

	alphaOrig := alpha
	var hashMove board.Move

	s.ttProbes++
	if entry, ok := s.tt.Probe(pos.Hash); ok {
		hashMove = entry.BestMove
		if int(entry.Depth) >= depth {
			s.ttHits++
			score := adjustMateRetrieve(entry.Score, ply)
			switch entry.Bound {
			case BoundExact:
				return score, true
			case BoundLower:
				if score >= beta {
					return score, true
				}
			case BoundUpper:
				if score <= alpha {
					return score, true
				}
			}
		}
	}

	moves := pos.GenerateLegalMoves(s.tables)
	orderMoves(moves, hashMove)

	best := -Inf
	var bestMove board.Move
	s.pvLen[ply] = 0

	for _, m := range moves {
		undo := pos.MakeMove(m)
		score, ok := s.negamax(pos, depth-1, ply+1, -beta, -alpha)
		pos.UnmakeMove(m, undo)
		if !ok {
			return 0, false
		}
		score = -score

		if score > best {
			best = score
			bestMove = m
			s.pv[ply][0] = m
			copy(s.pv[ply][1:], s.pv[ply+1][:s.pvLen[ply+1]])
			s.pvLen[ply] = s.pvLen[ply+1] + 1
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			s.cutoffs++
			break
		}
	}

	bound := BoundExact
	if best <= alphaOrig {
		bound = BoundUpper
	} else if best >= beta {
		bound = BoundLower
	}
	s.tt.Store(pos.Hash, depth, adjustMateStore(best, ply), bound, bestMove)

	return best, true
}

// RootResult is what one completed iterative-deepening iteration
// produced.
type RootResult struct {
	Move  board.Move
	Score Score
	Depth int
	PV    []board.Move
	Nodes int64
}

// IterativeDeepening runs negamax at increasing depths from 1 to
// maxDepth, committing only each fully completed iteration's result;
// an iteration cancelled mid-flight is discarded and the previous
// iteration's move is kept, per the critical invariant that the
// search never returns a move whose iteration was interrupted before
// it became that depth's recorded best. onIteration, if non-nil, is
// called once per completed depth (e.g. to emit a UCI `info` line).
func (s *Search) IterativeDeepening(pos *board.Position, maxDepth int, onIteration func(RootResult)) (RootResult, Stats) {
	moves := pos.GenerateLegalMoves(s.tables)
	var result RootResult
	if len(moves) > 0 {
		result.Move = moves[0]
	}

	for depth := 1; depth <= maxDepth; depth++ {
		score, ok := s.negamax(pos, depth, 0, -Inf, Inf)
		if !ok {
			break
		}

		result = RootResult{
			Score: score,
			Depth: depth,
			Nodes: s.nodes,
		}
		result.PV = append([]board.Move(nil), s.pv[0][:s.pvLen[0]]...)
		if len(result.PV) > 0 {
			result.Move = result.PV[0]
		} else if entry, ok := s.tt.Probe(pos.Hash); ok && !entry.BestMove.IsZero() {
			result.Move = entry.BestMove
		}

		if onIteration != nil {
			onIteration(result)
		}

		if IsMateScore(score) {
			break
		}
	}

	stats := Stats{
		Nodes:        s.nodes,
		QNodes:       s.qnodes,
		TTProbes:     s.ttProbes,
		TTHits:       s.ttHits,
		Cutoffs:      s.cutoffs,
		DepthReached: result.Depth,
		Elapsed:      time.Since(s.start),
	}
	return result, stats
}
