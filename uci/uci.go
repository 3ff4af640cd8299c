// Package uci adapts the engine façade to the line-oriented UCI text
// protocol: it parses inbound commands, drives engine.Engine, and
// formats outbound responses. It is a thin adapter — no search or
// evaluation logic lives here.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/kalinauskas/corvid/board"
	"github.com/kalinauskas/corvid/engine"
)

const (
	engineName   = "Corvid"
	engineAuthor = "corvid contributors"
)

// Adapter reads UCI commands from in and writes responses to out. It
// owns one engine.Engine for the lifetime of the process.
//
// `go` is dispatched onto its own goroutine rather than run inline on the
// command-reading loop: the only concurrency in this design is between
// the search worker and a controller that may send `stop` while a
// search is in flight, and that only works if the line reader keeps
// consuming input (and can observe `stop`) while the search runs. wg
// tracks the in-flight search so `quit` can request cancellation and wait
// for `bestmove` to be flushed before the process exits; busy guards the
// façade's shared position/TT state against a second `go` (or a
// position-mutating command) arriving mid-search, since Engine itself
// assumes single-threaded access outside of Stop. busy guards against
// races between the search goroutine and anything else touching the
// façade's position/TT state.
type Adapter struct {
	in  *bufio.Scanner
	out io.Writer
	eng *engine.Engine
	cfg engine.Config

	mu   sync.Mutex // serializes writes to out
	wg   sync.WaitGroup
	busy sync.Mutex // held for the duration of an in-flight `go`
}

// New constructs an adapter around an already-configured engine.
func New(in io.Reader, out io.Writer, eng *engine.Engine, cfg engine.Config) *Adapter {
	return &Adapter{in: bufio.NewScanner(in), out: out, eng: eng, cfg: cfg}
}

// Run reads commands until quit or end of input, and returns the
// process exit code: 0 on clean quit, non-zero only if the input
// stream itself failed (a malformed line is a ProtocolError, logged
// and ignored, not fatal).
func (a *Adapter) Run() int {
	a.in.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for a.in.Scan() {
		line := strings.TrimSpace(a.in.Text())
		if line == "" {
			continue
		}
		if a.dispatch(line) {
			return 0
		}
	}
	if err := a.in.Err(); err != nil {
		fmt.Fprintf(a.out, "info string read error: %v\n", err)
		return 1
	}
	return 0
}

// dispatch handles one line; it returns true if the adapter should
// terminate (a `quit` command).
func (a *Adapter) dispatch(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "uci":
		a.handleUCI()
	case "isready":
		a.respond("readyok")
	case "setoption":
		a.withIdle(fields[0], func() { a.handleSetOption(fields[1:]) })
	case "ucinewgame":
		a.withIdle(fields[0], a.eng.NewGame)
	case "position":
		a.withIdle(fields[0], func() { a.handlePosition(fields[1:]) })
	case "go":
		a.handleGo(fields[1:])
	case "stop":
		a.eng.Stop()
	case "quit":
		a.eng.Stop()
		a.wg.Wait()
		return true
	case "d":
		a.withIdle(fields[0], func() { a.respond(a.eng.Position().Pretty()) })
	default:
		a.respond(fmt.Sprintf("info string unknown command %q", fields[0]))
	}
	return false
}

// withIdle runs fn only if no `go` search is currently in flight; the
// façade's position and TT are single-owner state that the search
// goroutine mutates without synchronization, so anything else that
// touches them must wait its turn rather than race it.
func (a *Adapter) withIdle(cmd string, fn func()) {
	if !a.busy.TryLock() {
		a.respond(fmt.Sprintf("info string %s ignored: search in progress", cmd))
		return
	}
	defer a.busy.Unlock()
	fn()
}

func (a *Adapter) respond(s string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fmt.Fprintln(a.out, s)
}

func (a *Adapter) handleUCI() {
	a.respond(fmt.Sprintf("id name %s", engineName))
	a.respond(fmt.Sprintf("id author %s", engineAuthor))
	a.respond(fmt.Sprintf("option name Hash type spin default %d min 1 max 4096", a.cfg.TTSizeMB))
	a.respond(fmt.Sprintf("option name MaxDepth type spin default %d min 1 max 64", a.cfg.MaxDepth))
	a.respond("option name Quiescence type check default true")
	a.respond("uciok")
}

func (a *Adapter) handleSetOption(args []string) {
	name, value, ok := parseSetOption(args)
	if !ok {
		a.respond("info string malformed setoption command")
		return
	}
	switch strings.ToLower(name) {
	case "hash":
		if mb, err := strconv.Atoi(value); err == nil {
			a.cfg.TTSizeMB = mb
		}
	case "maxdepth":
		if d, err := strconv.Atoi(value); err == nil {
			a.cfg.MaxDepth = d
		}
	case "quiescence":
		a.cfg.UseQuiescence = strings.EqualFold(value, "true")
	default:
		a.respond(fmt.Sprintf("info string unknown option %q", name))
		return
	}
	a.eng.SetConfig(a.cfg)
}

// parseSetOption extracts name and value from "name <Name> value <Value>".
func parseSetOption(args []string) (name, value string, ok bool) {
	var nameParts, valueParts []string
	mode := ""
	for _, tok := range args {
		switch tok {
		case "name":
			mode = "name"
		case "value":
			mode = "value"
		default:
			switch mode {
			case "name":
				nameParts = append(nameParts, tok)
			case "value":
				valueParts = append(valueParts, tok)
			}
		}
	}
	if len(nameParts) == 0 {
		return "", "", false
	}
	return strings.Join(nameParts, " "), strings.Join(valueParts, " "), true
}

func (a *Adapter) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	fen := board.InitialPosition
	rest := args[1:]

	if args[0] == "fen" {
		// FEN is 6 space-separated fields; consume them, then whatever
		// follows (if "moves") is the move list.
		if len(args) < 7 {
			a.respond("info string malformed fen in position command")
			return
		}
		fen = strings.Join(args[1:7], " ")
		rest = args[7:]
	} else if args[0] != "startpos" {
		a.respond(fmt.Sprintf("info string unknown position spec %q", args[0]))
		return
	}

	var moves []string
	if len(rest) > 0 && rest[0] == "moves" {
		moves = rest[1:]
	}

	if err := a.eng.SetPosition(fen, moves); err != nil {
		a.respond(fmt.Sprintf("info string %v", err))
	}
}

func (a *Adapter) handleGo(args []string) {
	clock := engine.ClockReport{}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "wtime":
			i++
			clock.WTimeMS = atoiOr(args, i, 0)
		case "btime":
			i++
			clock.BTimeMS = atoiOr(args, i, 0)
		case "winc":
			i++
			clock.WIncMS = atoiOr(args, i, 0)
		case "binc":
			i++
			clock.BIncMS = atoiOr(args, i, 0)
		case "movetime":
			i++
			clock.MoveTimeMS = atoiOr(args, i, 0)
		case "movestogo":
			i++
			clock.MoveToGo = atoiOr(args, i, 0)
		case "depth":
			i++
			clock.FixedDepth = atoiOr(args, i, 0)
		case "infinite":
			clock.Infinite = true
		}
	}

	if !a.busy.TryLock() {
		a.respond("info string go ignored: search already in progress")
		return
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		defer a.busy.Unlock()
		result := a.eng.ChooseMove(clock, func(r engine.RootResult) {
			a.respond(formatInfo(r))
		})
		a.respond(fmt.Sprintf("bestmove %s", result.Move.ToUCI()))
	}()
}

func atoiOr(args []string, i, fallback int) int {
	if i < 0 || i >= len(args) {
		return fallback
	}
	if v, err := strconv.Atoi(args[i]); err == nil {
		return v
	}
	return fallback
}

func formatInfo(r engine.RootResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "info depth %d nodes %d", r.Depth, r.Nodes)
	if engine.IsMateScore(r.Score) {
		fmt.Fprintf(&sb, " score mate %d", engine.MateIn(r.Score))
	} else {
		fmt.Fprintf(&sb, " score cp %d", r.Score)
	}
	if len(r.PV) > 0 {
		sb.WriteString(" pv")
		for _, m := range r.PV {
			sb.WriteString(" " + m.ToUCI())
		}
	}
	return sb.String()
}
