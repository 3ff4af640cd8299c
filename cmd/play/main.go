// Command play is an interactive terminal harness for a human to play
// against the engine outside of a UCI-speaking GUI, mirroring the
// teacher's own play-in-terminal tool.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/kalinauskas/corvid/board"
	"github.com/kalinauskas/corvid/config"
	"github.com/kalinauskas/corvid/engine"
)

func main() {
	cfg, err := config.Load(os.Getenv("CORVID_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}

	var logger *engine.Logger
	if cfg.EmitDepthLog {
		logger, err = engine.NewLogger("game.log")
		if err != nil {
			fmt.Printf("warning: could not create logger: %v\n", err)
		} else {
			defer logger.Close()
			fmt.Println("logging moves to game.log")
		}
	}

	eng := engine.New(cfg, logger)
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== corvid interactive mode ===")
	fmt.Println("enter moves in UCI format (e.g., e2e4, e7e8q for promotion)")
	fmt.Println("commands: quit, moves, engine")
	fmt.Println()

	for {
		pos := eng.Position()
		fmt.Println(pos.Pretty())

		legal := eng.LegalMoves()
		if len(legal) == 0 {
			if eng.InCheck() {
				fmt.Println("checkmate!")
			} else {
				fmt.Println("stalemate! draw.")
			}
			return
		}

		side := "White"
		if pos.SideToMove == board.Black {
			side = "Black"
		}
		fmt.Printf("%s to move: ", side)

		input, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("error reading input:", err)
			return
		}
		input = strings.ToLower(strings.TrimSpace(input))

		switch input {
		case "quit", "q":
			return
		case "moves":
			for _, m := range legal {
				fmt.Printf("  %s\n", m.ToUCI())
			}
			continue
		case "engine", "e":
			playEngineMove(eng)
			continue
		}

		if err := eng.SetPosition(pos.FEN(), []string{input}); err != nil {
			fmt.Printf("invalid move: %s\n", input)
			continue
		}
		playEngineMove(eng)
	}
}

func playEngineMove(eng *engine.Engine) {
	fmt.Println("thinking...")
	result := eng.ChooseMove(engine.ClockReport{MoveTimeMS: 2000}, nil)
	if result.Move.IsZero() {
		fmt.Println("no legal move available")
		return
	}
	fmt.Printf("engine plays: %s (score %d, depth %d)\n", result.Move.ToUCI(), result.Score, result.Depth)
	if err := eng.SetPosition(eng.Position().FEN(), []string{result.Move.ToUCI()}); err != nil {
		fmt.Printf("internal error applying engine move: %v\n", err)
	}
}

