package bench

import (
	"fmt"
	"testing"
	"time"

	"github.com/kalinauskas/corvid/engine"
)

// TestSearchDepthBenchmark measures search performance at different depths.
// Run with: go test ./bench -run TestSearchDepthBenchmark -v
func TestSearchDepthBenchmark(t *testing.T) {
	eng := engine.New(engine.DefaultConfig(), nil)

	fmt.Println("\n=== Search Depth Benchmark ===")
	fmt.Println("Position: Initial")
	fmt.Printf("%-7s %-10s %-12s %-15s\n", "Depth", "Move", "Nodes", "Time")
	fmt.Println("----------------------------------------------")

	for depth := 1; depth <= 8; depth++ {
		start := time.Now()
		result := eng.ChooseMove(engine.ClockReport{FixedDepth: depth}, nil)
		elapsed := time.Since(start)

		fmt.Printf("%-7d %-10s %-12d %-15v\n",
			depth, result.Move.ToUCI(), result.Stats.Nodes, elapsed)

		if elapsed > 10*time.Second {
			fmt.Println("Stopping - exceeded 10s threshold")
			break
		}
	}
}

// TestSearchTacticalBenchmark measures search on a tactical position.
func TestSearchTacticalBenchmark(t *testing.T) {
	eng := engine.New(engine.DefaultConfig(), nil)
	// Kiwipete position - lots of tactics
	if err := eng.SetPosition("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", nil); err != nil {
		t.Fatalf("set position: %v", err)
	}

	fmt.Println("\n=== Tactical Position Benchmark ===")
	fmt.Println("Position: Kiwipete")
	fmt.Printf("%-7s %-10s %-12s %-15s\n", "Depth", "Move", "Nodes", "Time")
	fmt.Println("----------------------------------------------")

	for depth := 1; depth <= 6; depth++ {
		start := time.Now()
		result := eng.ChooseMove(engine.ClockReport{FixedDepth: depth}, nil)
		elapsed := time.Since(start)

		fmt.Printf("%-7d %-10s %-12d %-15v\n",
			depth, result.Move.ToUCI(), result.Stats.Nodes, elapsed)

		if elapsed > 10*time.Second {
			fmt.Println("Stopping - exceeded 10s threshold")
			break
		}
	}
}
