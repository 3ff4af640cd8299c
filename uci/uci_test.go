package uci

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kalinauskas/corvid/engine"
)

func runAdapter(t *testing.T, input string) []string {
	t.Helper()
	eng := engine.New(engine.DefaultConfig(), nil)
	var out bytes.Buffer
	a := New(strings.NewReader(input), &out, eng, engine.DefaultConfig())
	code := a.Run()
	assert.Equal(t, 0, code)
	return strings.Split(strings.TrimSpace(out.String()), "\n")
}

func TestUCIHandshake(t *testing.T) {
	lines := runAdapter(t, "uci\nquit\n")
	assert.Contains(t, lines[0], "id name")
	assert.Equal(t, "uciok", lines[len(lines)-1])
}

func TestIsReady(t *testing.T) {
	lines := runAdapter(t, "isready\nquit\n")
	assert.Equal(t, "readyok", lines[0])
}

func TestPositionAndGoEmitsBestmove(t *testing.T) {
	lines := runAdapter(t, "position startpos\ngo depth 2\nquit\n")
	last := lines[len(lines)-1]
	assert.True(t, strings.HasPrefix(last, "bestmove "))
}

func TestPositionStartposWithMovesEmitsBestmove(t *testing.T) {
	lines := runAdapter(t,
		"position startpos moves e2e4 e7e5\ngo depth 2\nquit\n")
	last := lines[len(lines)-1]
	assert.True(t, strings.HasPrefix(last, "bestmove "))
}

func TestIllegalMoveInPositionIsProtocolError(t *testing.T) {
	lines := runAdapter(t, "position startpos moves e2e5\ngo depth 1\nquit\n")
	found := false
	for _, l := range lines {
		if strings.HasPrefix(l, "info string") {
			found = true
		}
	}
	assert.True(t, found, "expected an info string reporting the illegal move")
}

func TestSetOptionHash(t *testing.T) {
	eng := engine.New(engine.DefaultConfig(), nil)
	var out bytes.Buffer
	a := New(strings.NewReader("setoption name Hash value 32\nquit\n"), &out, eng, engine.DefaultConfig())
	a.Run()
	assert.Equal(t, 32, a.cfg.TTSizeMB)
}

func TestParseSetOption(t *testing.T) {
	name, value, ok := parseSetOption([]string{"name", "Hash", "value", "64"})
	assert.True(t, ok)
	assert.Equal(t, "Hash", name)
	assert.Equal(t, "64", value)
}
