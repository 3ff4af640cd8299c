package engine

import (
	"fmt"
	"os"
	"time"
)

// LogInfo is one line of the search log: the move the engine chose at
// the end of one ChooseMove call, with the depth, score and node count
// of the deepest completed iteration.
type LogInfo struct {
	Timestamp time.Time
	FEN       string
	Move      string
	Score     string // e.g. "30cp" or "mate 5"
	Depth     int
	Nodes     int64
	Duration  time.Duration
	GoParams  string // go command parameters (e.g. "wtime:180000 btime:178000")
}

// Logger handles threaded logging of search activity to a file. Log
// entries are written on a dedicated goroutine so the search is never
// slowed by disk I/O; a full queue drops entries rather than blocking.
// LogGameStart writes its marker line directly from the caller.
type Logger struct {
	file  *os.File
	queue chan LogInfo
	done  chan bool
}

// NewLogger creates a logger appending to filename.
func NewLogger(filename string) (*Logger, error) {
	file, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	l := &Logger{
		file:  file,
		queue: make(chan LogInfo, 100),
		done:  make(chan bool),
	}

	go l.writer()

	return l, nil
}

// Log enqueues an entry for the writer goroutine.
func (l *Logger) Log(info LogInfo) {
	if l == nil {
		return
	}
	select {
	case l.queue <- info:
	default:
		fmt.Println("Warning: Log queue full, dropping entry")
	}
}

// LogGameStart records a ucinewgame boundary.
func (l *Logger) LogGameStart(params string) {
	if l == nil {
		return
	}
	line := fmt.Sprintf("\n=== NEW GAME STARTED === %s | %s\n",
		time.Now().Format("2006-01-02 15:04:05"),
		params,
	)
	l.file.WriteString(line)
}

// Close drains the queue and closes the file.
func (l *Logger) Close() {
	if l == nil {
		return
	}
	close(l.queue)
	<-l.done
	l.file.Close()
}

func (l *Logger) writer() {
	for info := range l.queue {
		goParams := ""
		if info.GoParams != "" {
			goParams = " | " + info.GoParams
		}
		line := fmt.Sprintf("%s | depth %-2d | move %-5s | score %-10s | nodes %-9d | time %-8s | fen %s%s\n",
			info.Timestamp.Format("01-02 15:04:05"),
			info.Depth,
			info.Move,
			info.Score,
			info.Nodes,
			info.Duration.Round(time.Millisecond),
			info.FEN,
			goParams,
		)
		l.file.WriteString(line)
	}
	l.done <- true
}
