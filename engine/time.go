package engine

import "time"

// emergencyBuffer is subtracted from a movetime-derived budget to
// absorb adapter/network overhead and avoid losing on time.
const emergencyBuffer = 50 * time.Millisecond

// ClockReport mirrors the UCI `go` command's clock-related parameters;
// any subset may be present, matched by the zero value of its field
// (movestogo 0 means "not specified", etc).
type ClockReport struct {
	WTimeMS    int
	BTimeMS    int
	WIncMS     int
	BIncMS     int
	MoveTimeMS int
	MoveToGo   int
	Infinite   bool
	FixedDepth int // 0 means not specified
}

// AllocateTime converts a clock report into a per-move budget. A
// negative duration means "no limit" (infinite or fixed-depth, where
// max_depth bounds the search instead of the clock). The rules are
// applied in priority order: infinite/fixed-depth first, then an
// explicit movetime, then a clock-derived share, then a configured
// fallback when no timing information is present at all.
func AllocateTime(clock ClockReport, isWhite bool, defaultMS int) time.Duration {
	if clock.Infinite || clock.FixedDepth > 0 {
		return -1
	}

	if clock.MoveTimeMS > 0 {
		budget := time.Duration(clock.MoveTimeMS)*time.Millisecond - emergencyBuffer
		if budget < time.Millisecond {
			budget = time.Millisecond
		}
		return budget
	}

	remaining := clock.BTimeMS
	inc := clock.BIncMS
	if isWhite {
		remaining = clock.WTimeMS
		inc = clock.WIncMS
	}

	if remaining <= 0 && inc <= 0 {
		return time.Duration(defaultMS) * time.Millisecond
	}

	var allocatedMS int
	if clock.MoveToGo > 0 {
		allocatedMS = remaining/(clock.MoveToGo+2) + inc
	} else {
		allocatedMS = remaining/30 + inc
	}

	if half := remaining / 2; allocatedMS > half {
		allocatedMS = half
	}
	if allocatedMS < 10 {
		allocatedMS = 10
	}

	return time.Duration(allocatedMS) * time.Millisecond
}
