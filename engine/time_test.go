package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllocateTimeInfiniteAndFixedDepth(t *testing.T) {
	assert.Equal(t, time.Duration(-1), AllocateTime(ClockReport{Infinite: true}, true, 1000))
	assert.Equal(t, time.Duration(-1), AllocateTime(ClockReport{FixedDepth: 6}, true, 1000))
}

func TestAllocateTimeMoveTimeMinusBuffer(t *testing.T) {
	budget := AllocateTime(ClockReport{MoveTimeMS: 500}, true, 1000)
	assert.Equal(t, (500*time.Millisecond)-emergencyBuffer, budget)
}

func TestAllocateTimeMoveTimeFloor(t *testing.T) {
	budget := AllocateTime(ClockReport{MoveTimeMS: 10}, true, 1000)
	assert.Equal(t, time.Millisecond, budget)
}

func TestAllocateTimeWithMovesToGo(t *testing.T) {
	budget := AllocateTime(ClockReport{WTimeMS: 60000, WIncMS: 0, MoveToGo: 18}, true, 1000)
	assert.Equal(t, time.Duration(60000/(18+2))*time.Millisecond, budget)
}

func TestAllocateTimeAssumesThirtyMovesWithoutMovesToGo(t *testing.T) {
	budget := AllocateTime(ClockReport{WTimeMS: 300000}, true, 1000)
	assert.Equal(t, time.Duration(300000/30)*time.Millisecond, budget)
}

func TestAllocateTimeNeverExceedsHalfRemaining(t *testing.T) {
	budget := AllocateTime(ClockReport{WTimeMS: 1000, MoveToGo: 1}, true, 1000)
	assert.LessOrEqual(t, budget, 500*time.Millisecond)
}

func TestAllocateTimeFallsBackToDefaultWithNoClock(t *testing.T) {
	budget := AllocateTime(ClockReport{}, true, 777)
	assert.Equal(t, 777*time.Millisecond, budget)
}

func TestAllocateTimeUsesBlackClockForBlack(t *testing.T) {
	budget := AllocateTime(ClockReport{WTimeMS: 100000, BTimeMS: 30000}, false, 1000)
	assert.Equal(t, time.Duration(30000/30)*time.Millisecond, budget)
}
