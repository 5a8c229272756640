package window

import (
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"snapview/internal/apperr"

	"github.com/google/uuid"
)

const (
	StrategyClock    = "clock"
	StrategySequence = "sequence"
	StrategyUUID     = "uuid"
)

// Allocator mints labels for new window instances.
type Allocator interface {
	Next(archetype string) string
}

// ClockAllocator labels a window with the archetype followed by the current
// Unix time in whole seconds. Two allocations in the same second collide.
type ClockAllocator struct {
	Now func() time.Time
}

func (a ClockAllocator) Next(archetype string) string {
	return archetype + strconv.FormatInt(now(a.Now).Unix(), 10)
}

// SequenceAllocator appends a process-wide counter to the clock label, so
// labels stay unique within one second.
type SequenceAllocator struct {
	Now func() time.Time
	seq atomic.Uint64
}

func (a *SequenceAllocator) Next(archetype string) string {
	n := a.seq.Add(1)
	return fmt.Sprintf("%s%d-%d", archetype, now(a.Now).Unix(), n)
}

// UUIDAllocator labels a window with a random UUID.
type UUIDAllocator struct{}

func (UUIDAllocator) Next(archetype string) string {
	return archetype + "-" + uuid.NewString()
}

// NewAllocator selects an allocator by strategy name. An empty name selects
// the sequence allocator.
func NewAllocator(strategy string) (Allocator, error) {
	switch strategy {
	case StrategySequence, "":
		return &SequenceAllocator{}, nil
	case StrategyClock:
		return ClockAllocator{}, nil
	case StrategyUUID:
		return UUIDAllocator{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown label strategy %q", apperr.ErrConfiguration, strategy)
	}
}

func now(fn func() time.Time) time.Time {
	if fn == nil {
		return time.Now()
	}
	return fn()
}
