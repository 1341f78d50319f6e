// Package timesync supplies venue-aligned time to the signing path.
package timesync

import (
	"sort"
	"sync"
	"time"
)

// TimeSource supplies the current epoch time in milliseconds.
type TimeSource interface {
	TimeMillis() int64
}

// Wall is a TimeSource backed by the local wall clock.
type Wall struct{}

// TimeMillis returns the local UTC time in epoch milliseconds.
func (Wall) TimeMillis() int64 {
	return time.Now().UTC().UnixMilli()
}

const maxOffsetSamples = 30

// Synchronizer tracks the offset between venue time and the local
// clock from observed server timestamps and serves adjusted time.
// The zero offset (no samples) degrades to the local clock.
type Synchronizer struct {
	mu      sync.RWMutex
	clock   func() time.Time
	offsets []int64
}

// NewSynchronizer constructs a Synchronizer over the local wall clock.
func NewSynchronizer() *Synchronizer {
	return &Synchronizer{clock: func() time.Time { return time.Now().UTC() }}
}

// RecordServerTime folds one observed venue timestamp into the offset window.
func (s *Synchronizer) RecordServerTime(serverMillis int64) {
	local := s.clock().UnixMilli()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offsets = append(s.offsets, serverMillis-local)
	if len(s.offsets) > maxOffsetSamples {
		s.offsets = s.offsets[len(s.offsets)-maxOffsetSamples:]
	}
}

// Offset returns the median of recorded clock offsets in milliseconds.
func (s *Synchronizer) Offset() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.offsets)
	if n == 0 {
		return 0
	}
	sorted := make([]int64, n)
	copy(sorted, s.offsets)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// TimeMillis returns the local time adjusted by the median venue offset.
func (s *Synchronizer) TimeMillis() int64 {
	return s.clock().UnixMilli() + s.Offset()
}
