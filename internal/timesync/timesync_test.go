package timesync

import (
	"testing"
	"time"
)

func fixedClock(millis int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(millis).UTC() }
}

func TestSynchronizerNoSamplesUsesLocalClock(t *testing.T) {
	s := NewSynchronizer()
	s.clock = fixedClock(1_700_000_000_000)
	if got := s.Offset(); got != 0 {
		t.Fatalf("expected zero offset without samples, got %d", got)
	}
	if got := s.TimeMillis(); got != 1_700_000_000_000 {
		t.Fatalf("expected local time passthrough, got %d", got)
	}
}

func TestSynchronizerMedianOffset(t *testing.T) {
	s := NewSynchronizer()
	s.clock = fixedClock(1_700_000_000_000)

	for _, serverMillis := range []int64{
		1_700_000_000_100, // +100
		1_700_000_000_250, // +250
		1_700_000_009_000, // +9000 outlier
	} {
		s.RecordServerTime(serverMillis)
	}

	if got := s.Offset(); got != 250 {
		t.Fatalf("expected median offset 250, got %d", got)
	}
	if got := s.TimeMillis(); got != 1_700_000_000_250 {
		t.Fatalf("expected adjusted time 1700000000250, got %d", got)
	}
}

func TestSynchronizerEvenSampleCountAveragesMiddle(t *testing.T) {
	s := NewSynchronizer()
	s.clock = fixedClock(0)
	s.RecordServerTime(100)
	s.RecordServerTime(300)
	if got := s.Offset(); got != 200 {
		t.Fatalf("expected averaged median 200, got %d", got)
	}
}

func TestSynchronizerWindowBounded(t *testing.T) {
	s := NewSynchronizer()
	s.clock = fixedClock(0)
	for i := 0; i < maxOffsetSamples*2; i++ {
		s.RecordServerTime(int64(i))
	}
	s.mu.RLock()
	n := len(s.offsets)
	s.mu.RUnlock()
	if n != maxOffsetSamples {
		t.Fatalf("expected offset window capped at %d, got %d", maxOffsetSamples, n)
	}
}
