package prof

import (
	"sync"
	"time"
)

// Entry represents a single timing measurement.
type Entry struct {
	Label string
	Dur   time.Duration
}

var (
	mu     sync.Mutex
	record []Entry
	counts map[string]int64
)

// Track logs the duration since start with the given name.
func Track(start time.Time, name string) {
	elapsed := time.Since(start)
	mu.Lock()
	record = append(record, Entry{Label: name, Dur: elapsed})
	mu.Unlock()
}

// Count adds delta to the named counter.
func Count(name string, delta int64) {
	mu.Lock()
	if counts == nil {
		counts = make(map[string]int64)
	}
	counts[name] += delta
	mu.Unlock()
}

// SnapshotAndReset returns the collected timing entries and clears them.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, len(record))
	copy(out, record)
	record = nil
	return out
}

// CountersAndReset returns the collected counters and clears them.
func CountersAndReset() map[string]int64 {
	mu.Lock()
	defer mu.Unlock()
	out := counts
	counts = nil
	if out == nil {
		out = map[string]int64{}
	}
	return out
}
