// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package report

import (
	"context"
	"sync"

	"github.com/mailvet/mailvet/types"
)

// Tracker collects verdict records from an event stream (channel) as the
// validation pool produces them. A typical use case is to track a
// still-running batch so that a progress display can snapshot the
// intermediate tally while the final record set is being assembled.
type Tracker struct {
	mu      sync.Mutex
	records []types.ValidationRecord
}

// NewTracker returns a new and properly initialized Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		records: []types.ValidationRecord{},
	}
}

// Add records a single verdict.
func (t *Tracker) Add(record types.ValidationRecord) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.records = append(t.records, record)
}

// Records returns a copy of all verdicts collected so far.
func (t *Tracker) Records() []types.ValidationRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	records := make([]types.ValidationRecord, len(t.records))
	copy(records, t.records)
	return records
}

// Tally returns the summary of the verdicts collected so far. While the pool
// is still draining this is an intermediate snapshot; after [Tracker.Track]
// has returned it is the final report summary.
func (t *Tracker) Tally() types.Summary {
	t.mu.Lock()
	defer t.mu.Unlock()
	valid := 0
	for _, record := range t.records {
		if record.Status == types.Valid {
			valid++
		}
	}
	return types.Summary{
		Total:   len(t.records),
		Valid:   valid,
		Invalid: len(t.records) - valid,
	}
}

// Track verdict records received from the specified verdict channel until the
// channel is closed or the context done. Track only returns after processing
// all verdicts or when the context is done.
func (t *Tracker) Track(ctx context.Context, verdicts <-chan types.ValidationRecord) error {
	for {
		select {
		case record, ok := <-verdicts:
			if !ok {
				return nil
			}
			t.Add(record)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
