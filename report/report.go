// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package report

import (
	"sort"

	"github.com/mailvet/mailvet/types"
)

// Summarize tallies the specified final record set, returning the records
// unchanged together with their [types.Summary]. The invalid count is always
// derived as total minus valid, so valid+invalid always adds up to the total
// regardless of the order the pool produced the records in.
func Summarize(records []types.ValidationRecord) ([]types.ValidationRecord, types.Summary) {
	valid := 0
	for _, record := range records {
		if record.Status == types.Valid {
			valid++
		}
	}
	return records, types.Summary{
		Total:   len(records),
		Valid:   valid,
		Invalid: len(records) - valid,
	}
}

// SortByIndex sorts a record set in place by original task index, restoring
// the input ordering for deterministic report emission.
func SortByIndex(records []types.ValidationRecord) {
	sort.Slice(records, func(a, b int) bool {
		return records[a].Index < records[b].Index
	})
}
