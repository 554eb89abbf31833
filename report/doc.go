/*
Package report aggregates the verdict records produced by the validation pool
into the final report artifacts: [Summarize] tallies the totals, [SortByIndex]
restores the original input ordering, and [WriteCSV] emits the tabular report.
[Tracker] additionally offers a concurrency-safe collector for consuming a
still-streaming verdict channel, for instance to drive a live progress
display while the pool is draining.
*/
package report
