// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mailvet/mailvet/dnscheck"
	"github.com/mailvet/mailvet/report"
	"github.com/mailvet/mailvet/types"
	"github.com/mailvet/mailvet/validate"

	"github.com/gosuri/uilive"
	log "github.com/sirupsen/logrus"
)

// ValidateAndReport reads the list of email addresses from the specified
// file, validates them on a bounded worker pool with per-batch domain
// deduplication, writes the CSV report, and finally logs the tally.
func ValidateAndReport(ctx context.Context, inputPath string) error {
	addrs, err := readAddresses(inputPath)
	if err != nil {
		return fmt.Errorf("cannot read address list: %w", err)
	}
	log.Infof("loaded %d addresses from %s", len(addrs), inputPath)

	resolverOpts := []dnscheck.ResolverOption{
		dnscheck.WithTimeout(*queryTimeout),
	}
	if *nameserver != "" {
		resolverOpts = append(resolverOpts, dnscheck.WithNameserver(*nameserver))
	}
	resolver := dnscheck.New(resolverOpts...)

	// Create an empty (concurrency-safe) verdict tracker and immediately fire
	// off the rendering goroutine. The rendering will only stop after tracking
	// has finished because the verdict stream channel has been closed. We then
	// render a final update and end rendering, signalling the end of our
	// activities via renderingDone.
	tracker := report.NewTracker()
	trackingDone := make(chan struct{})
	renderingDone := make(chan struct{})

	go func() {
		term := uilive.New()
		renderer := newRenderer(term, len(addrs))
		defer func() {
			renderProgress(term, renderer, tracker)
			renderer.Stop()
			close(renderingDone)
		}()
		renderProgress(term, renderer, tracker)
		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				renderProgress(term, renderer, tracker)
			case <-trackingDone:
				return
			}
		}
	}()

	// Now lets put the required processing elements and their plumbing in
	// place.
	//
	//   - Pool producing verdict records from the list of addresses, with the
	//     domain cache deduplicating resolution work inside.
	//   - Tracker consuming these verdicts.
	//
	// Progress rendering is done on the tally collected by the Tracker.
	pool, verdicts := validate.New(int(*workerNumber), resolver.CheckDomain)
	go func() {
		_ = tracker.Track(ctx, verdicts)
		close(trackingDone)
	}()

	// Finally feed the address list into the pool, then close the verdict
	// stream and wait for all records to pass through tracking and get
	// rendered a last time.
	go func() {
		pool.ValidateAll(ctx, addrs)
		pool.StopWait()
	}()
	<-renderingDone

	records := tracker.Records()
	report.SortByIndex(records)
	records, summary := report.Summarize(records)
	if err := writeReport(*outputPath, records); err != nil {
		return fmt.Errorf("cannot write report: %w", err)
	}
	log.Infof("report written to %s", *outputPath)
	log.Infof("total=%d valid=%d invalid=%d",
		summary.Total, summary.Valid, summary.Invalid)
	return nil
}

// writeReport writes the CSV report to the specified path.
func writeReport(path string, records []types.ValidationRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// renderProgress snapshots the current verdict tally and then renders (and
// flushes) it to the terminal.
func renderProgress(term *uilive.Writer, r *renderer, tracker *report.Tracker) {
	r.Render(tracker.Tally())
	term.Flush()
}
