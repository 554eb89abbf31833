// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/mailvet/mailvet/types"
)

// renderer renders the terminal progress display, based on the verdict tally
// snapshots passed to its Render method.
type renderer struct {
	total   int // number of addresses in the batch.
	w       io.Writer
	spinner *spinner
}

// newRenderer returns a renderer object rendering to the specified io.Writer.
// total is the overall number of addresses to be validated, so that progress
// can be shown as "done of total".
func newRenderer(w io.Writer, total int) *renderer {
	sp := newSpinner()
	sp.Start(*spinnerInterval)
	return &renderer{
		total:   total,
		w:       w,
		spinner: sp,
	}
}

// Stop the renderer's background ticker.
func (r *renderer) Stop() {
	r.spinner.Stop()
}

// Render the given verdict tally snapshot.
func (r *renderer) Render(tally types.Summary) {
	if tally.Total < r.total {
		fmt.Fprintf(r.w, "%svalidating %s of %s addresses: %s %s\n",
			pendingStyle.Styled(r.spinner.Spinner()),
			countStyle.Styled(fmt.Sprintf("%d", tally.Total)),
			countStyle.Styled(fmt.Sprintf("%d", r.total)),
			validStyle.Styled(fmt.Sprintf("✔ %d", tally.Valid)),
			invalidStyle.Styled(fmt.Sprintf("× %d", tally.Invalid)))
		return
	}
	fmt.Fprintf(r.w, "validated %s addresses: %s %s\n",
		countStyle.Styled(fmt.Sprintf("%d", tally.Total)),
		validStyle.Styled(fmt.Sprintf("✔ %d valid", tally.Valid)),
		invalidStyle.Styled(fmt.Sprintf("× %d invalid", tally.Invalid)))
}
