// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package report

import (
	"encoding/csv"
	"io"

	"github.com/mailvet/mailvet/types"
)

// csvHeader is the column layout of the tabular report.
var csvHeader = []string{"address", "status", "reason"}

// WriteCSV writes the specified record set as a CSV table with an
// address/status/reason header row. Records are written in the order given;
// call [SortByIndex] first for an input-ordered report.
func WriteCSV(w io.Writer, records []types.ValidationRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, record := range records {
		if err := cw.Write([]string{
			record.Address,
			record.Status.String(),
			record.Reason,
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
