// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import "fmt"

// Status indicates the validation verdict for an email address, which is
// either valid or invalid.
type Status int

// The validation verdicts of an email address.
const (
	Invalid Status = iota // address failed syntax or domain validation.
	Valid                 // address successfully validated.
)

// String returns the clear-text representation of a Status value.
func (s Status) String() string {
	switch s {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	}
	return fmt.Sprintf("Status(%d)", s)
}
