// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

// AddressTask is a single raw address line to be validated, together with its
// position in the original input ordering. Tasks are immutable once created
// and are owned solely by the validation worker processing them.
type AddressTask struct {
	Addr  string `json:"address"` // the raw address line, as read from the input.
	Index int    `json:"index"`   // position in the original input ordering.
}

// ValidationRecord is the per-address verdict: the (normalized, where syntax
// validation succeeded) address, its validation [Status], and a human-readable
// reason. Every AddressTask yields exactly one ValidationRecord.
type ValidationRecord struct {
	Address string `json:"address"` // normalized address, or the raw input on syntax failure.
	Status  Status `json:"status"`  // validation verdict.
	Reason  string `json:"reason"`  // MX host list, record type, or failure reason.
	Index   int    `json:"index"`   // original input position, for deterministic sorting.
}

// Summary tallies a final set of validation records. Invalid is always derived
// as Total-Valid.
type Summary struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
}
