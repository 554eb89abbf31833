// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package syntax

import (
	"net/mail"
	"strings"
)

// Result is the outcome of syntactically validating a single address. On
// success, Normalized carries the address with its domain part lowercased; on
// failure, Normalized echoes the original input unmodified and Reason tells in
// clear text what was wrong. Results are created once and never mutated.
type Result struct {
	Valid      bool   `json:"valid"`
	Normalized string `json:"normalized"` // address with lowercased domain, or the original input.
	Reason     string `json:"reason,omitempty"`
}

// Check syntactically validates the specified raw address line, returning a
// [Result] with the normalized form of the address on success. Check is a pure
// function and safe for concurrent use.
func Check(addr string) Result {
	trimmed := strings.TrimSpace(addr)
	if trimmed == "" {
		return failure(addr, "empty address")
	}
	parsed, err := mail.ParseAddress(trimmed)
	if err != nil {
		return failure(addr, strings.TrimPrefix(err.Error(), "mail: "))
	}
	// ParseAddress also accepts display names and angle-addresses; an address
	// list entry must be a bare addr-spec, though.
	if parsed.Name != "" || parsed.Address != trimmed {
		return failure(addr, "not a bare address")
	}
	at := strings.LastIndex(trimmed, "@")
	local, domain := trimmed[:at], trimmed[at+1:]
	if len(local) > 64 {
		return failure(addr, "local part exceeds 64 characters")
	}
	if reason := checkDomain(domain); reason != "" {
		return failure(addr, reason)
	}
	return Result{
		Valid:      true,
		Normalized: local + "@" + strings.ToLower(domain),
	}
}

// checkDomain vets the domain part of an address, returning "" if it looks
// like a legitimate dotted DNS name, and a clear-text reason otherwise.
func checkDomain(domain string) string {
	if len(domain) > 253 {
		return "domain exceeds 253 characters"
	}
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return "domain is missing a top-level domain"
	}
	for _, label := range labels {
		if label == "" {
			return "domain contains an empty label"
		}
		if len(label) > 63 {
			return "domain label exceeds 63 characters"
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return "domain label starts or ends with a hyphen"
		}
		for _, r := range label {
			if !isLabelRune(r) {
				return "domain contains an invalid character"
			}
		}
	}
	if isAllDigits(labels[len(labels)-1]) {
		return "top-level domain cannot be all-numeric"
	}
	return ""
}

func isLabelRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
		return true
	}
	return false
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// failure returns an invalid Result echoing the original, unmodified input.
func failure(addr string, reason string) Result {
	return Result{
		Normalized: addr,
		Reason:     reason,
	}
}
