// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package syntax

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("address syntax validation", func() {

	DescribeTable("accepting well-formed addresses",
		func(addr string, normalized string) {
			res := Check(addr)
			Expect(res.Valid).To(BeTrue(), "unexpected reason: %s", res.Reason)
			Expect(res.Normalized).To(Equal(normalized))
			Expect(res.Reason).To(BeEmpty())
		},
		Entry("a plain address", "alice@example.com", "alice@example.com"),
		Entry("lowercasing only the domain part", "Alice@EXAMPLE.COM", "Alice@example.com"),
		Entry("trimming surrounding whitespace", "  bob@example.org  ", "bob@example.org"),
		Entry("plus tagging", "bob+lists@example.org", "bob+lists@example.org"),
		Entry("deeply dotted domains", "carol@mail.example.co.uk", "carol@mail.example.co.uk"),
		Entry("digits and hyphens in labels", "dan@mx-42.example.com", "dan@mx-42.example.com"),
	)

	DescribeTable("rejecting malformed addresses",
		func(addr string, reason string) {
			res := Check(addr)
			Expect(res.Valid).To(BeFalse())
			Expect(res.Normalized).To(Equal(addr), "failures must echo the original input")
			Expect(res.Reason).To(ContainSubstring(reason))
		},
		Entry("an empty line", "", "empty address"),
		Entry("no at sign at all", "not-an-email", "missing '@'"),
		Entry("a display name", "Alice <alice@example.com>", "not a bare address"),
		Entry("an angle-address", "<alice@example.com>", "not a bare address"),
		Entry("an undotted domain", "alice@localhost", "top-level domain"),
		Entry("an underscore in the domain", "alice@exa_mple.com", "invalid character"),
		Entry("a leading hyphen in a label", "alice@-example.com", "hyphen"),
		Entry("an all-numeric TLD", "alice@example.123", "all-numeric"),
		Entry("an overlong local part",
			strings.Repeat("a", 65)+"@example.com", "64 characters"),
		Entry("an overlong domain",
			"alice@"+strings.Repeat("x.", 127)+"example.com", "253 characters"),
	)

	It("is idempotent on already-normalized addresses", func() {
		first := Check("Eve@Example.COM")
		Expect(first.Valid).To(BeTrue())
		second := Check(first.Normalized)
		Expect(second).To(Equal(first))
	})

})
