// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("reading address lists", func() {

	It("skips blank lines and comments", func() {
		path := filepath.Join(GinkgoT().TempDir(), "emails.txt")
		Expect(os.WriteFile(path, []byte(`# the team
alice@example.com

   bob@example.org
# temporarily disabled:
# carol@example.net
	not-an-email
`), 0o644)).To(Succeed())
		Expect(readAddresses(path)).To(Equal([]string{
			"alice@example.com",
			"bob@example.org",
			"not-an-email",
		}))
	})

	It("reports a missing input file", func() {
		_, err := readAddresses(filepath.Join(GinkgoT().TempDir(), "nada.txt"))
		Expect(err).To(MatchError(os.ErrNotExist))
	})

})
