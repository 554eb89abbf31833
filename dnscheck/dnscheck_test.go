// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package dnscheck

import (
	"context"
	"net"
	"time"

	"github.com/miekg/dns"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

// testZone serves a small hand-rolled zone for exercising the MX→A→AAAA
// fallback chain without ever leaving the host.
func testZone(w dns.ResponseWriter, req *dns.Msg) {
	q := req.Question[0]
	m := new(dns.Msg)
	m.SetReply(req)
	switch q.Name {
	case "mail-capable.test.":
		if q.Qtype == dns.TypeMX {
			m.Answer = append(m.Answer,
				testRR("mail-capable.test. 60 IN MX 10 mx1.mail-capable.test."),
				testRR("mail-capable.test. 60 IN MX 20 mx2.mail-capable.test."))
		}
	case "a-only.test.":
		if q.Qtype == dns.TypeA {
			m.Answer = append(m.Answer,
				testRR("a-only.test. 60 IN A 192.0.2.1"))
		}
	case "aaaa-only.test.":
		if q.Qtype == dns.TypeAAAA {
			m.Answer = append(m.Answer,
				testRR("aaaa-only.test. 60 IN AAAA 2001:db8::1"))
		}
	case "black-hole.test.":
		return // never answer anything, let the client time out.
	case "broken.test.":
		m.Rcode = dns.RcodeNotImplemented
	default:
		m.Rcode = dns.RcodeNameError
	}
	_ = w.WriteMsg(m)
}

func testRR(s string) dns.RR {
	rr, err := dns.NewRR(s)
	if err != nil {
		panic(err)
	}
	return rr
}

var _ = Describe("domain mail-capability checks", func() {

	var resolver *Resolver

	BeforeEach(func() {
		pc := Successful(net.ListenPacket("udp", "127.0.0.1:0"))
		srv := &dns.Server{PacketConn: pc, Handler: dns.HandlerFunc(testZone)}
		go func() { _ = srv.ActivateAndServe() }()
		DeferCleanup(func() { Expect(srv.Shutdown()).To(Succeed()) })
		resolver = New(
			WithNameserver(pc.LocalAddr().String()),
			WithTimeout(250*time.Millisecond),
		)
	})

	It("reports the MX exchanges of a mail-capable domain", NodeTimeout(10*time.Second), func(ctx context.Context) {
		res := resolver.CheckDomain(ctx, "mail-capable.test")
		Expect(res.Resolvable).To(BeTrue())
		Expect(res.Detail).To(Equal("mx1.mail-capable.test, mx2.mail-capable.test"))
	})

	It("falls back to A records for a domain without mail exchanges", NodeTimeout(10*time.Second), func(ctx context.Context) {
		res := resolver.CheckDomain(ctx, "a-only.test")
		Expect(res.Resolvable).To(BeTrue())
		Expect(res.Detail).To(Equal("A record"))
	})

	It("falls back to AAAA records as the last resort", NodeTimeout(10*time.Second), func(ctx context.Context) {
		res := resolver.CheckDomain(ctx, "aaaa-only.test")
		Expect(res.Resolvable).To(BeTrue())
		Expect(res.Detail).To(Equal("AAAA record"))
	})

	It("finds a non-existing domain to be not mail-capable", NodeTimeout(10*time.Second), func(ctx context.Context) {
		res := resolver.CheckDomain(ctx, "no-such.test")
		Expect(res.Resolvable).To(BeFalse())
		Expect(res.Detail).To(Equal("domain not found"))
	})

	It("reports a timed-out MX query instead of falling back", NodeTimeout(10*time.Second), func(ctx context.Context) {
		res := resolver.CheckDomain(ctx, "black-hole.test")
		Expect(res.Resolvable).To(BeFalse())
		Expect(res.Detail).To(HavePrefix("DNS error: "))
	})

	It("reports unexpected response codes at the MX step verbatim", NodeTimeout(10*time.Second), func(ctx context.Context) {
		res := resolver.CheckDomain(ctx, "broken.test")
		Expect(res.Resolvable).To(BeFalse())
		Expect(res.Detail).To(ContainSubstring("NOTIMP"))
	})

})
