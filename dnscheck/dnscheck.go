// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package dnscheck

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"
)

// DefaultTimeout limits each individual query attempt unless overridden with
// [WithTimeout].
const DefaultTimeout = 3 * time.Second

// Resolution is the verdict on a domain's mail-capability. Detail names the
// satisfying evidence (the comma-joined MX exchange hosts, "A record", or
// "AAAA record") or otherwise the failure reason. Resolutions are immutable
// once made, so they can be cached and shared freely.
type Resolution struct {
	Resolvable bool   `json:"resolvable"`
	Detail     string `json:"detail"`
}

// Resolver checks domains for mail-capability by querying MX records, falling
// back to A and then AAAA records where a domain has no mail exchanges of its
// own. Resolvers keep no per-call state and are safe for concurrent use.
type Resolver struct {
	client     *dns.Client
	nameserver string
	timeout    time.Duration
}

// ResolverOption can be passed to New when creating new [Resolver] objects.
type ResolverOption func(*Resolver)

// New returns a new [Resolver] talking to the system's configured nameserver
// (as per /etc/resolv.conf), unless overridden using [WithNameserver]. Each
// query attempt is limited to [DefaultTimeout] unless overridden using
// [WithTimeout].
func New(options ...ResolverOption) *Resolver {
	r := &Resolver{
		nameserver: systemNameserver(),
		timeout:    DefaultTimeout,
	}
	for _, opt := range options {
		opt(r)
	}
	r.client = &dns.Client{
		Net:     "udp",
		Timeout: r.timeout,
	}
	return r
}

// WithNameserver sets the "host:port" address of the nameserver to query
// instead of the system's configured one.
func WithNameserver(addr string) ResolverOption {
	return func(r *Resolver) {
		r.nameserver = addr
	}
}

// WithTimeout sets the timeout for each individual query attempt.
func WithTimeout(timeout time.Duration) ResolverOption {
	return func(r *Resolver) {
		r.timeout = timeout
	}
}

// errNoSuchDomain classifies MX query outcomes that warrant falling back to
// A/AAAA queries: the domain doesn't exist, gave no MX answers, or its
// nameservers failed us. Everything else is a transient resolver error which
// must not trigger the fallback chain.
var errNoSuchDomain = errors.New("no such domain")

// CheckDomain checks whether the specified domain is mail-capable: it first
// queries the domain's MX records and, if the domain turns out to exist but
// to run without mail exchanges, falls back to A and then AAAA records.
// First success wins.
//
// A transport-level error during the MX query (such as a timeout) is terminal
// for this check and reported verbatim in the resolution detail; no fallback
// is attempted in that case, as the fallback queries would be doomed anyway.
func (r *Resolver) CheckDomain(ctx context.Context, domain string) Resolution {
	exchanges, err := r.queryMX(ctx, domain)
	switch {
	case err == nil:
		return Resolution{
			Resolvable: true,
			Detail:     strings.Join(exchanges, ", "),
		}
	case !errors.Is(err, errNoSuchDomain):
		return Resolution{Detail: "DNS error: " + err.Error()}
	}
	for _, fallback := range []struct {
		qtype  uint16
		detail string
	}{
		{dns.TypeA, "A record"},
		{dns.TypeAAAA, "AAAA record"},
	} {
		if r.hasRecord(ctx, domain, fallback.qtype) {
			return Resolution{
				Resolvable: true,
				Detail:     fallback.detail,
			}
		}
	}
	return Resolution{Detail: "domain not found"}
}

// queryMX returns the domain's MX exchange hostnames in answer order. It
// returns an error wrapping errNoSuchDomain for the
// no-answer/nxdomain/no-nameservers outcome class, and the plain transport or
// protocol error otherwise.
func (r *Resolver) queryMX(ctx context.Context, domain string) ([]string, error) {
	reply, err := r.exchange(ctx, domain, dns.TypeMX)
	if err != nil {
		return nil, err
	}
	switch reply.Rcode {
	case dns.RcodeSuccess:
		// fall through to harvesting the answer section.
	case dns.RcodeNameError, dns.RcodeServerFailure, dns.RcodeRefused:
		return nil, fmt.Errorf("%w: %s", errNoSuchDomain, dns.RcodeToString[reply.Rcode])
	default:
		return nil, fmt.Errorf("MX query for %q returned %s",
			domain, dns.RcodeToString[reply.Rcode])
	}
	exchanges := []string{}
	for _, rr := range reply.Answer {
		if mx, ok := rr.(*dns.MX); ok {
			exchanges = append(exchanges, strings.TrimSuffix(mx.Mx, "."))
		}
	}
	if len(exchanges) == 0 {
		return nil, fmt.Errorf("%w: no MX answers", errNoSuchDomain)
	}
	return exchanges, nil
}

// hasRecord reports whether the domain resolves to at least one record of the
// specified (A or AAAA) type. Any error at this fallback stage simply counts
// as "no".
func (r *Resolver) hasRecord(ctx context.Context, domain string, qtype uint16) bool {
	reply, err := r.exchange(ctx, domain, qtype)
	if err != nil || reply.Rcode != dns.RcodeSuccess {
		return false
	}
	for _, rr := range reply.Answer {
		if rr.Header().Rrtype == qtype {
			return true
		}
	}
	return false
}

// exchange runs a single query attempt against the resolver's nameserver,
// enforcing the configured per-attempt timeout.
func (r *Resolver) exchange(ctx context.Context, domain string, qtype uint16) (*dns.Msg, error) {
	msg := dns.Msg{
		MsgHdr: dns.MsgHdr{Id: dns.Id(), RecursionDesired: true},
	}
	msg.SetQuestion(dns.Fqdn(domain), qtype)
	qctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	reply, _, err := r.client.ExchangeContext(qctx, &msg, r.nameserver)
	return reply, err
}

// systemNameserver returns the first nameserver configured in
// /etc/resolv.conf, falling back to the local resolver if there is none.
func systemNameserver() string {
	cfg, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil || len(cfg.Servers) == 0 {
		return "127.0.0.1:53"
	}
	return net.JoinHostPort(cfg.Servers[0], cfg.Port)
}
