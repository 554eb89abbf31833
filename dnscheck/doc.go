/*
Package dnscheck implements mailvet's mail-capability probe for email domains.
A [Resolver] checks whether a domain is able to receive mail at all by
querying its MX records, falling back to A and then AAAA records for domains
that run their mail exchange on the domain's own host.

Usage

	resolver := dnscheck.New(
	    dnscheck.WithTimeout(3*time.Second),
	)
	resolution := resolver.CheckDomain(ctx, "example.com")
	// resolution.Resolvable tells whether the domain can receive mail,
	// resolution.Detail names the satisfying record(s) or the failure.

A Resolver keeps no per-call state, so a single Resolver can be shared by any
number of concurrent validation workers.

# Acknowledgements

Under its hood, [Resolver] leverages [github.com/miekg/dns] for wire-level
control over the individual MX/A/AAAA queries and their response codes.

[github.com/miekg/dns]: https://github.com/miekg/dns
*/
package dnscheck
