/*
Package validate implements mailvet's concurrent validation pipeline: a
goroutine-limited [Pool] fans the address list out to validation workers and
streams one [github.com/mailvet/mailvet/types.ValidationRecord] per address
over its results channel. Each worker first syntax-checks its address and only
then consults the shared [DomainCache] for the mail-capability of the
address's domain, so that a domain shared by many addresses is resolved over
the network exactly once.

Usage

	pool, records := validate.New(10, resolver.CheckDomain)
	go func() {
	    pool.ValidateAll(ctx, addrs)
	    pool.StopWait()
	}()
	for record := range records {
	    // one verdict per input address, in no particular order.
	}

Alternatively, [Run] does the plumbing and collects the complete record set.

# Acknowledgements

Under its hood, [Pool] leverages [github.com/gammazero/workerpool] as the
limiting goroutine pool.

[github.com/gammazero/workerpool]: https://github.com/gammazero/workerpool
*/
package validate
