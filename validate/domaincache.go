// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package validate

import (
	"context"
	"sync"

	"github.com/mailvet/mailvet/dnscheck"
)

// ResolveFunc checks a single domain for mail-capability. It is expected to
// block on network I/O and to be safely callable from multiple concurrent
// workers.
type ResolveFunc func(ctx context.Context, domain string) dnscheck.Resolution

// DomainCache memoizes domain resolutions so that unnecessary duplicate
// network lookups for addresses sharing the same domain can be avoided.
//
// The cache enforces a strict exactly-once policy: the first worker asking
// for a never-before-seen domain gets elected to resolve it (outside the
// cache's lock), while concurrent workers asking for the same domain wait for
// that single resolution to be committed. A committed resolution is never
// replaced.
type DomainCache struct {
	mu sync.Mutex
	m  map[string]*domainEntry // lowercase domain -> (pending or committed) resolution
}

// domainEntry is a cache slot for a single domain. Its resolution res must
// only be read after done has been closed.
type domainEntry struct {
	done chan struct{}
	res  dnscheck.Resolution
}

// NewDomainCache returns a new and properly initialized DomainCache object.
func NewDomainCache() *DomainCache {
	return &DomainCache{
		m: map[string]*domainEntry{},
	}
}

// GetOrResolve returns the cached resolution for the specified (lowercase)
// domain, resolving it first via resolve if this is the first time the domain
// is seen. Concurrent callers asking for a domain whose resolution is still
// in flight block until the elected caller has committed the resolution, or
// until their context is done, whatever happens first.
//
// The resolver is always invoked outside the cache's lock, so a slow
// resolution never stalls workers validating addresses of other domains. If
// the resolver panics, a failure resolution is committed on its behalf before
// the panic continues to unwind, so waiting callers never hang.
func (c *DomainCache) GetOrResolve(ctx context.Context, domain string, resolve ResolveFunc) dnscheck.Resolution {
	c.mu.Lock()
	entry, ok := c.m[domain]
	if ok {
		c.mu.Unlock()
		select {
		case <-entry.done:
			return entry.res
		case <-ctx.Done():
			return dnscheck.Resolution{Detail: "DNS error: " + ctx.Err().Error()}
		}
	}
	entry = &domainEntry{done: make(chan struct{})}
	c.m[domain] = entry
	c.mu.Unlock()
	// We got elected to resolve this domain. Commit whatever we have when
	// we're done, even if the resolver panics under our feet: waiters
	// synchronize on the done channel, never on the lock.
	entry.res = dnscheck.Resolution{Detail: "internal error: resolution never completed"}
	defer close(entry.done)
	entry.res = resolve(ctx, domain)
	return entry.res
}
