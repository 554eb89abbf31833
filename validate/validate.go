// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package validate

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/mailvet/mailvet/syntax"
	"github.com/mailvet/mailvet/types"

	"github.com/gammazero/workerpool"
)

// DefaultWidth is the number of parallel validation workers used when a Pool
// is created with a non-positive size.
const DefaultWidth = 10

// Pool validates email addresses on a goroutine-limited worker pool and then
// streams the per-address [types.ValidationRecord] verdicts to a results
// channel. Each worker syntax-checks its address first and resolves the
// address's domain only afterwards, going through a shared [DomainCache] so
// that no domain is ever resolved more than once per batch.
type Pool struct {
	checkSyntax func(string) syntax.Result // syntax validation, pure.
	resolve     ResolveFunc                // domain resolution, network-bound.
	cache       *DomainCache               // the only state shared between workers.
	workers     *workerpool.WorkerPool
	records     chan types.ValidationRecord // results stream channel.
	stopOnce    sync.Once
}

// PoolOption can be passed to New when creating new [Pool] objects.
type PoolOption func(*Pool)

// New returns a new [Pool] with a maximum worker pool of the specified size as
// well as its “verdict stream”. The verdict channel sends exactly one
// ValidationRecord per submitted address task, in no particular order, and is
// closed by [Pool.StopWait] after all submitted tasks have been accounted for.
//
// Resolution of the domains of syntactically fine addresses is carried out by
// the specified resolve function, deduplicated per batch through a
// [DomainCache].
//
// The new pool defaults to [syntax.Check] for syntax validation and to a
// fresh domain cache; both can be overridden during creation using the
// [WithSyntaxValidator] and [WithDomainCache] options.
func New(size int, resolve ResolveFunc, options ...PoolOption) (*Pool, <-chan types.ValidationRecord) {
	if size <= 0 {
		size = DefaultWidth
	}
	records := make(chan types.ValidationRecord, size)
	pool := &Pool{
		checkSyntax: syntax.Check,
		resolve:     resolve,
		cache:       NewDomainCache(),
		workers:     workerpool.New(size),
		records:     records,
	}
	for _, opt := range options {
		opt(pool)
	}
	return pool, records
}

// WithSyntaxValidator replaces the default [syntax.Check] syntax validation.
// The replacement must be a pure function, safe for concurrent use.
func WithSyntaxValidator(check func(string) syntax.Result) PoolOption {
	return func(p *Pool) {
		p.checkSyntax = check
	}
}

// WithDomainCache replaces the pool's fresh domain cache, for sharing one
// cache across multiple pools.
func WithDomainCache(cache *DomainCache) PoolOption {
	return func(p *Pool) {
		p.cache = cache
	}
}

// Validate submits a single address task for validation, where it gets
// enqueued to be processed by an available validation worker. Validate does
// not block.
//
// If the specified context gets cancelled, verdicts of tasks still in flight
// won't be sent to the verdict stream anymore; spurious verdicts might still
// appear on the stream due to the uncontrollable order of verdict sending and
// context cancellation detection.
func (p *Pool) Validate(ctx context.Context, task types.AddressTask) {
	p.workers.Submit(func() {
		record := p.process(ctx, task)
		select {
		case p.records <- record:
		case <-ctx.Done():
		}
	})
}

// ValidateAll submits all addresses of the specified list for validation,
// tasked with their list positions. Like [Pool.Validate] it only enqueues and
// does not block.
func (p *Pool) ValidateAll(ctx context.Context, addrs []string) {
	for idx, addr := range addrs {
		p.Validate(ctx, types.AddressTask{Addr: addr, Index: idx})
	}
}

// process turns a single address task into its verdict record. A panic
// anywhere in a task's processing is accounted for as an internal error
// verdict for just that task, so one crashing task never takes the batch
// down with it.
func (p *Pool) process(ctx context.Context, task types.AddressTask) (record types.ValidationRecord) {
	defer func() {
		if r := recover(); r != nil {
			record = types.ValidationRecord{
				Address: task.Addr,
				Status:  types.Invalid,
				Reason:  fmt.Sprintf("internal error: %v", r),
				Index:   task.Index,
			}
		}
	}()
	syn := p.checkSyntax(task.Addr)
	if !syn.Valid {
		// Syntax failures short-circuit: no point in wasting a network
		// round-trip on an address that cannot be delivered to anyway.
		return types.ValidationRecord{
			Address: task.Addr,
			Status:  types.Invalid,
			Reason:  "invalid syntax: " + syn.Reason,
			Index:   task.Index,
		}
	}
	domain := strings.ToLower(syn.Normalized[strings.LastIndex(syn.Normalized, "@")+1:])
	resolution := p.cache.GetOrResolve(ctx, domain, p.resolve)
	status := types.Invalid
	if resolution.Resolvable {
		status = types.Valid
	}
	return types.ValidationRecord{
		Address: syn.Normalized,
		Status:  status,
		Reason:  resolution.Detail,
		Index:   task.Index,
	}
}

// StopWait waits for all enqueued validation tasks to finish, then shuts the
// worker pool down and finally closes the verdict stream channel.
func (p *Pool) StopWait() {
	p.stopOnce.Do(func() {
		p.workers.StopWait()
		close(p.records)
	})
}

// Run validates the specified address list on a pool of the specified width
// and returns the collected record set after all tasks have been accounted
// for, exactly one record per input address. The records come in no
// particular order; sort them by task index for input-ordered reporting.
func Run(ctx context.Context, addrs []string, width int, resolve ResolveFunc, options ...PoolOption) []types.ValidationRecord {
	pool, verdicts := New(width, resolve, options...)
	collected := make(chan []types.ValidationRecord)
	go func() {
		records := make([]types.ValidationRecord, 0, len(addrs))
		for record := range verdicts {
			records = append(records, record)
		}
		collected <- records
	}()
	pool.ValidateAll(ctx, addrs)
	pool.StopWait()
	return <-collected
}
