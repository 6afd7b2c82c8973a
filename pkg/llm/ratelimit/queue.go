// Package ratelimit provides a FIFO request queue that enforces a minimum
// spacing between task executions. The Mistral adapter uses it to honor the
// vendor's strict 1 request/second quota.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Task is one unit of queued work.
type Task func(ctx context.Context) (any, error)

type queued struct {
	ctx    context.Context
	task   Task
	result chan outcome
}

type outcome struct {
	value any
	err   error
}

// Queue serializes task execution in strict submission order with at least
// minInterval between the end of one task and the start of the next. A single
// drain goroutine runs at a time; Enqueue during an active drain hands the
// task to that drain rather than spawning a second one.
type Queue struct {
	mu       sync.Mutex
	pending  []*queued
	draining bool
	last     time.Time
	interval time.Duration
}

// New creates a queue with the given minimum inter-request interval.
func New(minInterval time.Duration) *Queue {
	return &Queue{interval: minInterval}
}

// Enqueue submits a task and blocks until it has run (or ctx is done while
// waiting for the result). A task's failure is delivered only to its own
// caller; the queue keeps processing subsequent tasks.
func (q *Queue) Enqueue(ctx context.Context, task Task) (any, error) {
	item := &queued{ctx: ctx, task: task, result: make(chan outcome, 1)}

	q.mu.Lock()
	q.pending = append(q.pending, item)
	start := !q.draining
	if start {
		q.draining = true
	}
	q.mu.Unlock()

	if start {
		go q.drain()
	}

	select {
	case out := <-item.result:
		return out.value, out.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// drain runs queued tasks one at a time until the queue is empty. It rechecks
// for items that arrived between emptying the queue and clearing the in-flight
// guard, so a racing Enqueue never strands a task.
func (q *Queue) drain() {
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.draining = false
			q.mu.Unlock()
			return
		}
		item := q.pending[0]
		q.pending = q.pending[1:]
		wait := q.interval - time.Since(q.last)
		q.mu.Unlock()

		if wait > 0 {
			select {
			case <-time.After(wait):
			case <-item.ctx.Done():
				q.mu.Lock()
				q.last = time.Now()
				q.mu.Unlock()
				item.result <- outcome{err: item.ctx.Err()}
				continue
			}
		}

		value, err := item.task(item.ctx)

		q.mu.Lock()
		q.last = time.Now()
		q.mu.Unlock()

		item.result <- outcome{value: value, err: err}
	}
}
