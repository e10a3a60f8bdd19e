// Package worker replays independent matches in parallel. Each work item
// gets its own Match, so no engine state is shared between goroutines.
package worker

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessmatch-go/internal/engine"
)

// WorkItem is one move list to replay.
type WorkItem struct {
	Moves []string
	Index int // Original index for tracking
}

// ProcessResult is the outcome of replaying one WorkItem.
type ProcessResult struct {
	Index int
	Plies int          // moves applied before the end or the first error
	State engine.State // state after the last applied move
	FEN   string       // final position
	Hash  uint64       // Zobrist hash of the final position
	Error error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool replays work items on a fixed set of goroutines. Results arrive in
// completion order; callers reorder them by Index.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
	closeOnce   sync.Once
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the capacity of the work and result channels.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool. processFunc is required; by default
// there is 1 worker and a buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	p.wg.Add(p.numWorkers)
	for i := 0; i < p.numWorkers; i++ {
		go p.worker()
	}
}

// worker replays items until the work channel is closed. Once the pool is
// stopped, queued items are discarded so Close does not wait on them.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.stopped.Load() {
			continue
		}
		p.resultChan <- p.replay(item)
	}
}

// replay runs processFunc on item. A panic inside it, such as a position
// the oracle cannot parse, becomes the item's error instead of taking the
// whole batch down.
func (p *Pool) replay(item WorkItem) (result ProcessResult) {
	defer func() {
		if r := recover(); r != nil {
			result = ProcessResult{
				Index: item.Index,
				Error: fmt.Errorf("game %d: replay aborted: %v", item.Index+1, r),
			}
		}
	}()
	return p.processFunc(item)
}

// Submit queues item and reports whether it was accepted. Items submitted
// after Stop are dropped. Submit blocks while the work buffer is full.
func (p *Pool) Submit(item WorkItem) bool {
	if p.stopped.Load() {
		return false
	}
	p.workChan <- item
	return true
}

// Stop tells the workers to discard the items still queued. Replays
// already running finish and deliver their results.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and then closes the result
// channel. Calling it more than once is harmless.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.workChan)
		p.wg.Wait()
		close(p.resultChan)
	})
}

// Results returns the channel of replay results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of worker goroutines.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
