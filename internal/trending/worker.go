package trending

import (
	"context"
	"log"
	"sync"
)

// Task is one unit of scoring work.
type Task func(ctx context.Context) error

// Pool fans scoring work out across a fixed set of goroutines. Workers
// start on construction and run until Close, which drains whatever is
// still queued. Submit and Close belong to a single producer goroutine.
type Pool struct {
	tasks chan Task
	wg    sync.WaitGroup
}

// NewPool starts a pool whose workers live until ctx is cancelled or the
// pool is closed.
func NewPool(ctx context.Context, workers int) *Pool {
	if workers < 1 {
		workers = 1
	}

	p := &Pool{tasks: make(chan Task, workers*2)}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.run(ctx, i)
	}
	return p
}

// Submit queues one task. A cancelled context unblocks the producer so a
// stopped pool cannot wedge it.
func (p *Pool) Submit(ctx context.Context, task Task) {
	select {
	case p.tasks <- task:
	case <-ctx.Done():
	}
}

// Close stops intake and blocks until every queued task has run.
func (p *Pool) Close() {
	close(p.tasks)
	p.wg.Wait()
}

func (p *Pool) run(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		select {
		case task, ok := <-p.tasks:
			if !ok {
				return
			}
			if err := task(ctx); err != nil {
				log.Printf("[ScorePool] worker %d: %v", id, err)
			}
		case <-ctx.Done():
			return
		}
	}
}
