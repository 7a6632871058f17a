package eventual

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/casualjim/eventual/internal/registry"
	"github.com/casualjim/eventual/pkg/slogx"
	"github.com/casualjim/eventual/pkg/uuidx"
	"github.com/fogfish/opts"
	"github.com/go-openapi/strfmt"
)

// PoolExecutor runs actions on a fixed set of worker goroutines instead of
// spawning one goroutine per deferred. Use it when constructing deferreds at
// a volume where goroutine-per-action becomes a resource concern.
//
// Scheduling is always concurrent: Execute hands the action to a worker and
// returns. When the submit queue is full, Execute blocks until a worker
// frees a slot; that back-pressure is the point of bounding the pool.
// Fault mode options apply exactly as they do on the plain executor.
type PoolExecutor[T any, E error] struct {
	cfg      Config
	tasks    chan func()
	inflight registry.Registry[strfmt.DateTime]

	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewPoolExecutor builds a pool with the given number of workers and submit
// queue depth. WithScheduling is ignored; the pool is inherently concurrent.
func NewPoolExecutor[T any, E error](workers, depth int, options ...opts.Option[Config]) (*PoolExecutor[T, E], error) {
	if workers < 1 {
		return nil, fmt.Errorf("pool requires at least one worker, got %d", workers)
	}
	if depth < 0 {
		return nil, fmt.Errorf("pool queue depth cannot be negative, got %d", depth)
	}

	cfg := Config{onFault: PanicFaultHandler}
	if err := opts.Apply(&cfg, options); err != nil {
		return nil, err
	}

	p := &PoolExecutor[T, E]{
		cfg:      cfg,
		tasks:    make(chan func(), depth),
		inflight: registry.New[strfmt.DateTime](),
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p, nil
}

func (p *PoolExecutor[T, E]) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		task()
	}
}

// Execute submits the action to the pool. It blocks while the submit queue
// is full. Submitting after Close panics on the closed channel.
func (p *PoolExecutor[T, E]) Execute(action Action[T, E], resolve Resolver[T], reject Rejecter[E]) {
	jobID := uuidx.New()
	p.inflight.Put(jobID.String(), strfmt.DateTime(time.Now()))

	p.tasks <- func() {
		defer p.inflight.Del(jobID.String())
		slog.Debug("running pooled action", slogx.Stringer("job_id", jobID))
		runAction(p.cfg, action, resolve, reject)
	}
}

// InFlight reports the number of actions submitted but not yet finished,
// queued ones included.
func (p *PoolExecutor[T, E]) InFlight() int {
	return p.inflight.Len()
}

// Close stops accepting work and waits for the workers to drain the queue.
func (p *PoolExecutor[T, E]) Close() {
	p.closeOnce.Do(func() {
		close(p.tasks)
	})
	p.wg.Wait()
}
