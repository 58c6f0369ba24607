package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"newscred/internal/domain"
	"newscred/internal/metrics"
	"newscred/internal/ports"
)

// ErrQueueFull is returned when the analysis backlog has no room left.
var ErrQueueFull = errors.New("analysis queue is full")

// Handler processes one analysis task snapshot.
type Handler func(ctx context.Context, task domain.AnalysisTask)

// Pool runs background analysis tasks on a fixed set of goroutines. Each
// task is an independent run over its own snapshot; the pool shares nothing
// between them.
type Pool struct {
	size   int
	tasks  chan domain.AnalysisTask
	logger *slog.Logger
	wg     sync.WaitGroup
}

var _ ports.TaskQueue = (*Pool)(nil)

// NewPool builds a pool with the given worker count and queue capacity.
func NewPool(size, queueSize int, logger *slog.Logger) *Pool {
	if size <= 0 {
		size = 1
	}
	if queueSize <= 0 {
		queueSize = size
	}
	return &Pool{
		size:   size,
		tasks:  make(chan domain.AnalysisTask, queueSize),
		logger: logger,
	}
}

// Enqueue hands a task snapshot to the pool without blocking the caller.
func (p *Pool) Enqueue(task domain.AnalysisTask) error {
	select {
	case p.tasks <- task:
		metrics.QueueDepth.Set(float64(len(p.tasks)))
		return nil
	default:
		return ErrQueueFull
	}
}

// Start launches the workers. They drain remaining queued tasks and exit
// once the context is cancelled and the queue is closed via Stop.
func (p *Pool) Start(ctx context.Context, handler Handler) {
	for i := 0; i < p.size; i++ {
		p.wg.Add(1)
		go func(id int) {
			defer p.wg.Done()
			for {
				select {
				case task, ok := <-p.tasks:
					if !ok {
						return
					}
					metrics.QueueDepth.Set(float64(len(p.tasks)))
					p.logger.Debug("worker picked up task", "worker", id, "article", task.HashID)
					handler(ctx, task)
				case <-ctx.Done():
					return
				}
			}
		}(i)
	}
}

// Stop closes the intake and waits for in-flight tasks to finish.
func (p *Pool) Stop() {
	close(p.tasks)
	p.wg.Wait()
}
