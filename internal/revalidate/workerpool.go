package revalidate

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Wait()
}

type Task func() error

// WorkerPool runs queued tasks on a fixed number of goroutines until the
// context passed to NewWorkerPool is done.
type WorkerPool struct {
	ctx  context.Context
	pool chan Task
	wg   sync.WaitGroup
}

func NewWorkerPool(ctx context.Context, size int) *WorkerPool {
	if size < 1 {
		size = 1
	}
	wp := &WorkerPool{
		ctx:  ctx,
		pool: make(chan Task, size*16),
	}

	wp.wg.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for {
		select {
		case <-wp.ctx.Done():
			return
		case task := <-wp.pool:
			if err := task(); err != nil {
				zap.L().Error("Task execution failed", zap.Error(err))
			}
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-wp.ctx.Done():
		return wp.ctx.Err()
	case wp.pool <- task:
		return nil
	}
}

// Wait blocks until every worker has exited.
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}
