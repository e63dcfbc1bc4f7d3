package services

import (
	"context"
	"fmt"
	"rapper-ai/application/ports/outbound"
)

type taskResult[T any] struct {
	value T
	err   error
}

// dispatch runs task on the worker pool and waits for its result or for ctx
// to end. When the caller stops waiting, release is applied to a result that
// arrives later so that nothing it holds is leaked.
func dispatch[T any](ctx context.Context, workerPool outbound.TaskDispatcher, task func() (T, error), release func(T)) (T, error) {
	var zero T
	resultCh := make(chan taskResult[T], 1)

	err := workerPool.Submit(func() {
		defer func() {
			if p := recover(); p != nil {
				resultCh <- taskResult[T]{err: fmt.Errorf("task panicked: %v", p)}
			}
		}()
		value, err := task()
		resultCh <- taskResult[T]{value: value, err: err}
	})
	if err != nil {
		return zero, fmt.Errorf("failed to submit task to worker pool; %w", err)
	}

	select {
	case res := <-resultCh:
		return res.value, res.err
	case <-ctx.Done():
		if release != nil {
			go func() {
				res := <-resultCh
				if res.err == nil {
					release(res.value)
				}
			}()
		}
		return zero, ctx.Err()
	}
}
