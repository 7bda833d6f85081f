package matching

import (
	"context"
	"sync"
)

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunReadOnlyFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunReadOnly []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunReadOnly sync.RWMutex
}

func (mock *txManagerMock) RunReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunReadOnlyFunc == nil {
		panic("txManagerMock.RunReadOnlyFunc: method is nil but txManager.RunReadOnly was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunReadOnly.Lock()
	mock.calls.RunReadOnly = append(mock.calls.RunReadOnly, callInfo)
	mock.lockRunReadOnly.Unlock()
	return mock.RunReadOnlyFunc(ctx, fn)
}

func (mock *txManagerMock) RunReadOnlyCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunReadOnly.RLock()
	calls := mock.calls.RunReadOnly
	mock.lockRunReadOnly.RUnlock()
	return calls
}
