package matching

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/campusshare/roommate-backend/internal/domain"
)

var _ contactDirectory = &contactDirectoryMock{}

type contactDirectoryMock struct {
	GetContactSummariesFunc func(ctx context.Context, ownerIDs []uuid.UUID) (map[uuid.UUID]domain.ContactSummary, error)

	calls struct {
		GetContactSummaries []struct {
			Ctx      context.Context
			OwnerIDs []uuid.UUID
		}
	}
	lockGetContactSummaries sync.RWMutex
}

func (mock *contactDirectoryMock) GetContactSummaries(ctx context.Context, ownerIDs []uuid.UUID) (map[uuid.UUID]domain.ContactSummary, error) {
	if mock.GetContactSummariesFunc == nil {
		panic("contactDirectoryMock.GetContactSummariesFunc: method is nil but contactDirectory.GetContactSummaries was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		OwnerIDs []uuid.UUID
	}{Ctx: ctx, OwnerIDs: ownerIDs}
	mock.lockGetContactSummaries.Lock()
	mock.calls.GetContactSummaries = append(mock.calls.GetContactSummaries, callInfo)
	mock.lockGetContactSummaries.Unlock()
	return mock.GetContactSummariesFunc(ctx, ownerIDs)
}

func (mock *contactDirectoryMock) GetContactSummariesCalls() []struct {
	Ctx      context.Context
	OwnerIDs []uuid.UUID
} {
	mock.lockGetContactSummaries.RLock()
	calls := mock.calls.GetContactSummaries
	mock.lockGetContactSummaries.RUnlock()
	return calls
}
