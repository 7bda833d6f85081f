package matching

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/campusshare/roommate-backend/internal/domain"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetActiveProfileFunc   func(ctx context.Context, ownerID uuid.UUID) (*domain.RoommateProfile, error)
	ListActiveProfilesFunc func(ctx context.Context, excludingOwnerID uuid.UUID) ([]*domain.RoommateProfile, error)

	calls struct {
		GetActiveProfile []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		ListActiveProfiles []struct {
			Ctx              context.Context
			ExcludingOwnerID uuid.UUID
		}
	}
	lockGetActiveProfile   sync.RWMutex
	lockListActiveProfiles sync.RWMutex
}

func (mock *profileRepoMock) GetActiveProfile(ctx context.Context, ownerID uuid.UUID) (*domain.RoommateProfile, error) {
	if mock.GetActiveProfileFunc == nil {
		panic("profileRepoMock.GetActiveProfileFunc: method is nil but profileRepo.GetActiveProfile was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockGetActiveProfile.Lock()
	mock.calls.GetActiveProfile = append(mock.calls.GetActiveProfile, callInfo)
	mock.lockGetActiveProfile.Unlock()
	return mock.GetActiveProfileFunc(ctx, ownerID)
}

func (mock *profileRepoMock) GetActiveProfileCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockGetActiveProfile.RLock()
	calls := mock.calls.GetActiveProfile
	mock.lockGetActiveProfile.RUnlock()
	return calls
}

func (mock *profileRepoMock) ListActiveProfiles(ctx context.Context, excludingOwnerID uuid.UUID) ([]*domain.RoommateProfile, error) {
	if mock.ListActiveProfilesFunc == nil {
		panic("profileRepoMock.ListActiveProfilesFunc: method is nil but profileRepo.ListActiveProfiles was just called")
	}
	callInfo := struct {
		Ctx              context.Context
		ExcludingOwnerID uuid.UUID
	}{Ctx: ctx, ExcludingOwnerID: excludingOwnerID}
	mock.lockListActiveProfiles.Lock()
	mock.calls.ListActiveProfiles = append(mock.calls.ListActiveProfiles, callInfo)
	mock.lockListActiveProfiles.Unlock()
	return mock.ListActiveProfilesFunc(ctx, excludingOwnerID)
}

func (mock *profileRepoMock) ListActiveProfilesCalls() []struct {
	Ctx              context.Context
	ExcludingOwnerID uuid.UUID
} {
	mock.lockListActiveProfiles.RLock()
	calls := mock.calls.ListActiveProfiles
	mock.lockListActiveProfiles.RUnlock()
	return calls
}
