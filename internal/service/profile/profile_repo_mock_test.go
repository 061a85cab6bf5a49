package profile

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/runprhq/runpr-backend/internal/domain"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	UpsertFunc  func(ctx context.Context, p *domain.Profile, now time.Time) (*domain.Profile, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Upsert []struct {
			Ctx context.Context
			P   *domain.Profile
			Now time.Time
		}
	}
	lockGetByID sync.RWMutex
	lockUpsert  sync.RWMutex
}

func (mock *profileRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if mock.GetByIDFunc == nil {
		panic("profileRepoMock.GetByIDFunc: method is nil but profileRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *profileRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *profileRepoMock) Upsert(ctx context.Context, p *domain.Profile, now time.Time) (*domain.Profile, error) {
	if mock.UpsertFunc == nil {
		panic("profileRepoMock.UpsertFunc: method is nil but profileRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Profile
		Now time.Time
	}{Ctx: ctx, P: p, Now: now}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, p, now)
}

func (mock *profileRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	P   *domain.Profile
	Now time.Time
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
