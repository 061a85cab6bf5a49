package profile

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/runprhq/runpr-backend/internal/domain"
)

var _ recordRepo = &recordRepoMock{}

type recordRepoMock struct {
	ListByUserFunc   func(ctx context.Context, userID uuid.UUID) ([]domain.PersonalRecord, error)
	DeleteByUserFunc func(ctx context.Context, userID uuid.UUID) error
	BulkInsertFunc   func(ctx context.Context, records []domain.PersonalRecord) error

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		DeleteByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		BulkInsert []struct {
			Ctx     context.Context
			Records []domain.PersonalRecord
		}
	}
	lockListByUser   sync.RWMutex
	lockDeleteByUser sync.RWMutex
	lockBulkInsert   sync.RWMutex
}

func (mock *recordRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.PersonalRecord, error) {
	if mock.ListByUserFunc == nil {
		panic("recordRepoMock.ListByUserFunc: method is nil but recordRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *recordRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *recordRepoMock) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if mock.DeleteByUserFunc == nil {
		panic("recordRepoMock.DeleteByUserFunc: method is nil but recordRepo.DeleteByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockDeleteByUser.Lock()
	mock.calls.DeleteByUser = append(mock.calls.DeleteByUser, callInfo)
	mock.lockDeleteByUser.Unlock()
	return mock.DeleteByUserFunc(ctx, userID)
}

func (mock *recordRepoMock) DeleteByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockDeleteByUser.RLock()
	calls := mock.calls.DeleteByUser
	mock.lockDeleteByUser.RUnlock()
	return calls
}

func (mock *recordRepoMock) BulkInsert(ctx context.Context, records []domain.PersonalRecord) error {
	if mock.BulkInsertFunc == nil {
		panic("recordRepoMock.BulkInsertFunc: method is nil but recordRepo.BulkInsert was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Records []domain.PersonalRecord
	}{Ctx: ctx, Records: records}
	mock.lockBulkInsert.Lock()
	mock.calls.BulkInsert = append(mock.calls.BulkInsert, callInfo)
	mock.lockBulkInsert.Unlock()
	return mock.BulkInsertFunc(ctx, records)
}

func (mock *recordRepoMock) BulkInsertCalls() []struct {
	Ctx     context.Context
	Records []domain.PersonalRecord
} {
	mock.lockBulkInsert.RLock()
	calls := mock.calls.BulkInsert
	mock.lockBulkInsert.RUnlock()
	return calls
}
