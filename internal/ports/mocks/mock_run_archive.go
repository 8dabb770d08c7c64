package mocks

import (
	"context"

	"github.com/bnema/seqlcs/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockRunArchive struct {
	mock.Mock
}

type MockRunArchive_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRunArchive) EXPECT() *MockRunArchive_Expecter {
	return &MockRunArchive_Expecter{mock: &_m.Mock}
}

func (_m *MockRunArchive) Save(ctx context.Context, run domain.Run) error {
	ret := _m.Called(ctx, run)
	return ret.Error(0)
}

func (_e *MockRunArchive_Expecter) Save(ctx interface{}, run interface{}) *mock.Call {
	return _e.mock.On("Save", ctx, run)
}

func (_m *MockRunArchive) ListRuns(ctx context.Context) ([]domain.Run, error) {
	ret := _m.Called(ctx)

	var runs []domain.Run
	if v := ret.Get(0); v != nil {
		runs = v.([]domain.Run)
	}

	return runs, ret.Error(1)
}

func (_e *MockRunArchive_Expecter) ListRuns(ctx interface{}) *mock.Call {
	return _e.mock.On("ListRuns", ctx)
}

func (_m *MockRunArchive) Entries(ctx context.Context, id domain.RunID) ([]domain.ReportEntry, error) {
	ret := _m.Called(ctx, id)

	var entries []domain.ReportEntry
	if v := ret.Get(0); v != nil {
		entries = v.([]domain.ReportEntry)
	}

	return entries, ret.Error(1)
}

func (_e *MockRunArchive_Expecter) Entries(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Entries", ctx, id)
}

func NewMockRunArchive(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRunArchive {
	m := &MockRunArchive{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
