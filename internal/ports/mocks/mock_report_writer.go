package mocks

import (
	"context"

	"github.com/bnema/seqlcs/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockReportWriter struct {
	mock.Mock
}

type MockReportWriter_Expecter struct {
	mock *mock.Mock
}

func (_m *MockReportWriter) EXPECT() *MockReportWriter_Expecter {
	return &MockReportWriter_Expecter{mock: &_m.Mock}
}

func (_m *MockReportWriter) Write(ctx context.Context, path string, entries []domain.ReportEntry) error {
	ret := _m.Called(ctx, path, entries)
	return ret.Error(0)
}

func (_e *MockReportWriter_Expecter) Write(ctx interface{}, path interface{}, entries interface{}) *mock.Call {
	return _e.mock.On("Write", ctx, path, entries)
}

func NewMockReportWriter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportWriter {
	m := &MockReportWriter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
