// Package mocksorted contains gomock mocks of the sorted package interfaces.
package mocksorted

import (
	reflect "reflect"

	sorted "github.com/cryptonstudio/crypton-sorted-list/types/sorted"
	gomock "github.com/golang/mock/gomock"
)

// MockHandler is a mock of Handler interface.
type MockHandler[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockHandlerMockRecorder[T]
}

// MockHandlerMockRecorder is the mock recorder for MockHandler.
type MockHandlerMockRecorder[T any] struct {
	mock *MockHandler[T]
}

// NewMockHandler creates a new mock instance.
func NewMockHandler[T any](ctrl *gomock.Controller) *MockHandler[T] {
	mock := &MockHandler[T]{ctrl: ctrl}
	mock.recorder = &MockHandlerMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHandler[T]) EXPECT() *MockHandlerMockRecorder[T] {
	return m.recorder
}

// OnAdd mocks base method.
func (m *MockHandler[T]) OnAdd(index int, value sorted.Value[T]) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnAdd", index, value)
}

// OnAdd indicates an expected call of OnAdd.
func (mr *MockHandlerMockRecorder[T]) OnAdd(index, value interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnAdd", reflect.TypeOf((*MockHandler[T])(nil).OnAdd), index, value)
}

// OnRemove mocks base method.
func (m *MockHandler[T]) OnRemove(index int, value sorted.Value[T]) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnRemove", index, value)
}

// OnRemove indicates an expected call of OnRemove.
func (mr *MockHandlerMockRecorder[T]) OnRemove(index, value interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnRemove", reflect.TypeOf((*MockHandler[T])(nil).OnRemove), index, value)
}

// OnClear mocks base method.
func (m *MockHandler[T]) OnClear(count int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnClear", count)
}

// OnClear indicates an expected call of OnClear.
func (mr *MockHandlerMockRecorder[T]) OnClear(count interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnClear", reflect.TypeOf((*MockHandler[T])(nil).OnClear), count)
}
