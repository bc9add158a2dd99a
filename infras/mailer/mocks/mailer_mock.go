// Code generated by MockGen. DO NOT EDIT.
// Source: ./mailer.go
//
// Generated by this command:
//
//	mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	mailer "grandhotel/infras/mailer"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockMailer is a mock of Mailer interface.
type MockMailer struct {
	ctrl     *gomock.Controller
	recorder *MockMailerMockRecorder
	isgomock struct{}
}

// MockMailerMockRecorder is the mock recorder for MockMailer.
type MockMailerMockRecorder struct {
	mock *MockMailer
}

// NewMockMailer creates a new mock instance.
func NewMockMailer(ctrl *gomock.Controller) *MockMailer {
	mock := &MockMailer{ctrl: ctrl}
	mock.recorder = &MockMailerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMailer) EXPECT() *MockMailerMockRecorder {
	return m.recorder
}

// SendBookingConfirmation mocks base method.
func (m *MockMailer) SendBookingConfirmation(ctx context.Context, to string, notice mailer.BookingNotice) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendBookingConfirmation", ctx, to, notice)
	ret0, _ := ret[0].(error)
	return ret0
}

// SendBookingConfirmation indicates an expected call of SendBookingConfirmation.
func (mr *MockMailerMockRecorder) SendBookingConfirmation(ctx, to, notice any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendBookingConfirmation", reflect.TypeOf((*MockMailer)(nil).SendBookingConfirmation), ctx, to, notice)
}

// SendCancellationNotice mocks base method.
func (m *MockMailer) SendCancellationNotice(ctx context.Context, to string, notice mailer.CancellationNotice) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendCancellationNotice", ctx, to, notice)
	ret0, _ := ret[0].(error)
	return ret0
}

// SendCancellationNotice indicates an expected call of SendCancellationNotice.
func (mr *MockMailerMockRecorder) SendCancellationNotice(ctx, to, notice any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendCancellationNotice", reflect.TypeOf((*MockMailer)(nil).SendCancellationNotice), ctx, to, notice)
}
