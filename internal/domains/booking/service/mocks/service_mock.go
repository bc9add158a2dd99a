// Code generated by MockGen. DO NOT EDIT.
// Source: ./service.go
//
// Generated by this command:
//
//	mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	dto "grandhotel/internal/domains/booking/model/dto"
	dto0 "grandhotel/shared/dto"
	reflect "reflect"
	time "time"

	gomock "go.uber.org/mock/gomock"
)

// MockBooking is a mock of Booking interface.
type MockBooking struct {
	ctrl     *gomock.Controller
	recorder *MockBookingMockRecorder
	isgomock struct{}
}

// MockBookingMockRecorder is the mock recorder for MockBooking.
type MockBookingMockRecorder struct {
	mock *MockBooking
}

// NewMockBooking creates a new mock instance.
func NewMockBooking(ctrl *gomock.Controller) *MockBooking {
	mock := &MockBooking{ctrl: ctrl}
	mock.recorder = &MockBookingMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBooking) EXPECT() *MockBookingMockRecorder {
	return m.recorder
}

// Cancel mocks base method.
func (m *MockBooking) Cancel(ctx context.Context, id int64) (dto.BookingResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Cancel", ctx, id)
	ret0, _ := ret[0].(dto.BookingResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Cancel indicates an expected call of Cancel.
func (mr *MockBookingMockRecorder) Cancel(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Cancel", reflect.TypeOf((*MockBooking)(nil).Cancel), ctx, id)
}

// CancelCustomerBooking mocks base method.
func (m *MockBooking) CancelCustomerBooking(ctx context.Context, id int64, email string) (dto.BookingResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CancelCustomerBooking", ctx, id, email)
	ret0, _ := ret[0].(dto.BookingResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CancelCustomerBooking indicates an expected call of CancelCustomerBooking.
func (mr *MockBookingMockRecorder) CancelCustomerBooking(ctx, id, email any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CancelCustomerBooking", reflect.TypeOf((*MockBooking)(nil).CancelCustomerBooking), ctx, id, email)
}

// CheckAvailability mocks base method.
func (m *MockBooking) CheckAvailability(ctx context.Context, checkIn, checkOut string) (dto.AvailabilityResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CheckAvailability", ctx, checkIn, checkOut)
	ret0, _ := ret[0].(dto.AvailabilityResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CheckAvailability indicates an expected call of CheckAvailability.
func (mr *MockBookingMockRecorder) CheckAvailability(ctx, checkIn, checkOut any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CheckAvailability", reflect.TypeOf((*MockBooking)(nil).CheckAvailability), ctx, checkIn, checkOut)
}

// Count mocks base method.
func (m *MockBooking) Count(ctx context.Context, req dto0.QueryParams, filter dto0.FilterGroup) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Count", ctx, req, filter)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Count indicates an expected call of Count.
func (mr *MockBookingMockRecorder) Count(ctx, req, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Count", reflect.TypeOf((*MockBooking)(nil).Count), ctx, req, filter)
}

// Create mocks base method.
func (m *MockBooking) Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, req)
	ret0, _ := ret[0].(dto.BookingResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockBookingMockRecorder) Create(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockBooking)(nil).Create), ctx, req)
}

// CreateCustomerBooking mocks base method.
func (m *MockBooking) CreateCustomerBooking(ctx context.Context, req dto.CustomerBookingRequest) (dto.BookingResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateCustomerBooking", ctx, req)
	ret0, _ := ret[0].(dto.BookingResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateCustomerBooking indicates an expected call of CreateCustomerBooking.
func (mr *MockBookingMockRecorder) CreateCustomerBooking(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateCustomerBooking", reflect.TypeOf((*MockBooking)(nil).CreateCustomerBooking), ctx, req)
}

// Get mocks base method.
func (m *MockBooking) Get(ctx context.Context, id int64) (dto.BookingResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, id)
	ret0, _ := ret[0].(dto.BookingResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockBookingMockRecorder) Get(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockBooking)(nil).Get), ctx, id)
}

// GetAll mocks base method.
func (m *MockBooking) GetAll(ctx context.Context, req dto0.QueryParams, filter dto0.FilterGroup) (dto.GetBookingsResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAll", ctx, req, filter)
	ret0, _ := ret[0].(dto.GetBookingsResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAll indicates an expected call of GetAll.
func (mr *MockBookingMockRecorder) GetAll(ctx, req, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAll", reflect.TypeOf((*MockBooking)(nil).GetAll), ctx, req, filter)
}

// GetByEmail mocks base method.
func (m *MockBooking) GetByEmail(ctx context.Context, email string) ([]dto.BookingResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByEmail", ctx, email)
	ret0, _ := ret[0].([]dto.BookingResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByEmail indicates an expected call of GetByEmail.
func (mr *MockBookingMockRecorder) GetByEmail(ctx, email any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByEmail", reflect.TypeOf((*MockBooking)(nil).GetByEmail), ctx, email)
}

// IsRoomAvailable mocks base method.
func (m *MockBooking) IsRoomAvailable(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsRoomAvailable", ctx, roomID, checkIn, checkOut)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IsRoomAvailable indicates an expected call of IsRoomAvailable.
func (mr *MockBookingMockRecorder) IsRoomAvailable(ctx, roomID, checkIn, checkOut any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsRoomAvailable", reflect.TypeOf((*MockBooking)(nil).IsRoomAvailable), ctx, roomID, checkIn, checkOut)
}
