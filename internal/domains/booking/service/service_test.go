package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"grandhotel/config"
	kafkaMocks "grandhotel/infras/kafka/mocks"
	mailerMocks "grandhotel/infras/mailer/mocks"
	"grandhotel/infras/otel/mocks"
	bookingMocks "grandhotel/internal/domains/booking/mocks"
	"grandhotel/internal/domains/booking/model"
	"grandhotel/internal/domains/booking/model/dto"
	"grandhotel/internal/domains/booking/service"
	guestModel "grandhotel/internal/domains/guest/model"
	guestDto "grandhotel/internal/domains/guest/model/dto"
	guestSvcMocks "grandhotel/internal/domains/guest/service/mocks"
	roomMocks "grandhotel/internal/domains/room/mocks"
	roomModel "grandhotel/internal/domains/room/model"
	cacheMocks "grandhotel/shared/cache/mocks"
	"grandhotel/shared/constant"
	"grandhotel/shared/failure"
	"grandhotel/shared/timezone"
)

type bookingMockSet struct {
	repo     *bookingMocks.MockBooking
	roomRepo *roomMocks.MockRoom
	guestSvc *guestSvcMocks.MockGuest
	cache    *cacheMocks.MockRedisCache
	kafka    *kafkaMocks.MockClient
	mailer   *mailerMocks.MockMailer
}

func newBookingService(ctrl *gomock.Controller) (service.Booking, bookingMockSet) {
	set := bookingMockSet{
		repo:     bookingMocks.NewMockBooking(ctrl),
		roomRepo: roomMocks.NewMockRoom(ctrl),
		guestSvc: guestSvcMocks.NewMockGuest(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		kafka:    kafkaMocks.NewMockClient(ctrl),
		mailer:   mailerMocks.NewMockMailer(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(set.repo, set.roomRepo, set.guestSvc, cfg, set.cache, mocks.NewOtel(), set.kafka, set.mailer)

	return svc, set
}

func stayDates(daysFromNow, nights int) (time.Time, time.Time) {
	checkIn := timezone.Today().AddDate(0, 0, daysFromNow)

	return checkIn, checkIn.AddDate(0, 0, nights)
}

func sellableRoom(id int64) roomModel.Room {
	return roomModel.Room{
		ID:            id,
		RoomNumber:    "101",
		RoomType:      constant.RoomTypeDouble,
		PricePerNight: 100,
		IsAvailable:   true,
	}
}

func hydratedBooking(id int64, checkIn, checkOut time.Time) model.Booking {
	return model.Booking{
		ID:             id,
		GuestID:        9,
		RoomID:         5,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		TotalPrice:     200,
		Status:         constant.BookingStatusConfirmed,
		GuestFirstName: "John",
		GuestLastName:  "Doe",
		GuestEmail:     "john@email.com",
		RoomNumber:     "101",
		RoomType:       constant.RoomTypeDouble,
		PricePerNight:  100,
	}
}

func guestDtoResponse() guestDto.GuestResponse {
	return guestDto.GuestResponse{
		ID:        9,
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@email.com",
		Phone:     "+1234567890",
	}
}

func allowAsyncSideEffects(set bookingMockSet) {
	set.mailer.EXPECT().SendBookingConfirmation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.mailer.EXPECT().SendCancellationNotice(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checkIn, checkOut := stayDates(7, 2)

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(set bookingMockSet)
		wantErr   string
	}{
		{
			name: "successful creation keeps the stated total price",
			req: dto.CreateBookingRequest{
				GuestID:      9,
				RoomID:       5,
				CheckInDate:  checkIn.Format(constant.StayDateFormat),
				CheckOutDate: checkOut.Format(constant.StayDateFormat),
				TotalPrice:   999,
			},
			setupMock: func(set bookingMockSet) {
				set.guestSvc.EXPECT().Get(gomock.Any(), int64(9)).Return(guestDtoResponse(), nil)
				set.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sellableRoom(5), nil)
				set.repo.EXPECT().ListConfirmedByRoom(gomock.Any(), int64(5)).Return([]model.Booking{}, nil)
				set.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(42), nil)

				hydrated := hydratedBooking(42, checkIn, checkOut)
				hydrated.TotalPrice = 999
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hydrated, nil)

				allowAsyncSideEffects(set)
			},
		},
		{
			name: "unknown guest is a bad request",
			req: dto.CreateBookingRequest{
				GuestID:      77,
				RoomID:       5,
				CheckInDate:  checkIn.Format(constant.StayDateFormat),
				CheckOutDate: checkOut.Format(constant.StayDateFormat),
				TotalPrice:   200,
			},
			setupMock: func(set bookingMockSet) {
				set.guestSvc.EXPECT().Get(gomock.Any(), int64(77)).Return(guestDtoResponse(), failure.NotFound("guest not found"))
			},
			wantErr: "guest does not exist",
		},
		{
			name: "past check-in is rejected",
			req: dto.CreateBookingRequest{
				GuestID:      9,
				RoomID:       5,
				CheckInDate:  timezone.Today().AddDate(0, 0, -1).Format(constant.StayDateFormat),
				CheckOutDate: checkOut.Format(constant.StayDateFormat),
				TotalPrice:   200,
			},
			setupMock: func(_ bookingMockSet) {},
			wantErr:   "check-in date cannot be in the past",
		},
		{
			name: "check-out before check-in is rejected",
			req: dto.CreateBookingRequest{
				GuestID:      9,
				RoomID:       5,
				CheckInDate:  checkOut.Format(constant.StayDateFormat),
				CheckOutDate: checkIn.Format(constant.StayDateFormat),
				TotalPrice:   200,
			},
			setupMock: func(_ bookingMockSet) {},
			wantErr:   "check-out date must be after check-in date",
		},
		{
			name: "malformed check-in date is rejected",
			req: dto.CreateBookingRequest{
				GuestID:      9,
				RoomID:       5,
				CheckInDate:  "15-01-2030",
				CheckOutDate: checkOut.Format(constant.StayDateFormat),
				TotalPrice:   200,
			},
			setupMock: func(_ bookingMockSet) {},
			wantErr:   "check-in date must use YYYY-MM-DD format",
		},
		{
			name: "overlapping confirmed stay blocks the room",
			req: dto.CreateBookingRequest{
				GuestID:      9,
				RoomID:       5,
				CheckInDate:  checkIn.Format(constant.StayDateFormat),
				CheckOutDate: checkOut.Format(constant.StayDateFormat),
				TotalPrice:   200,
			},
			setupMock: func(set bookingMockSet) {
				set.guestSvc.EXPECT().Get(gomock.Any(), int64(9)).Return(guestDtoResponse(), nil)
				set.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sellableRoom(5), nil)
				set.repo.EXPECT().ListConfirmedByRoom(gomock.Any(), int64(5)).Return([]model.Booking{
					{ID: 1, RoomID: 5, CheckInDate: checkIn.AddDate(0, 0, 1), CheckOutDate: checkOut.AddDate(0, 0, 1)},
				}, nil)
			},
			wantErr: "room is not available for the selected dates",
		},
		{
			name: "back-to-back stay does not block the room",
			req: dto.CreateBookingRequest{
				GuestID:      9,
				RoomID:       5,
				CheckInDate:  checkIn.Format(constant.StayDateFormat),
				CheckOutDate: checkOut.Format(constant.StayDateFormat),
				TotalPrice:   200,
			},
			setupMock: func(set bookingMockSet) {
				set.guestSvc.EXPECT().Get(gomock.Any(), int64(9)).Return(guestDtoResponse(), nil)
				set.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sellableRoom(5), nil)
				set.repo.EXPECT().ListConfirmedByRoom(gomock.Any(), int64(5)).Return([]model.Booking{
					{ID: 1, RoomID: 5, CheckInDate: checkIn.AddDate(0, 0, -3), CheckOutDate: checkIn},
				}, nil)
				set.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(43), nil)
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hydratedBooking(43, checkIn, checkOut), nil)

				allowAsyncSideEffects(set)
			},
		},
		{
			name: "room closed for sale is a conflict",
			req: dto.CreateBookingRequest{
				GuestID:      9,
				RoomID:       5,
				CheckInDate:  checkIn.Format(constant.StayDateFormat),
				CheckOutDate: checkOut.Format(constant.StayDateFormat),
				TotalPrice:   200,
			},
			setupMock: func(set bookingMockSet) {
				set.guestSvc.EXPECT().Get(gomock.Any(), int64(9)).Return(guestDtoResponse(), nil)

				closed := sellableRoom(5)
				closed.IsAvailable = false
				set.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(closed, nil)
			},
			wantErr: "room is not open for booking",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newBookingService(ctrl)
			tt.setupMock(set)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.req.TotalPrice, res.TotalPrice)
			assert.Equal(t, constant.BookingStatusConfirmed, res.Status)
		})
	}
}

func TestBookingService_CreateCustomerBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checkIn, checkOut := stayDates(10, 2)

	req := dto.CustomerBookingRequest{
		RoomID:       5,
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "john@email.com",
		Phone:        "+1234567890",
		CheckInDate:  checkIn.Format(constant.StayDateFormat),
		CheckOutDate: checkOut.Format(constant.StayDateFormat),
		TotalPrice:   200,
	}

	t.Run("creates the guest profile and the booking", func(t *testing.T) {
		svc, set := newBookingService(ctrl)

		set.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sellableRoom(5), nil)
		set.repo.EXPECT().ListConfirmedByRoom(gomock.Any(), int64(5)).Return([]model.Booking{}, nil)
		set.guestSvc.EXPECT().
			FindOrCreate(gomock.Any(), gomock.Any()).
			Return(guestModel.Guest{ID: 9, FirstName: "John", LastName: "Doe", Email: "john@email.com"}, nil)
		set.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(42), nil)
		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hydratedBooking(42, checkIn, checkOut), nil)

		allowAsyncSideEffects(set)

		res, err := svc.CreateCustomerBooking(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), res.ID)
		assert.Equal(t, "BK000042", res.ConfirmationNumber)
		assert.Equal(t, "John Doe", res.GuestName)
		assert.Equal(t, 2, res.Nights)
	})

	t.Run("guest profile failure aborts the booking", func(t *testing.T) {
		svc, set := newBookingService(ctrl)

		set.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sellableRoom(5), nil)
		set.repo.EXPECT().ListConfirmedByRoom(gomock.Any(), int64(5)).Return([]model.Booking{}, nil)
		set.guestSvc.EXPECT().
			FindOrCreate(gomock.Any(), gomock.Any()).
			Return(guestModel.Guest{}, errors.New("database error"))

		_, err := svc.CreateCustomerBooking(context.Background(), req)

		assert.Error(t, err)
	})

	t.Run("unknown room is a bad request", func(t *testing.T) {
		svc, set := newBookingService(ctrl)

		set.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)

		_, err := svc.CreateCustomerBooking(context.Background(), req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "room does not exist")
	})
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checkIn, checkOut := stayDates(7, 2)

	t.Run("cancelled booking reports its last state", func(t *testing.T) {
		svc, set := newBookingService(ctrl)

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hydratedBooking(42, checkIn, checkOut), nil)
		set.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		allowAsyncSideEffects(set)

		res, err := svc.Cancel(context.Background(), 42)

		assert.NoError(t, err)
		assert.Equal(t, constant.BookingStatusCancelled, res.Status)
		assert.Equal(t, "BK000042", res.ConfirmationNumber)
	})

	t.Run("missing booking is not found", func(t *testing.T) {
		svc, set := newBookingService(ctrl)

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := svc.Cancel(context.Background(), 404)

		assert.True(t, failure.IsNotFound(err))
	})
}

func TestBookingService_CancelCustomerBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checkIn, checkOut := stayDates(7, 2)

	t.Run("email match is case-insensitive", func(t *testing.T) {
		svc, set := newBookingService(ctrl)

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hydratedBooking(42, checkIn, checkOut), nil)
		set.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		allowAsyncSideEffects(set)

		res, err := svc.CancelCustomerBooking(context.Background(), 42, "JOHN@EMAIL.COM")

		assert.NoError(t, err)
		assert.Equal(t, constant.BookingStatusCancelled, res.Status)
	})

	t.Run("ownership mismatch looks like a missing booking", func(t *testing.T) {
		svc, set := newBookingService(ctrl)

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hydratedBooking(42, checkIn, checkOut), nil)

		_, err := svc.CancelCustomerBooking(context.Background(), 42, "someone.else@email.com")

		assert.True(t, failure.IsNotFound(err))
	})
}

func TestBookingService_IsRoomAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checkIn, checkOut := stayDates(7, 2)

	tests := []struct {
		name     string
		existing []model.Booking
		want     bool
	}{
		{
			name:     "no bookings",
			existing: []model.Booking{},
			want:     true,
		},
		{
			name: "overlap by one night",
			existing: []model.Booking{
				{CheckInDate: checkIn.AddDate(0, 0, 1), CheckOutDate: checkOut.AddDate(0, 0, 3)},
			},
			want: false,
		},
		{
			name: "existing stay ends on the new check-in day",
			existing: []model.Booking{
				{CheckInDate: checkIn.AddDate(0, 0, -2), CheckOutDate: checkIn},
			},
			want: true,
		},
		{
			name: "existing stay starts on the new check-out day",
			existing: []model.Booking{
				{CheckInDate: checkOut, CheckOutDate: checkOut.AddDate(0, 0, 2)},
			},
			want: true,
		},
		{
			name: "existing stay swallows the new one",
			existing: []model.Booking{
				{CheckInDate: checkIn.AddDate(0, 0, -1), CheckOutDate: checkOut.AddDate(0, 0, 1)},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newBookingService(ctrl)

			set.repo.EXPECT().ListConfirmedByRoom(gomock.Any(), int64(5)).Return(tt.existing, nil)

			available, err := svc.IsRoomAvailable(context.Background(), 5, checkIn, checkOut)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, available)
		})
	}
}

func TestBookingService_CheckAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checkIn, checkOut := stayDates(7, 2)

	t.Run("classifies rooms and keeps every stay of a blocked room", func(t *testing.T) {
		svc, set := newBookingService(ctrl)

		roomA := sellableRoom(1)
		roomB := sellableRoom(2)
		roomB.RoomNumber = "102"

		set.roomRepo.EXPECT().ListAvailable(gomock.Any()).Return([]roomModel.Room{roomA, roomB}, nil)
		set.repo.EXPECT().ListConfirmed(gomock.Any()).Return([]model.Booking{
			{
				ID:             1,
				RoomID:         2,
				CheckInDate:    checkIn,
				CheckOutDate:   checkOut,
				GuestFirstName: "John",
				GuestLastName:  "Doe",
			},
			{
				ID:             2,
				RoomID:         2,
				CheckInDate:    checkOut.AddDate(0, 0, 5),
				CheckOutDate:   checkOut.AddDate(0, 0, 7),
				GuestFirstName: "Jane",
				GuestLastName:  "Roe",
			},
		}, nil)

		res, err := svc.CheckAvailability(
			context.Background(),
			checkIn.Format(constant.StayDateFormat),
			checkOut.Format(constant.StayDateFormat),
		)

		assert.NoError(t, err)
		assert.Equal(t, []int64{1}, res.AvailableRooms)
		assert.Equal(t, 1, res.TotalAvailable)
		assert.Len(t, res.OccupiedRooms[2], 2)
		assert.Equal(t, "John Doe", res.OccupiedRooms[2][0].Guest)
	})

	t.Run("adjacent stays leave the room available", func(t *testing.T) {
		svc, set := newBookingService(ctrl)

		set.roomRepo.EXPECT().ListAvailable(gomock.Any()).Return([]roomModel.Room{sellableRoom(1)}, nil)
		set.repo.EXPECT().ListConfirmed(gomock.Any()).Return([]model.Booking{
			{ID: 1, RoomID: 1, CheckInDate: checkIn.AddDate(0, 0, -4), CheckOutDate: checkIn},
		}, nil)

		res, err := svc.CheckAvailability(
			context.Background(),
			checkIn.Format(constant.StayDateFormat),
			checkOut.Format(constant.StayDateFormat),
		)

		assert.NoError(t, err)
		assert.Equal(t, []int64{1}, res.AvailableRooms)
		assert.Empty(t, res.OccupiedRooms)
	})

	t.Run("invalid range is rejected before touching the repository", func(t *testing.T) {
		svc, _ := newBookingService(ctrl)

		_, err := svc.CheckAvailability(context.Background(), "2030-01-05", "2030-01-05")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "check-out date must be after check-in date")
	})
}

func TestBookingService_GetByEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checkIn, checkOut := stayDates(7, 2)

	svc, set := newBookingService(ctrl)

	set.repo.EXPECT().ListByEmail(gomock.Any(), "john@email.com").Return([]model.Booking{
		hydratedBooking(41, checkIn, checkOut),
		hydratedBooking(42, checkIn.AddDate(0, 0, 30), checkOut.AddDate(0, 0, 30)),
	}, nil)

	res, err := svc.GetByEmail(context.Background(), "john@email.com")

	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, "BK000041", res[0].ConfirmationNumber)
	assert.Equal(t, "BK000042", res[1].ConfirmationNumber)
}
