package dto

import (
	"time"

	"grandhotel/internal/domains/booking/model"
	"grandhotel/shared"
	"grandhotel/shared/constant"
	gDto "grandhotel/shared/dto"
	gModel "grandhotel/shared/model"
	"grandhotel/shared/timezone"
)

// CreateBookingRequest is the management path: the guest already exists and
// the stated total price is taken as-is.
type CreateBookingRequest struct {
	GuestID      int64   `json:"guest_id"       validate:"required"`
	RoomID       int64   `json:"room_id"        validate:"required"`
	CheckInDate  string  `json:"check_in_date"  validate:"required,staydate"`
	CheckOutDate string  `json:"check_out_date" validate:"required,staydate"`
	TotalPrice   float64 `json:"total_price"    validate:"required,gt=0"`
}

func (c *CreateBookingRequest) ToModel(user string, checkIn, checkOut time.Time) model.Booking {
	return model.Booking{
		GuestID:      c.GuestID,
		RoomID:       c.RoomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalPrice:   c.TotalPrice,
		Status:       constant.BookingStatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// CustomerBookingRequest is the self-service path: the guest profile is
// resolved (or created) from the contact details.
type CustomerBookingRequest struct {
	RoomID       int64   `json:"room_id"        validate:"required"`
	FirstName    string  `json:"first_name"     validate:"required,max=100"`
	LastName     string  `json:"last_name"      validate:"omitempty,max=100"`
	Email        string  `json:"email"          validate:"required,email,max=255"`
	Phone        string  `json:"phone"          validate:"required,max=30"`
	CheckInDate  string  `json:"check_in_date"  validate:"required,staydate"`
	CheckOutDate string  `json:"check_out_date" validate:"required,staydate"`
	TotalPrice   float64 `json:"total_price"    validate:"required,gt=0"`
}

type CancelCustomerBookingRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type BookingResponse struct {
	ID                 int64   `json:"id"`
	GuestID            int64   `json:"guest_id"`
	RoomID             int64   `json:"room_id"`
	GuestName          string  `json:"guest_name"`
	GuestEmail         string  `json:"guest_email"`
	RoomNumber         string  `json:"room_number"`
	RoomType           string  `json:"room_type"`
	CheckInDate        string  `json:"check_in_date"`
	CheckOutDate       string  `json:"check_out_date"`
	Nights             int     `json:"nights"`
	TotalPrice         float64 `json:"total_price"`
	Status             string  `json:"status"`
	ConfirmationNumber string  `json:"confirmation_number"`
	gDto.Metadata
}

func (b *BookingResponse) FromModel(mod model.Booking) {
	b.ID = mod.ID
	b.GuestID = mod.GuestID
	b.RoomID = mod.RoomID
	b.GuestName = mod.GuestName()
	b.GuestEmail = mod.GuestEmail
	b.RoomNumber = mod.RoomNumber
	b.RoomType = mod.RoomType
	b.CheckInDate = mod.CheckInDate.Format(constant.StayDateFormat)
	b.CheckOutDate = mod.CheckOutDate.Format(constant.StayDateFormat)
	b.Nights = mod.Nights()
	b.TotalPrice = mod.TotalPrice
	b.Status = mod.Status
	b.ConfirmationNumber = model.ConfirmationNumber(mod.ID)
	b.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (b *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	b.TotalData = totalData
	b.TotalPage = shared.CalculateTotalPage(totalData, limit)

	b.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		b.Bookings[i].FromModel(mod)
	}
}

// OccupiedRange is one confirmed stay blocking a room.
type OccupiedRange struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Guest    string `json:"guest"`
}

type AvailabilityResponse struct {
	CheckInDate    string                    `json:"check_in_date"`
	CheckOutDate   string                    `json:"check_out_date"`
	AvailableRooms []int64                   `json:"available_rooms"`
	OccupiedRooms  map[int64][]OccupiedRange `json:"occupied_rooms"`
	TotalAvailable int                       `json:"total_available"`
}

// BookingEvent is the payload published to the booking events topic.
type BookingEvent struct {
	Event              string  `json:"event"`
	BookingID          int64   `json:"booking_id"`
	ConfirmationNumber string  `json:"confirmation_number"`
	RoomID             int64   `json:"room_id"`
	RoomNumber         string  `json:"room_number"`
	GuestEmail         string  `json:"guest_email"`
	CheckInDate        string  `json:"check_in_date"`
	CheckOutDate       string  `json:"check_out_date"`
	TotalPrice         float64 `json:"total_price"`
	OccurredAt         string  `json:"occurred_at"`
}

func NewBookingEvent(event string, mod model.Booking) BookingEvent {
	return BookingEvent{
		Event:              event,
		BookingID:          mod.ID,
		ConfirmationNumber: model.ConfirmationNumber(mod.ID),
		RoomID:             mod.RoomID,
		RoomNumber:         mod.RoomNumber,
		GuestEmail:         mod.GuestEmail,
		CheckInDate:        mod.CheckInDate.Format(constant.StayDateFormat),
		CheckOutDate:       mod.CheckOutDate.Format(constant.StayDateFormat),
		TotalPrice:         mod.TotalPrice,
		OccurredAt:         timezone.Now().Format(constant.DateFormat),
	}
}
