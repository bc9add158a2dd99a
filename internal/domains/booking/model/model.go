package model

import (
	"fmt"
	"strings"
	"time"

	"grandhotel/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldGuestID      = "guest_id"
	FieldRoomID       = "room_id"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldTotalPrice   = "total_price"
	FieldStatus       = "status"
)

const hoursPerDay = 24

type Booking struct {
	ID           int64     `db:"id"             gen:"auto"`
	GuestID      int64     `db:"guest_id"`
	RoomID       int64     `db:"room_id"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	TotalPrice   float64   `db:"total_price"`
	Status       string    `db:"status"`

	// Read-only columns joined from guests and rooms.
	GuestFirstName string  `db:"guest_first_name" table:"guests" column:"first_name"`
	GuestLastName  string  `db:"guest_last_name"  table:"guests" column:"last_name"`
	GuestEmail     string  `db:"guest_email"      table:"guests" column:"email"`
	RoomNumber     string  `db:"room_number"      table:"rooms"`
	RoomType       string  `db:"room_type"        table:"rooms"`
	PricePerNight  float64 `db:"price_per_night"  table:"rooms"`

	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "JOIN guests ON bookings.guest_id = guests.id JOIN rooms ON bookings.room_id = rooms.id"
}

func (b Booking) GuestName() string {
	return strings.TrimSpace(b.GuestFirstName + " " + b.GuestLastName)
}

func (b Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / hoursPerDay)
}

// ConfirmationNumber renders a booking id as the guest-facing reference,
// e.g. id 42 becomes BK000042.
func ConfirmationNumber(id int64) string {
	return fmt.Sprintf("BK%06d", id)
}
