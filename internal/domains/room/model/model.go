package model

import (
	"grandhotel/shared/constant"
	"grandhotel/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldRoomNumber    = "room_number"
	FieldRoomType      = "room_type"
	FieldPricePerNight = "price_per_night"
	FieldIsAvailable   = "is_available"
)

type Room struct {
	ID            int64   `db:"id"              gen:"auto"`
	RoomNumber    string  `db:"room_number"`
	RoomType      string  `db:"room_type"`
	PricePerNight float64 `db:"price_per_night"`
	IsAvailable   bool    `db:"is_available"`
	model.Metadata
}

// TypeInfo describes one room class as presented to guests.
type TypeInfo struct {
	Description string
	Capacity    string
	Features    []string
}

// TypeNames lists the room classes in presentation order.
var TypeNames = []string{
	constant.RoomTypeSingle,
	constant.RoomTypeDouble,
	constant.RoomTypeSuite,
	constant.RoomTypeDeluxe,
	constant.RoomTypePresidential,
}

// TypeCatalog holds the guest-facing description of each room class.
var TypeCatalog = map[string]TypeInfo{
	constant.RoomTypeSingle: {
		Description: "Perfect for solo travelers with comfortable single bed",
		Capacity:    "1 Guest",
		Features:    []string{"Free WiFi", "Air Conditioning", "Private Bathroom", "TV"},
	},
	constant.RoomTypeDouble: {
		Description: "Ideal for couples with queen-size bed and city view",
		Capacity:    "2 Guests",
		Features:    []string{"Free WiFi", "Air Conditioning", "Private Bathroom", "TV", "Mini Fridge"},
	},
	constant.RoomTypeSuite: {
		Description: "Luxury suite with separate living area for extended stays",
		Capacity:    "2-3 Guests",
		Features:    []string{"Free WiFi", "Air Conditioning", "Private Bathroom", "TV", "Mini Fridge", "Seating Area"},
	},
	constant.RoomTypeDeluxe: {
		Description: "Premium room with enhanced comfort and elegant furnishings",
		Capacity:    "2-3 Guests",
		Features:    []string{"Free WiFi", "Air Conditioning", "Private Bathroom", "TV", "Mini Fridge", "Balcony"},
	},
	constant.RoomTypePresidential: {
		Description: "Ultimate luxury experience with premium amenities",
		Capacity:    "4 Guests",
		Features:    []string{"Free WiFi", "Air Conditioning", "Private Bathroom", "TV", "Mini Fridge", "Balcony", "Room Service", "Jacuzzi"},
	},
}
