package dto

import (
	"grandhotel/internal/domains/room/model"
	"grandhotel/shared"
	gDto "grandhotel/shared/dto"
	gModel "grandhotel/shared/model"
	"grandhotel/shared/timezone"
)

type CreateRoomRequest struct {
	RoomNumber    string  `json:"room_number"     validate:"required,max=10"`
	RoomType      string  `json:"room_type"       validate:"required,oneof=Single Double Suite Deluxe Presidential"`
	PricePerNight float64 `json:"price_per_night" validate:"required,gt=0"`
	IsAvailable   *bool   `json:"is_available"    validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	available := true
	if c.IsAvailable != nil {
		available = *c.IsAvailable
	}

	return model.Room{
		RoomNumber:    c.RoomNumber,
		RoomType:      c.RoomType,
		PricePerNight: c.PricePerNight,
		IsAvailable:   available,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber    string   `db:"room_number"     json:"room_number"     validate:"omitempty,max=10"`
	RoomType      string   `db:"room_type"       json:"room_type"       validate:"omitempty,oneof=Single Double Suite Deluxe Presidential"`
	PricePerNight *float64 `db:"price_per_night" json:"price_per_night" validate:"omitempty,gt=0"`
	IsAvailable   *bool    `db:"is_available"    json:"is_available"    validate:"omitempty"`
}

type RoomResponse struct {
	ID            int64    `json:"id"`
	RoomNumber    string   `json:"room_number"`
	RoomType      string   `json:"room_type"`
	PricePerNight float64  `json:"price_per_night"`
	IsAvailable   bool     `json:"is_available"`
	Description   string   `json:"description"`
	Capacity      string   `json:"capacity"`
	Features      []string `json:"features"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(mod model.Room) {
	r.ID = mod.ID
	r.RoomNumber = mod.RoomNumber
	r.RoomType = mod.RoomType
	r.PricePerNight = mod.PricePerNight
	r.IsAvailable = mod.IsAvailable

	if info, ok := model.TypeCatalog[mod.RoomType]; ok {
		r.Description = info.Description
		r.Capacity = info.Capacity
		r.Features = info.Features
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
