package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"grandhotel/internal/domains/booking/model"
	"grandhotel/internal/domains/booking/model/dto"
	"grandhotel/shared/constant"
)

// overlaps reports whether two half-open stay ranges [aIn, aOut) and
// [bIn, bOut) share at least one night. Back-to-back stays where one
// check-out equals the other check-in do not conflict.
func overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}

// IsRoomAvailable reports whether the room has no confirmed booking
// overlapping the given range. Only confirmed bookings block a room.
func (s *serviceImpl) IsRoomAvailable(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsRoomAvailable")
	defer scope.End()

	bookings, err := s.repo.ListConfirmedByRoom(ctx, roomID)
	if err != nil {
		log.Error().Err(err).Int64("roomID", roomID).Msg("failed to list confirmed bookings for room")

		return false, fmt.Errorf("failed to list confirmed bookings for room: %w", err)
	}

	for _, booking := range bookings {
		if overlaps(checkIn, checkOut, booking.CheckInDate, booking.CheckOutDate) {
			return false, nil
		}
	}

	return true, nil
}

// CheckAvailability classifies every sellable room as free or occupied for
// the given range. Occupied rooms carry all of their confirmed stays, not
// just the conflicting ones.
func (s *serviceImpl) CheckAvailability(ctx context.Context, checkInStr, checkOutStr string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, err := parseStayRange(checkInStr, checkOutStr)
	if err != nil {
		return res, err
	}

	rooms, err := s.roomRepo.ListAvailable(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list available rooms")

		return res, fmt.Errorf("failed to list available rooms: %w", err)
	}

	confirmed, err := s.repo.ListConfirmed(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list confirmed bookings")

		return res, fmt.Errorf("failed to list confirmed bookings: %w", err)
	}

	byRoom := map[int64][]model.Booking{}
	for _, booking := range confirmed {
		byRoom[booking.RoomID] = append(byRoom[booking.RoomID], booking)
	}

	res = dto.AvailabilityResponse{
		CheckInDate:    checkInStr,
		CheckOutDate:   checkOutStr,
		AvailableRooms: []int64{},
		OccupiedRooms:  map[int64][]dto.OccupiedRange{},
	}

	for _, room := range rooms {
		free := true
		stays := []dto.OccupiedRange{}

		for _, booking := range byRoom[room.ID] {
			if overlaps(checkIn, checkOut, booking.CheckInDate, booking.CheckOutDate) {
				free = false
			}

			stays = append(stays, dto.OccupiedRange{
				CheckIn:  booking.CheckInDate.Format(constant.StayDateFormat),
				CheckOut: booking.CheckOutDate.Format(constant.StayDateFormat),
				Guest:    booking.GuestName(),
			})
		}

		if free {
			res.AvailableRooms = append(res.AvailableRooms, room.ID)
		} else {
			res.OccupiedRooms[room.ID] = stays
		}
	}

	res.TotalAvailable = len(res.AvailableRooms)

	return res, nil
}
