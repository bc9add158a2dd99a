package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"grandhotel/internal/domains/assistant/command"
	bookingDto "grandhotel/internal/domains/booking/model/dto"
	"grandhotel/shared/constant"
	"grandhotel/shared/failure"
	"grandhotel/shared/timezone"
)

type OutcomeKind string

const (
	OutcomeBooked    OutcomeKind = "booked"
	OutcomeCancelled OutcomeKind = "cancelled"
	OutcomeFailed    OutcomeKind = "failed"
)

// Outcome is the result of running an extracted command against the booking
// domain. Failed outcomes carry a guest-presentable reason and never an
// internal error.
type Outcome struct {
	Kind    OutcomeKind
	Booking bookingDto.BookingResponse
	Nights  int
	Reason  string
}

func failed(reason string) Outcome {
	return Outcome{Kind: OutcomeFailed, Reason: reason}
}

// RunBookingCommand validates an extracted booking command, picks the first
// free room of the requested type, computes the total price from the room
// rate, and books it. It never returns an error: every failure becomes a
// Failed outcome.
func (s *serviceImpl) RunBookingCommand(ctx context.Context, cmd command.BookingCommand) Outcome {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RunBookingCommand")
	defer scope.End()

	checkIn, err := time.Parse(constant.StayDateFormat, cmd.CheckIn)
	if err != nil {
		return failed("Check-in date must use YYYY-MM-DD format")
	}

	checkOut, err := time.Parse(constant.StayDateFormat, cmd.CheckOut)
	if err != nil {
		return failed("Check-out date must use YYYY-MM-DD format")
	}

	if !checkIn.Before(checkOut) {
		return failed("Check-out date must be after check-in date")
	}

	if checkIn.Before(timezone.Today()) {
		return failed("Check-in date cannot be in the past")
	}

	availability, err := s.bookingSvc.CheckAvailability(ctx, cmd.CheckIn, cmd.CheckOut)
	if err != nil {
		log.Error().Err(err).Msg("failed to check availability for assistant booking")

		return failed(failureMessage(err))
	}

	rooms, err := s.roomSvc.ListAvailable(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list rooms for assistant booking")

		return failed(failureMessage(err))
	}

	free := map[int64]bool{}
	for _, id := range availability.AvailableRooms {
		free[id] = true
	}

	var roomID int64

	var rate float64

	for _, room := range rooms {
		if strings.EqualFold(room.RoomType, cmd.RoomType) && free[room.ID] {
			roomID = room.ID
			rate = room.PricePerNight

			break
		}
	}

	if roomID == 0 {
		return failed("No " + cmd.RoomType + " rooms available for the selected dates")
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	totalPrice := rate * float64(nights)

	firstName, lastName := splitGuestName(cmd.GuestName)

	booking, err := s.bookingSvc.CreateCustomerBooking(ctx, bookingDto.CustomerBookingRequest{
		RoomID:       roomID,
		FirstName:    firstName,
		LastName:     lastName,
		Email:        cmd.Email,
		Phone:        cmd.Phone,
		CheckInDate:  cmd.CheckIn,
		CheckOutDate: cmd.CheckOut,
		TotalPrice:   totalPrice,
	})
	if err != nil {
		log.Error().Err(err).Msg("assistant booking failed")

		return failed(failureMessage(err))
	}

	return Outcome{Kind: OutcomeBooked, Booking: booking, Nights: nights}
}

// RunCancelCommand cancels by booking id when one is given, otherwise by the
// guest's most recent booking for the email. It never returns an error.
func (s *serviceImpl) RunCancelCommand(ctx context.Context, cmd command.CancelCommand) Outcome {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RunCancelCommand")
	defer scope.End()

	if cmd.BookingID != "" {
		id, err := strconv.ParseInt(strings.TrimSpace(cmd.BookingID), 10, 64)
		if err != nil {
			return failed("Booking ID must be a number")
		}

		return s.cancelByID(ctx, id)
	}

	bookings, err := s.bookingSvc.GetByEmail(ctx, cmd.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up bookings for assistant cancellation")

		return failed(failureMessage(err))
	}

	if len(bookings) == 0 {
		return failed("No bookings found for this email address")
	}

	// Cancel the most recently created booking.
	return s.cancelByID(ctx, bookings[len(bookings)-1].ID)
}

func (s *serviceImpl) cancelByID(ctx context.Context, id int64) Outcome {
	booking, err := s.bookingSvc.Cancel(ctx, id)
	if err != nil {
		if failure.IsNotFound(err) {
			return failed("Booking not found")
		}

		log.Error().Err(err).Msg("assistant cancellation failed")

		return failed(failureMessage(err))
	}

	return Outcome{Kind: OutcomeCancelled, Booking: booking}
}

// failureMessage extracts the guest-presentable message from a failure error,
// falling back to a generic apology for internal errors.
func failureMessage(err error) string {
	var fail *failure.Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	return "Something went wrong on our side, please try again or contact our staff"
}

func splitGuestName(name string) (firstName, lastName string) {
	firstName, lastName, _ = strings.Cut(strings.TrimSpace(name), " ")

	return firstName, strings.TrimSpace(lastName)
}
