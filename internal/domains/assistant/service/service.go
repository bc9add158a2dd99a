package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"grandhotel/config"
	"grandhotel/infras/completion"
	"grandhotel/infras/otel"
	"grandhotel/internal/domains/assistant/command"
	"grandhotel/internal/domains/assistant/model/dto"
	bookingService "grandhotel/internal/domains/booking/service"
	roomService "grandhotel/internal/domains/room/service"
	"grandhotel/shared/constant"
	"grandhotel/shared/timezone"
)

const historyWindow = 10

const (
	unavailableReply = "I'm sorry, but the AI reception service is currently unavailable. " +
		"Please contact our human staff for assistance."
	troubleReply = "I apologize, but I'm experiencing technical difficulties. " +
		"Please try again or contact our human staff for immediate assistance."
)

// Assistant is the reception chat surface. Replies from the completion
// collaborator are scanned for embedded commands, which are executed against
// the booking domain before the reply reaches the guest.
type Assistant interface {
	Chat(ctx context.Context, req dto.ChatRequest) (dto.ChatResponse, error)
	RunBookingCommand(ctx context.Context, cmd command.BookingCommand) Outcome
	RunCancelCommand(ctx context.Context, cmd command.CancelCommand) Outcome
}

type serviceImpl struct {
	bookingSvc bookingService.Booking
	roomSvc    roomService.Room
	completion completion.Client
	cfg        *config.Config
	otel       otel.Otel
}

func New(
	bookingSvc bookingService.Booking,
	roomSvc roomService.Room,
	completionClient completion.Client,
	cfg *config.Config,
	otl otel.Otel,
) Assistant {
	return &serviceImpl{
		bookingSvc: bookingSvc,
		roomSvc:    roomSvc,
		completion: completionClient,
		cfg:        cfg,
		otel:       otl,
	}
}

func (s *serviceImpl) Chat(ctx context.Context, req dto.ChatRequest) (res dto.ChatResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Chat")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.completion.Enabled() {
		return dto.ChatResponse{Response: unavailableReply}, nil
	}

	messages := []completion.Message{
		{Role: completion.RoleSystem, Content: s.buildSystemPrompt(ctx)},
	}

	history := req.History
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	messages = append(messages, history...)
	messages = append(messages, completion.Message{Role: completion.RoleUser, Content: req.Message})

	reply, err := s.completion.Complete(ctx, messages)
	if err != nil {
		log.Error().Err(err).Msg("completion request failed")

		return dto.ChatResponse{Response: troubleReply}, nil
	}

	reply, bookingProcessed := s.handleBookingCommand(ctx, reply)
	reply, cancellationProcessed := s.handleCancelCommand(ctx, reply)

	if wantsRecommendations(req.Message) {
		reply = s.appendRecommendations(ctx, req.Message, reply)
	}

	return dto.ChatResponse{
		Response:              reply,
		Success:               true,
		Timestamp:             timezone.Now().Format(constant.DateFormat),
		ModelUsed:             s.cfg.External.OpenAI.Model,
		BookingProcessed:      bookingProcessed,
		CancellationProcessed: cancellationProcessed,
	}, nil
}

func (s *serviceImpl) handleBookingCommand(ctx context.Context, reply string) (string, bool) {
	cmd, found, err := command.ExtractBooking(reply)
	if !found {
		return reply, false
	}

	reply = command.StripBooking(reply)

	if err != nil {
		var malformed *command.MalformedError
		if errors.As(err, &malformed) {
			log.Warn().Str("fragment", malformed.Fragment).Str("reason", malformed.Reason).Msg("malformed booking command in assistant reply")
		}

		return reply + "\n\nBooking Failed: I could not read the booking details. " +
			"Please provide the correct information and I'll try again.", true
	}

	outcome := s.RunBookingCommand(ctx, cmd)
	if outcome.Kind != OutcomeBooked {
		return fmt.Sprintf("%s\n\nBooking Failed: %s\nPlease provide the correct information and I'll try again.",
			reply, outcome.Reason), true
	}

	booking := outcome.Booking

	var b strings.Builder

	b.WriteString(reply)
	b.WriteString("\n\nBOOKING CONFIRMED!\n")
	fmt.Fprintf(&b, "Booking ID: #%d\n", booking.ID)
	fmt.Fprintf(&b, "Room: %s (%s)\n", booking.RoomNumber, booking.RoomType)
	fmt.Fprintf(&b, "Guest: %s\n", booking.GuestName)
	fmt.Fprintf(&b, "Email: %s\n", booking.GuestEmail)
	fmt.Fprintf(&b, "Total Price: %.2f for %d nights\n", booking.TotalPrice, outcome.Nights)
	fmt.Fprintf(&b, "Confirmation Number: %s\n", booking.ConfirmationNumber)
	b.WriteString("Confirmation details will be sent to your email.\n")
	fmt.Fprintf(&b, "Thank you for choosing %s!", s.cfg.Hotel.Name)

	return b.String(), true
}

func (s *serviceImpl) handleCancelCommand(ctx context.Context, reply string) (string, bool) {
	cmd, found, err := command.ExtractCancel(reply)
	if !found {
		return reply, false
	}

	reply = command.StripCancel(reply)

	if err != nil {
		return reply + "\n\nCancellation Failed: I could not read the cancellation details. " +
			"Please check your booking details and try again.", true
	}

	outcome := s.RunCancelCommand(ctx, cmd)
	if outcome.Kind != OutcomeCancelled {
		return fmt.Sprintf("%s\n\nCancellation Failed: %s\nPlease check your booking details and try again.",
			reply, outcome.Reason), true
	}

	booking := outcome.Booking

	var b strings.Builder

	b.WriteString(reply)
	b.WriteString("\n\nBOOKING CANCELLED!\n")
	fmt.Fprintf(&b, "Booking ID: #%d\n", booking.ID)
	fmt.Fprintf(&b, "Room: %s\n", booking.RoomNumber)
	fmt.Fprintf(&b, "Guest: %s\n", booking.GuestName)
	b.WriteString("Cancellation confirmation will be sent to your email.\n")
	b.WriteString("We hope to serve you again in the future!")

	return b.String(), true
}

func (s *serviceImpl) appendRecommendations(ctx context.Context, message, reply string) string {
	rooms, err := s.roomSvc.ListAvailable(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list rooms for recommendations")

		return reply
	}

	recommendations := recommendRooms(message, rooms)
	if len(recommendations) == 0 {
		return reply
	}

	var b strings.Builder

	b.WriteString(reply)
	b.WriteString("\n\nBased on your requirements, here are my top room recommendations:\n")

	for i, room := range recommendations {
		fmt.Fprintf(&b, "\n%d. Room %s - %s", i+1, room.RoomNumber, room.RoomType)
		fmt.Fprintf(&b, "\n   - Price: %.2f/night", room.PricePerNight)
		fmt.Fprintf(&b, "\n   - %s", room.Description)
		fmt.Fprintf(&b, "\n   - Capacity: %s", room.Capacity)
	}

	return b.String()
}
