package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	roomModel "grandhotel/internal/domains/room/model"
	roomDto "grandhotel/internal/domains/room/model/dto"
	"grandhotel/shared/constant"
	gDto "grandhotel/shared/dto"
)

const (
	hotelDescription = "A luxury hotel offering exceptional service and comfortable accommodations"

	policyCheckIn      = "3:00 PM"
	policyCheckOut     = "11:00 AM"
	policyCancellation = "Free cancellation up to 24 hours before check-in"
	policyPayment      = "Payment required at booking confirmation"

	maxRecommendations = 3
)

var hotelAmenities = []string{
	"Free WiFi", "Swimming Pool", "Fitness Center", "Restaurant",
	"Room Service", "Concierge", "Valet Parking", "Business Center",
}

// buildSystemPrompt assembles the assistant's instructions: hotel facts,
// live occupancy, and the exact command formats the dispatcher extracts.
func (s *serviceImpl) buildSystemPrompt(ctx context.Context) string {
	totalRooms, err := s.roomSvc.Count(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms for assistant context")
	}

	available, err := s.roomSvc.ListAvailable(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list rooms for assistant context")
	}

	occupancy := 0.0
	if totalRooms > 0 {
		occupancy = float64(totalRooms-len(available)) / float64(totalRooms) * 100
	}

	var b strings.Builder

	fmt.Fprintf(&b, "You are the AI Reception Assistant for %s, a luxury hotel management system.\n\n", s.cfg.Hotel.Name)
	fmt.Fprintf(&b, "HOTEL INFORMATION:\n")
	fmt.Fprintf(&b, "- Name: %s\n", s.cfg.Hotel.Name)
	fmt.Fprintf(&b, "- Description: %s\n", hotelDescription)
	fmt.Fprintf(&b, "- Total Rooms: %d\n", totalRooms)
	fmt.Fprintf(&b, "- Available Rooms: %d\n", len(available))
	fmt.Fprintf(&b, "- Current Occupancy: %.1f%%\n\n", occupancy)

	b.WriteString("ROOM TYPES & PRICING:\n")

	for _, name := range roomModel.TypeNames {
		info := roomModel.TypeCatalog[name]
		fmt.Fprintf(&b, "- %s: %s (Capacity: %s)\n", name, info.Description, info.Capacity)
	}

	fmt.Fprintf(&b, "\nHOTEL AMENITIES:\n%s\n\n", strings.Join(hotelAmenities, ", "))

	b.WriteString("POLICIES:\n")
	fmt.Fprintf(&b, "- Check-in: %s\n", policyCheckIn)
	fmt.Fprintf(&b, "- Check-out: %s\n", policyCheckOut)
	fmt.Fprintf(&b, "- Cancellation: %s\n", policyCancellation)
	fmt.Fprintf(&b, "- Payment: %s\n\n", policyPayment)

	b.WriteString(`CAPABILITIES:
You can help guests with:
1. Room availability and information
2. Booking assistance and guidance
3. Hotel amenities and services
4. Check-in/check-out procedures
5. Hotel policies and procedures
6. Booking modifications and cancellations

IMPORTANT GUIDELINES:
- Always be professional, friendly, and helpful
- Provide accurate information about rooms and policies
- If you cannot help with something, politely direct them to human staff
- Use the guest's name if they provide it
- Suggest appropriate room types based on their needs

BOOKING CAPABILITIES:
You can DIRECTLY BOOK and CANCEL rooms for guests.

BOOKING PROCESS:
1. When a guest wants to book, collect these details:
   - Guest name (first and last)
   - Email address (new guests are created automatically)
   - Phone number
   - Check-in date (YYYY-MM-DD format)
   - Check-out date (YYYY-MM-DD format)
   - Room type preference (Single, Double, Suite, Deluxe, Presidential)

2. Use this EXACT format to trigger booking:
"BOOK_ROOM: {guest_name: 'John Doe', email: 'john@email.com', phone: '+1234567890', check_in: '2024-01-15', check_out: '2024-01-17', room_type: 'Double'}"

CANCELLATION PROCESS:
1. For cancellations, ask for the booking ID or the guest email address.

2. Use this EXACT format to trigger cancellation:
"CANCEL_BOOKING: {booking_id: '123'}" OR "CANCEL_BOOKING: {email: 'john@email.com'}"

IMPORTANT INSTRUCTIONS:
- When a guest provides ALL required booking information in one message, IMMEDIATELY process the booking using the BOOK_ROOM format
- If ANY information is missing, ask for it politely before booking
- DO NOT ask for confirmation, book immediately when all data is provided
- Provide clear booking confirmations with the booking ID after a successful booking
`)

	return b.String()
}

var recommendationKeywords = []string{"recommend", "suggest", "room", "availability"}

func wantsRecommendations(message string) bool {
	lower := strings.ToLower(message)

	for _, keyword := range recommendationKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}

	return false
}

// recommendRooms scores the sellable rooms against keywords in the guest's
// message and returns the top matches.
func recommendRooms(message string, rooms []roomDto.RoomResponse) []roomDto.RoomResponse {
	lower := strings.ToLower(message)

	type scored struct {
		room  roomDto.RoomResponse
		score int
	}

	matches := []scored{}

	for _, room := range rooms {
		score := 0

		switch {
		case strings.Contains(lower, "single") && room.RoomType == constant.RoomTypeSingle:
			score = 10
		case strings.Contains(lower, "double") && room.RoomType == constant.RoomTypeDouble:
			score = 10
		case strings.Contains(lower, "suite") && room.RoomType == constant.RoomTypeSuite:
			score = 10
		case strings.Contains(lower, "luxury") && (room.RoomType == constant.RoomTypeSuite || room.RoomType == constant.RoomTypePresidential):
			score = 8
		case strings.Contains(lower, "budget") && (room.RoomType == constant.RoomTypeSingle || room.RoomType == constant.RoomTypeDouble):
			score = 8
		}

		if score > 0 {
			matches = append(matches, scored{room: room, score: score})
		}
	}

	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].score > matches[j-1].score; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}

	if len(matches) > maxRecommendations {
		matches = matches[:maxRecommendations]
	}

	result := make([]roomDto.RoomResponse, len(matches))
	for i, match := range matches {
		result[i] = match.room
	}

	return result
}
