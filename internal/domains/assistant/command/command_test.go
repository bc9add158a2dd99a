package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grandhotel/internal/domains/assistant/command"
)

func TestExtractBookingQuotedBody(t *testing.T) {
	text := "Certainly, booking now.\n" +
		"BOOK_ROOM: {guest_name: 'John Doe', email: 'john@email.com', phone: '+1234567890', " +
		"check_in: '2024-01-15', check_out: '2024-01-17', room_type: 'Double'}\n" +
		"One moment please."

	cmd, found, err := command.ExtractBooking(text)
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, "John Doe", cmd.GuestName)
	assert.Equal(t, "john@email.com", cmd.Email)
	assert.Equal(t, "+1234567890", cmd.Phone)
	assert.Equal(t, "2024-01-15", cmd.CheckIn)
	assert.Equal(t, "2024-01-17", cmd.CheckOut)
	assert.Equal(t, "Double", cmd.RoomType)
}

func TestExtractBookingMultilineBody(t *testing.T) {
	text := `BOOK_ROOM: {
		guest_name: 'Jane Smith',
		email: 'jane@email.com',
		phone: '555-0100',
		check_in: '2024-03-01',
		check_out: '2024-03-05',
		room_type: 'Suite',
	}`

	cmd, found, err := command.ExtractBooking(text)
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, "Jane Smith", cmd.GuestName)
	assert.Equal(t, "Suite", cmd.RoomType)
}

func TestExtractBookingUnquotedBody(t *testing.T) {
	// The lenient tier handles bodies that are not valid JSON after
	// normalization.
	text := "BOOK_ROOM: {guest_name: John Doe, email: john@email.com, phone: +123, " +
		"check_in: 2024-01-15, check_out: 2024-01-17, room_type: Double}"

	cmd, found, err := command.ExtractBooking(text)
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, "John Doe", cmd.GuestName)
	assert.Equal(t, "john@email.com", cmd.Email)
}

func TestExtractBookingNoMarker(t *testing.T) {
	cmd, found, err := command.ExtractBooking("We have lovely Double rooms available from $100 per night.")

	assert.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, cmd)
}

func TestExtractBookingMissingField(t *testing.T) {
	text := "BOOK_ROOM: {guest_name: 'John Doe', email: 'john@email.com', phone: '+123', " +
		"check_in: '2024-01-15', check_out: '2024-01-17'}"

	_, found, err := command.ExtractBooking(text)

	assert.True(t, found)

	var malformed *command.MalformedError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Reason, "room_type")
}

func TestExtractBookingFirstMarkerWins(t *testing.T) {
	text := "BOOK_ROOM: {guest_name: 'First Guest', email: 'first@email.com', phone: '1', " +
		"check_in: '2024-01-15', check_out: '2024-01-17', room_type: 'Single'} and also " +
		"BOOK_ROOM: {guest_name: 'Second Guest', email: 'second@email.com', phone: '2', " +
		"check_in: '2024-02-01', check_out: '2024-02-03', room_type: 'Double'}"

	cmd, found, err := command.ExtractBooking(text)
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, "First Guest", cmd.GuestName)
}

func TestExtractCancelByID(t *testing.T) {
	cmd, found, err := command.ExtractCancel("CANCEL_BOOKING: {booking_id: '123'}")
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, "123", cmd.BookingID)
	assert.Empty(t, cmd.Email)
}

func TestExtractCancelByEmail(t *testing.T) {
	cmd, found, err := command.ExtractCancel("CANCEL_BOOKING: {email: 'john@email.com'}")
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, "john@email.com", cmd.Email)
	assert.Empty(t, cmd.BookingID)
}

func TestExtractCancelEmptyBody(t *testing.T) {
	_, found, err := command.ExtractCancel("CANCEL_BOOKING: {}")

	assert.True(t, found)

	var malformed *command.MalformedError
	assert.ErrorAs(t, err, &malformed)
}

func TestExtractCancelNoMarker(t *testing.T) {
	_, found, err := command.ExtractCancel("I'd like to keep my reservation after all.")

	assert.NoError(t, err)
	assert.False(t, found)
}

func TestStripBooking(t *testing.T) {
	text := "Right away! BOOK_ROOM: {guest_name: 'John', email: 'j@e.com', phone: '1', " +
		"check_in: '2024-01-15', check_out: '2024-01-17', room_type: 'Double'}"

	assert.Equal(t, "Right away!", command.StripBooking(text))
}

func TestStripCancel(t *testing.T) {
	text := "Done. CANCEL_BOOKING: {booking_id: '42'} Anything else?"

	assert.Equal(t, "Done.  Anything else?", command.StripCancel(text))
}
