// Package command extracts embedded booking and cancellation commands from
// assistant replies. The assistant is instructed to emit markers such as
//
//	BOOK_ROOM: {guest_name: 'John Doe', email: 'john@email.com', ...}
//
// but the surrounding text is arbitrary prose, so extraction is defensive:
// a strict JSON pass first, then a lenient key/value split.
package command

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	BookingMarker = "BOOK_ROOM:"
	CancelMarker  = "CANCEL_BOOKING:"
)

var (
	bookingPattern  = regexp.MustCompile(`(?s)BOOK_ROOM:\s*\{([^}]*)\}`)
	cancelPattern   = regexp.MustCompile(`(?s)CANCEL_BOOKING:\s*\{([^}]*)\}`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
	trailingComma   = regexp.MustCompile(`,\s*}`)
	errNoPairs      = errors.New("no key/value pairs")
	requiredBooking = []string{"guest_name", "email", "phone", "check_in", "check_out", "room_type"}
)

// MalformedError reports a command marker whose body could not be parsed or
// is missing a required field. The fragment is the raw body between braces.
type MalformedError struct {
	Fragment string
	Reason   string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed command: %s (fragment: %q)", e.Reason, e.Fragment)
}

// BookingCommand is a booking request embedded in assistant output. All
// fields are raw strings exactly as the assistant produced them.
type BookingCommand struct {
	GuestName string
	Email     string
	Phone     string
	CheckIn   string
	CheckOut  string
	RoomType  string
}

// CancelCommand is a cancellation request embedded in assistant output.
// Either BookingID or Email is set; which one is the dispatcher's concern.
type CancelCommand struct {
	BookingID string
	Email     string
}

// ExtractBooking scans text for the first booking marker. It returns
// found=false when no marker is present, and a *MalformedError when a marker
// is present but its body cannot be parsed or misses a required field.
func ExtractBooking(text string) (BookingCommand, bool, error) {
	match := bookingPattern.FindStringSubmatch(text)
	if match == nil {
		return BookingCommand{}, false, nil
	}

	fields, err := parseBody(match[1])
	if err != nil {
		return BookingCommand{}, true, err
	}

	for _, field := range requiredBooking {
		if _, ok := fields[field]; !ok {
			return BookingCommand{}, true, &MalformedError{
				Fragment: match[1],
				Reason:   "missing required field: " + field,
			}
		}
	}

	return BookingCommand{
		GuestName: fields["guest_name"],
		Email:     fields["email"],
		Phone:     fields["phone"],
		CheckIn:   fields["check_in"],
		CheckOut:  fields["check_out"],
		RoomType:  fields["room_type"],
	}, true, nil
}

// ExtractCancel scans text for the first cancellation marker. At least one of
// booking_id and email must be present for the command to be usable; an empty
// body is malformed.
func ExtractCancel(text string) (CancelCommand, bool, error) {
	match := cancelPattern.FindStringSubmatch(text)
	if match == nil {
		return CancelCommand{}, false, nil
	}

	fields, err := parseBody(match[1])
	if err != nil {
		return CancelCommand{}, true, err
	}

	cmd := CancelCommand{
		BookingID: fields["booking_id"],
		Email:     fields["email"],
	}

	if cmd.BookingID == "" && cmd.Email == "" {
		return CancelCommand{}, true, &MalformedError{
			Fragment: match[1],
			Reason:   "either booking_id or email is required",
		}
	}

	return cmd, true, nil
}

// StripBooking removes every booking marker and its body from text.
func StripBooking(text string) string {
	return strings.TrimSpace(bookingPattern.ReplaceAllString(text, ""))
}

// StripCancel removes every cancellation marker and its body from text.
func StripCancel(text string) string {
	return strings.TrimSpace(cancelPattern.ReplaceAllString(text, ""))
}

func parseBody(body string) (map[string]string, error) {
	if fields, err := parseStrict(body); err == nil {
		return fields, nil
	}

	if fields, err := parseLenient(body); err == nil {
		return fields, nil
	}

	return nil, &MalformedError{Fragment: body, Reason: "unparseable command body"}
}

// parseStrict normalizes single quotes, whitespace runs, and trailing commas,
// then requires the body to be a valid JSON object of strings.
func parseStrict(body string) (map[string]string, error) {
	normalized := "{" + body + "}"
	normalized = strings.ReplaceAll(normalized, "'", `"`)
	normalized = whitespaceRun.ReplaceAllString(normalized, " ")
	normalized = trailingComma.ReplaceAllString(normalized, "}")

	var fields map[string]string
	if err := json.Unmarshal([]byte(normalized), &fields); err != nil {
		return nil, fmt.Errorf("strict parse: %w", err)
	}

	return fields, nil
}

// parseLenient splits on commas and colons, tolerating unquoted keys and
// values. Parts without a colon are skipped.
func parseLenient(body string) (map[string]string, error) {
	fields := map[string]string{}

	for _, part := range strings.Split(body, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		key, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}

		key = strings.Trim(strings.TrimSpace(key), `'"`)
		value = strings.Trim(strings.TrimSpace(value), `'"`)

		if key == "" {
			continue
		}

		fields[key] = value
	}

	if len(fields) == 0 {
		return nil, errNoPairs
	}

	return fields, nil
}
