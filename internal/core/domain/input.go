package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	guestNamePattern = regexp.MustCompile(`^[a-zA-Z ]+$`)
	validate         = validator.New()
)

// ParseGuestName accepts letters and spaces only.
func ParseGuestName(s string) (string, error) {
	name := strings.TrimSpace(s)
	if name == "" || !guestNamePattern.MatchString(name) {
		return "", fmt.Errorf("guest name %q: %w", s, ErrInvalidInput)
	}
	return name, nil
}

func ParsePhone(s string) (string, error) {
	phone := strings.TrimSpace(s)
	if err := validate.Var(phone, "required,number"); err != nil {
		return "", fmt.Errorf("phone %q must contain digits only: %w", s, ErrInvalidInput)
	}
	return phone, nil
}

// ParseEmail checks local-part@domain. When allowedDomain is set only that
// provider is accepted.
func ParseEmail(s, allowedDomain string) (string, error) {
	email := strings.TrimSpace(s)
	if err := validate.Var(email, "required,email"); err != nil {
		return "", fmt.Errorf("email %q: %w", s, ErrInvalidInput)
	}

	host := email[strings.LastIndex(email, "@")+1:]
	if !strings.Contains(host, ".") {
		return "", fmt.Errorf("email %q needs a dotted domain: %w", s, ErrInvalidInput)
	}

	if allowedDomain != "" && !strings.EqualFold(host, allowedDomain) {
		return "", fmt.Errorf("email %q must be a %s address: %w", s, allowedDomain, ErrInvalidInput)
	}
	return email, nil
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q must be YYYY-MM-DD: %w", s, ErrInvalidInput)
	}
	return t, nil
}

// ParseStay parses both dates and requires check-out strictly after check-in.
func ParseStay(checkIn, checkOut string) (StayParams, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return StayParams{}, err
	}

	out, err := ParseDate(checkOut)
	if err != nil {
		return StayParams{}, err
	}

	params := StayParams{CheckIn: in, CheckOut: out}
	if err := params.Validate(); err != nil {
		return StayParams{}, err
	}
	return params, nil
}

func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return TierSingle, nil
	case "double":
		return TierDouble, nil
	}
	return "", fmt.Errorf("room type %q must be Single or Double: %w", s, ErrInvalidInput)
}

// ParseRoomNumber accepts only numbers present in the given room set.
func ParseRoomNumber(s string, rooms []Room) (RoomNumber, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("room number %q: %w", s, ErrInvalidInput)
	}
	return CheckRoomNumber(RoomNumber(n), rooms)
}

func CheckRoomNumber(n RoomNumber, rooms []Room) (RoomNumber, error) {
	for _, r := range rooms {
		if r.Number == n {
			return r.Number, nil
		}
	}
	return 0, fmt.Errorf("room number %s: %w", n, ErrRoomNotFound)
}

func ParseGuestCount(n int) (int, error) {
	if n < 1 {
		return 0, ErrInvalidGuestCount
	}
	return n, nil
}
