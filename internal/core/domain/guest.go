package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

type StayStatus string

const (
	StayReserved  StayStatus = "RESERVED"
	StayCheckedIn StayStatus = "CHECKED_IN"
)

// NormalizeGuestKey is the only place guest names become ledger keys.
// Surrounding space is dropped, inner runs of whitespace collapse to a single
// space and the result is lowercased.
func NormalizeGuestKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

type GuestInfo struct {
	Name           string
	Phone          string
	Email          string
	Address        string
	Identification string
}

type Contact struct {
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Address        string `json:"address,omitempty"`
	Identification string `json:"identification,omitempty"`
}

type StayParams struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func (p StayParams) Validate() error {
	if !p.CheckOut.After(p.CheckIn) {
		return ErrInvalidDateRange
	}
	return nil
}

func (p StayParams) Nights() int {
	return int(p.CheckOut.Sub(p.CheckIn).Hours() / 24)
}

type Stay struct {
	RoomNumber RoomNumber `json:"room_number"`
	Tier       Tier       `json:"tier"`
	CheckIn    time.Time  `json:"check_in"`
	CheckOut   time.Time  `json:"check_out"`
	Nights     int        `json:"nights"`
}

type GuestRecord struct {
	StayID      uuid.UUID  `json:"stay_id"`
	Key         string     `json:"guest_key"`
	Name        string     `json:"name"`
	Contact     Contact    `json:"contact"`
	Stay        Stay       `json:"stay"`
	GuestCount  int        `json:"guest_count"`
	RoomCost    float64    `json:"room_cost"`
	Status      StayStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CheckedInAt *time.Time `json:"checked_in_at,omitempty"`
}

func (g *GuestRecord) IsCheckedIn() bool {
	return g.Status == StayCheckedIn
}

// ArchivedStay is a completed stay as kept after checkout.
type ArchivedStay struct {
	Record       GuestRecord `json:"record"`
	Invoice      Invoice     `json:"invoice"`
	CheckedOutAt time.Time   `json:"checked_out_at"`
}
