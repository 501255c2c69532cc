package domain

import (
	"time"

	"github.com/google/uuid"
)

type LineItemKind string

const (
	LineRoomCharge        LineItemKind = "ROOM_CHARGE"
	LineAddOn             LineItemKind = "ADD_ON"
	LineAdditionalCharges LineItemKind = "ADDITIONAL_CHARGES"
	LineDiscount          LineItemKind = "DISCOUNT"
)

type LineItem struct {
	ID          uuid.UUID    `json:"id"`
	Kind        LineItemKind `json:"kind"`
	Description string       `json:"description"`
	Amount      float64      `json:"amount"`
}

// AddOn is an optional extra such as meals.
type AddOn struct {
	Name   string
	Amount float64
}

type Invoice struct {
	ID                uuid.UUID  `json:"id"`
	StayID            uuid.UUID  `json:"stay_id,omitempty"`
	GuestKey          string     `json:"guest_key,omitempty"`
	RoomNumber        RoomNumber `json:"room_number,omitempty"`
	Rate              float64    `json:"rate"`
	GuestCount        int        `json:"guest_count"`
	Items             []LineItem `json:"items"`
	Base              float64    `json:"base"`
	AddOns            float64    `json:"add_ons"`
	AdditionalCharges float64    `json:"additional_charges"`
	BeforeDiscount    float64    `json:"before_discount"`
	Discount          float64    `json:"discount"`
	Total             float64    `json:"total"`
	MealSubtotal      float64    `json:"meal_subtotal,omitempty"`
	Clamped           bool       `json:"clamped,omitempty"`
	IssuedAt          time.Time  `json:"issued_at"`
}
