package domain

import "fmt"

type RoomNumber int

func (n RoomNumber) String() string {
	return fmt.Sprintf("%d", int(n))
}

type Tier string

const (
	TierSingle Tier = "SINGLE"
	TierDouble Tier = "DOUBLE"
)

func (t Tier) IsValid() bool {
	return t == TierSingle || t == TierDouble
}

type RoomState string

const (
	RoomAvailable   RoomState = "AVAILABLE"
	RoomReserved    RoomState = "RESERVED"
	RoomOccupied    RoomState = "OCCUPIED"
	RoomMaintenance RoomState = "MAINTENANCE"
)

// roomTransitions is the occupancy state machine. The machine has no terminal
// state; every room can always get back to RoomAvailable.
var roomTransitions = map[RoomState][]RoomState{
	RoomAvailable:   {RoomReserved, RoomOccupied, RoomMaintenance},
	RoomReserved:    {RoomOccupied, RoomMaintenance},
	RoomOccupied:    {RoomAvailable, RoomMaintenance},
	RoomMaintenance: {RoomAvailable},
}

func (s RoomState) IsValid() bool {
	_, ok := roomTransitions[s]
	return ok
}

func (s RoomState) CanTransitionTo(target RoomState) bool {
	for _, next := range roomTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

type Room struct {
	Number RoomNumber `json:"number"`
	Tier   Tier       `json:"tier"`
	State  RoomState  `json:"state"`
}

func (r *Room) IsAvailable() bool {
	return r.State == RoomAvailable
}

// TransitionTo moves the room to target, or returns ErrInvalidTransition and
// leaves the state as it was.
func (r *Room) TransitionTo(target RoomState) error {
	if !r.State.CanTransitionTo(target) {
		return fmt.Errorf("room %s %s -> %s: %w", r.Number, r.State, target, ErrInvalidTransition)
	}

	r.State = target
	return nil
}

// DefaultRooms is the hotel's fixed room set. 101 and 102 are singles, 103 is
// the only double.
func DefaultRooms() []Room {
	return []Room{
		{Number: 101, Tier: TierSingle, State: RoomAvailable},
		{Number: 102, Tier: TierSingle, State: RoomAvailable},
		{Number: 103, Tier: TierDouble, State: RoomAvailable},
	}
}
