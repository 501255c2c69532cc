package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
)

type RoomRegistry struct {
	mu    sync.RWMutex
	rooms map[domain.RoomNumber]*domain.Room
}

// NewRoomRegistry loads the fixed room set. Every room starts available,
// whatever state the caller passed in.
func NewRoomRegistry(rooms []domain.Room) *RoomRegistry {
	r := &RoomRegistry{rooms: make(map[domain.RoomNumber]*domain.Room, len(rooms))}
	for _, room := range rooms {
		room := room
		room.State = domain.RoomAvailable
		r.rooms[room.Number] = &room
	}
	return r
}

func (r *RoomRegistry) Get(ctx context.Context, number domain.RoomNumber) (*domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[number]
	if !ok {
		return nil, fmt.Errorf("room %s: %w", number, domain.ErrRoomNotFound)
	}

	cp := *room
	return &cp, nil
}

func (r *RoomRegistry) SetState(ctx context.Context, number domain.RoomNumber, state domain.RoomState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[number]
	if !ok {
		return fmt.Errorf("room %s: %w", number, domain.ErrRoomNotFound)
	}

	return room.TransitionTo(state)
}

// Restore puts a room back into a previous state without consulting the state
// machine. It only exists to undo a change whose operation failed later on.
func (r *RoomRegistry) Restore(ctx context.Context, number domain.RoomNumber, state domain.RoomState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[number]
	if !ok {
		return fmt.Errorf("room %s: %w", number, domain.ErrRoomNotFound)
	}

	if !state.IsValid() {
		return fmt.Errorf("restore room %s to %q: %w", number, state, domain.ErrInvalidTransition)
	}

	room.State = state
	return nil
}

func (r *RoomRegistry) List(ctx context.Context) ([]domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms := make([]domain.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		rooms = append(rooms, *room)
	}

	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].Number < rooms[j].Number
	})

	return rooms, nil
}
