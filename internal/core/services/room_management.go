package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
)

const (
	availabilityCacheKey = "rooms:availability"
	availabilityCacheTTL = time.Minute
)

type RoomDetails struct {
	Room  domain.Room         `json:"room"`
	Guest *domain.GuestRecord `json:"guest,omitempty"`
}

// ViewAvailability lists every room in number order. The list is served from
// the cache when one is configured and still warm.
func (s *BookingService) ViewAvailability(ctx context.Context) ([]domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rooms, ok := s.cachedAvailability(ctx); ok {
		return rooms, nil
	}

	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	s.storeAvailability(ctx, rooms)
	return rooms, nil
}

// ReserveRoom holds a room without a guest record attached.
func (s *BookingService) ReserveRoom(ctx context.Context, number domain.RoomNumber) (*domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.roomRepo.Get(ctx, number)
	if err != nil {
		return nil, err
	}

	if !room.IsAvailable() {
		return nil, fmt.Errorf("room %s is %s: %w", room.Number, room.State, domain.ErrRoomUnavailable)
	}

	// A checked-in guest can hold an Available room after maintenance is cleared.
	if holder, err := s.roomHolder(ctx, number); err != nil {
		return nil, err
	} else if holder != nil {
		return nil, fmt.Errorf("room %s is held by another stay: %w", number, domain.ErrRoomUnavailable)
	}

	if err := s.roomRepo.SetState(ctx, number, domain.RoomReserved); err != nil {
		return nil, err
	}

	s.invalidateAvailability(ctx)
	log.Printf("Room %s reserved", number)

	room.State = domain.RoomReserved
	return room, nil
}

// MarkMaintenance takes a room out of service. A pending reservation on the
// room is cancelled; a checked-in guest keeps the stay.
func (s *BookingService) MarkMaintenance(ctx context.Context, number domain.RoomNumber) (*domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.roomRepo.Get(ctx, number)
	if err != nil {
		return nil, err
	}

	if room.State == domain.RoomMaintenance {
		return room, nil
	}

	holder, err := s.roomHolder(ctx, number)
	if err != nil {
		return nil, err
	}

	if err := s.roomRepo.SetState(ctx, number, domain.RoomMaintenance); err != nil {
		return nil, err
	}

	if holder != nil && !holder.IsCheckedIn() {
		if err := s.guestRepo.Remove(ctx, holder.Key); err != nil {
			s.rollbackRoom(ctx, number, room.State)
			return nil, fmt.Errorf("failed to cancel reservation of %q: %w", holder.Key, err)
		}
		log.Printf("Reservation of %q for room %s cancelled for maintenance", holder.Key, number)
	}

	s.invalidateAvailability(ctx)
	log.Printf("Room %s marked for maintenance", number)

	room.State = domain.RoomMaintenance
	return room, nil
}

// ClearMaintenance returns a room to service. Rooms not under maintenance are
// left as they are.
func (s *BookingService) ClearMaintenance(ctx context.Context, number domain.RoomNumber) (*domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.roomRepo.Get(ctx, number)
	if err != nil {
		return nil, err
	}

	if room.State != domain.RoomMaintenance {
		return room, nil
	}

	if err := s.roomRepo.SetState(ctx, number, domain.RoomAvailable); err != nil {
		return nil, err
	}

	s.invalidateAvailability(ctx)
	log.Printf("Room %s back in service", number)

	room.State = domain.RoomAvailable
	return room, nil
}

func (s *BookingService) RoomDetails(ctx context.Context, number domain.RoomNumber) (*RoomDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.roomRepo.Get(ctx, number)
	if err != nil {
		return nil, err
	}

	holder, err := s.roomHolder(ctx, number)
	if err != nil {
		return nil, err
	}

	return &RoomDetails{Room: *room, Guest: holder}, nil
}

func (s *BookingService) cachedAvailability(ctx context.Context) ([]domain.Room, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, availabilityCacheKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("Availability cache read failed: %v", err)
		}
		return nil, false
	}

	var rooms []domain.Room
	if err := json.Unmarshal([]byte(raw), &rooms); err != nil {
		log.Printf("Availability cache holds bad data: %v", err)
		return nil, false
	}

	return rooms, true
}

func (s *BookingService) storeAvailability(ctx context.Context, rooms []domain.Room) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(rooms)
	if err != nil {
		log.Printf("Failed to encode availability: %v", err)
		return
	}

	if err := s.cache.Set(ctx, availabilityCacheKey, string(data), availabilityCacheTTL).Err(); err != nil {
		log.Printf("Availability cache write failed: %v", err)
	}
}

func (s *BookingService) invalidateAvailability(ctx context.Context) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Del(ctx, availabilityCacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate availability cache: %v", err)
	}
}
