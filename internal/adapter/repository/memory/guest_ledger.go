package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
)

// GuestLedger holds one active record per normalized guest key. Every method
// normalizes the key it is given, so callers may pass names as typed.
type GuestLedger struct {
	mu      sync.RWMutex
	records map[string]*domain.GuestRecord
}

func NewGuestLedger() *GuestLedger {
	return &GuestLedger{records: make(map[string]*domain.GuestRecord)}
}

func (l *GuestLedger) Upsert(ctx context.Context, record *domain.GuestRecord) error {
	if record == nil {
		return fmt.Errorf("upsert nil guest record: %w", domain.ErrInvalidInput)
	}

	key := domain.NormalizeGuestKey(record.Key)
	if key == "" {
		return fmt.Errorf("upsert guest record without key: %w", domain.ErrInvalidInput)
	}

	cp := *record
	cp.Key = key

	l.mu.Lock()
	l.records[key] = &cp
	l.mu.Unlock()

	return nil
}

func (l *GuestLedger) Find(ctx context.Context, guestKey string) (*domain.GuestRecord, error) {
	key := domain.NormalizeGuestKey(guestKey)

	l.mu.RLock()
	defer l.mu.RUnlock()

	record, ok := l.records[key]
	if !ok {
		return nil, fmt.Errorf("%q: %w", key, domain.ErrGuestNotFound)
	}

	cp := *record
	return &cp, nil
}

func (l *GuestLedger) FindByRoom(ctx context.Context, number domain.RoomNumber) (*domain.GuestRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, record := range l.records {
		if record.Stay.RoomNumber == number {
			cp := *record
			return &cp, nil
		}
	}

	return nil, fmt.Errorf("no guest in room %s: %w", number, domain.ErrGuestNotFound)
}

func (l *GuestLedger) Remove(ctx context.Context, guestKey string) error {
	key := domain.NormalizeGuestKey(guestKey)

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.records[key]; !ok {
		return fmt.Errorf("%q: %w", key, domain.ErrGuestNotFound)
	}

	delete(l.records, key)
	return nil
}
