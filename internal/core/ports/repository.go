package ports

import (
	"context"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
)

type RoomRepository interface {
	Get(ctx context.Context, number domain.RoomNumber) (*domain.Room, error)
	SetState(ctx context.Context, number domain.RoomNumber, state domain.RoomState) error
	Restore(ctx context.Context, number domain.RoomNumber, state domain.RoomState) error
	List(ctx context.Context) ([]domain.Room, error)
}

type GuestRepository interface {
	Upsert(ctx context.Context, record *domain.GuestRecord) error
	Find(ctx context.Context, guestKey string) (*domain.GuestRecord, error)
	FindByRoom(ctx context.Context, number domain.RoomNumber) (*domain.GuestRecord, error)
	Remove(ctx context.Context, guestKey string) error
}

type StayArchive interface {
	Save(ctx context.Context, stay *domain.ArchivedStay) error
	FindByGuest(ctx context.Context, guestKey string) ([]domain.ArchivedStay, error)
}
