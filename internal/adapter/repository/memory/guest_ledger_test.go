package memory_test

import (
	"context"
	"testing"

	"github.com/srgjo27/hotel_booking/internal/adapter/repository/memory"
	"github.com/srgjo27/hotel_booking/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestLedger_NormalizesEveryEntryPoint(t *testing.T) {
	ctx := context.Background()
	ledger := memory.NewGuestLedger()

	record := &domain.GuestRecord{
		Key:  "John  Smith",
		Name: "John  Smith",
		Stay: domain.Stay{RoomNumber: 101},
	}
	require.NoError(t, ledger.Upsert(ctx, record))

	found, err := ledger.Find(ctx, "JOHN SMITH")
	require.NoError(t, err)
	assert.Equal(t, "john smith", found.Key)
	assert.Equal(t, "John  Smith", found.Name)

	byRoom, err := ledger.FindByRoom(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, "john smith", byRoom.Key)

	require.NoError(t, ledger.Remove(ctx, " john SMITH "))

	_, err = ledger.Find(ctx, "john smith")
	assert.ErrorIs(t, err, domain.ErrGuestNotFound)
}

func TestGuestLedger_UpsertReplaces(t *testing.T) {
	ctx := context.Background()
	ledger := memory.NewGuestLedger()

	require.NoError(t, ledger.Upsert(ctx, &domain.GuestRecord{Key: "ann", Status: domain.StayReserved}))
	require.NoError(t, ledger.Upsert(ctx, &domain.GuestRecord{Key: "Ann", Status: domain.StayCheckedIn}))

	found, err := ledger.Find(ctx, "ann")
	require.NoError(t, err)
	assert.Equal(t, domain.StayCheckedIn, found.Status)
}

func TestGuestLedger_RemoveTwice(t *testing.T) {
	ctx := context.Background()
	ledger := memory.NewGuestLedger()

	require.NoError(t, ledger.Upsert(ctx, &domain.GuestRecord{Key: "ann"}))
	require.NoError(t, ledger.Remove(ctx, "ann"))

	assert.ErrorIs(t, ledger.Remove(ctx, "ann"), domain.ErrGuestNotFound)
}

func TestGuestLedger_RejectsEmptyKey(t *testing.T) {
	ledger := memory.NewGuestLedger()

	assert.ErrorIs(t, ledger.Upsert(context.Background(), &domain.GuestRecord{Key: "  "}), domain.ErrInvalidInput)
	assert.ErrorIs(t, ledger.Upsert(context.Background(), nil), domain.ErrInvalidInput)
}

func TestGuestLedger_FindByRoomMiss(t *testing.T) {
	ledger := memory.NewGuestLedger()

	_, err := ledger.FindByRoom(context.Background(), 102)
	assert.ErrorIs(t, err, domain.ErrGuestNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
