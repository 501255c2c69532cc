package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
	"github.com/srgjo27/hotel_booking/internal/core/ports"
)

// CheckInPolicy decides who may check into a room another guest reserved.
type CheckInPolicy string

const (
	// CheckInWalkIn lets any guest take a reserved room. The reservation it
	// supersedes is dropped from the ledger.
	CheckInWalkIn CheckInPolicy = "WALK_IN"
	// CheckInStrict admits only the guest who holds the reservation.
	CheckInStrict CheckInPolicy = "STRICT"
)

// CheckoutPricing selects how the authoritative checkout total is priced.
type CheckoutPricing string

const (
	// CheckoutStored prices from the guest's own record: snapshotted rate,
	// stored guest count and the meal as an add-on line.
	CheckoutStored CheckoutPricing = "STORED"
	// CheckoutLegacy prices every stay as a single room for DefaultGuestCount
	// guests and keeps the meal out of the total.
	CheckoutLegacy CheckoutPricing = "LEGACY"
)

type EngineConfig struct {
	Pricing           Pricing
	DefaultGuestCount int
	CheckInPolicy     CheckInPolicy
	CheckoutPricing   CheckoutPricing
}

func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Pricing:           DefaultPricing(),
		DefaultGuestCount: DefaultGuestCount,
		CheckInPolicy:     CheckInWalkIn,
		CheckoutPricing:   CheckoutStored,
	}
}

// BookingService runs one operation at a time. Each operation either commits
// the room state and the ledger entry together or rolls both back.
type BookingService struct {
	mu        sync.Mutex
	roomRepo  ports.RoomRepository
	guestRepo ports.GuestRepository
	archive   ports.StayArchive
	cache     *redis.Client
	cfg       EngineConfig
}

// NewBookingService wires the engine. archive and cache are optional.
func NewBookingService(roomRepo ports.RoomRepository, guestRepo ports.GuestRepository, archive ports.StayArchive, cache *redis.Client, cfg EngineConfig) *BookingService {
	if cfg.DefaultGuestCount < 1 {
		cfg.DefaultGuestCount = DefaultGuestCount
	}
	if cfg.CheckInPolicy == "" {
		cfg.CheckInPolicy = CheckInWalkIn
	}
	if cfg.CheckoutPricing == "" {
		cfg.CheckoutPricing = CheckoutStored
	}

	return &BookingService{
		roomRepo:  roomRepo,
		guestRepo: guestRepo,
		archive:   archive,
		cache:     cache,
		cfg:       cfg,
	}
}

func (s *BookingService) Reserve(ctx context.Context, guest domain.GuestInfo, stay domain.StayParams, number domain.RoomNumber, guestCount int) (*domain.Invoice, error) {
	key := domain.NormalizeGuestKey(guest.Name)
	if key == "" {
		return nil, fmt.Errorf("guest name is required: %w", domain.ErrInvalidInput)
	}

	if err := stay.Validate(); err != nil {
		return nil, err
	}

	if guestCount < 1 {
		return nil, domain.ErrInvalidGuestCount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.roomRepo.Get(ctx, number)
	if err != nil {
		return nil, err
	}

	if !room.IsAvailable() {
		return nil, fmt.Errorf("room %s is %s: %w", room.Number, room.State, domain.ErrRoomUnavailable)
	}

	if err := s.ensureNoActiveStay(ctx, key); err != nil {
		return nil, err
	}

	if holder, err := s.roomHolder(ctx, number); err != nil {
		return nil, err
	} else if holder != nil {
		return nil, fmt.Errorf("room %s is held by another stay: %w", number, domain.ErrRoomUnavailable)
	}

	rate, err := s.cfg.Pricing.RateFor(room.Tier)
	if err != nil {
		return nil, err
	}

	if err := s.roomRepo.SetState(ctx, number, domain.RoomReserved); err != nil {
		return nil, err
	}

	record := &domain.GuestRecord{
		StayID:     uuid.New(),
		Key:        key,
		Name:       guest.Name,
		Contact:    contactOf(guest),
		Stay:       stayOf(room, stay),
		GuestCount: guestCount,
		RoomCost:   rate,
		Status:     domain.StayReserved,
		CreatedAt:  time.Now(),
	}

	if err := s.guestRepo.Upsert(ctx, record); err != nil {
		s.rollbackRoom(ctx, number, room.State)
		return nil, fmt.Errorf("failed to store reservation: %w", err)
	}

	invoice := ComputeInvoice(rate, guestCount, s.cfg.Pricing.AdditionalCharges, s.cfg.Pricing.DiscountRate, nil)
	s.stamp(&invoice, record)
	s.flagClamped(&invoice)

	s.invalidateAvailability(ctx)
	log.Printf("Room %s reserved for %q (%d guests), total %.2f", number, key, guestCount, invoice.Total)

	return &invoice, nil
}

func (s *BookingService) CheckIn(ctx context.Context, guest domain.GuestInfo, stay domain.StayParams, number domain.RoomNumber) (*domain.GuestRecord, error) {
	key := domain.NormalizeGuestKey(guest.Name)
	if key == "" {
		return nil, fmt.Errorf("guest name is required: %w", domain.ErrInvalidInput)
	}

	if err := stay.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.roomRepo.Get(ctx, number)
	if err != nil {
		return nil, err
	}

	if room.State != domain.RoomAvailable && room.State != domain.RoomReserved {
		return nil, fmt.Errorf("room %s is %s: %w", room.Number, room.State, domain.ErrRoomUnavailable)
	}

	holder, err := s.roomHolder(ctx, number)
	if err != nil {
		return nil, err
	}

	var own, superseded *domain.GuestRecord
	if holder != nil {
		switch {
		case holder.IsCheckedIn():
			return nil, fmt.Errorf("room %s is still occupied by another stay: %w", number, domain.ErrRoomUnavailable)
		case holder.Key == key:
			own = holder
		case s.cfg.CheckInPolicy == CheckInStrict:
			return nil, fmt.Errorf("room %s is reserved for another guest: %w", number, domain.ErrRoomUnavailable)
		default:
			superseded = holder
		}
	}

	if own == nil {
		if err := s.ensureNoActiveStay(ctx, key); err != nil {
			return nil, err
		}
	}

	rate, err := s.cfg.Pricing.RateFor(room.Tier)
	if err != nil {
		return nil, err
	}

	if err := s.roomRepo.SetState(ctx, number, domain.RoomOccupied); err != nil {
		return nil, err
	}

	if superseded != nil {
		if err := s.guestRepo.Remove(ctx, superseded.Key); err != nil {
			s.rollbackRoom(ctx, number, room.State)
			return nil, fmt.Errorf("failed to drop superseded reservation: %w", err)
		}
		log.Printf("Walk-in %q took room %s, reservation of %q dropped", key, number, superseded.Key)
	}

	now := time.Now()
	record := &domain.GuestRecord{
		StayID:      uuid.New(),
		Key:         key,
		Name:        guest.Name,
		Contact:     contactOf(guest),
		Stay:        stayOf(room, stay),
		RoomCost:    rate,
		Status:      domain.StayCheckedIn,
		CreatedAt:   now,
		CheckedInAt: &now,
	}

	if own != nil {
		record.StayID = own.StayID
		record.GuestCount = own.GuestCount
		record.RoomCost = own.RoomCost
		record.CreatedAt = own.CreatedAt
	}

	if err := s.guestRepo.Upsert(ctx, record); err != nil {
		s.rollbackRoom(ctx, number, room.State)
		if superseded != nil {
			s.restoreRecord(ctx, superseded)
		}
		return nil, fmt.Errorf("failed to store check-in: %w", err)
	}

	s.invalidateAvailability(ctx)
	log.Printf("Guest %q checked into room %s", key, number)

	return record, nil
}

func (s *BookingService) CheckOut(ctx context.Context, guestKey string, includeMeal bool) (*domain.Invoice, error) {
	key := domain.NormalizeGuestKey(guestKey)

	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.guestRepo.Find(ctx, key)
	if err != nil {
		return nil, err
	}

	if !record.IsCheckedIn() {
		return nil, fmt.Errorf("%q holds a reservation for room %s: %w", key, record.Stay.RoomNumber, domain.ErrGuestNotCheckedIn)
	}

	room, err := s.roomRepo.Get(ctx, record.Stay.RoomNumber)
	if err != nil {
		return nil, err
	}

	invoice := s.checkoutInvoice(record, includeMeal)
	s.stamp(&invoice, record)
	s.flagClamped(&invoice)

	if room.State == domain.RoomOccupied {
		if err := s.roomRepo.SetState(ctx, room.Number, domain.RoomAvailable); err != nil {
			return nil, err
		}
	} else {
		log.Printf("Room %s is %s at checkout of %q, state left unchanged", room.Number, room.State, key)
	}

	if err := s.guestRepo.Remove(ctx, key); err != nil {
		s.rollbackRoom(ctx, room.Number, room.State)
		return nil, err
	}

	if s.archive != nil {
		stay := &domain.ArchivedStay{Record: *record, Invoice: invoice, CheckedOutAt: invoice.IssuedAt}
		if err := s.archive.Save(ctx, stay); err != nil {
			s.restoreRecord(ctx, record)
			s.rollbackRoom(ctx, room.Number, room.State)
			return nil, fmt.Errorf("failed to archive stay: %w", err)
		}
	}

	s.invalidateAvailability(ctx)
	log.Printf("Guest %q checked out of room %s, total %.2f", key, room.Number, invoice.Total)

	return &invoice, nil
}

func (s *BookingService) GuestDetails(ctx context.Context, guestKey string) (*domain.GuestRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.guestRepo.Find(ctx, domain.NormalizeGuestKey(guestKey))
}

// StayHistory lists completed stays for a guest. Without an archive there is
// no history to report.
func (s *BookingService) StayHistory(ctx context.Context, guestKey string) ([]domain.ArchivedStay, error) {
	if s.archive == nil {
		return []domain.ArchivedStay{}, nil
	}

	return s.archive.FindByGuest(ctx, domain.NormalizeGuestKey(guestKey))
}

func (s *BookingService) checkoutInvoice(record *domain.GuestRecord, includeMeal bool) domain.Invoice {
	p := s.cfg.Pricing

	rate := record.RoomCost
	guestCount := record.GuestCount
	if guestCount < 1 {
		guestCount = s.cfg.DefaultGuestCount
	}

	var addOns []domain.AddOn
	if includeMeal && s.cfg.CheckoutPricing != CheckoutLegacy {
		addOns = append(addOns, domain.AddOn{Name: "Meals", Amount: p.MealCost})
	}

	if s.cfg.CheckoutPricing == CheckoutLegacy {
		rate = p.Rates[domain.TierSingle]
		guestCount = s.cfg.DefaultGuestCount
	}

	invoice := ComputeInvoice(rate, guestCount, p.AdditionalCharges, p.DiscountRate, addOns)

	invoice.MealSubtotal = rate
	if includeMeal {
		invoice.MealSubtotal = roundCents(rate + p.MealCost)
	}

	return invoice
}

func (s *BookingService) ensureNoActiveStay(ctx context.Context, key string) error {
	existing, err := s.guestRepo.Find(ctx, key)
	if err == nil {
		return fmt.Errorf("%q in room %s: %w", key, existing.Stay.RoomNumber, domain.ErrGuestAlreadyActive)
	}

	if !errors.Is(err, domain.ErrGuestNotFound) {
		return err
	}
	return nil
}

func (s *BookingService) roomHolder(ctx context.Context, number domain.RoomNumber) (*domain.GuestRecord, error) {
	holder, err := s.guestRepo.FindByRoom(ctx, number)
	if err != nil {
		if errors.Is(err, domain.ErrGuestNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return holder, nil
}

func (s *BookingService) stamp(invoice *domain.Invoice, record *domain.GuestRecord) {
	invoice.ID = uuid.New()
	invoice.StayID = record.StayID
	invoice.GuestKey = record.Key
	invoice.RoomNumber = record.Stay.RoomNumber
	invoice.IssuedAt = time.Now()

	for i := range invoice.Items {
		invoice.Items[i].ID = uuid.New()
	}
}

func (s *BookingService) flagClamped(invoice *domain.Invoice) {
	if invoice.Clamped {
		log.Printf("Invoice %s for %q went negative and was clamped to zero", invoice.ID, invoice.GuestKey)
	}
}

func (s *BookingService) rollbackRoom(ctx context.Context, number domain.RoomNumber, state domain.RoomState) {
	if err := s.roomRepo.Restore(ctx, number, state); err != nil {
		log.Printf("Failed to roll back room %s to %s: %v", number, state, err)
	}
}

func (s *BookingService) restoreRecord(ctx context.Context, record *domain.GuestRecord) {
	if err := s.guestRepo.Upsert(ctx, record); err != nil {
		log.Printf("Failed to restore guest record %q: %v", record.Key, err)
	}
}

func contactOf(guest domain.GuestInfo) domain.Contact {
	return domain.Contact{
		Phone:          guest.Phone,
		Email:          guest.Email,
		Address:        guest.Address,
		Identification: guest.Identification,
	}
}

func stayOf(room *domain.Room, stay domain.StayParams) domain.Stay {
	return domain.Stay{
		RoomNumber: room.Number,
		Tier:       room.Tier,
		CheckIn:    stay.CheckIn,
		CheckOut:   stay.CheckOut,
		Nights:     stay.Nights(),
	}
}
