package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
	"github.com/srgjo27/hotel_booking/internal/core/services"
)

type GuestRequest struct {
	Name           string `json:"name" binding:"required"`
	Phone          string `json:"phone" binding:"required,number"`
	Email          string `json:"email" binding:"required,email"`
	Address        string `json:"address"`
	Identification string `json:"identification"`
}

type ReservationRequest struct {
	Guest      GuestRequest `json:"guest"`
	CheckIn    string       `json:"check_in" binding:"required"`
	CheckOut   string       `json:"check_out" binding:"required"`
	RoomNumber int          `json:"room_number" binding:"required"`
	RoomType   string       `json:"room_type"`
	GuestCount int          `json:"guest_count"`
}

type CheckInRequest struct {
	Guest      GuestRequest `json:"guest"`
	CheckIn    string       `json:"check_in" binding:"required"`
	CheckOut   string       `json:"check_out" binding:"required"`
	RoomNumber int          `json:"room_number" binding:"required"`
	RoomType   string       `json:"room_type"`
}

type CheckOutRequest struct {
	GuestName    string `json:"guest_name" binding:"required"`
	IncludeMeals bool   `json:"include_meals"`
}

type BookingHandler struct {
	svc         *services.BookingService
	rooms       []domain.Room
	emailDomain string
}

// NewBookingHandler validates input against the hotel's fixed room set. An
// empty emailDomain accepts any provider.
func NewBookingHandler(svc *services.BookingService, rooms []domain.Room, emailDomain string) *BookingHandler {
	return &BookingHandler{svc: svc, rooms: rooms, emailDomain: emailDomain}
}

func (h *BookingHandler) CreateReservation(c *gin.Context) {
	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}

	guest, err := h.parseGuest(req.Guest, false)
	if err != nil {
		writeError(c, err)
		return
	}

	stay, err := domain.ParseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		writeError(c, err)
		return
	}

	number, err := h.parseRoom(req.RoomNumber, req.RoomType)
	if err != nil {
		writeError(c, err)
		return
	}

	guestCount, err := domain.ParseGuestCount(req.GuestCount)
	if err != nil {
		writeError(c, err)
		return
	}

	invoice, err := h.svc.Reserve(c.Request.Context(), guest, stay, number, guestCount)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

func (h *BookingHandler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}

	guest, err := h.parseGuest(req.Guest, true)
	if err != nil {
		writeError(c, err)
		return
	}

	stay, err := domain.ParseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		writeError(c, err)
		return
	}

	number, err := h.parseRoom(req.RoomNumber, req.RoomType)
	if err != nil {
		writeError(c, err)
		return
	}

	record, err := h.svc.CheckIn(c.Request.Context(), guest, stay, number)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (h *BookingHandler) CheckOut(c *gin.Context) {
	var req CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}

	name, err := domain.ParseGuestName(req.GuestName)
	if err != nil {
		writeError(c, err)
		return
	}

	invoice, err := h.svc.CheckOut(c.Request.Context(), name, req.IncludeMeals)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

func (h *BookingHandler) GetGuest(c *gin.Context) {
	record, err := h.svc.GuestDetails(c.Request.Context(), c.Param("key"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *BookingHandler) GetGuestHistory(c *gin.Context) {
	stays, err := h.svc.StayHistory(c.Request.Context(), c.Param("key"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, stays)
}

func (h *BookingHandler) parseGuest(req GuestRequest, requireIdentity bool) (domain.GuestInfo, error) {
	name, err := domain.ParseGuestName(req.Name)
	if err != nil {
		return domain.GuestInfo{}, err
	}

	phone, err := domain.ParsePhone(req.Phone)
	if err != nil {
		return domain.GuestInfo{}, err
	}

	email, err := domain.ParseEmail(req.Email, h.emailDomain)
	if err != nil {
		return domain.GuestInfo{}, err
	}

	if requireIdentity && (req.Address == "" || req.Identification == "") {
		return domain.GuestInfo{}, fmt.Errorf("address and identification are required at check-in: %w", domain.ErrInvalidInput)
	}

	return domain.GuestInfo{
		Name:           name,
		Phone:          phone,
		Email:          email,
		Address:        req.Address,
		Identification: req.Identification,
	}, nil
}

// parseRoom checks the number against the room set and, when a room type was
// given, that it matches the room's tier.
func (h *BookingHandler) parseRoom(n int, roomType string) (domain.RoomNumber, error) {
	number, err := domain.CheckRoomNumber(domain.RoomNumber(n), h.rooms)
	if err != nil {
		return 0, err
	}

	if roomType == "" {
		return number, nil
	}

	tier, err := domain.ParseTier(roomType)
	if err != nil {
		return 0, err
	}

	for _, r := range h.rooms {
		if r.Number == number && r.Tier != tier {
			return 0, fmt.Errorf("room %s is %s, not %s: %w", number, r.Tier, tier, domain.ErrInvalidInput)
		}
	}

	return number, nil
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrInvalidGuestCount):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrRoomUnavailable),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrGuestAlreadyActive),
		errors.Is(err, domain.ErrGuestNotCheckedIn):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("Request %s %s failed: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
