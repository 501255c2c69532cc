package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
)

func (h *BookingHandler) GetRooms(c *gin.Context) {
	rooms, err := h.svc.ViewAvailability(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rooms)
}

func (h *BookingHandler) GetRoom(c *gin.Context) {
	number, err := domain.ParseRoomNumber(c.Param("number"), h.rooms)
	if err != nil {
		writeError(c, err)
		return
	}

	details, err := h.svc.RoomDetails(c.Request.Context(), number)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

func (h *BookingHandler) ReserveRoom(c *gin.Context) {
	h.roomAction(c, h.svc.ReserveRoom)
}

func (h *BookingHandler) MarkMaintenance(c *gin.Context) {
	h.roomAction(c, h.svc.MarkMaintenance)
}

func (h *BookingHandler) ClearMaintenance(c *gin.Context) {
	h.roomAction(c, h.svc.ClearMaintenance)
}

func (h *BookingHandler) roomAction(c *gin.Context, action func(ctx context.Context, n domain.RoomNumber) (*domain.Room, error)) {
	number, err := domain.ParseRoomNumber(c.Param("number"), h.rooms)
	if err != nil {
		writeError(c, err)
		return
	}

	room, err := action(c.Request.Context(), number)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}
