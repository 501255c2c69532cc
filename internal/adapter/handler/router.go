package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(h *BookingHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), cors.Default())

	rooms := router.Group("/rooms")
	{
		rooms.GET("", h.GetRooms)
		rooms.GET("/:number", h.GetRoom)
		rooms.POST("/:number/reserve", h.ReserveRoom)
		rooms.POST("/:number/maintenance", h.MarkMaintenance)
		rooms.DELETE("/:number/maintenance", h.ClearMaintenance)
	}

	router.POST("/reservations", h.CreateReservation)
	router.POST("/check-ins", h.CheckIn)
	router.POST("/check-outs", h.CheckOut)

	guests := router.Group("/guests")
	{
		guests.GET("/:key", h.GetGuest)
		guests.GET("/:key/history", h.GetGuestHistory)
	}

	return router
}
