package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/srgjo27/hotel_booking/internal/adapter/handler"
	"github.com/srgjo27/hotel_booking/internal/adapter/repository/memory"
	"github.com/srgjo27/hotel_booking/internal/core/domain"
	"github.com/srgjo27/hotel_booking/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, emailDomain string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rooms := domain.DefaultRooms()
	svc := services.NewBookingService(memory.NewRoomRegistry(rooms), memory.NewGuestLedger(), nil, nil, services.DefaultEngineConfig())

	return handler.NewRouter(handler.NewBookingHandler(svc, rooms, emailDomain))
}

func do(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func guestBody(name string) handler.GuestRequest {
	return handler.GuestRequest{
		Name:           name,
		Phone:          "0771234567",
		Email:          "ann@gmail.com",
		Address:        "12 Lake Road",
		Identification: "ID-991",
	}
}

func guestBodyWith(edit func(*handler.GuestRequest)) handler.GuestRequest {
	g := guestBody("Ann Lee")
	edit(&g)
	return g
}

func TestCreateReservation_Success(t *testing.T) {
	router := newRouter(t, "")

	w := do(t, router, http.MethodPost, "/reservations", handler.ReservationRequest{
		Guest:      guestBody("Ann Lee"),
		CheckIn:    "2024-05-01",
		CheckOut:   "2024-05-03",
		RoomNumber: 101,
		RoomType:   "single",
		GuestCount: 1,
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var invoice domain.Invoice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &invoice))
	assert.Equal(t, 2340.0, invoice.Total)

	w = do(t, router, http.MethodGet, "/rooms/101", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var details services.RoomDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &details))
	assert.Equal(t, domain.RoomReserved, details.Room.State)
	require.NotNil(t, details.Guest)
	assert.Equal(t, "ann lee", details.Guest.Key)
}

func TestCreateReservation_Errors(t *testing.T) {
	tests := []struct {
		name string
		req  handler.ReservationRequest
		code int
	}{
		{"equal dates", handler.ReservationRequest{Guest: guestBody("Ann Lee"), CheckIn: "2024-05-01", CheckOut: "2024-05-01", RoomNumber: 101, GuestCount: 1}, http.StatusBadRequest},
		{"bad date", handler.ReservationRequest{Guest: guestBody("Ann Lee"), CheckIn: "01-05-2024", CheckOut: "2024-05-03", RoomNumber: 101, GuestCount: 1}, http.StatusBadRequest},
		{"tier mismatch", handler.ReservationRequest{Guest: guestBody("Ann Lee"), CheckIn: "2024-05-01", CheckOut: "2024-05-03", RoomNumber: 103, RoomType: "Single", GuestCount: 1}, http.StatusBadRequest},
		{"no guests", handler.ReservationRequest{Guest: guestBody("Ann Lee"), CheckIn: "2024-05-01", CheckOut: "2024-05-03", RoomNumber: 101}, http.StatusBadRequest},
		{"bad phone", handler.ReservationRequest{Guest: guestBodyWith(func(g *handler.GuestRequest) { g.Phone = "+94 77" }), CheckIn: "2024-05-01", CheckOut: "2024-05-03", RoomNumber: 101, GuestCount: 1}, http.StatusBadRequest},
		{"bad email", handler.ReservationRequest{Guest: guestBodyWith(func(g *handler.GuestRequest) { g.Email = "ann.gmail.com" }), CheckIn: "2024-05-01", CheckOut: "2024-05-03", RoomNumber: 101, GuestCount: 1}, http.StatusBadRequest},
		{"bad name", handler.ReservationRequest{Guest: guestBody("Ann_Lee"), CheckIn: "2024-05-01", CheckOut: "2024-05-03", RoomNumber: 101, GuestCount: 1}, http.StatusBadRequest},
		{"unknown room", handler.ReservationRequest{Guest: guestBody("Ann Lee"), CheckIn: "2024-05-01", CheckOut: "2024-05-03", RoomNumber: 201, GuestCount: 1}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, newRouter(t, ""), http.MethodPost, "/reservations", tt.req)
			assert.Equal(t, tt.code, w.Code, w.Body.String())
		})
	}
}

func TestCreateReservation_EmailDomainPolicy(t *testing.T) {
	router := newRouter(t, "gmail.com")
	body := guestBody("Ann Lee")
	body.Email = "ann@example.org"

	w := do(t, router, http.MethodPost, "/reservations", handler.ReservationRequest{
		Guest: body, CheckIn: "2024-05-01", CheckOut: "2024-05-03", RoomNumber: 101, GuestCount: 1,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckInCheckOut_Flow(t *testing.T) {
	router := newRouter(t, "")
	checkIn := handler.CheckInRequest{
		Guest:      guestBody("Ann Lee"),
		CheckIn:    "2024-05-01",
		CheckOut:   "2024-05-03",
		RoomNumber: 102,
	}

	w := do(t, router, http.MethodPost, "/check-ins", checkIn)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, router, http.MethodPost, "/check-ins", checkIn)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, router, http.MethodGet, "/guests/ANN%20LEE", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodPost, "/check-outs", handler.CheckOutRequest{GuestName: "ann lee", IncludeMeals: true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var invoice domain.Invoice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &invoice))
	assert.Equal(t, 4000.0, invoice.MealSubtotal)
	assert.Equal(t, 5940.0, invoice.Total)

	w = do(t, router, http.MethodPost, "/check-outs", handler.CheckOutRequest{GuestName: "ann lee"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, router, http.MethodGet, "/guests/ann%20lee/history", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCheckIn_RequiresIdentity(t *testing.T) {
	router := newRouter(t, "")
	body := guestBody("Ann Lee")
	body.Identification = ""

	w := do(t, router, http.MethodPost, "/check-ins", handler.CheckInRequest{
		Guest: body, CheckIn: "2024-05-01", CheckOut: "2024-05-03", RoomNumber: 101,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoomManagementRoutes(t *testing.T) {
	router := newRouter(t, "")

	w := do(t, router, http.MethodPost, "/rooms/103/reserve", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodPost, "/rooms/103/reserve", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, router, http.MethodPost, "/rooms/103/maintenance", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, "/rooms", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rooms []domain.Room
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	require.Len(t, rooms, 3)
	assert.Equal(t, domain.RoomMaintenance, rooms[2].State)

	w = do(t, router, http.MethodDelete, "/rooms/103/maintenance", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var room domain.Room
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &room))
	assert.Equal(t, domain.RoomAvailable, room.State)

	w = do(t, router, http.MethodPost, "/rooms/abc/maintenance", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, router, http.MethodGet, "/rooms/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvalidJSONBody(t *testing.T) {
	router := newRouter(t, "")

	req := httptest.NewRequest(http.MethodPost, "/check-outs", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
