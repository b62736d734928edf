package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/repository"
	"github.com/iliyamo/hotel-reservation/internal/service"
)

// HotelHandler exposes the hotel registry and each hotel's reservations.
type HotelHandler struct {
	Hotels       *repository.HotelRepo
	Reservations *service.ReservationService
}

// NewHotelHandler constructs a HotelHandler and panics if any dependency is nil.
func NewHotelHandler(hotels *repository.HotelRepo, reservations *service.ReservationService) *HotelHandler {
	if hotels == nil || reservations == nil {
		panic("nil dependency passed to NewHotelHandler")
	}
	return &HotelHandler{Hotels: hotels, Reservations: reservations}
}

type createHotelReq struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Capacity int    `json:"capacity"`
}

type replaceHotelReq struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Stars    int    `json:"stars"`
	Capacity int    `json:"capacity"`
}

// CreateHotel handles POST /v1/hotels.  The id is chosen by the caller and
// may repeat an existing one.
func (h *HotelHandler) CreateHotel(c echo.Context) error {
	var req createHotelReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.ID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id is required"})
	}
	hotel := h.Hotels.Create(req.ID, req.Name, req.Address, req.Capacity)
	return c.JSON(http.StatusCreated, hotel.Snapshot())
}

// ListHotels handles GET /v1/hotels.  Reservations are left out.
func (h *HotelHandler) ListHotels(c echo.Context) error {
	hotels := h.Hotels.List()
	items := make([]model.HotelSummary, 0, len(hotels))
	for _, hotel := range hotels {
		items = append(items, hotel.Summary())
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetHotel handles GET /v1/hotels/:id.  Reservations are only listed on the
// staff routes.
func (h *HotelHandler) GetHotel(c echo.Context) error {
	hotel, err := h.lookup(c)
	if hotel == nil {
		return err
	}
	return c.JSON(http.StatusOK, hotel.Summary())
}

// HotelInfo handles GET /v1/hotels/:id/info and returns the plain-text
// description with one line per reservation.
func (h *HotelHandler) HotelInfo(c echo.Context) error {
	hotel, err := h.lookup(c)
	if hotel == nil {
		return err
	}
	return c.String(http.StatusOK, hotel.DisplayInfo())
}

// ReplaceHotelInfo handles PUT /v1/hotels/:id; every descriptive field is
// overwritten, absent ones with their zero value.
func (h *HotelHandler) ReplaceHotelInfo(c echo.Context) error {
	hotel, err := h.lookup(c)
	if hotel == nil {
		return err
	}
	var req replaceHotelReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := hotel.CreateOrReplaceInfo(req.Name, req.Address, req.Stars, req.Capacity); err != nil {
		return registryError(c, err)
	}
	return c.JSON(http.StatusOK, hotel.Snapshot())
}

// ModifyHotelInfo handles PATCH /v1/hotels/:id; only keys present in the
// body are applied, including explicit zeros.
func (h *HotelHandler) ModifyHotelInfo(c echo.Context) error {
	hotel, err := h.lookup(c)
	if hotel == nil {
		return err
	}
	var upd model.HotelUpdate
	if err := c.Bind(&upd); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := hotel.ModifyInfo(upd); err != nil {
		return registryError(c, err)
	}
	return c.JSON(http.StatusOK, hotel.Snapshot())
}

// DeleteHotel handles DELETE /v1/hotels/:id.  The hotel's reservations go
// with it.
func (h *HotelHandler) DeleteHotel(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := h.Hotels.Delete(id); err != nil {
		return registryError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// lookup resolves the :id hotel.  When it returns a nil hotel the response
// has already been written and the returned error is the write result.
func (h *HotelHandler) lookup(c echo.Context) (*model.Hotel, error) {
	id, err := parseID(c, "id")
	if err != nil {
		return nil, c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	hotel, err := h.Hotels.GetByID(id)
	if err != nil {
		return nil, registryError(c, err)
	}
	return hotel, nil
}
