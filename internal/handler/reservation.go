package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type reserveReq struct {
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	CustomerID   uint64 `json:"customer_id"`
}

// ReserveRoom handles POST /v1/hotels/:id/reservations.  Dates are taken as
// given; neither format nor availability is checked.
func (h *HotelHandler) ReserveRoom(c echo.Context) error {
	hotelID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var req reserveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.CustomerID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "customer_id is required"})
	}
	res, err := h.Reservations.Reserve(c.Request().Context(), hotelID, req.CustomerID, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return registryError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

// ListReservations handles GET /v1/hotels/:id/reservations.
func (h *HotelHandler) ListReservations(c echo.Context) error {
	hotel, err := h.lookup(c)
	if hotel == nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"items": hotel.Reservations()})
}

// CancelReservation handles DELETE /v1/hotels/:id/reservations/:rid.  An
// unknown reservation is a 404 carrying "cancelled": false.
func (h *HotelHandler) CancelReservation(c echo.Context) error {
	hotelID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	resID, err := parseID(c, "rid")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	ok, err := h.Reservations.Cancel(c.Request().Context(), hotelID, resID)
	if err != nil {
		return registryError(c, err)
	}
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"cancelled": false})
	}
	return c.JSON(http.StatusOK, echo.Map{"cancelled": true})
}

// GetReservation handles GET /v1/reservations/:id, searching all hotels.
func (h *HotelHandler) GetReservation(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	res, err := h.Hotels.FindReservation(id)
	if err != nil {
		return registryError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
