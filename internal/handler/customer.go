package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/repository"
)

// CustomerHandler exposes the customer collection.
type CustomerHandler struct {
	Customers *repository.CustomerRepo
}

// NewCustomerHandler constructs a CustomerHandler and panics on a nil repo.
func NewCustomerHandler(customers *repository.CustomerRepo) *CustomerHandler {
	if customers == nil {
		panic("nil repository passed to NewCustomerHandler")
	}
	return &CustomerHandler{Customers: customers}
}

type createCustomerReq struct {
	Name        string  `json:"name"`
	Age         int     `json:"age"`
	EliteStatus bool    `json:"elite_status"`
	HotelID     *uint64 `json:"hotel_id"`
}

// CreateCustomer handles POST /v1/customers.  Age and hotel_id are not
// validated; hotel_id is only a weak reference.
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req createCustomerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	opts := []model.CustomerOption{model.WithEliteStatus(req.EliteStatus)}
	if req.HotelID != nil {
		opts = append(opts, model.WithHotel(*req.HotelID))
	}
	return c.JSON(http.StatusCreated, h.Customers.Create(req.Name, req.Age, opts...))
}

// ListCustomers handles GET /v1/customers.
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Customers.List()})
}

// GetCustomer handles GET /v1/customers/:id.
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	cust, err := h.Customers.GetByID(id)
	if err != nil {
		return registryError(c, err)
	}
	return c.JSON(http.StatusOK, cust)
}

// CustomerInfo handles GET /v1/customers/:id/info (plain text).
func (h *CustomerHandler) CustomerInfo(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	cust, err := h.Customers.GetByID(id)
	if err != nil {
		return registryError(c, err)
	}
	return c.String(http.StatusOK, cust.DisplayInfo())
}

// UpdateEliteStatus handles PATCH /v1/customers/:id/elite.
func (h *CustomerHandler) UpdateEliteStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var body struct {
		EliteStatus *bool `json:"elite_status"`
	}
	if err := c.Bind(&body); err != nil || body.EliteStatus == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "elite_status is required"})
	}
	cust, err := h.Customers.UpdateEliteStatus(id, *body.EliteStatus)
	if err != nil {
		return registryError(c, err)
	}
	return c.JSON(http.StatusOK, cust)
}

// DeleteCustomer handles DELETE /v1/customers/:id.  Removing a customer
// that is not in the collection is a 404, never a silent success.
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := h.Customers.Delete(id); err != nil {
		return registryError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
