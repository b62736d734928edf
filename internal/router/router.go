package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/handler"
	"github.com/iliyamo/hotel-reservation/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the staff login and the /v1/me identity endpoint.
// mws (such as the rate limiter) wrap both; on /v1/me they run after
// authentication.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, mws ...echo.MiddlewareFunc) {
	e.POST("/v1/auth/login", a.Login, mws...)

	auth := e.Group("/v1", staffChain(jwtSecret, mws)...)
	auth.GET("/me", a.Me)
}

// RegisterPublic registers the unauthenticated hotel browse endpoints.
// mws wrap each of them in order, typically the rate limiter then the cache.
func RegisterPublic(e *echo.Echo, h *handler.HotelHandler, mws ...echo.MiddlewareFunc) {
	e.GET("/v1/hotels", h.ListHotels, mws...)
	e.GET("/v1/hotels/:id", h.GetHotel, mws...)
}

func staffChain(jwtSecret string, extra []echo.MiddlewareFunc) []echo.MiddlewareFunc {
	return append([]echo.MiddlewareFunc{
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(handler.StaffRole),
	}, extra...)
}

// RegisterStaff registers STAFF-scoped endpoints under /v1.  All routes
// require a valid JWT carrying the STAFF role.  Extra middleware (such as
// the rate limiter and the cache purge) runs after authentication, so a
// per-user rate key sees the token subject.
func RegisterStaff(e *echo.Echo, h *handler.HotelHandler, ch *handler.CustomerHandler, jwtSecret string, extra ...echo.MiddlewareFunc) {
	g := e.Group("/v1", staffChain(jwtSecret, extra)...)

	// ---- Hotels ----
	g.POST("/hotels", h.CreateHotel)
	g.PUT("/hotels/:id", h.ReplaceHotelInfo)
	g.PATCH("/hotels/:id", h.ModifyHotelInfo)
	g.DELETE("/hotels/:id", h.DeleteHotel)
	g.GET("/hotels/:id/info", h.HotelInfo)

	// ---- Reservations ----
	g.GET("/hotels/:id/reservations", h.ListReservations)
	g.POST("/hotels/:id/reservations", h.ReserveRoom)
	g.DELETE("/hotels/:id/reservations/:rid", h.CancelReservation)
	g.GET("/reservations/:id", h.GetReservation)

	// ---- Customers ----
	g.POST("/customers", ch.CreateCustomer)
	g.GET("/customers", ch.ListCustomers)
	g.GET("/customers/:id", ch.GetCustomer)
	g.GET("/customers/:id/info", ch.CustomerInfo)
	g.PATCH("/customers/:id/elite", ch.UpdateEliteStatus)
	g.DELETE("/customers/:id", ch.DeleteCustomer)
}
