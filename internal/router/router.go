package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	GetBooking(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	UpdateBooking(c *ginext.Context)
	GetHotels(c *ginext.Context)
	GetHotelRooms(c *ginext.Context)
	ListTicketTypes(c *ginext.Context)
	GetTicketPayment(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/", auth)
	{
		// Bookings
		api.GET("/booking", h.GetBooking)
		api.POST("/booking", h.CreateBooking)
		api.PUT("/booking/:bookingId", h.UpdateBooking)

		// Hotels
		api.GET("/hotels", h.GetHotels)
		api.GET("/hotels/:hotelId", h.GetHotelRooms)

		// Tickets
		api.GET("/tickets/types", h.ListTicketTypes)

		// Payments
		api.GET("/payments", h.GetTicketPayment)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
