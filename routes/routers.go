package routes

import (
	"net/http"
	"time"

	"frontdesk/controllers"
	_ "frontdesk/docs"
	middlewares "frontdesk/middleware"
	"frontdesk/services"
	"frontdesk/services/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Deps is everything the handlers need.
type Deps struct {
	Rooms       *services.RoomStateService
	Bookings    *services.BookingService
	Pricing     *services.PricingService
	Revenue     *services.RevenueService
	Invoices    *services.InvoiceService
	Logger      logger.Logger
	StaffSecret string
	Clock       func() time.Time
}

func SetupRoutes(router *gin.Engine, deps Deps) {
	roomController := controllers.NewRoomController(deps.Rooms, deps.Clock)
	bookingController := controllers.NewBookingController(deps.Bookings, deps.Invoices, deps.Clock)
	revenueController := controllers.NewRevenueController(deps.Revenue, deps.Pricing, deps.Clock)
	compatController := controllers.NewCompatController(deps.Invoices, deps.Logger)

	router.Use(middlewares.RequestIDMiddleware())

	api := router.Group("/api")
	api.POST("/bookings", compatController.SaveBooking)
	api.POST("/payments", compatController.SavePayment)
	api.POST("/generate-invoice", compatController.GenerateInvoice)

	auth := middlewares.AuthMiddleware(deps.StaffSecret)

	v1 := router.Group("/api/v1")
	v1.GET("/locations", roomController.GetLocations)
	v1.GET("/calendar/next-days", roomController.GetNextDays)

	v1.GET("/board/:location", roomController.GetBoard)
	v1.GET("/board/:location/window", roomController.GetBoardWindow)
	v1.PUT("/board/:location/:date/:room", auth, roomController.UpdateCell)

	v1.GET("/bookings", bookingController.GetBookings)
	v1.POST("/bookings", auth, bookingController.CreateBooking)
	v1.GET("/bookings/search", bookingController.SearchBookings)
	v1.GET("/bookings/cell", bookingController.GetCellBooking)
	v1.GET("/bookings/grid", bookingController.GetMonthGrid)
	v1.GET("/bookings/:id", bookingController.GetBooking)
	v1.PUT("/bookings/:id", auth, bookingController.UpdateBooking)
	v1.DELETE("/bookings/:id", auth, bookingController.DeleteBooking)
	v1.GET("/bookings/:id/invoice", bookingController.GetBookingInvoice)

	v1.POST("/quote", revenueController.Quote)
	v1.GET("/revenue", auth, revenueController.GetRevenue)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}
