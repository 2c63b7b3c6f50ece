package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// ListServices godoc
// @Summary List bookable services
// @Description Flight, hotel, cab, train and bus offers with their price tiers
// @Tags Bookings
// @Produce json
// @Success 200 {object} utils.APIResponse{data=pricing.Catalog}
// @Router /services [get]
func (b *BookingController) ListServices(c *gin.Context) {
	utils.RespondSuccess(c, b.bookingService.Services(), "Services fetched successfully")
}

// Quote godoc
// @Summary Price a service selection
// @Description Unknown service ids are skipped and listed under unknown
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.QuoteRequest true "Selection"
// @Success 200 {object} utils.APIResponse{data=response_models.QuoteResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /bookings/quote [post]
func (b *BookingController) Quote(c *gin.Context) {
	var req request_models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	quote, err := b.bookingService.Quote(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, quote, "Quote computed successfully")
}

// CreateBooking godoc
// @Summary Record a single booking
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.CreateBookingRequest true "Booking"
// @Success 201 {object} utils.APIResponse{data=response_models.BookingResponse}
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings [post]
func (b *BookingController) CreateBooking(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	booking, err := b.bookingService.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, booking, "Booking created successfully")
}

// Checkout godoc
// @Summary Pay for a service selection
// @Description Charges the quoted total and records one confirmed booking per known service
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.CheckoutRequest true "Checkout"
// @Success 201 {object} utils.APIResponse{data=response_models.CheckoutResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 402 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/checkout [post]
func (b *BookingController) Checkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := b.bookingService.Checkout(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resp, "Checkout completed successfully")
}

// BookItinerary godoc
// @Summary Book a composed itinerary
// @Description Books one tier of a cached plan as a package for the given travelers
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.BookItineraryRequest true "Itinerary booking"
// @Success 201 {object} utils.APIResponse{data=response_models.BookingResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/itinerary [post]
func (b *BookingController) BookItinerary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.BookItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	booking, err := b.bookingService.BookItinerary(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, booking, "Itinerary booked successfully")
}

// ListBookings godoc
// @Summary List my bookings
// @Tags Bookings
// @Produce json
// @Param status query string false "pending, confirmed, cancelled or completed"
// @Param type query string false "flight, hotel, activity, transport or package"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse{data=response_models.BookingListResponse}
// @Security BearerAuth
// @Router /bookings [get]
func (b *BookingController) ListBookings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var query request_models.ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	bookings, err := b.bookingService.ListBookings(c.Request.Context(), userID, query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookings, "Bookings fetched successfully")
}

// CancelBooking godoc
// @Summary Cancel a booking
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body request_models.CancelBookingRequest false "Reason"
// @Success 200 {object} utils.APIResponse{data=response_models.BookingResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/{id}/cancel [post]
func (b *BookingController) CancelBooking(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	var req request_models.CancelBookingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
	}

	booking, err := b.bookingService.CancelBooking(c.Request.Context(), userID, bookingID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, booking, "Booking cancelled successfully")
}
