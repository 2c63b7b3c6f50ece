package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
	reviewService      services.ReviewServiceInterface
}

func NewDestinationController(destinationService services.DestinationServiceInterface, reviewService services.ReviewServiceInterface) *DestinationController {
	return &DestinationController{
		destinationService: destinationService,
		reviewService:      reviewService,
	}
}

// ListDestinations godoc
// @Summary List destinations
// @Tags Destinations
// @Produce json
// @Param search query string false "Matches name, city, country or description"
// @Param country query string false "Country, case insensitive"
// @Param continent query string false "Continent"
// @Param min_rating query number false "Minimum average rating"
// @Param max_price query int false "Maximum average price"
// @Param categories query string false "Comma separated activity categories"
// @Param sort_by query string false "name, rating, price or popularity" default(rating)
// @Param sort_order query string false "asc or desc" default(desc)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse{data=response_models.DestinationListResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /destinations [get]
func (d *DestinationController) ListDestinations(c *gin.Context) {
	var query request_models.DestinationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	destinations, err := d.destinationService.ListDestinations(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destinations fetched successfully")
}

// FeaturedDestinations godoc
// @Summary Featured destinations, best rated first
// @Tags Destinations
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]response_models.DestinationResponse}
// @Router /destinations/featured [get]
func (d *DestinationController) FeaturedDestinations(c *gin.Context) {
	destinations, err := d.destinationService.FeaturedDestinations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Featured destinations fetched successfully")
}

// NearbyDestinations godoc
// @Summary Destinations near a point
// @Tags Destinations
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Radius in km" default(100) maximum(1000)
// @Param limit query int false "Maximum results" default(20) maximum(50)
// @Success 200 {object} utils.APIResponse{data=[]response_models.DestinationResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /destinations/nearby [get]
func (d *DestinationController) NearbyDestinations(c *gin.Context) {
	var query request_models.NearbyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	destinations, err := d.destinationService.NearbyDestinations(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Nearby destinations fetched successfully")
}

// GetDestination godoc
// @Summary Get a destination
// @Tags Destinations
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} utils.APIResponse{data=response_models.DestinationResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /destinations/{id} [get]
func (d *DestinationController) GetDestination(c *gin.Context) {
	id, ok := parseDestinationID(c)
	if !ok {
		return
	}

	destination, err := d.destinationService.GetDestination(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destination, "Destination fetched successfully")
}

// ListReviews godoc
// @Summary Approved reviews of a destination
// @Tags Destinations
// @Produce json
// @Param id path string true "Destination ID"
// @Param sort query string false "newest, oldest, rating_high, rating_low or helpful" default(newest)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20) minimum(1) maximum(50)
// @Success 200 {object} utils.APIResponse{data=response_models.ReviewListResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /destinations/{id}/reviews [get]
func (d *DestinationController) ListReviews(c *gin.Context) {
	id, ok := parseDestinationID(c)
	if !ok {
		return
	}

	var query request_models.ReviewListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	reviews, err := d.reviewService.ListDestinationReviews(c.Request.Context(), id, query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "Reviews fetched successfully")
}

func parseDestinationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid destination id")
		return uuid.Nil, false
	}
	return id, true
}
