package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	exportService    services.ExportServiceInterface
	assistantService services.AssistantServiceInterface
}

func NewItineraryController(
	itineraryService services.ItineraryServiceInterface,
	exportService services.ExportServiceInterface,
	assistantService services.AssistantServiceInterface,
) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		exportService:    exportService,
		assistantService: assistantService,
	}
}

// Compose godoc
// @Summary Compose itinerary options
// @Description Build one priced, day by day itinerary per budget tier and cache the plan
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.ComposeItineraryRequest true "Planning request"
// @Success 201 {object} utils.APIResponse{data=response_models.PlanResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /itineraries/compose [post]
func (i *ItineraryController) Compose(c *gin.Context) {
	var req request_models.ComposeItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	plan, err := i.itineraryService.Compose(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, plan, "Itinerary options composed successfully")
}

// GetPlan godoc
// @Summary Get a composed plan
// @Tags Itineraries
// @Produce json
// @Param planId path string true "Plan ID"
// @Success 200 {object} utils.APIResponse{data=response_models.PlanResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /itineraries/{planId} [get]
func (i *ItineraryController) GetPlan(c *gin.Context) {
	plan, err := i.itineraryService.GetPlan(c.Request.Context(), c.Param("planId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan fetched successfully")
}

// GetOption godoc
// @Summary Get one tier of a composed plan
// @Tags Itineraries
// @Produce json
// @Param planId path string true "Plan ID"
// @Param tierId path string true "Tier ID"
// @Success 200 {object} utils.APIResponse{data=composer.ItineraryOption}
// @Failure 404 {object} utils.APIResponse
// @Router /itineraries/{planId}/{tierId} [get]
func (i *ItineraryController) GetOption(c *gin.Context) {
	_, option, err := i.itineraryService.GetOption(c.Request.Context(), c.Param("planId"), c.Param("tierId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, option, "Itinerary option fetched successfully")
}

// ExportPDF godoc
// @Summary Download an itinerary option as PDF
// @Tags Itineraries
// @Produce application/pdf
// @Param planId path string true "Plan ID"
// @Param tierId path string true "Tier ID"
// @Success 200 {file} file
// @Failure 404 {object} utils.APIResponse
// @Router /itineraries/{planId}/{tierId}/pdf [get]
func (i *ItineraryController) ExportPDF(c *gin.Context) {
	doc, name, err := i.exportService.ExportOption(c.Request.Context(), c.Param("planId"), c.Param("tierId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", doc)
}

// Suggest godoc
// @Summary Suggest a narrative itinerary
// @Description Ask the configured AI provider for a day by day plan, falling back to the composed comfort tier
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.SuggestItineraryRequest true "Suggestion request"
// @Success 200 {object} utils.APIResponse{data=response_models.SuggestionResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /itineraries/suggest [post]
func (i *ItineraryController) Suggest(c *gin.Context) {
	var req request_models.SuggestItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	suggestion, err := i.assistantService.Suggest(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, suggestion, "Itinerary suggested successfully")
}
