package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamwarrior/internal/models/request_models"
	"roamwarrior/internal/services"
	"roamwarrior/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GeneratePlanHandler handles POST /itinerary/generate. Validation failures
// come back with every violated field listed.
func (i *ItineraryController) GeneratePlanHandler(c *gin.Context) {
	var req request_models.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := i.itineraryService.GeneratePlan(c.Request.Context(), req.SessionID, req.TravelRequest)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Itinerary generated successfully")
}

// RefinePlanHandler handles POST /itinerary/refine. On failure the stored
// plan is left untouched and remains retrievable.
func (i *ItineraryController) RefinePlanHandler(c *gin.Context) {
	var req request_models.RefineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "session_id and feedback are required")
		return
	}

	resp, err := i.itineraryService.RefinePlan(c.Request.Context(), req.SessionID, req.Feedback, req.Preferences)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Itinerary refined successfully")
}
