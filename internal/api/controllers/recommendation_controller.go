package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamwarrior/internal/models/request_models"
	"roamwarrior/internal/models/response_models"
	"roamwarrior/internal/services"
	"roamwarrior/pkg/utils"
)

type RecommendationController struct {
	recommendationService services.RecommendationServiceInterface
}

func NewRecommendationController(recommendationService services.RecommendationServiceInterface) *RecommendationController {
	return &RecommendationController{
		recommendationService: recommendationService,
	}
}

func (r *RecommendationController) RecommendPlacesHandler(c *gin.Context) {
	var req request_models.PlacesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "destination and desired_activities are required")
		return
	}

	places, err := r.recommendationService.RecommendPlaces(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.PlacesResponse{Places: places}, "Places recommended successfully")
}

func (r *RecommendationController) RecommendStayHandler(c *gin.Context) {
	var req request_models.StayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "destination and itinerary are required")
		return
	}

	options, err := r.recommendationService.RecommendStay(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.StayResponse{Options: options}, "Stay options recommended successfully")
}

// MergePlacesHandler folds a fresh batch of recommendations into the
// client's running selection set, dropping exact duplicates.
func (r *RecommendationController) MergePlacesHandler(c *gin.Context) {
	var req request_models.MergePlacesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	merged := r.recommendationService.MergePlaceSelections(req.Existing, req.Incoming)

	utils.RespondSuccess(c, response_models.PlacesResponse{Places: merged}, "Selections merged successfully")
}
