package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamwarrior/internal/models/request_models"
	"roamwarrior/internal/services"
	"roamwarrior/pkg/utils"
)

type SessionController struct {
	sessionService services.SessionServiceInterface
}

func NewSessionController(sessionService services.SessionServiceInterface) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

func (s *SessionController) GetPlanHandler(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	plan, err := s.sessionService.GetPlan(sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan fetched successfully")
}

// SavePlanHandler stores a client-edited plan wholesale, after validation.
func (s *SessionController) SavePlanHandler(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	var req request_models.SavePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "plan is required")
		return
	}

	if err := s.sessionService.SavePlan(sessionID, req.Plan); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Plan saved successfully")
}

func (s *SessionController) ReorderDaysHandler(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	var req request_models.ReorderDaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "order is required")
		return
	}

	plan, err := s.sessionService.ReorderDays(sessionID, req.Order)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Days reordered successfully")
}

func (s *SessionController) ClearSessionHandler(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	s.sessionService.ClearSession(sessionID)

	utils.RespondSuccess(c, nil, "Session cleared successfully")
}
