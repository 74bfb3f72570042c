package controllers

import (
	"net/http"

	"studypath-be/internal/middleware"
	"studypath-be/internal/models"
	"studypath-be/internal/service"

	"github.com/gin-gonic/gin"
)

type StudyController struct {
	studyService service.StudyService
}

func NewStudyController(studyService service.StudyService) *StudyController {
	return &StudyController{
		studyService: studyService,
	}
}

// CreatePlan handles POST /study/
func (sc *StudyController) CreatePlan(c *gin.Context) {
	var req models.StudyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	userID := c.GetInt(middleware.UserIDKey)

	plan, err := sc.studyService.CreatePlan(userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to create study plan",
		})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// GetPlans handles GET /study/
func (sc *StudyController) GetPlans(c *gin.Context) {
	userID := c.GetInt(middleware.UserIDKey)

	plans, err := sc.studyService.GetUserPlans(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to list study plans",
		})
		return
	}

	if plans == nil {
		plans = []*models.StudyPlanResponse{}
	}
	c.JSON(http.StatusOK, plans)
}

// WeeklyProgress handles GET /progress/weekly
func (sc *StudyController) WeeklyProgress(c *gin.Context) {
	userID := c.GetInt(middleware.UserIDKey)

	progress, err := sc.studyService.WeeklyProgress(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to compute weekly progress",
		})
		return
	}

	c.JSON(http.StatusOK, progress)
}
