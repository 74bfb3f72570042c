package controllers

import (
	"log"
	"net/http"

	"studypath-be/internal/models"
	"studypath-be/internal/service"

	"github.com/gin-gonic/gin"
)

type AIPlanController struct {
	planner service.AIPlannerService
}

func NewAIPlanController(planner service.AIPlannerService) *AIPlanController {
	return &AIPlanController{
		planner: planner,
	}
}

// Generate handles POST /ai-plan/
func (pc *AIPlanController) Generate(c *gin.Context) {
	var req models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	plan, err := pc.planner.GeneratePlan(c.Request.Context(), &req)
	if err != nil {
		// Upstream detail stays server-side
		log.Printf("AI plan error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "AI plan generation failed",
		})
		return
	}

	c.JSON(http.StatusOK, models.AIPlanResponse{AIPlan: plan})
}
