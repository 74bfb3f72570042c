package controllers

import (
	"net/http"

	"studypath-be/internal/models"
	"studypath-be/internal/service"

	"github.com/gin-gonic/gin"
)

type SmartPlanController struct{}

func NewSmartPlanController() *SmartPlanController {
	return &SmartPlanController{}
}

// Generate handles POST /smart-plan/
func (pc *SmartPlanController) Generate(c *gin.Context) {
	var req models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, service.GenerateSmartPlan(&req))
}
