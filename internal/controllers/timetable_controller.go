package controllers

import (
	"errors"
	"log"
	"net/http"

	"studypath-be/internal/middleware"
	"studypath-be/internal/models"
	"studypath-be/internal/repository"
	"studypath-be/internal/service"

	"github.com/gin-gonic/gin"
)

type TimetableController struct {
	planner service.AIPlannerService
}

func NewTimetableController(planner service.AIPlannerService) *TimetableController {
	return &TimetableController{
		planner: planner,
	}
}

// Generate handles POST /ai-timetable/
func (tc *TimetableController) Generate(c *gin.Context) {
	var req models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	userID := c.GetInt(middleware.UserIDKey)

	timetable, err := tc.planner.GenerateTimetable(c.Request.Context(), userID, &req)
	if err != nil {
		// Covers upstream failures, unparseable output, and the DB write
		log.Printf("AI timetable error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "AI timetable generation failed",
		})
		return
	}

	c.JSON(http.StatusOK, models.TimetableResponse{Timetable: timetable})
}

// Latest handles GET /ai-timetable/latest
func (tc *TimetableController) Latest(c *gin.Context) {
	userID := c.GetInt(middleware.UserIDKey)

	timetable, err := tc.planner.LatestTimetable(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNoTimetable) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No timetable found",
			})
			return
		}
		log.Printf("AI timetable lookup error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to load timetable",
		})
		return
	}

	c.JSON(http.StatusOK, models.TimetableResponse{Timetable: timetable})
}

// Save handles POST /ai-timetable/save.
// Timetables are persisted at generation time; this stays for older frontend
// builds that still call it.
func (tc *TimetableController) Save(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Already saved",
	})
}
