package service

import (
	"time"

	"studypath-be/internal/models"
	"studypath-be/internal/repository"
)

// progressWindow is the lookback window for weekly progress totals
const progressWindow = 7 * 24 * time.Hour

// StudyService defines the interface for study plan business logic
type StudyService interface {
	CreatePlan(userID int, req *models.StudyPlanRequest) (*models.StudyPlanResponse, error)
	GetUserPlans(userID int) ([]*models.StudyPlanResponse, error)
	WeeklyProgress(userID int) (*models.WeeklyProgressResponse, error)
}

type studyService struct {
	repo repository.StudyPlanRepository
}

// NewStudyService creates a new study service
func NewStudyService(repo repository.StudyPlanRepository) StudyService {
	return &studyService{repo: repo}
}

// CreatePlan stores a new study plan for the user
func (s *studyService) CreatePlan(userID int, req *models.StudyPlanRequest) (*models.StudyPlanResponse, error) {
	plan, err := s.repo.Create(userID, req.Subject, req.Hours)
	if err != nil {
		return nil, err
	}

	return &models.StudyPlanResponse{
		ID:      plan.ID,
		Subject: plan.Subject,
		Hours:   plan.Hours,
	}, nil
}

// GetUserPlans returns all study plans owned by the user
func (s *studyService) GetUserPlans(userID int) ([]*models.StudyPlanResponse, error) {
	plans, err := s.repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.StudyPlanResponse, len(plans))
	for i, plan := range plans {
		responses[i] = &models.StudyPlanResponse{
			ID:      plan.ID,
			Subject: plan.Subject,
			Hours:   plan.Hours,
		}
	}

	return responses, nil
}

// WeeklyProgress sums the user's plan hours over the last 7 days of server time
func (s *studyService) WeeklyProgress(userID int) (*models.WeeklyProgressResponse, error) {
	since := time.Now().Add(-progressWindow)

	total, err := s.repo.SumHoursSince(userID, since)
	if err != nil {
		return nil, err
	}

	return &models.WeeklyProgressResponse{TotalHours: total}, nil
}
