package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"studypath-be/internal/cache"
	"studypath-be/internal/models"
	"studypath-be/internal/openai"
	"studypath-be/internal/repository"
)

// CompletionClient is the subset of the completion API used by the planners
type CompletionClient interface {
	CreateCompletion(ctx context.Context, messages []openai.Message, temperature float64) (string, error)
}

// AIPlannerService generates study plans and timetables via the completion
// service. Timetables are persisted per user; plans are returned as-is.
type AIPlannerService interface {
	GeneratePlan(ctx context.Context, req *models.PlanRequest) (string, error)
	GenerateTimetable(ctx context.Context, userID int, req *models.PlanRequest) (models.Timetable, error)
	LatestTimetable(ctx context.Context, userID int) (models.Timetable, error)
}

const (
	planSystemPrompt = "You are a helpful study planning assistant."

	planPromptTemplate = `You are an expert study planner.

Create an optimized weekly study plan.

Subject: %s
Total weekly hours: %d
Subject type: %s
Difficulty: %s

Requirements:
- Break time into activities
- Suggest daily schedule
- Give 3 productivity tips
- Keep response concise and structured`

	timetablePromptTemplate = `You are an expert academic planner.

Create a realistic weekly study timetable (Monday to Sunday)
for the following course:

Subject: %s
Weekly hours available: %d
Subject type: %s
Difficulty: %s

Rules:
- Limit daily study to max 1.5 hours
- Balance theory, practice, and revision
- Hard topics earlier in the week
- Light review or recap on weekends
- Avoid burnout
- Be realistic for a college student

Return output strictly in JSON with this structure:
{
  "Monday": ["Task 1", "Task 2"],
  "Tuesday": ["Task 1"],
  ...
  "Sunday": ["Light revision / recap"]
}`

	planTemperature      = 0.7
	timetableTemperature = 0.6

	latestTimetableTTL = 24 * time.Hour
)

func latestTimetableKey(userID int) string {
	return fmt.Sprintf("timetable:latest:%d", userID)
}

type aiPlannerService struct {
	completions CompletionClient
	timetables  repository.TimetableRepository
	cache       cache.Cache
}

// NewAIPlannerService creates a new AI planner service.
// cacheClient may be nil, in which case latest-timetable reads always hit the
// database.
func NewAIPlannerService(completions CompletionClient, timetables repository.TimetableRepository, cacheClient cache.Cache) AIPlannerService {
	return &aiPlannerService{
		completions: completions,
		timetables:  timetables,
		cache:       cacheClient,
	}
}

// GeneratePlan asks the completion service for a free-text weekly study plan.
// The response is returned verbatim with no parsing.
func (s *aiPlannerService) GeneratePlan(ctx context.Context, req *models.PlanRequest) (string, error) {
	prompt := fmt.Sprintf(planPromptTemplate, req.Subject, req.Hours, req.Category, req.Difficulty)

	return s.completions.CreateCompletion(ctx, []openai.Message{
		{Role: "system", Content: planSystemPrompt},
		{Role: "user", Content: prompt},
	}, planTemperature)
}

// GenerateTimetable asks the completion service for a JSON-shaped timetable,
// extracts the JSON object from the reply, and persists it for the user.
func (s *aiPlannerService) GenerateTimetable(ctx context.Context, userID int, req *models.PlanRequest) (models.Timetable, error) {
	prompt := fmt.Sprintf(timetablePromptTemplate, req.Subject, req.Hours, req.Category, req.Difficulty)

	raw, err := s.completions.CreateCompletion(ctx, []openai.Message{
		{Role: "user", Content: prompt},
	}, timetableTemperature)
	if err != nil {
		return nil, err
	}

	timetable, err := extractTimetable(raw)
	if err != nil {
		return nil, err
	}

	stored, err := json.Marshal(timetable)
	if err != nil {
		return nil, fmt.Errorf("failed to encode timetable: %w", err)
	}

	if _, err := s.timetables.Create(userID, req.Subject, stored); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, latestTimetableKey(userID), timetable, latestTimetableTTL); err != nil {
			fmt.Printf("Warning: failed to cache timetable for user %d: %v\n", userID, err)
		}
	}

	return timetable, nil
}

// LatestTimetable returns the most recently generated timetable for the user,
// preferring the cache. Returns repository.ErrNoTimetable when none exists.
func (s *aiPlannerService) LatestTimetable(ctx context.Context, userID int) (models.Timetable, error) {
	if s.cache != nil {
		var cached models.Timetable
		if err := s.cache.GetJSON(ctx, latestTimetableKey(userID), &cached); err == nil && cached != nil {
			return cached, nil
		}
	}

	record, err := s.timetables.FindLatestByUserID(userID)
	if err != nil {
		return nil, err
	}

	var timetable models.Timetable
	if err := json.Unmarshal(record.Timetable, &timetable); err != nil {
		return nil, fmt.Errorf("failed to decode stored timetable: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, latestTimetableKey(userID), timetable, latestTimetableTTL); err != nil {
			fmt.Printf("Warning: failed to cache timetable for user %d: %v\n", userID, err)
		}
	}

	return timetable, nil
}

// extractTimetable decodes the single JSON object embedded in a completion
// reply. The model is told to answer with bare JSON but often wraps it in
// prose or a code fence, so decoding starts at the first '{' and stops after
// one complete object; anything malformed from there is an explicit error.
func extractTimetable(raw string) (models.Timetable, error) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return nil, fmt.Errorf("no JSON object in completion output")
	}

	dec := json.NewDecoder(strings.NewReader(raw[start:]))
	var timetable models.Timetable
	if err := dec.Decode(&timetable); err != nil {
		return nil, fmt.Errorf("malformed timetable JSON in completion output: %w", err)
	}

	return timetable, nil
}
