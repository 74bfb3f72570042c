package service

import (
	"reflect"
	"testing"
	"time"

	"studypath-be/internal/entities"
	"studypath-be/internal/models"
)

// fakeStudyRepo keeps plans in memory with explicit creation times
type fakeStudyRepo struct {
	plans  []*entities.StudyPlan
	nextID int

	gotSumUserID int
	gotSumSince  time.Time
}

func newFakeStudyRepo() *fakeStudyRepo {
	return &fakeStudyRepo{nextID: 1}
}

func (f *fakeStudyRepo) Create(userID int, subject string, hours int) (*entities.StudyPlan, error) {
	plan := &entities.StudyPlan{
		ID:        f.nextID,
		UserID:    userID,
		Subject:   subject,
		Hours:     hours,
		CreatedAt: time.Now(),
	}
	f.nextID++
	f.plans = append(f.plans, plan)
	return plan, nil
}

func (f *fakeStudyRepo) FindByUserID(userID int) ([]*entities.StudyPlan, error) {
	var out []*entities.StudyPlan
	for _, plan := range f.plans {
		if plan.UserID == userID {
			out = append(out, plan)
		}
	}
	return out, nil
}

func (f *fakeStudyRepo) SumHoursSince(userID int, since time.Time) (int, error) {
	f.gotSumUserID = userID
	f.gotSumSince = since

	total := 0
	for _, plan := range f.plans {
		if plan.UserID == userID && !plan.CreatedAt.Before(since) {
			total += plan.Hours
		}
	}
	return total, nil
}

func (f *fakeStudyRepo) add(userID, hours int, createdAt time.Time) {
	f.plans = append(f.plans, &entities.StudyPlan{
		ID:        f.nextID,
		UserID:    userID,
		Subject:   "x",
		Hours:     hours,
		CreatedAt: createdAt,
	})
	f.nextID++
}

func TestCreatePlanMapsFields(t *testing.T) {
	repo := newFakeStudyRepo()
	svc := NewStudyService(repo)

	resp, err := svc.CreatePlan(5, &models.StudyPlanRequest{Subject: "Calculus", Hours: 6})
	if err != nil {
		t.Fatalf("CreatePlan error: %v", err)
	}

	if resp.ID != 1 || resp.Subject != "Calculus" || resp.Hours != 6 {
		t.Errorf("response = %+v, want id=1 subject=Calculus hours=6", resp)
	}
	if len(repo.plans) != 1 || repo.plans[0].UserID != 5 {
		t.Errorf("plan not persisted for user 5: %+v", repo.plans)
	}
}

func TestGetUserPlansScopedToOwner(t *testing.T) {
	repo := newFakeStudyRepo()
	svc := NewStudyService(repo)

	now := time.Now()
	repo.add(1, 2, now)
	repo.add(2, 9, now)
	repo.add(1, 3, now)

	plans, err := svc.GetUserPlans(1)
	if err != nil {
		t.Fatalf("GetUserPlans error: %v", err)
	}

	want := []*models.StudyPlanResponse{
		{ID: 1, Subject: "x", Hours: 2},
		{ID: 3, Subject: "x", Hours: 3},
	}
	if !reflect.DeepEqual(plans, want) {
		t.Errorf("plans = %v, want %v", plans, want)
	}
}

func TestWeeklyProgressSumsRecentPlans(t *testing.T) {
	repo := newFakeStudyRepo()
	svc := NewStudyService(repo)

	now := time.Now()
	repo.add(1, 2, now.Add(-1*24*time.Hour))
	repo.add(1, 3, now.Add(-3*24*time.Hour))
	repo.add(1, 4, now.Add(-6*24*time.Hour))
	repo.add(1, 100, now.Add(-8*24*time.Hour)) // outside the window
	repo.add(2, 50, now)                       // someone else's plan

	progress, err := svc.WeeklyProgress(1)
	if err != nil {
		t.Fatalf("WeeklyProgress error: %v", err)
	}
	if progress.TotalHours != 9 {
		t.Errorf("total_hours = %d, want 9", progress.TotalHours)
	}

	if repo.gotSumUserID != 1 {
		t.Errorf("summed user = %d, want 1", repo.gotSumUserID)
	}
	wantSince := now.Add(-7 * 24 * time.Hour)
	if diff := repo.gotSumSince.Sub(wantSince); diff < -time.Minute || diff > time.Minute {
		t.Errorf("cutoff = %v, want about 7 days before now", repo.gotSumSince)
	}
}

func TestWeeklyProgressEmpty(t *testing.T) {
	svc := NewStudyService(newFakeStudyRepo())

	progress, err := svc.WeeklyProgress(1)
	if err != nil {
		t.Fatalf("WeeklyProgress error: %v", err)
	}
	if progress.TotalHours != 0 {
		t.Errorf("total_hours = %d, want 0 with no plans", progress.TotalHours)
	}
}
