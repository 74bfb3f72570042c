package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"studypath-be/internal/entities"
	"studypath-be/internal/models"
	"studypath-be/internal/openai"
	"studypath-be/internal/repository"
)

// fakeCompletions returns a canned reply or error and records the last call
type fakeCompletions struct {
	reply string
	err   error

	gotMessages    []openai.Message
	gotTemperature float64
}

func (f *fakeCompletions) CreateCompletion(_ context.Context, messages []openai.Message, temperature float64) (string, error) {
	f.gotMessages = messages
	f.gotTemperature = temperature
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

// fakeTimetableRepo stores at most one timetable in memory
type fakeTimetableRepo struct {
	stored    *entities.AITimetable
	createErr error
}

func (f *fakeTimetableRepo) Create(userID int, subject string, timetable json.RawMessage) (*entities.AITimetable, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.stored = &entities.AITimetable{
		ID:        1,
		UserID:    userID,
		Subject:   subject,
		Timetable: timetable,
	}
	return f.stored, nil
}

func (f *fakeTimetableRepo) FindLatestByUserID(userID int) (*entities.AITimetable, error) {
	if f.stored == nil || f.stored.UserID != userID {
		return nil, repository.ErrNoTimetable
	}
	return f.stored, nil
}

func planReq() *models.PlanRequest {
	return &models.PlanRequest{
		Subject:    "Databases",
		Hours:      8,
		Category:   "theory",
		Difficulty: "hard",
	}
}

func TestExtractTimetable(t *testing.T) {
	object := `{"Monday":["Read chapter 1"],"Sunday":["Light revision / recap"]}`
	want := models.Timetable{
		"Monday": {"Read chapter 1"},
		"Sunday": {"Light revision / recap"},
	}

	tests := []struct {
		name    string
		raw     string
		want    models.Timetable
		wantErr bool
	}{
		{name: "bare object", raw: object, want: want},
		{name: "object between prose", raw: "Sure! Here is your plan:\n" + object + "\nGood luck!", want: want},
		{name: "object in code fence", raw: "```json\n" + object + "\n```", want: want},
		{name: "no braces at all", raw: "I cannot produce a timetable right now.", wantErr: true},
		{name: "opening brace never closed", raw: `{"Monday":["Read"`, wantErr: true},
		{name: "empty string", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractTimetable(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("extractTimetable(%q) = %v, want error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("extractTimetable(%q) error: %v", tt.raw, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractTimetable(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestGeneratePlanReturnsRawText(t *testing.T) {
	completions := &fakeCompletions{reply: "Study 2 hours daily. Take breaks."}
	svc := NewAIPlannerService(completions, &fakeTimetableRepo{}, nil)

	plan, err := svc.GeneratePlan(context.Background(), planReq())
	if err != nil {
		t.Fatalf("GeneratePlan error: %v", err)
	}
	if plan != "Study 2 hours daily. Take breaks." {
		t.Errorf("plan = %q, want the completion text verbatim", plan)
	}

	if completions.gotTemperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", completions.gotTemperature)
	}
	if len(completions.gotMessages) != 2 || completions.gotMessages[0].Role != "system" {
		t.Errorf("messages = %v, want system prompt followed by user prompt", completions.gotMessages)
	}
}

func TestGeneratePlanSurfacesUpstreamError(t *testing.T) {
	upstream := errors.New("completion service /chat/completions returned 429: quota")
	svc := NewAIPlannerService(&fakeCompletions{err: upstream}, &fakeTimetableRepo{}, nil)

	if _, err := svc.GeneratePlan(context.Background(), planReq()); !errors.Is(err, upstream) {
		t.Errorf("GeneratePlan error = %v, want upstream error surfaced", err)
	}
}

func TestGenerateTimetablePersistsAndReturns(t *testing.T) {
	reply := "Here you go:\n{\"Monday\":[\"Task 1\",\"Task 2\"],\"Tuesday\":[\"Task 1\"]}"
	completions := &fakeCompletions{reply: reply}
	repo := &fakeTimetableRepo{}
	svc := NewAIPlannerService(completions, repo, nil)

	got, err := svc.GenerateTimetable(context.Background(), 42, planReq())
	if err != nil {
		t.Fatalf("GenerateTimetable error: %v", err)
	}

	want := models.Timetable{"Monday": {"Task 1", "Task 2"}, "Tuesday": {"Task 1"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("timetable = %v, want %v", got, want)
	}

	if completions.gotTemperature != 0.6 {
		t.Errorf("temperature = %v, want 0.6", completions.gotTemperature)
	}

	if repo.stored == nil {
		t.Fatal("timetable was not persisted")
	}
	if repo.stored.UserID != 42 || repo.stored.Subject != "Databases" {
		t.Errorf("stored row = user %d subject %q, want user 42 subject Databases", repo.stored.UserID, repo.stored.Subject)
	}

	var persisted models.Timetable
	if err := json.Unmarshal(repo.stored.Timetable, &persisted); err != nil {
		t.Fatalf("stored timetable is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(persisted, want) {
		t.Errorf("persisted timetable = %v, want %v", persisted, want)
	}
}

func TestGenerateTimetableFailsOnUnparseableOutput(t *testing.T) {
	repo := &fakeTimetableRepo{}
	svc := NewAIPlannerService(&fakeCompletions{reply: "no json here"}, repo, nil)

	if _, err := svc.GenerateTimetable(context.Background(), 1, planReq()); err == nil {
		t.Fatal("GenerateTimetable succeeded on unparseable output, want error")
	}
	if repo.stored != nil {
		t.Error("nothing should be persisted when parsing fails")
	}
}

func TestGenerateTimetableFailsOnRepoError(t *testing.T) {
	repo := &fakeTimetableRepo{createErr: fmt.Errorf("failed to create timetable: connection reset")}
	svc := NewAIPlannerService(&fakeCompletions{reply: `{"Monday":["Task"]}`}, repo, nil)

	if _, err := svc.GenerateTimetable(context.Background(), 1, planReq()); err == nil {
		t.Fatal("GenerateTimetable succeeded despite repo failure, want error")
	}
}

func TestLatestTimetable(t *testing.T) {
	repo := &fakeTimetableRepo{}
	svc := NewAIPlannerService(&fakeCompletions{reply: `{"Monday":["Task 1"]}`}, repo, nil)

	// Before any generation the lookup reports not found
	if _, err := svc.LatestTimetable(context.Background(), 7); !errors.Is(err, repository.ErrNoTimetable) {
		t.Fatalf("LatestTimetable before generation: err = %v, want ErrNoTimetable", err)
	}

	generated, err := svc.GenerateTimetable(context.Background(), 7, planReq())
	if err != nil {
		t.Fatalf("GenerateTimetable error: %v", err)
	}

	latest, err := svc.LatestTimetable(context.Background(), 7)
	if err != nil {
		t.Fatalf("LatestTimetable after generation: %v", err)
	}
	if !reflect.DeepEqual(latest, generated) {
		t.Errorf("latest = %v, want the generated record %v", latest, generated)
	}

	// Another user still has nothing
	if _, err := svc.LatestTimetable(context.Background(), 8); !errors.Is(err, repository.ErrNoTimetable) {
		t.Errorf("LatestTimetable for other user: err = %v, want ErrNoTimetable", err)
	}
}
