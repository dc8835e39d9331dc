package services

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/nick-0037/workout-tracker-api/internal/common"
	"github.com/nick-0037/workout-tracker-api/internal/server/models"
)

type fakeExercisesRepo struct {
	allOut []*models.Exercise
	allErr error

	byID    map[int64]*models.Exercise
	byIDErr error
}

func (f *fakeExercisesRepo) GetAll(ctx context.Context) ([]*models.Exercise, error) {
	if f.allErr != nil {
		return nil, f.allErr
	}
	return f.allOut, nil
}

func (f *fakeExercisesRepo) GetByID(ctx context.Context, id int64) (*models.Exercise, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	ex, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return ex, nil
}

func TestExercisesGetAll(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{e: &fakeExercisesRepo{allOut: []*models.Exercise{
		{ID: 1, Name: "Push-ups"},
		{ID: 2, Name: "Squats"},
	}}}
	s := NewExerciseService(db, rm)

	list, err := s.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll error: %v", err)
	}
	if len(list) != 2 || list[0].Name != "Push-ups" {
		t.Fatalf("unexpected catalog: %+v", list)
	}
}

func TestExercisesGetAll_Err(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{e: &fakeExercisesRepo{allErr: errBoom{}}}
	s := NewExerciseService(db, rm)

	_, err := s.GetAll(context.Background())
	if err == nil || !regexp.MustCompile(`error listing exercises: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped list error, got %v", err)
	}
}

func TestExercisesGetByID(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{e: &fakeExercisesRepo{byID: map[int64]*models.Exercise{
		3: {ID: 3, Name: "Deadlifts", MuscleGroup: "back"},
	}}}
	s := NewExerciseService(db, rm)

	ex, err := s.GetByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if ex.Name != "Deadlifts" {
		t.Fatalf("unexpected exercise: %+v", ex)
	}

	_, err = s.GetByID(context.Background(), 99)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}
