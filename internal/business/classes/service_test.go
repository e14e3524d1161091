package classes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyKozhin/student-planner-backend/internal/calendar"
	"github.com/SergeyKozhin/student-planner-backend/internal/model"
	"github.com/SergeyKozhin/student-planner-backend/internal/reminder"
	"github.com/SergeyKozhin/student-planner-backend/internal/timetable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday 2024-01-08 10:00 UTC
var testNow = time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)

func newTestService(repo *fakeClassesRepository) (*Service, *fakeDB) {
	db := &fakeDB{}
	s := NewService(db, repo, time.UTC)
	s.now = func() time.Time { return testNow }
	return s, db
}

func stored(id, user, name, clock string, days ...string) *model.Class {
	return &model.Class{
		ID: id,
		ClassCreate: model.ClassCreate{
			UserID:             user,
			Name:               name,
			Time:               clock,
			Days:               days,
			RepetitionInterval: 1,
			StartDate:          time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		},
	}
}

func TestCreateClassNormalizes(t *testing.T) {
	repo := newFakeClassesRepository()
	s, _ := newTestService(repo)

	class, err := s.CreateClass(context.Background(), &model.ClassCreate{
		UserID:    "u1",
		Name:      "  Math ",
		Time:      "9:00 AM",
		Days:      []string{"monday", "MONDAY", "wednesday"},
		Reminders: []int{15, 5, 15},
	})
	require.NoError(t, err)

	assert.Equal(t, "class-1", class.ID)
	assert.Equal(t, "Math", class.Name)
	assert.Equal(t, "09:00", class.Time)
	assert.Equal(t, []string{"Monday", "Wednesday"}, class.Days)
	assert.Equal(t, []int{5, 15}, class.Reminders)
	assert.Equal(t, 1, class.RepetitionInterval)
	assert.Equal(t, timetable.PaletteColor(0), class.Color)
	assert.Equal(t, time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC), class.StartDate)

	assert.Equal(t, class.ClassCreate, repo.classes["class-1"].ClassCreate)
}

func TestCreateClassValidation(t *testing.T) {
	s, _ := newTestService(newFakeClassesRepository())

	_, err := s.CreateClass(context.Background(), &model.ClassCreate{
		UserID:             "u1",
		Name:               " ",
		Time:               "25:00",
		Days:               []string{"Funday"},
		RepetitionInterval: -1,
		Reminders:          []int{-5},
		Color:              "blue",
	})

	var vErr *model.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.ElementsMatch(t,
		[]string{"name", "time", "days", "repetition_interval", "reminders", "color"},
		keys(vErr.Errors),
	)

	_, err = s.CreateClass(context.Background(), &model.ClassCreate{UserID: "u1", Name: "Math", Time: "09:00"})
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Errors, "days")
}

func TestCreateClassLeadLimit(t *testing.T) {
	s, _ := newTestService(newFakeClassesRepository())

	info := func(lead int) *model.ClassCreate {
		return &model.ClassCreate{
			UserID:    "u1",
			Name:      "Math",
			Time:      "09:00",
			Days:      []string{"Monday"},
			Reminders: []int{lead},
		}
	}

	_, err := s.CreateClass(context.Background(), info(7*24*60))
	var vErr *model.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, []string{"reminders"}, keys(vErr.Errors))

	class, err := s.CreateClass(context.Background(), info(reminder.MaxLeadMinutes))
	require.NoError(t, err)
	assert.Equal(t, []int{reminder.MaxLeadMinutes}, class.Reminders)
}

func keys(m map[string]string) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	return res
}

func TestGetClassChecksOwner(t *testing.T) {
	s, _ := newTestService(newFakeClassesRepository(stored("c1", "u1", "Math", "09:00", "Monday")))

	c, err := s.GetClass(context.Background(), "u1", "c1")
	require.NoError(t, err)
	assert.Equal(t, "Math", c.Name)

	_, err = s.GetClass(context.Background(), "u2", "c1")
	assert.True(t, errors.Is(err, model.ErrNoRecord))

	_, err = s.GetClass(context.Background(), "u1", "missing")
	assert.True(t, errors.Is(err, model.ErrNoRecord))
}

func TestUpdateClassKeepsStartAndColor(t *testing.T) {
	old := stored("c1", "u1", "Math", "09:00", "Monday")
	old.Color = "#10b981"
	repo := newFakeClassesRepository(old)
	s, _ := newTestService(repo)

	updated, err := s.UpdateClass(context.Background(), "c1", &model.ClassCreate{
		UserID: "u1",
		Name:   "Algebra",
		Time:   "1:30 PM",
		Days:   []string{"tuesday"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Algebra", updated.Name)
	assert.Equal(t, "13:30", updated.Time)
	assert.Equal(t, []string{"Tuesday"}, updated.Days)
	assert.Equal(t, "#10b981", updated.Color)
	assert.Equal(t, old.StartDate, updated.StartDate)
	assert.Equal(t, updated, repo.classes["c1"])

	_, err = s.UpdateClass(context.Background(), "c1", &model.ClassCreate{UserID: "u2", Name: "X", Time: "09:00", Days: []string{"Monday"}})
	assert.True(t, errors.Is(err, model.ErrNoRecord))
}

func TestDeleteClass(t *testing.T) {
	repo := newFakeClassesRepository(stored("c1", "u1", "Math", "09:00", "Monday"))
	s, _ := newTestService(repo)

	assert.True(t, errors.Is(s.DeleteClass(context.Background(), "u2", "c1"), model.ErrNoRecord))
	require.NoError(t, s.DeleteClass(context.Background(), "u1", "c1"))
	assert.Empty(t, repo.classes)
}

func TestClassesOnDate(t *testing.T) {
	biweekly := stored("c4", "u1", "Lab", "16:00", "Monday")
	biweekly.RepetitionInterval = 2

	s, _ := newTestService(newFakeClassesRepository(
		stored("c1", "u1", "Physics", "13:00", "monday"),
		stored("c2", "u1", "Math", "09:00", "Monday", "Wednesday"),
		stored("c3", "u1", "Art", "09:00", "Tuesday"),
		biweekly,
		stored("c5", "u2", "Other", "09:00", "Monday"),
	))

	monday := time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC)

	res, err := s.ClassesOnDate(context.Background(), "u1", monday, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"c2", "c1"}, classIDs(res))

	res, err = s.ClassesOnDate(context.Background(), "u1", monday, calendar.Morning)
	require.NoError(t, err)
	assert.Equal(t, []string{"c2"}, classIDs(res))

	res, err = s.ClassesOnDate(context.Background(), "u1", monday.AddDate(0, 0, 7), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"c2", "c1", "c4"}, classIDs(res))
}

func classIDs(classes []*model.Class) []string {
	res := make([]string, 0, len(classes))
	for _, c := range classes {
		res = append(res, c.ID)
	}
	return res
}

func TestWeekView(t *testing.T) {
	s, _ := newTestService(newFakeClassesRepository(
		stored("c1", "u1", "Math", "09:00", "Sunday", "Tuesday"),
		stored("c2", "u1", "Art", "11:00", "Friday"),
	))

	week, err := s.WeekView(context.Background(), "u1", testNow)
	require.NoError(t, err)
	require.Len(t, week, 5)

	assert.Equal(t, "2024-01-07", week[0].Day.Date)
	assert.Equal(t, "Sunday", week[0].Day.DayName)
	assert.Equal(t, []string{"c1"}, classIDs(week[0].Classes))
	assert.Empty(t, week[1].Classes)
	assert.Equal(t, []string{"c1"}, classIDs(week[2].Classes))
	assert.Equal(t, "2024-01-11", week[4].Day.Date)
}

func TestOccurrencesAndNext(t *testing.T) {
	s, _ := newTestService(newFakeClassesRepository(
		stored("c1", "u1", "Math", "09:00", "Monday", "Wednesday"),
		stored("c2", "u1", "Physics", "11:00", "Monday"),
		stored("c3", "u1", "Broken", "later", "Monday"),
	))

	occ, err := s.Occurrences(context.Background(), "u1", testNow, testNow.AddDate(0, 0, 3))
	require.NoError(t, err)
	require.Len(t, occ, 2)
	assert.Equal(t, "c2", occ[0].Class.ID)
	assert.Equal(t, time.Date(2024, 1, 8, 11, 0, 0, 0, time.UTC), occ[0].Start)
	assert.Equal(t, "c1", occ[1].Class.ID)
	assert.Equal(t, time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), occ[1].Start)

	next, err := s.NextClass(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "c2", next.Class.ID)

	_, err = s.NextClass(context.Background(), "nobody")
	assert.True(t, errors.Is(err, model.ErrNoRecord))
}

func TestImportCandidates(t *testing.T) {
	repo := newFakeClassesRepository()
	s, db := newTestService(repo)

	candidates := timetable.Parse("Monday: 9:00 AM - Math\nSomeday: 10:00 - Art")
	require.Len(t, candidates, 2)
	candidates = append(candidates, timetable.Candidate{Subject: "Biology", Day: timetable.NormalizeDay("wed"), Time: "14:00"})

	res, err := s.ImportCandidates(context.Background(), "u1", candidates, []int{15})
	require.NoError(t, err)

	require.Len(t, res.Created, 2)
	assert.Equal(t, "Math", res.Created[0].Name)
	assert.Equal(t, []string{"Monday"}, res.Created[0].Days)
	assert.Equal(t, []int{15}, res.Created[0].Reminders)
	assert.Equal(t, "Biology", res.Created[1].Name)
	assert.Equal(t, timetable.PaletteColor(2), res.Created[1].Color)

	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 1, res.Skipped[0].Index)
	assert.Equal(t, "Art", res.Skipped[0].Subject)

	assert.Equal(t, 1, db.commits)
	assert.Len(t, repo.classes, 2)
}

func TestImportCandidatesRollsBack(t *testing.T) {
	repo := newFakeClassesRepository()
	repo.failOn = "Physics"
	s, db := newTestService(repo)

	_, err := s.ImportCandidates(context.Background(), "u1", timetable.Parse("Monday: 9:00 - Math, 10:00 - Physics"), nil)
	assert.Error(t, err)
	assert.Equal(t, 1, db.rollbacks)
	assert.Equal(t, 0, db.commits)
}
