package classes

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SergeyKozhin/student-planner-backend/internal/calendar"
	"github.com/SergeyKozhin/student-planner-backend/internal/model"
)

// GetClass returns a class owned by userID.
func (s *Service) GetClass(ctx context.Context, userID, id string) (*model.Class, error) {
	class, err := s.classes.GetClassByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("classesRepository.GetClassByID: %w", err)
	}

	if class.UserID != userID {
		return nil, model.ErrNoRecord
	}

	return class, nil
}

// ListClasses returns all classes of the user ordered by start time.
func (s *Service) ListClasses(ctx context.Context, userID string) ([]*model.Class, error) {
	classes, err := s.classes.GetClasses(ctx, s.db, model.ClassesFilter{UserIDs: []string{userID}})
	if err != nil {
		return nil, fmt.Errorf("classesRepository.GetClasses: %w", err)
	}

	calendar.SortByTime(classes)
	return classes, nil
}

// ClassesOnDate returns the classes meeting on date, optionally limited to
// a time-of-day bucket.
func (s *Service) ClassesOnDate(ctx context.Context, userID string, date time.Time, bucket calendar.TimeBucket) ([]*model.Class, error) {
	classes, err := s.ListClasses(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := calendar.ClassesMeetingOn(classes, date.In(s.loc))
	if bucket != "" {
		res = calendar.FilterByTimeOfDay(res, bucket)
	}

	return res, nil
}

type DaySchedule struct {
	Day     calendar.DayDescriptor
	Classes []*model.Class
}

// WeekView lays out the teaching week containing ref.
func (s *Service) WeekView(ctx context.Context, userID string, ref time.Time) ([]*DaySchedule, error) {
	classes, err := s.ListClasses(ctx, userID)
	if err != nil {
		return nil, err
	}

	window := calendar.BuildWeekWindow(ref.In(s.loc))
	dates := calendar.WeekDates(ref.In(s.loc))

	res := make([]*DaySchedule, len(window))
	for i, d := range window {
		res[i] = &DaySchedule{
			Day:     d,
			Classes: calendar.ClassesMeetingOn(classes, dates[i]),
		}
	}

	return res, nil
}

// Occurrences expands the user's classes into meetings starting in [from, to).
// Classes whose recurrence cannot be built are skipped.
func (s *Service) Occurrences(ctx context.Context, userID string, from, to time.Time) ([]*model.Occurrence, error) {
	classes, err := s.ListClasses(ctx, userID)
	if err != nil {
		return nil, err
	}

	var res []*model.Occurrence
	for _, c := range classes {
		starts, err := calendar.Occurrences(c, from, to, s.loc)
		if err != nil {
			continue
		}

		for _, start := range starts {
			res = append(res, &model.Occurrence{Class: c, Start: start})
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Start.Before(res[j].Start)
	})

	return res, nil
}

// NextClass returns the first meeting starting after now within the next
// repetition cycle of the user's classes.
func (s *Service) NextClass(ctx context.Context, userID string) (*model.Occurrence, error) {
	classes, err := s.ListClasses(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now().In(s.loc)
	horizon := 7
	for _, c := range classes {
		if c.RepetitionInterval*7 > horizon {
			horizon = c.RepetitionInterval * 7
		}
	}

	var next *model.Occurrence
	for _, c := range classes {
		starts, err := calendar.Occurrences(c, now.Add(time.Second), now.AddDate(0, 0, horizon+1), s.loc)
		if err != nil || len(starts) == 0 {
			continue
		}

		if next == nil || starts[0].Before(next.Start) {
			next = &model.Occurrence{Class: c, Start: starts[0]}
		}
	}

	if next == nil {
		return nil, model.ErrNoRecord
	}

	return next, nil
}
