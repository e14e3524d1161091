package classes

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/student-planner-backend/internal/database"
	"github.com/SergeyKozhin/student-planner-backend/internal/model"
	"github.com/SergeyKozhin/student-planner-backend/internal/timetable"
)

type SkippedCandidate struct {
	Index   int
	Subject string
	Reason  string
}

type ImportResult struct {
	Created []*model.Class
	Skipped []*SkippedCandidate
}

// ImportCandidates stores confirmed parser candidates as single-day classes.
// Candidates that do not make a valid class are reported back and the rest
// are stored in one transaction.
func (s *Service) ImportCandidates(ctx context.Context, userID string, candidates []timetable.Candidate, leads []int) (*ImportResult, error) {
	res := &ImportResult{}
	today := s.now().In(s.loc)

	var valid []*model.ClassCreate
	for i, c := range candidates {
		info, ok := c.ToClassCreate(userID)
		if !ok {
			res.Skipped = append(res.Skipped, &SkippedCandidate{
				Index:   i,
				Subject: c.Subject,
				Reason:  fmt.Sprintf("unreadable day %q or time %q", c.Day.String(), c.Time),
			})
			continue
		}

		info.Reminders = leads
		if err := prepare(info, today); err != nil {
			res.Skipped = append(res.Skipped, &SkippedCandidate{Index: i, Subject: c.Subject, Reason: err.Error()})
			continue
		}
		if info.Color == "" {
			info.Color = timetable.PaletteColor(i)
		}

		valid = append(valid, info)
	}

	if len(valid) == 0 {
		return res, nil
	}

	err := database.WithTx(ctx, s.db, func(tx database.Tx) error {
		for _, info := range valid {
			id, err := s.classes.CreateClass(ctx, tx, info)
			if err != nil {
				return fmt.Errorf("classesRepository.CreateClass: %w", err)
			}

			res.Created = append(res.Created, &model.Class{
				ID:          id,
				CreatedAt:   s.now(),
				ClassCreate: *info,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
