package model

import (
	"errors"
	"sort"
	"strings"
)

var ErrNoRecord = errors.New("no record")
var ErrAlreadyExists = errors.New("entity already exists")
var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
var ErrNoCandidates = errors.New("no classes found in timetable")

// ValidationError carries per-field messages for rejected input.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Errors))
	for k := range e.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Errors[k]
	}

	return "validation failed: " + strings.Join(parts, "; ")
}
