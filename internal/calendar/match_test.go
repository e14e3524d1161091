package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWeekdayMatch(t *testing.T) {
	tests := []struct {
		name   string
		days   []string
		target string
		want   bool
	}{
		{name: "lower entry", days: []string{"monday"}, target: "Monday", want: true},
		{name: "upper entry", days: []string{"MONDAY"}, target: "monday", want: true},
		{name: "exact", days: []string{"Tuesday", "Thursday"}, target: "Thursday", want: true},
		{name: "empty days", days: []string{}, target: "Monday", want: false},
		{name: "nil days", days: nil, target: "Monday", want: false},
		{name: "other day", days: []string{"Tuesday"}, target: "Monday", want: false},
		{name: "empty target", days: []string{"Monday"}, target: "", want: false},
		{name: "blank entries skipped", days: []string{" ", ""}, target: "Monday", want: false},
		{name: "padded entry", days: []string{" Monday "}, target: "Monday", want: true},
		{name: "abbreviation entry", days: []string{"mon"}, target: "Monday", want: true},
		{name: "abbreviation target", days: []string{"Wednesday"}, target: "wed", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWeekdayMatch(tt.days, tt.target))
		})
	}
}
