package calendar

import "time"

// TeachingDays is the number of days in a week window, Sunday through Thursday.
const TeachingDays = 5

type DayDescriptor struct {
	Date          string `json:"date"`
	DayName       string `json:"day_name"`
	DayNameArabic string `json:"day_name_arabic"`
}

type WeekWindow [TeachingDays]DayDescriptor

// WeekStart returns midday of the Sunday of the week containing ref.
func WeekStart(ref time.Time) time.Time {
	midday := Midday(ref)
	return midday.AddDate(0, 0, -int(midday.Weekday()))
}

// BuildWeekWindow lists Sunday..Thursday of the week containing ref.
func BuildWeekWindow(ref time.Time) WeekWindow {
	var w WeekWindow

	sunday := WeekStart(ref)
	for i := range w {
		w[i] = DescribeDay(sunday.AddDate(0, 0, i))
	}

	return w
}

func DescribeDay(t time.Time) DayDescriptor {
	wd := WeekdayFromDate(t)
	return DayDescriptor{
		Date:          FormatDateOnly(t),
		DayName:       wd.String(),
		DayNameArabic: wd.Arabic(),
	}
}

// WeekDates returns the midday instants of the window's days.
func WeekDates(ref time.Time) []time.Time {
	sunday := WeekStart(ref)

	res := make([]time.Time, TeachingDays)
	for i := range res {
		res[i] = sunday.AddDate(0, 0, i)
	}

	return res
}

// WeeksBetween counts whole weeks from the week containing a to the week containing b.
func WeeksBetween(a, b time.Time) int {
	sa := WeekStart(a)
	sb := WeekStart(b)

	ya, ma, da := sa.Date()
	yb, mb, db := sb.Date()
	days := (time.Date(yb, mb, db, 0, 0, 0, 0, time.UTC).Unix() - time.Date(ya, ma, da, 0, 0, 0, 0, time.UTC).Unix()) / 86400

	return int(days / 7)
}
