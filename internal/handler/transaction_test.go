package handler

import (
	"testing"
	"time"
)

func TestMonthYearRange_MonthAndYear(t *testing.T) {
	now := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	start, end := monthYearRange(3, 2024, now)

	wantStart := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) || !end.Equal(wantEnd) {
		t.Errorf("monthYearRange(3, 2024) = [%v, %v), want [%v, %v)", start, end, wantStart, wantEnd)
	}
}

func TestMonthYearRange_YearOnly(t *testing.T) {
	now := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	start, end := monthYearRange(0, 2024, now)

	wantStart := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) || !end.Equal(wantEnd) {
		t.Errorf("monthYearRange(0, 2024) = [%v, %v), want [%v, %v)", start, end, wantStart, wantEnd)
	}
}

func TestMonthYearRange_DecemberRollsOver(t *testing.T) {
	now := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	start, end := monthYearRange(12, 2024, now)

	wantStart := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) || !end.Equal(wantEnd) {
		t.Errorf("monthYearRange(12, 2024) = [%v, %v), want [%v, %v)", start, end, wantStart, wantEnd)
	}
}

func TestMonthYearRange_MonthWithoutYearUsesCurrentYear(t *testing.T) {
	now := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	start, end := monthYearRange(5, 0, now)

	wantStart := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) || !end.Equal(wantEnd) {
		t.Errorf("monthYearRange(5, 0) = [%v, %v), want [%v, %v)", start, end, wantStart, wantEnd)
	}
}

func TestParseDate_Formats(t *testing.T) {
	valid := []string{
		"2024-03-10",
		"2024-03-10T12:30:00",
		"2024-03-10T12:30:00Z",
	}
	for _, s := range valid {
		if _, ok := parseDate(s); !ok {
			t.Errorf("parseDate(%q) not ok, want ok", s)
		}
	}

	invalid := []string{"", "10/03/2024", "2024-3-10", "not-a-date"}
	for _, s := range invalid {
		if _, ok := parseDate(s); ok {
			t.Errorf("parseDate(%q) ok, want not ok", s)
		}
	}
}

func TestAmountToCent_Rounding(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{75, 7500},
		{12.34, 1234},
		{19.99, 1999},
		{0.01, 1},
		{100.5, 10050},
	}
	for _, tc := range cases {
		if got := amountToCent(tc.amount); got != tc.want {
			t.Errorf("amountToCent(%v) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}
