package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 12.35, round2(12.345001))
	assert.Equal(t, 12.34, round2(12.344))
	assert.Equal(t, 0.0, round2(0))
}

func TestWeekStart(t *testing.T) {
	// 2026-03-11 is a Wednesday
	wed := time.Date(2026, 3, 11, 15, 30, 0, 0, time.Local)
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)
	assert.Equal(t, monday, weekStart(wed))

	// a Monday maps to itself at midnight
	assert.Equal(t, monday, weekStart(monday.Add(5*time.Hour)))

	// Sunday belongs to the week that started six days earlier
	sun := time.Date(2026, 3, 15, 23, 0, 0, 0, time.Local)
	assert.Equal(t, monday, weekStart(sun))
}

func TestDayStart(t *testing.T) {
	noon := time.Date(2026, 7, 4, 12, 1, 2, 3, time.Local)
	got := dayStart(noon)
	assert.Equal(t, time.Date(2026, 7, 4, 0, 0, 0, 0, time.Local), got)
}
