package services

import (
	"sync"
	"time"
)

// periodService holds the selected year+month cursor. Only the year and month
// matter; navigation is whole-month arithmetic.
type periodService struct {
	mu    sync.Mutex
	year  int
	month time.Month
}

// NewPeriodService creates a cursor pointing at the current month.
func NewPeriodService() PeriodServicer {
	return NewPeriodServiceAt(time.Now())
}

// NewPeriodServiceAt creates a cursor pointing at t's month.
func NewPeriodServiceAt(t time.Time) PeriodServicer {
	return &periodService{year: t.Year(), month: t.Month()}
}

// Current returns the cursor's year and month.
func (s *periodService) Current() (int, time.Month) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.year, s.month
}

// ChangeMonth advances the cursor by offset whole months. time.Date
// normalizes out-of-range months, so year rollover and offsets beyond ±12
// resolve in one step.
func (s *periodService) ChangeMonth(offset int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := time.Date(s.year, s.month+time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
	s.year = t.Year()
	s.month = t.Month()
}
