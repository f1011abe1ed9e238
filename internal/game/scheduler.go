package game

import "time"

// Timer is a scheduled callback that can be stopped
type Timer interface {
	Stop() bool
}

// Scheduler runs f after d
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// ClockScheduler schedules with the real clock
type ClockScheduler struct{}

// AfterFunc implements Scheduler
func (ClockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
