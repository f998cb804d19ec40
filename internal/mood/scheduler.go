package mood

import "time"

// PromptScheduler is a cooperative timer evaluated on every redraw.
type PromptScheduler struct {
	interval time.Duration
	next     time.Time
}

func NewPromptScheduler(start time.Time, interval time.Duration) *PromptScheduler {
	return &PromptScheduler{interval: interval, next: start.Add(interval)}
}

// Due reports whether the deadline has passed and, if so, reschedules it one
// interval from now. Any number of missed deadlines fire once.
func (s *PromptScheduler) Due(now time.Time) bool {
	if now.Before(s.next) {
		return false
	}
	s.next = now.Add(s.interval)
	return true
}

func (s *PromptScheduler) Next() time.Time { return s.next }
