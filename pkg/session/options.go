package session

import "time"

// Option Configures a Session
type Option func(*Session)

// WithClock Use now as the source of the current time
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}
