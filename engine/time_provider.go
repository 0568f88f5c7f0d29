package engine

import "time"

// TimeProvider abstracts the wall clock so tests can drive time
type TimeProvider interface {
	Now() time.Time
}

// SystemTimeProvider reads the real system time with monotonic readings
type SystemTimeProvider struct{}

// NewSystemTimeProvider creates a real time provider
func NewSystemTimeProvider() *SystemTimeProvider {
	return &SystemTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *SystemTimeProvider) Now() time.Time {
	return time.Now()
}
