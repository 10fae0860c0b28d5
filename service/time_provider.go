package service

import (
	"time"

	"mysession/helpers"
	"mysession/interfaces"
)

// timeProvider implements interfaces.TimeProvider with an injected now func.
type timeProvider struct {
	now func() time.Time
}

// NewTimeProvider creates a TimeProvider backed by now (time.Now().UTC in prod, helpers.TestNow in tests). Panics on nil now.
func NewTimeProvider(now func() time.Time) interfaces.TimeProvider {
	return &timeProvider{now: helpers.NilPanic(now, "service.time_provider.go: now is required")}
}

func (t *timeProvider) Now() time.Time {
	return t.now()
}
