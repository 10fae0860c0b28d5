package service

import (
	"testing"
	"time"

	"mysession/helpers"

	"github.com/stretchr/testify/assert"
)

func TestNewTimeProvider_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "service.time_provider.go: now is required", func() {
		NewTimeProvider(nil)
	})
}

func TestTimeProvider_Now(t *testing.T) {
	tp := NewTimeProvider(helpers.TestNow)
	assert.Equal(t, helpers.TestNow(), tp.Now())
}

func TestTimeProvider_Now_CalledEachTime(t *testing.T) {
	callCount := 0
	tp := NewTimeProvider(func() time.Time {
		callCount++
		return helpers.TestNow()
	})
	_ = tp.Now()
	_ = tp.Now()
	assert.Equal(t, 2, callCount)
}
