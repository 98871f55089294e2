package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	_ Limiter = (*TickerLimiter)(nil)
	_ Limiter = NewNoOpLimiter()
)

func TestTickDuration(t *testing.T) {
	assert.Equal(t, time.Second, TickDuration(1))
	assert.Equal(t, 10*time.Millisecond, TickDuration(100))
	assert.Equal(t, TickDuration(DefaultRate), TickDuration(0))
	assert.Equal(t, TickDuration(DefaultRate), TickDuration(-5))
}

func TestNoOpLimiter(t *testing.T) {
	l := NewNoOpLimiter()
	start := time.Now()
	for i := 0; i < 1000; i++ {
		l.WaitForNextTick()
	}
	l.Reset()
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestTickerLimiter(t *testing.T) {
	l := NewTickerLimiter(200)
	defer l.Stop()

	start := time.Now()
	for i := 0; i < 4; i++ {
		l.WaitForNextTick()
	}
	assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
}
