package shutdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gpa-tracker/internal/logger"
)

func TestShutdownRunsInReverseOrderOnce(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})

	var order []string
	m.Register("store", Func(func() { order = append(order, "store") }))
	m.Register("window", Func(func() { order = append(order, "window") }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"window", "store"}, order)

	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
	select {
	case <-m.Completed():
	default:
		t.Fatal("completed channel not closed")
	}
	assert.Error(t, m.Context().Err())
}

func TestShutdownTimeout(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})
	m.SetTimeout(10 * time.Millisecond)

	block := make(chan struct{})
	defer close(block)

	ran := false
	m.Register("fast", Func(func() { ran = true }))
	m.Register("stuck", Func(func() { <-block }))

	start := time.Now()
	m.Shutdown()

	assert.True(t, ran)
	assert.Less(t, time.Since(start), 5*time.Second)
}
