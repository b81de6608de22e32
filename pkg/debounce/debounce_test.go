package debounce

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	values []string
}

func (r *recorder) record(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.values))
	copy(out, r.values)
	return out
}

func TestBurstEmitsOnlyLastValue(t *testing.T) {
	rec := &recorder{}
	d := New(20*time.Millisecond, rec.record)

	for _, v := range []string{"1", "12", "123", "1234"} {
		d.Update(v)
		time.Sleep(2 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{"1234"}, rec.snapshot())
}

func TestRestartable(t *testing.T) {
	rec := &recorder{}
	d := New(10*time.Millisecond, rec.record)

	d.Update("first")
	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, time.Second, 2*time.Millisecond)

	d.Update("second")
	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 2
	}, time.Second, 2*time.Millisecond)

	assert.Equal(t, []string{"first", "second"}, rec.snapshot())
}

func TestEmptyValueDebounces(t *testing.T) {
	rec := &recorder{}
	d := New(10*time.Millisecond, rec.record)

	d.Update("5")
	d.Update("")

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, time.Second, 2*time.Millisecond)

	assert.Equal(t, []string{""}, rec.snapshot())
}

func TestStopCancelsPending(t *testing.T) {
	rec := &recorder{}
	d := New(10*time.Millisecond, rec.record)

	d.Update("pending")
	d.Stop()

	time.Sleep(30 * time.Millisecond)
	assert.Empty(t, rec.snapshot())

	// Still usable after Stop.
	d.Update("after")
	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, time.Second, 2*time.Millisecond)
	assert.Equal(t, []string{"after"}, rec.snapshot())
}
