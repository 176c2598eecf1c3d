package cache

import (
	"testing"
	"time"

	"github.com/solunahq/soluna/internal/dates"
)

// stepClock lets tests advance time manually.
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newStepClock() *stepClock {
	return &stepClock{now: time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)}
}

var _ dates.Clock = (*stepClock)(nil)

func TestGetMissing(t *testing.T) {
	c := New[int](time.Minute, newStepClock())
	if _, ok := c.Get("nope"); ok {
		t.Error("expected miss for absent key")
	}
}

func TestSetGetWithinTTL(t *testing.T) {
	clock := newStepClock()
	c := New[string](time.Minute, clock)

	c.Set("k", "v")
	clock.advance(30 * time.Second)

	value, ok := c.Get("k")
	if !ok || value != "v" {
		t.Errorf("Get = (%q, %v), want (v, true)", value, ok)
	}
}

func TestExpiryAfterTTL(t *testing.T) {
	clock := newStepClock()
	c := New[string](time.Minute, clock)

	c.Set("k", "v")
	clock.advance(61 * time.Second)

	if _, ok := c.Get("k"); ok {
		t.Error("expected expired entry to miss")
	}
	if c.Len() != 0 {
		t.Errorf("expected lazy eviction on Get, Len = %d", c.Len())
	}
}

func TestInvalidate(t *testing.T) {
	c := New[int](time.Minute, newStepClock())
	c.Set("k", 7)
	c.Invalidate("k")
	if _, ok := c.Get("k"); ok {
		t.Error("expected miss after Invalidate")
	}
}

func TestEvictExpired(t *testing.T) {
	clock := newStepClock()
	c := New[int](time.Minute, clock)

	c.Set("old", 1)
	clock.advance(2 * time.Minute)
	c.Set("fresh", 2)

	if evicted := c.EvictExpired(); evicted != 1 {
		t.Errorf("EvictExpired = %d, want 1", evicted)
	}
	if _, ok := c.Get("fresh"); !ok {
		t.Error("fresh entry should survive eviction")
	}
}

func TestDebouncerImmediateWhenZeroDelay(t *testing.T) {
	d := NewDebouncer(0)
	ran := 0
	d.Do(func() { ran++ })
	d.Do(func() { ran++ })
	if ran != 2 {
		t.Errorf("ran = %d, want 2 (zero delay runs synchronously)", ran)
	}
}

func TestDebouncerCoalescesAndFlushes(t *testing.T) {
	d := NewDebouncer(time.Hour) // long enough that the timer never fires in-test
	ran := []int{}
	d.Do(func() { ran = append(ran, 1) })
	d.Do(func() { ran = append(ran, 2) })

	if len(ran) != 0 {
		t.Fatalf("nothing should run before the delay, got %v", ran)
	}

	d.Flush()
	if len(ran) != 1 || ran[0] != 2 {
		t.Errorf("Flush should run only the latest function, got %v", ran)
	}

	// A second flush has nothing left to run.
	d.Flush()
	if len(ran) != 1 {
		t.Errorf("second Flush ran something: %v", ran)
	}
}
