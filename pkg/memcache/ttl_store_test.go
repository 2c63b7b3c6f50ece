package mem

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore() (*TTLStore[string], *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := NewTTLStore[string]()
	s.now = clock.now
	return s, clock
}

func TestGetBeforeAndAfterExpiry(t *testing.T) {
	s, clock := newTestStore()
	s.Set("plan", "goa", time.Minute)

	if v, ok := s.Get("plan"); !ok || v != "goa" {
		t.Fatalf("Get = %q, %v; want goa, true", v, ok)
	}

	clock.advance(time.Minute + time.Second)
	if _, ok := s.Get("plan"); ok {
		t.Fatal("expired entry still returned")
	}
	if s.Len() != 0 {
		t.Fatalf("Len = %d, expired entry not dropped", s.Len())
	}
}

func TestConsumeIsSingleUse(t *testing.T) {
	s, _ := newTestStore()
	s.Set("k", "v", time.Hour)

	if v, ok := s.Consume("k"); !ok || v != "v" {
		t.Fatalf("Consume = %q, %v", v, ok)
	}
	if _, ok := s.Consume("k"); ok {
		t.Fatal("second Consume succeeded")
	}
}

func TestSweep(t *testing.T) {
	s, clock := newTestStore()
	s.Set("short", "a", time.Second)
	s.Set("long", "b", time.Hour)

	clock.advance(time.Minute)
	if n := s.Sweep(); n != 1 {
		t.Fatalf("Sweep removed %d, want 1", n)
	}
	if _, ok := s.Get("long"); !ok {
		t.Fatal("live entry swept")
	}
}
