package evalcache

import "testing"

func TestStoreAndProbe(t *testing.T) {
	c := New(4)
	c.Store(0x123456789ABCDEF0, 42)

	got, ok := c.Probe(0x123456789ABCDEF0)
	if !ok || got != 42 {
		t.Fatalf("Probe = (%d, %v), want (42, true)", got, ok)
	}
}

func TestProbeMiss(t *testing.T) {
	c := New(4)
	if _, ok := c.Probe(0xDEADBEEF); ok {
		t.Fatalf("expected miss on empty cache")
	}
}

func TestOverwrite(t *testing.T) {
	c := New(4)
	c.Store(1, 10)
	c.Store(1, 20)

	got, ok := c.Probe(1)
	if !ok || got != 20 {
		t.Fatalf("Probe = (%d, %v), want (20, true)", got, ok)
	}
}

func TestNegativeScoreRoundTrip(t *testing.T) {
	c := New(4)
	c.Store(7, -64)

	got, ok := c.Probe(7)
	if !ok || got != -64 {
		t.Fatalf("Probe = (%d, %v), want (-64, true)", got, ok)
	}
}

func TestClear(t *testing.T) {
	c := New(4)
	c.Store(1, 1)
	c.Store(2, 2)
	c.Clear()

	if _, ok := c.Probe(1); ok {
		t.Fatalf("expected miss after Clear")
	}
	if _, ok := c.Probe(2); ok {
		t.Fatalf("expected miss after Clear")
	}
}
