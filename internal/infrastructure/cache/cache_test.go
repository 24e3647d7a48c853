package cache

import (
	"testing"
	"time"
)

func TestTTL_SetGet(t *testing.T) {
	c := New[int](time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Fatalf("empty cache returned a value")
	}

	c.Set("answer", 42)
	got, ok := c.Get("answer")
	if !ok || got != 42 {
		t.Fatalf("Get = %d, %v; want 42, true", got, ok)
	}
}

func TestTTL_Expiry(t *testing.T) {
	c := New[string](10 * time.Millisecond)

	c.Set("k", "v")
	if _, ok := c.Get("k"); !ok {
		t.Fatalf("fresh entry missing")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expired entry still served")
	}
}

func TestTTL_Delete(t *testing.T) {
	c := New[string](time.Minute)

	c.Set("k", "v")
	c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Fatalf("deleted entry still served")
	}

	// Deleting an absent key is a no-op.
	c.Delete("never-set")
}

func TestTTL_OverwriteRefreshes(t *testing.T) {
	c := New[int](time.Minute)

	c.Set("k", 1)
	c.Set("k", 2)
	got, ok := c.Get("k")
	if !ok || got != 2 {
		t.Fatalf("Get = %d, %v; want 2, true", got, ok)
	}
}
