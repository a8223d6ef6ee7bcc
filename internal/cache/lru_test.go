package cache

import (
	"sync"
	"testing"
	"time"
)

func TestLRU_GetSet(t *testing.T) {
	c := NewLRU[int](2, time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("Get(a) = %v, %v", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Fatalf("Get(missing) reported a hit")
	}

	c.Set("a", 10)
	if v, _ := c.Get("a"); v != 10 {
		t.Fatalf("overwrite: Get(a) = %v, want 10", v)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU[string](2, time.Minute)

	c.Set("a", "A")
	c.Set("b", "B")
	_, _ = c.Get("a")
	c.Set("c", "C")

	if _, ok := c.Get("b"); ok {
		t.Fatalf("expected b to be evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("expected a to survive, it was used recently")
	}
	if _, ok := c.Get("c"); !ok {
		t.Fatalf("expected c to be present")
	}
}

func TestLRU_Expiry(t *testing.T) {
	c := NewLRU[int](4, time.Second)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set("k", 1)
	now = now.Add(500 * time.Millisecond)
	if _, ok := c.Get("k"); !ok {
		t.Fatalf("entry expired too early")
	}

	now = now.Add(time.Second)
	if _, ok := c.Get("k"); ok {
		t.Fatalf("entry should have expired")
	}
	if c.Len() != 0 {
		t.Fatalf("expired entry not removed, Len = %d", c.Len())
	}
}

func TestLRU_DeleteAndPurge(t *testing.T) {
	c := NewLRU[int](4, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Fatalf("deleted key still present")
	}

	c.Purge()
	if c.Len() != 0 {
		t.Fatalf("Len after Purge = %d", c.Len())
	}
	c.Set("c", 3)
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Fatalf("cache unusable after Purge")
	}
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	c := NewLRU[int](8, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i%8))
			for j := 0; j < 100; j++ {
				c.Set(key, j)
				_, _ = c.Get(key)
			}
		}(i)
	}
	wg.Wait()

	if c.Len() > 8 {
		t.Fatalf("Len = %d exceeds capacity", c.Len())
	}
}
