package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	c := New[string, int](100)
	if c == nil {
		t.Fatal("New returned nil")
	}
	if got := c.Stats().Capacity; got != 100 {
		t.Errorf("expected capacity 100, got %d", got)
	}
	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", c.Len())
	}
}

func TestCacheGetAdd(t *testing.T) {
	c := New[string, int](10)

	c.Add("key1", 42)

	val, ok := c.Get("key1")
	if !ok {
		t.Error("expected key1 to exist")
	}
	if val != 42 {
		t.Errorf("expected 42, got %d", val)
	}

	if _, ok = c.Get("nonexistent"); ok {
		t.Error("expected nonexistent key to not exist")
	}

	// Overwrite keeps a single entry
	c.Add("key1", 7)
	if val, _ := c.Get("key1"); val != 7 {
		t.Errorf("expected 7 after overwrite, got %d", val)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", c.Len())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](3)
	c.Add(1, 1)
	c.Add(2, 2)
	c.Add(3, 3)

	// Touch 1 so 2 becomes the oldest
	c.Get(1)
	c.Add(4, 4)

	if c.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", c.Len())
	}
	if _, ok := c.Get(2); ok {
		t.Error("expected 2 to be evicted")
	}
	for _, k := range []int{1, 3, 4} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("expected %d to survive", k)
		}
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("expected 1 eviction, got %d", got)
	}
}

func TestCacheUnlimited(t *testing.T) {
	c := New[int, int](0)
	for i := 0; i < 1000; i++ {
		c.Add(i, i)
	}
	if c.Len() != 1000 {
		t.Errorf("expected 1000 entries, got %d", c.Len())
	}
}

func TestCacheStats(t *testing.T) {
	c := New[string, int](10)
	c.Get("a")
	c.Add("a", 99)
	if v, _ := c.Get("a"); v != 99 {
		t.Errorf("expected 99, got %d", v)
	}

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 {
		t.Errorf("expected 1 hit and 1 miss, got %d/%d", s.Hits, s.Misses)
	}
	if s.HitRate != 0.5 {
		t.Errorf("expected hit rate 0.5, got %v", s.HitRate)
	}
}

func TestCacheDeleteFuncAndClear(t *testing.T) {
	c := New[string, int](10)
	c.Add("a1", 1)
	c.Add("a2", 2)
	c.Add("b", 3)

	if n := c.DeleteFunc(func(k string) bool { return k[0] == 'a' }); n != 2 {
		t.Errorf("expected 2 removed, got %d", n)
	}
	if _, ok := c.Get("a1"); ok {
		t.Error("expected a1 to be removed")
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("expected b to survive")
	}
	if n := c.DeleteFunc(func(k string) bool { return k[0] == 'a' }); n != 0 {
		t.Errorf("expected nothing removed, got %d", n)
	}

	// Removed nodes must be gone from the LRU order too
	c.Add("c", 4)
	for i := 0; i < 9; i++ {
		c.Add(strconv.Itoa(i), i)
	}
	if c.Len() != 10 {
		t.Errorf("expected 10 entries, got %d", c.Len())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("expected empty cache after Clear, got %d", c.Len())
	}

	// The list must be usable after Clear
	c.Add("c", 3)
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Errorf("expected c=3 after Clear, got %d, %v", v, ok)
	}
}

func TestCacheAddReportsEviction(t *testing.T) {
	c := New[string, int](2)
	if _, ok := c.Add("a", 1); ok {
		t.Fatal("unexpected eviction into empty cache")
	}
	c.Add("b", 2)
	if _, ok := c.Add("b", 3); ok {
		t.Fatal("replacing a key must not evict")
	}
	key, ok := c.Add("c", 4)
	if !ok || key != "a" {
		t.Errorf("Add(c) evicted %q, %v; want a, true", key, ok)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[string, int](50)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := strconv.Itoa((g * i) % 80)
				if _, ok := c.Get(key); !ok {
					c.Add(key, i)
				}
				if g == 0 && i%50 == 0 {
					c.DeleteFunc(func(k string) bool { return k == key })
				}
			}
		}(g)
	}
	wg.Wait()
	if c.Len() > 50 {
		t.Errorf("expected at most 50 entries, got %d", c.Len())
	}
}
