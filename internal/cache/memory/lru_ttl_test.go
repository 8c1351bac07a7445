package memory

import (
	"testing"
	"time"
)

func TestLRUTTL_EvictsOldestBeyondCap(t *testing.T) {
	c := NewLRUTTL[string, int](2, time.Minute)
	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("c", 3)

	if _, ok := c.Get("a"); ok {
		t.Fatal("oldest entry should have been evicted")
	}
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Fatalf("c = %d, %v", v, ok)
	}
	if c.Len() != 2 {
		t.Fatalf("len = %d", c.Len())
	}
}

func TestLRUTTL_GetRefreshesRecency(t *testing.T) {
	c := NewLRUTTL[string, int](2, time.Minute)
	c.Add("a", 1)
	c.Add("b", 2)
	c.Get("a")
	c.Add("c", 3)

	if _, ok := c.Get("a"); !ok {
		t.Fatal("recently read entry must survive eviction")
	}
	if _, ok := c.Get("b"); ok {
		t.Fatal("least recently used entry must be evicted")
	}
}

func TestLRUTTL_ExpiryDropsEntry(t *testing.T) {
	c := NewLRUTTL[string, int](8, 10*time.Millisecond)
	c.Add("a", 1)
	time.Sleep(25 * time.Millisecond)

	if _, ok := c.Get("a"); ok {
		t.Fatal("expired entry must not be served")
	}
	if c.Len() != 0 {
		t.Fatalf("len = %d after expiry read", c.Len())
	}
}

func TestLRUTTL_AddRefreshesExistingKey(t *testing.T) {
	c := NewLRUTTL[string, int](8, time.Minute)
	c.Add("a", 1)
	c.Add("a", 2)
	if v, _ := c.Get("a"); v != 2 {
		t.Fatalf("a = %d", v)
	}
	if c.Len() != 1 {
		t.Fatalf("len = %d", c.Len())
	}
}

func TestLRUTTL_NilSafe(t *testing.T) {
	var c *LRUTTL[string, int]
	c.Add("a", 1)
	c.Remove("a")
	if _, ok := c.Get("a"); ok {
		t.Fatal("nil cache returned a value")
	}
	if c.Len() != 0 {
		t.Fatal("nil cache has nonzero length")
	}
}

func TestHashKey_DistinguishesPayloads(t *testing.T) {
	a := HashKey([]byte("claim one"))
	b := HashKey([]byte("claim two"))
	if a == b {
		t.Fatal("distinct payloads collided")
	}
	if a != HashKey([]byte("claim one")) {
		t.Fatal("hash not stable")
	}
	if len(a) != 64 {
		t.Fatalf("key length = %d", len(a))
	}
}
