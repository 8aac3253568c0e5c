package api

import (
	"testing"

	"github.com/kickoff/kickoff/pkg/league"
)

func TestLeagueCache(t *testing.T) {
	t.Run("put and get", func(t *testing.T) {
		c := NewLeagueCache(2)
		l := league.New()
		c.Put("a", l)

		if got := c.Get("a"); got != l {
			t.Error("Get returned a different league")
		}
		if got := c.Get("missing"); got != nil {
			t.Errorf("Get(missing) = %v, want nil", got)
		}
	})

	t.Run("evicts oldest", func(t *testing.T) {
		c := NewLeagueCache(2)
		c.Put("a", league.New())
		c.Put("b", league.New())
		c.Put("c", league.New())

		if c.Get("a") != nil {
			t.Error("oldest entry a not evicted")
		}
		if c.Get("b") == nil || c.Get("c") == nil {
			t.Error("recent entries evicted")
		}
	})

	t.Run("get refreshes recency", func(t *testing.T) {
		c := NewLeagueCache(2)
		c.Put("a", league.New())
		c.Put("b", league.New())
		c.Get("a") // a is now most recent
		c.Put("c", league.New())

		if c.Get("a") == nil {
			t.Error("recently used entry a evicted")
		}
		if c.Get("b") != nil {
			t.Error("least recently used entry b not evicted")
		}
	})

	t.Run("overwrite does not grow", func(t *testing.T) {
		c := NewLeagueCache(2)
		c.Put("a", league.New())
		fresh := league.New()
		c.Put("a", fresh)

		if got := c.Get("a"); got != fresh {
			t.Error("overwrite did not replace entry")
		}
		if len(c.entries) != 1 || len(c.order) != 1 {
			t.Errorf("cache grew on overwrite: %d entries, %d order", len(c.entries), len(c.order))
		}
	})

	t.Run("zero size defaults", func(t *testing.T) {
		c := NewLeagueCache(0)
		if c.maxSize != 10 {
			t.Errorf("maxSize = %d, want 10", c.maxSize)
		}
	})
}
