package trends

import "sort"

// Entry is one key/count pair in ranked order.
type Entry struct {
	Key   string
	Count int
}

// Counter tallies string keys while remembering first-insertion order, so
// equal counts rank deterministically by first encounter rather than by map
// iteration order.
type Counter struct {
	counts map[string]int
	order  []string
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

func (c *Counter) Add(key string) {
	c.AddN(key, 1)
}

func (c *Counter) AddN(key string, n int) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key] += n
}

func (c *Counter) AddAll(keys []string) {
	for _, key := range keys {
		c.Add(key)
	}
}

func (c *Counter) Get(key string) int {
	return c.counts[key]
}

func (c *Counter) Len() int {
	return len(c.order)
}

// MostCommon returns up to n entries by descending count, ties broken by
// insertion order. n <= 0 returns every entry.
func (c *Counter) MostCommon(n int) CountList {
	entries := make(CountList, 0, len(c.order))
	for _, key := range c.order {
		entries = append(entries, Entry{Key: key, Count: c.counts[key]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
