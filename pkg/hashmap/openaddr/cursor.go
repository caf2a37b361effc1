package openaddr

// Slot is a raw view of an occupied bucket. Tombstone is true for entries
// that have been removed but still sit in the table.
type Slot[V any] struct {
	Key       string
	Value     V
	Tombstone bool
}

// Cursor walks the occupied buckets of a HashMap in bucket order. Unlike
// Range and Entries it does not skip tombstones; callers check
// Slot().Tombstone themselves. Every call to HashMap.Cursor starts an
// independent traversal.
type Cursor[V any] struct {
	m   *HashMap[V]
	i   int
	cur Slot[V]
}

// Cursor returns a new cursor positioned before the first bucket
func (m *HashMap[V]) Cursor() *Cursor[V] {
	return &Cursor[V]{m: m}
}

// Next advances to the next occupied bucket and reports whether there was one
func (c *Cursor[V]) Next() bool {
	for c.i < len(c.m.buckets) {
		b := &c.m.buckets[c.i]
		c.i++
		if b.state == slotEmpty {
			continue
		}
		c.cur = Slot[V]{
			Key:       b.key,
			Value:     b.val,
			Tombstone: b.state == slotDead,
		}
		return true
	}
	c.cur = Slot[V]{}
	return false
}

// Slot returns the bucket the cursor is currently on
func (c *Cursor[V]) Slot() Slot[V] {
	return c.cur
}
