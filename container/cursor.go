package container

// Cursor walks an Arena-backed ring, reproducing the original iterator's
// three-reference state (prev, current, next) plus a cycle-point marker
// set by MarkCyclePt and observed by CycledList, as named in spec.md
// §4.1.2. It does not own the Arena; multiple cursors may walk the same
// Arena as long as at most one mutates it (single-mutator discipline,
// spec.md §5).
type Cursor[T any] struct {
	arena     *Arena[T]
	prev      Index
	current   Index
	next      Index
	cyclePt   Index
	extracted bool
	started   bool // set by Forward, cleared by MarkCyclePt
}

// NewCursor builds a Cursor positioned at the Arena's head. Returns a
// Cursor with a zero current if the Arena is empty.
func NewCursor[T any](a *Arena[T]) *Cursor[T] {
	c := &Cursor[T]{arena: a}
	c.current = a.Head()
	if c.current != 0 {
		c.prev, _ = a.Prev(c.current)
		c.next, _ = a.Next(c.current)
	}
	c.cyclePt = c.current

	return c
}

// Current returns the index the cursor currently points to. It is 0 in
// the "current extracted" state (immediately after Extract, before the
// next Forward).
func (c *Cursor[T]) Current() Index { return c.current }

// AtLast reports whether the cursor has no live node to visit.
func (c *Cursor[T]) AtLast() bool { return c.arena.Len() == 0 }

// MarkCyclePt records the cursor's current position as the sentinel a
// full traversal returns to; CycledList reports true once Forward moves
// the cursor back onto (or past, for a just-extracted sentinel) it.
func (c *Cursor[T]) MarkCyclePt() {
	if c.extracted {
		c.cyclePt = c.next
	} else {
		c.cyclePt = c.current
	}
	c.started = false
}

// CycledList reports whether the cursor has returned to the position
// marked by the most recent MarkCyclePt call.
func (c *Cursor[T]) CycledList() bool {
	if c.extracted {
		return false
	}

	return c.started && c.current == c.cyclePt
}

// Forward advances the cursor by one position. If the cursor is in the
// "current extracted" state, it instead restores current from next and
// re-derives next from the arena, without otherwise moving.
func (c *Cursor[T]) Forward() {
	if c.arena.Len() == 0 {
		c.current = 0

		return
	}
	c.started = true
	if c.extracted {
		c.extracted = false
		c.current = c.next
		c.prev, _ = c.arena.Prev(c.current)
		c.next, _ = c.arena.Next(c.current)

		return
	}
	c.prev = c.current
	c.current = c.next
	c.next, _ = c.arena.Next(c.current)
}

// Extract removes the current node from the underlying Arena and enters
// the "current extracted" state: Current returns 0 until the next
// Forward call, which restores current from the pre-extraction next.
func (c *Cursor[T]) Extract() error {
	if c.current == 0 {
		return ErrEmptyList
	}
	if err := c.arena.Extract(c.current); err != nil {
		return err
	}
	c.current = 0
	c.extracted = true

	return nil
}

// Exchange swaps the live-node view of two cursors walking the same
// Arena, so that an insertion/extraction performed via one cursor is
// observed correctly by the other on its next Forward call.
func Exchange[T any](a, b *Cursor[T]) {
	a.prev, b.prev = b.prev, a.prev
	a.current, b.current = b.current, a.current
	a.next, b.next = b.next, a.next
	a.extracted, b.extracted = b.extracted, a.extracted
}
