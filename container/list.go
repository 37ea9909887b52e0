// Package container replaces the intrusive, iterator-stateful linked
// lists of the original C++ core (see spec.md §4.1.2 / Design Notes §9)
// with an arena of owned values addressed by typed indices, plus a
// Cursor that reproduces the original iterator's observable behavior:
// extract leaves a hole until the next Forward call, and MarkCyclePt /
// CycledList identify the sentinel a full traversal returns to.
//
// This is the substrate every doubly-linked, circular collection in
// this module is built on: outline rings, chopped-blob lists, word
// lists on a Row.
package container

import "errors"

// Sentinel errors for container package operations.
var (
	// ErrEmptyList indicates an operation that requires at least one
	// element was attempted on an empty Arena-backed list.
	ErrEmptyList = errors.New("container: list is empty")

	// ErrInvalidIndex indicates an Index does not refer to a live node.
	ErrInvalidIndex = errors.New("container: index does not refer to a live node")
)

// Index addresses one node in an Arena. The zero Index is never valid;
// valid indices start at 1 so callers can use 0 as "no node".
type Index int32

// node is one slot of the arena: its payload plus circular links to the
// previous and next live node. Freed slots are relinked into freeList.
type node[T any] struct {
	value T
	prev  Index
	next  Index
	live  bool
}

// Arena is an indexed, circular doubly-linked list of owned T values.
// All operations are O(1) except Len bookkeeping (also O(1), maintained
// incrementally) and AddListBefore/AddListAfter/ExtractSublist which are
// O(k) in the spliced sublist length.
//
// Complexity: PushFront/PushBack/AddBefore/AddAfter/Extract are O(1).
type Arena[T any] struct {
	nodes    []node[T]
	freeList []Index
	head     Index // first live node, 0 if empty
	length   int
}

// NewArena constructs an empty Arena.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{nodes: make([]node[T], 1)} // index 0 reserved as "nil"
}

// Len returns the number of live nodes.
func (a *Arena[T]) Len() int { return a.length }

// Head returns the index of the first live node, or 0 if the list is empty.
func (a *Arena[T]) Head() Index { return a.head }

// Value returns the payload stored at idx.
func (a *Arena[T]) Value(idx Index) (T, error) {
	var zero T
	if !a.valid(idx) {
		return zero, ErrInvalidIndex
	}

	return a.nodes[idx].value, nil
}

// Set overwrites the payload stored at idx.
func (a *Arena[T]) Set(idx Index, v T) error {
	if !a.valid(idx) {
		return ErrInvalidIndex
	}
	a.nodes[idx].value = v

	return nil
}

// Next returns the index following idx in the circular ring.
func (a *Arena[T]) Next(idx Index) (Index, error) {
	if !a.valid(idx) {
		return 0, ErrInvalidIndex
	}

	return a.nodes[idx].next, nil
}

// Prev returns the index preceding idx in the circular ring.
func (a *Arena[T]) Prev(idx Index) (Index, error) {
	if !a.valid(idx) {
		return 0, ErrInvalidIndex
	}

	return a.nodes[idx].prev, nil
}

func (a *Arena[T]) valid(idx Index) bool {
	return idx > 0 && int(idx) < len(a.nodes) && a.nodes[idx].live
}

func (a *Arena[T]) alloc(v T) Index {
	if n := len(a.freeList); n > 0 {
		idx := a.freeList[n-1]
		a.freeList = a.freeList[:n-1]
		a.nodes[idx] = node[T]{value: v, live: true}

		return idx
	}
	a.nodes = append(a.nodes, node[T]{value: v, live: true})

	return Index(len(a.nodes) - 1)
}

// PushBack inserts v as the new last node (i.e. immediately before head),
// preserving the circular invariant last.next == first.
func (a *Arena[T]) PushBack(v T) Index {
	idx := a.alloc(v)
	if a.head == 0 {
		a.nodes[idx].next = idx
		a.nodes[idx].prev = idx
		a.head = idx
	} else {
		last := a.nodes[a.head].prev
		a.linkBetween(last, idx, a.head)
	}
	a.length++

	return idx
}

// AddBefore inserts v immediately before at, returning the new index.
// If at is the head, the new node becomes the head (move semantics are
// the caller's choice: pass the returned index to a Cursor to track it).
func (a *Arena[T]) AddBefore(at Index, v T) (Index, error) {
	if !a.valid(at) {
		return 0, ErrInvalidIndex
	}
	idx := a.alloc(v)
	before := a.nodes[at].prev
	a.linkBetween(before, idx, at)
	if at == a.head {
		a.head = idx
	}
	a.length++

	return idx, nil
}

// AddAfter inserts v immediately after at, returning the new index.
func (a *Arena[T]) AddAfter(at Index, v T) (Index, error) {
	if !a.valid(at) {
		return 0, ErrInvalidIndex
	}
	idx := a.alloc(v)
	after := a.nodes[at].next
	a.linkBetween(at, idx, after)
	a.length++

	return idx, nil
}

func (a *Arena[T]) linkBetween(before, idx, after Index) {
	a.nodes[before].next = idx
	a.nodes[idx].prev = before
	a.nodes[idx].next = after
	a.nodes[after].prev = idx
}

// Extract removes idx from the ring and frees its slot. The caller's
// Cursor (if any) must call Forward to re-establish current per the
// "current extracted" protocol described in the package doc.
func (a *Arena[T]) Extract(idx Index) error {
	if !a.valid(idx) {
		return ErrInvalidIndex
	}
	n := a.nodes[idx]
	if a.length == 1 {
		a.head = 0
	} else {
		a.nodes[n.prev].next = n.next
		a.nodes[n.next].prev = n.prev
		if a.head == idx {
			a.head = n.next
		}
	}
	a.nodes[idx] = node[T]{}
	a.freeList = append(a.freeList, idx)
	a.length--

	return nil
}

// ExtractSublist removes the closed range [first, last] (walking via
// next from first) from the ring and returns it as a detached Arena
// sharing no storage with a, preserving internal order and circularity.
func (a *Arena[T]) ExtractSublist(first, last Index) (*Arena[T], error) {
	if !a.valid(first) || !a.valid(last) {
		return nil, ErrInvalidIndex
	}
	sub := NewArena[T]()
	cur := first
	for {
		v, _ := a.Value(cur)
		sub.PushBack(v)
		if cur == last {
			break
		}
		nxt, err := a.Next(cur)
		if err != nil {
			return nil, err
		}
		cur = nxt
	}
	// splice [first,last] out of a
	before := a.nodes[first].prev
	after := a.nodes[last].next
	if before == last { // whole list extracted
		a.head = 0
		a.length = 0
		a.nodes = append(a.nodes[:1:1])
		a.freeList = nil

		return sub, nil
	}
	a.nodes[before].next = after
	a.nodes[after].prev = before
	if a.head == first {
		a.head = after
	}
	// free the extracted run's slots
	cur = first
	for {
		freed := cur
		next := a.nodes[cur].next
		a.nodes[freed] = node[T]{}
		a.freeList = append(a.freeList, freed)
		a.length--
		if freed == last {
			break
		}
		cur = next
	}

	return sub, nil
}
