package table

import "fmt"

// Allocator hands out placeholder identities for index-doubling internal
// nodes. It is owned by a single flatten pass.
type Allocator struct {
	first byte
	next  byte
	limit byte
}

// NewAllocator returns an allocator producing first, first+1, ... up to but
// excluding limit.
func NewAllocator(first, limit byte) *Allocator {
	return &Allocator{first: first, next: first, limit: limit}
}

// Next returns the next placeholder character.
func (a *Allocator) Next() (byte, error) {
	if a.next >= a.limit {
		return 0, fmt.Errorf("%w: %d slots in [%q, %q) used", ErrPlaceholdersExhausted, a.Capacity(), a.first, a.limit)
	}
	v := a.next
	a.next++
	return v, nil
}

// Used returns the number of placeholders handed out so far.
func (a *Allocator) Used() int { return int(a.next - a.first) }

// Capacity returns the total number of placeholders available.
func (a *Allocator) Capacity() int {
	if a.limit < a.first {
		return 0
	}
	return int(a.limit - a.first)
}
