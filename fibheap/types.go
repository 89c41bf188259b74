// Package fibheap configuration types and the Handle identity type.
//
// This file declares Handle, Options, the functional Option helpers and
// DefaultOptions. The heap engine itself lives in heap.go, extract.go and
// decrease.go; the node arena in arena.go.
package fibheap

// Handle is the opaque identity of one element in a Heap, returned by
// Insert and accepted by DecreaseKey, Delete and Contains.
//
// A Handle stays valid until its element leaves the heap (ExtractMin or
// Delete). After that it is stale: the generation stamp no longer matches
// the slot, and every operation treats it as a benign no-op — even if the
// slot has since been reused for a new element. The zero Handle is never
// valid.
//
// Handles are only meaningful on the heap that issued them. Handles issued
// by a heap that was consumed through Merge do not address elements of the
// surviving heap.
type Handle struct {
	// slot is the arena slot index the handle was issued for.
	slot int32

	// gen is the issuance stamp; valid stamps start at 1, so the zero
	// Handle can never match a live node.
	gen uint32
}

// Options configures a Heap at construction time.
//
// Fields:
//
//	Capacity int — number of elements to pre-size the arena for. Zero
//	               means start empty and grow on demand.
//
// Use DefaultOptions() for the default setup, or pass functional Option
// values to New.
type Options struct {
	// Capacity pre-sizes internal storage; it is a hint, not a limit.
	Capacity int
}

// Option represents a functional option for configuring a Heap. All Option
// functions modify the pointed Options.
type Option func(*Options)

// WithCapacity returns an Option that pre-sizes the heap's arena and root
// storage for n elements. Must pass a non-negative value; negative values
// panic, signaling invalid configuration early.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic("fibheap: capacity must be non-negative")
		}
		o.Capacity = n
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults:
//
//   - Capacity: 0 (grow on demand).
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Capacity: 0,
	}
}
