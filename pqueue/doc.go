// Package pqueue defines the generic contract for a mergeable priority
// queue with addressable elements.
//
// A mergeable priority queue extends the classic push/pop queue with two
// capabilities a plain binary heap cannot offer cheaply:
//
//   - Merge: combine two queues into one, consuming the operand, in better
//     than O(n) time.
//   - DecreaseKey / Delete: mutate or remove an arbitrary resident element
//     addressed by the Handle its Insert returned.
//
// The contract is parameterized three ways:
//
//   - T — the element type, required to carry a total order
//     (golang.org/x/exp/constraints.Ordered).
//   - H — the implementation's opaque handle type. Handles address one
//     logical element; once that element leaves the queue the handle is
//     stale, and every Interface method must treat a stale handle as a
//     benign no-op rather than resolve it to a different element.
//   - Q — the implementing type itself (the "self type"), so that Merge
//     can consume and return concrete queues without an interface
//     round-trip.
//
// Absence is signaled with a (value, ok) pair, never an error: an empty
// queue is an ordinary state, not a failure.
//
// See github.com/katalvlaran/mergeq/fibheap for the Fibonacci-heap
// implementation of this contract.
package pqueue
