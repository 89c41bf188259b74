// This file declares the Interface contract implemented by every mergeable
// priority queue in this module. See doc.go for the full semantics of the
// three type parameters.
package pqueue

import "golang.org/x/exp/constraints"

// Interface is the mergeable priority-queue contract.
//
// T is the ordered element type, H the implementation's handle type, and Q
// the implementing type itself. An implementation *Impl[T] asserts
// conformance with:
//
//	var _ pqueue.Interface[int, Impl.Handle, *Impl[int]] = (*Impl[int])(nil)
//
// Method semantics (normative for all implementations):
//
//	FindMin     — return the smallest resident element without mutating
//	              state; ok=false when the queue is empty. Amortized O(1).
//	Insert      — add an element and return a handle addressing it for
//	              later DecreaseKey/Delete calls. Amortized O(1).
//	Merge       — move every element of other into the receiver and return
//	              the combined queue; other is consumed and must be treated
//	              as unusable afterwards. Handles issued by other do not
//	              survive the move. Better than O(n); O(n) slot migration
//	              is permitted for arena-based implementations.
//	DecreaseKey — lower the element addressed by h to v. Silently ignored
//	              when h is stale or v is greater than the current value:
//	              this operation never increases a key. Amortized O(1).
//	Delete      — remove the element addressed by h regardless of its
//	              position; silently ignored when h is stale. Amortized
//	              O(log n).
//	ExtractMin  — remove and return the smallest element; ok=false when
//	              the queue is empty. Amortized O(log n).
type Interface[T constraints.Ordered, H comparable, Q any] interface {
	// FindMin returns the minimum element and true, or the zero value and
	// false when the queue holds no elements.
	FindMin() (T, bool)

	// Insert adds v and returns the handle addressing its element.
	Insert(v T) H

	// Merge consumes other and returns the combined queue.
	Merge(other Q) Q

	// DecreaseKey lowers the element addressed by h to v (no-op when h is
	// stale or v does not decrease the key).
	DecreaseKey(h H, v T)

	// Delete removes the element addressed by h (no-op when h is stale).
	Delete(h H)

	// ExtractMin removes and returns the minimum element and true, or the
	// zero value and false when the queue holds no elements.
	ExtractMin() (T, bool)
}
