// DecreaseKey, Delete, and the cut propagator: the mark/cascading-cut
// discipline that bounds node degree.
//
// Every non-root may lose at most one child (recorded by its mark) before
// it is cut loose itself. That retention guarantee is what keeps node
// degrees logarithmic, which in turn is what consolidation's O(log n)
// root bound and DecreaseKey's amortized O(1) cost rest on.
package fibheap

// DecreaseKey lowers the element addressed by hd to v.
//
// The call is a silent no-op when hd is stale (its element was extracted
// or deleted, or it belongs to another heap) or when v compares strictly
// greater than the element's current value — this operation never
// increases a key.
//
// Otherwise the value is updated in place; if heap order is violated the
// node is cut to the root set and the cascading-cut walk runs up its
// former ancestor chain. Complexity: amortized O(1).
func (h *Heap[T]) DecreaseKey(hd Handle, v T) {
	// 1) Stale handles are benign: the generation stamp rejects them even
	//    when the slot has been reused by a newer element.
	slot, ok := h.arena.resolve(hd)
	if !ok {
		return
	}

	// 2) Reject a key increase. Equal values are accepted (a no-change
	//    rewrite is a valid decrease request).
	n := h.arena.node(slot)
	if v > n.value {
		return
	}

	// 3) Apply the new value, then restore the invariants it may have
	//    broken.
	n.value = v
	h.settle(slot)
}

// Delete removes the element addressed by hd from the heap, wherever it
// sits. A stale handle is a silent no-op.
//
// The element is not unlinked in place: it is first forced to the bottom
// of the order (the node's delete-pending flag makes it compare below
// every real value), which routes it through the exact cut/cascade path a
// decrease would take, and then removed by ExtractMin. The extracted
// value is discarded. Complexity: amortized O(log n).
func (h *Heap[T]) Delete(hd Handle) {
	slot, ok := h.arena.resolve(hd)
	if !ok {
		return
	}

	// Flag, sink, extract. The flag lives only within this call: the
	// flagged node is the tracked minimum by the time settle returns, so
	// ExtractMin removes exactly it.
	h.arena.node(slot).doomed = true
	h.settle(slot)
	h.ExtractMin()
}

// settle restores heap order and min tracking after the node at slot had
// its key lowered (or its delete-pending flag set).
//
// Root case: only the tracked minimum can be affected — retarget it when
// the node now compares strictly below it.
//
// Non-root case: if the node still compares ≥ its parent, order holds
// and nothing moves. Otherwise the node is cut to the root set, the
// cascading walk runs from its former parent, and the minimum is
// retargeted if the node now compares below it.
func (h *Heap[T]) settle(slot int32) {
	n := h.arena.node(slot)

	// Root: no structure to fix, only the tracked minimum.
	if n.parent == noSlot {
		if h.less(slot, h.min) {
			h.min = slot
		}

		return
	}

	// Heap order intact: node ≥ parent still holds.
	if !h.less(slot, n.parent) {
		return
	}

	// Violation: detach the node, then propagate up from its former
	// parent. The parent slot must be captured first — cut clears it.
	parent := n.parent
	h.cut(slot)
	h.cascade(parent)

	if h.less(slot, h.min) {
		h.min = slot
	}
}

// cut detaches the node at slot from its parent and promotes it to the
// root set: removed from the parent's child list, parent reference and
// mark cleared (roots are never marked). The tracked minimum is left to
// the caller. Complexity: O(degree(parent)).
func (h *Heap[T]) cut(slot int32) {
	n := h.arena.node(slot)
	p := h.arena.node(n.parent)

	for i, c := range p.children {
		if c == slot {
			last := len(p.children) - 1
			p.children[i] = p.children[last]
			p.children = p.children[:last]
			break
		}
	}

	n.parent = noSlot
	n.marked = false
	h.roots = append(h.roots, slot)
}

// cascade walks up from the former parent of a just-cut node, enforcing
// the at-most-one-lost-child rule:
//
//   - a root is left alone (roots are never marked);
//   - an unmarked non-root is marked — it has now lost one child — and
//     the walk stops;
//   - a marked non-root has lost a second child: it is cut to the root
//     set and the walk continues from its own former parent.
//
// The walk is a plain loop: its depth is bounded by tree height, but the
// engine does not spend call stack on it. Complexity: O(1) amortized
// (each iteration clears a mark that a previous DecreaseKey paid for).
func (h *Heap[T]) cascade(slot int32) {
	for {
		n := h.arena.node(slot)
		if n.parent == noSlot {
			return
		}
		if !n.marked {
			n.marked = true

			return
		}

		next := n.parent
		h.cut(slot)
		slot = next
	}
}
