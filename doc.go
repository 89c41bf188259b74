// Package mergeq is your in-memory toolbox for mergeable priority queues —
// fast key-decrease, constant-time melding, and a clean generic contract.
//
// 🚀 What is mergeq?
//
//	A small, focused library built around one engine:
//		• fibheap/ — a Fibonacci heap: amortized O(1) Insert, FindMin,
//		  Merge and DecreaseKey, amortized O(log n) ExtractMin and Delete
//		• pqueue/  — the generic mergeable priority-queue contract that
//		  fibheap implements and that future engines can implement too
//
// ✨ Why choose mergeq?
//
//   - Real decrease-key – no lazy duplicate-push tricks: handles let you
//     lower a key in place, in amortized constant time
//   - Safe handles – generational stamps turn use-after-extract into a
//     detectable no-op instead of silent corruption
//   - Pure Go – no cgo, a tiny dependency footprint
//   - Deterministic – consolidation order and tie-breaks are fixed, so a
//     given operation sequence always produces the same structure
//
// The natural habitat of a Fibonacci heap is an algorithm that performs
// many key decreases per extraction: Dijkstra's shortest paths, Prim's
// minimum spanning tree, and friends. Those callers live outside this
// module — mergeq is the building block, not the algorithm.
//
// Quick ASCII example of one heap tree after a few merges:
//
//	    2
//	   ╱ ╲
//	  7   3
//	  │
//	  9
//
//	roots with distinct degrees form the forest; the smallest root is
//	always the tracked minimum.
//
// Dive into fibheap/doc.go for the full operation contract and complexity
// table, and pqueue/doc.go for the interface boundary.
//
//	go get github.com/katalvlaran/mergeq
package mergeq
