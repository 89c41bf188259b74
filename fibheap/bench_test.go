// Benchmarks for the Fibonacci heap, including a head-to-head heap-sort
// comparison against the binary-heap priority queue from oleiade/lane.
// The binary heap is expected to win plain sort loops; the Fibonacci
// heap's edge is DecreaseKey, which lane's queue does not offer at all.
package fibheap_test

import (
	"math/rand"
	"testing"

	"github.com/oleiade/lane/v2"

	"github.com/katalvlaran/mergeq/fibheap"
)

// benchValues returns a deterministic slice of n pseudo-random values.
func benchValues(n int) []int64 {
	r := rand.New(rand.NewSource(42))
	vals := make([]int64, n)
	for i := range vals {
		vals[i] = r.Int63()
	}

	return vals
}

// BenchmarkFibHeap_Sort measures a full insert-then-drain cycle of 10 000
// values through the Fibonacci heap.
func BenchmarkFibHeap_Sort(b *testing.B) {
	vals := benchValues(10_000) // pre-build input once
	b.ResetTimer()              // exclude input construction
	for i := 0; i < b.N; i++ {
		h := fibheap.New[int64](fibheap.WithCapacity(len(vals)))
		for _, v := range vals {
			h.Insert(v)
		}
		for {
			if _, ok := h.ExtractMin(); !ok {
				break
			}
		}
	}
}

// BenchmarkLanePQ_Sort measures the same cycle through lane's binary-heap
// MinPriorityQueue, as the baseline.
func BenchmarkLanePQ_Sort(b *testing.B) {
	vals := benchValues(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pq := lane.NewMinPriorityQueue[int64, int64]()
		for _, v := range vals {
			pq.Push(v, v)
		}
		for {
			if _, _, ok := pq.Pop(); !ok {
				break
			}
		}
	}
}

// BenchmarkFibHeap_DecreaseKey measures repeated key decreases across a
// populated, consolidated heap — the operation the engine exists for.
func BenchmarkFibHeap_DecreaseKey(b *testing.B) {
	vals := benchValues(10_000)
	h := fibheap.New[int64](fibheap.WithCapacity(len(vals)))
	handles := make([]fibheap.Handle, 0, len(vals))
	for _, v := range vals {
		handles = append(handles, h.Insert(v|1)) // keep every value ≥ 1
	}
	h.ExtractMin() // consolidate so decreases hit real tree structure

	r := rand.New(rand.NewSource(7))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		hd := handles[r.Intn(len(handles))]
		h.DecreaseKey(hd, 0) // 0 is below every resident value
	}
}

// BenchmarkFibHeap_Merge measures melding two 1 000-element heaps.
func BenchmarkFibHeap_Merge(b *testing.B) {
	vals := benchValues(2_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		x := fibheap.New[int64](fibheap.WithCapacity(1000))
		y := fibheap.New[int64](fibheap.WithCapacity(1000))
		for _, v := range vals[:1000] {
			x.Insert(v)
		}
		for _, v := range vals[1000:] {
			y.Insert(v)
		}
		b.StartTimer()
		x.Merge(y)
	}
}
