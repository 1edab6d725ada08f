// Copyright 2025 The voracious-go Authors. SPDX-License-Identifier: Apache-2.0

package radix

import (
	"container/heap"

	"github.com/justanotherdot/voracious-go/internal/assert"
)

// runHeap is a container/heap.Interface over the run cursors kWayMerge is
// currently merging, grounded in the common Go pattern of a small priority
// queue over row/run cursors used to drive a merge scan.
type runHeap[T any, K RadixKey] struct {
	arr     []T
	codec   Codec[T, K]
	cursors []int
	ends    []int
	active  []int
}

func (h *runHeap[T, K]) Len() int { return len(h.active) }

func (h *runHeap[T, K]) Less(i, j int) bool {
	ri, rj := h.active[i], h.active[j]
	return h.codec.IntoKey(h.arr[h.cursors[ri]]) < h.codec.IntoKey(h.arr[h.cursors[rj]])
}

func (h *runHeap[T, K]) Swap(i, j int) {
	h.active[i], h.active[j] = h.active[j], h.active[i]
}

func (h *runHeap[T, K]) Push(x any) {
	h.active = append(h.active, x.(int))
}

func (h *runHeap[T, K]) Pop() any {
	old := h.active
	n := len(old)
	x := old[n-1]
	h.active = old[:n-1]
	return x
}

// kWayMerge folds the (individually ascending-sorted) runs back into a
// single ascending order over arr, per spec.md section 4.12. A single run
// covering the whole slice is already sorted and needs no merge pass.
func kWayMerge[T any, K RadixKey](arr []T, codec Codec[T, K], runs []Run) {
	if len(runs) <= 1 {
		return
	}

	cursors := make([]int, len(runs))
	ends := make([]int, len(runs))
	for i, r := range runs {
		cursors[i] = r.Start
		ends[i] = r.End
	}

	h := &runHeap[T, K]{arr: arr, codec: codec, cursors: cursors, ends: ends}
	for i, r := range runs {
		if r.Start < r.End {
			h.active = append(h.active, i)
		}
	}
	heap.Init(h)

	out := make([]T, 0, len(arr))
	for h.Len() > 0 {
		i := h.active[0]
		out = append(out, arr[cursors[i]])
		cursors[i]++
		if cursors[i] < ends[i] {
			heap.Fix(h, 0)
		} else {
			heap.Pop(h)
		}
	}

	assert.Invariant(len(out) == len(arr), "kWayMerge: merged output must account for every element")
	copy(arr, out)
}
