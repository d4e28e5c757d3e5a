package gain

import "container/heap"

// maxHeap is a max-heap over node indices ordered by an external key
// function, built on container/heap.Interface with Less inverted
// since calculateCenterStateToFast needs the node with the largest
// remaining maxDistP processed first.
type maxHeap struct {
	items []int
	key   func(node int) int
}

func newMaxHeap(key func(int) int) *maxHeap {
	return &maxHeap{key: key}
}

func (h *maxHeap) Len() int            { return len(h.items) }
func (h *maxHeap) Less(i, j int) bool  { return h.key(h.items[i]) > h.key(h.items[j]) }
func (h *maxHeap) Swap(i, j int)       { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *maxHeap) Push(x interface{})  { h.items = append(h.items, x.(int)) }
func (h *maxHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	v := old[n-1]
	h.items = old[:n-1]
	return v
}

func (h *maxHeap) push(node int) { heap.Push(h, node) }
func (h *maxHeap) pop() int      { return heap.Pop(h).(int) }
