package alarm

import "container/heap"

// wakeupHeap implements container/heap.Interface for Wakeup,
// sorted by TriggerAt (earliest first — min-heap).
type wakeupHeap []Wakeup

func (h wakeupHeap) Len() int           { return len(h) }
func (h wakeupHeap) Less(i, j int) bool { return h[i].TriggerAt.Before(h[j].TriggerAt) }
func (h wakeupHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *wakeupHeap) Push(x any) {
	*h = append(*h, x.(Wakeup))
}

func (h *wakeupHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// heapPush adds a Wakeup to the heap, maintaining the heap invariant.
func heapPush(h *wakeupHeap, w Wakeup) {
	heap.Push(h, w)
}

// heapPop removes and returns the Wakeup with the earliest TriggerAt.
// Panics if the heap is empty.
func heapPop(h *wakeupHeap) Wakeup {
	return heap.Pop(h).(Wakeup)
}

// heapRemoveByKey removes the Wakeup with the given note id.
// Returns true if an entry was found and removed, false otherwise.
// The arm path removes before pushing, so at most one entry per id exists.
func heapRemoveByKey(h *wakeupHeap, noteId int64) bool {
	for i, w := range *h {
		if w.NoteId == noteId {
			heap.Remove(h, i)
			return true
		}
	}
	return false
}
