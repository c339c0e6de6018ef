package astar

import "container/heap"

// pending is a frontier entry.  The same node may be pending several
// times with different costs; stale entries are skipped when popped.
type pending[N comparable, C Cost] struct {
	node     N
	cost     C
	priority C
	previous N
	hasPrev  bool
}

// frontier is a min-heap of pending entries ordered by priority
type frontier[N comparable, C Cost] []pending[N, C]

func (f frontier[N, C]) Len() int           { return len(f) }
func (f frontier[N, C]) Less(i, j int) bool { return f[i].priority < f[j].priority }
func (f frontier[N, C]) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }

func (f *frontier[N, C]) Push(x any) { *f = append(*f, x.(pending[N, C])) }

func (f *frontier[N, C]) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

func (f *frontier[N, C]) push(p pending[N, C]) { heap.Push(f, p) }
func (f *frontier[N, C]) pop() pending[N, C]  { return heap.Pop(f).(pending[N, C]) }
