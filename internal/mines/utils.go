package mines

/*
tiletodo is a FIFO of tile indices threaded through a next[] array the
size of the board. An index must not be added again while it is still
queued; the flood fill guarantees this by only queueing a tile on the
transition to revealed.
*/
type tiletodo struct {
	next       []int
	head, tail int
}

func newTileTodo(n int) *tiletodo {
	return &tiletodo{next: make([]int, n), head: -1, tail: -1}
}

func (std *tiletodo) add(i int) {
	if std.tail >= 0 {
		std.next[std.tail] = i
	} else {
		std.head = i
	}
	std.tail = i
	std.next[i] = -1
}

func (std *tiletodo) pop() (i int, ok bool) {
	if std.head < 0 {
		return -1, false
	}
	i = std.head
	std.head = std.next[i]
	if std.head < 0 {
		std.tail = -1
	}
	return i, true
}
