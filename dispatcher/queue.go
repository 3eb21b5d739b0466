package dispatcher

// relay forwards values from in to out in FIFO order, buffering without
// limit so a sender never waits on a slow receiver. Once in is closed the
// remaining values are delivered and out is closed.
func relay[T any](in <-chan T, out chan<- T) {
	defer close(out)

	var pending []T
	for in != nil || len(pending) > 0 {
		var (
			send chan<- T
			next T
		)
		if len(pending) > 0 {
			send = out
			next = pending[0]
		}

		select {
		case v, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			pending = append(pending, v)
		case send <- next:
			var zero T
			pending[0] = zero
			pending = pending[1:]
		}
	}
}
