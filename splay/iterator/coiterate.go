package iterator

// CoIterator is returned from CoIterate and abstracts communication with
// the iterating goroutine.
type CoIterator struct {
	items <-chan int
	stop  chan<- struct{}
}

// Items returns the channel on which the keys from the iterator are sent.
func (c CoIterator) Items() <-chan int {
	return c.items
}

// Stop stops the iteration early. It must not be called more than once,
// and does not need to be called at all if the Items channel was drained
// until it closed.
func (c CoIterator) Stop() {
	close(c.stop)
}

// CoIterate starts coroutine-style iteration over i.
// The usage is as follows:
//
//	co := iterator.CoIterate(iterator.NewInOrder(tree))
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// CoIterate starts a goroutine, which exits when either Stop is called or
// the iteration is finished. If you follow the usage above, the goroutine
// will not live beyond the end of the for-range loop.
func CoIterate(i Iterator) CoIterator {
	items := make(chan int)
	stop := make(chan struct{})

	go func() {
		defer close(items)
		for i.Next() {
			select {
			case items <- i.Item():
			case <-stop:
				return
			}
		}
	}()

	return CoIterator{
		items: items,
		stop:  stop,
	}
}
