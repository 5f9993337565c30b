package hub

import "sync"

// Outcome is the asynchronously resolved result of a hub operation. It
// resolves exactly once to success or failure and never carries an error:
// failure detail goes through the notification center instead.
type Outcome struct {
	done chan struct{}
	once sync.Once
	ok   bool
}

func newOutcome() *Outcome {
	return &Outcome{done: make(chan struct{})}
}

func (o *Outcome) resolve(ok bool) {
	o.once.Do(func() {
		o.ok = ok
		close(o.done)
	})
}

// Done is closed once the operation has settled.
func (o *Outcome) Done() <-chan struct{} {
	return o.done
}

// Wait blocks until the operation settles and reports success. Callers that
// need strict ordering between operations on the same module wait here
// before issuing the next one.
func (o *Outcome) Wait() bool {
	<-o.done
	return o.ok
}
