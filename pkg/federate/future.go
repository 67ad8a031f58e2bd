package federate

import "errors"

// Future is the completion handle of one handler scheduled by InvokeAsync.
type Future[R any] struct {
	done chan struct{}
	val  R
	err  error
}

func newFuture[R any]() *Future[R] {
	return &Future[R]{done: make(chan struct{})}
}

func (f *Future[R]) complete(val R, err error) {
	f.val = val
	f.err = err
	close(f.done)
}

// Wait blocks until the handler finishes and returns its result. If the
// handler panicked, the error is a *PanicError and the value is R's zero.
func (f *Future[R]) Wait() (R, error) {
	<-f.done
	return f.val, f.err
}

// Done returns a channel that is closed when the handler finishes.
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}

// Err returns the handler failure once Done is closed, and nil before that
// or when the handler returned normally.
func (f *Future[R]) Err() error {
	select {
	case <-f.done:
		return f.err
	default:
		return nil
	}
}

// WaitAll waits for every future and returns the values in submission
// order. Failed futures contribute R's zero value at their position and
// their errors are joined into the returned error.
func WaitAll[R any](futures []*Future[R]) ([]R, error) {
	results := make([]R, len(futures))
	var errs []error
	for i, f := range futures {
		v, err := f.Wait()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		results[i] = v
	}
	return results, errors.Join(errs...)
}
