// Package parallel runs functions concurrently while limiting
// the number running at once.
package parallel

import (
	"fmt"
	"sync"
)

// Run represents a number of functions running concurrently.
type Run struct {
	sem  chan struct{}
	wg   sync.WaitGroup
	mu   sync.Mutex
	errs []error
}

// Errors holds the errors encountered during a run, in the
// order that their functions were passed to Do.
type Errors []error

func (errs Errors) Error() string {
	switch len(errs) {
	case 0:
		return "no error"
	case 1:
		return errs[0].Error()
	}
	return fmt.Sprintf("%s (and %d more)", errs[0].Error(), len(errs)-1)
}

// NewRun returns a new Run that runs up to maxPar functions
// concurrently. If maxPar is less than one, functions run
// one at a time.
func NewRun(maxPar int) *Run {
	if maxPar < 1 {
		maxPar = 1
	}
	return &Run{
		sem: make(chan struct{}, maxPar),
	}
}

// Do requests that r run f concurrently. If the maximum
// number of functions are already running, it blocks until
// one of them has completed. Do must not be called
// concurrently with itself or with Wait.
func (r *Run) Do(f func() error) {
	r.mu.Lock()
	i := len(r.errs)
	r.errs = append(r.errs, nil)
	r.mu.Unlock()

	r.sem <- struct{}{}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		err := f()
		<-r.sem
		if err != nil {
			r.mu.Lock()
			r.errs[i] = err
			r.mu.Unlock()
		}
	}()
}

// Wait waits for all the functions to complete. If any
// failed, it returns an Errors value holding their errors.
func (r *Run) Wait() error {
	r.wg.Wait()
	var errs Errors
	for _, err := range r.errs {
		if err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
