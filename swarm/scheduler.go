package swarm

import (
	"sync"
	"time"
)

// Task is a repeating job started by Every.
type Task struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// Every calls fn once per interval on a single goroutine until the returned
// task is stopped. Runs never overlap; ticks that fall due while fn is still
// running are dropped.
func Every(interval time.Duration, fn func()) *Task {
	t := &Task{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go func() {
		defer close(t.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-t.stop:
				return
			case <-ticker.C:
				select {
				case <-t.stop:
					return
				default:
				}
				fn()
			}
		}
	}()
	return t
}

// Stop cancels the task and waits for an in-flight run to return. It must not
// be called from inside fn.
func (t *Task) Stop() {
	t.once.Do(func() { close(t.stop) })
	<-t.done
}

// Done is closed once the task goroutine has exited.
func (t *Task) Done() <-chan struct{} {
	return t.done
}
