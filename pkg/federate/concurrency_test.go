package federate

import (
	"context"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreadSafe_ConcurrentRegisterAndInvoke(t *testing.T) {
	const writers, perWriter = 8, 100
	f := New[int, int](WithThreadSafe())

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				f.Register(square)
			}
		}()
	}

	stop := make(chan struct{})
	var readers sync.WaitGroup
	for r := 0; r < 4; r++ {
		readers.Add(1)
		go func() {
			defer readers.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				results := f.Invoke(context.Background(), 2)
				for _, v := range results {
					if v != 4 {
						t.Errorf("unexpected result %d", v)
						return
					}
				}
				_ = f.Size()
				_ = f.GarbageSize()
			}
		}()
	}

	wg.Wait()
	close(stop)
	readers.Wait()

	assert.Equal(t, writers*perWriter, f.Size())
	assert.Len(t, f.Invoke(context.Background(), 2), writers*perWriter)
}

func TestThreadSafe_ConcurrentCleanAndInvokeTracked(t *testing.T) {
	f := NewTracked[int, int](WithThreadSafe())

	keep := make([]Tracker[int, int], 0, 50)
	for i := 0; i < 100; i++ {
		if i%2 == 0 {
			keep = append(keep, f.Register(square))
		} else {
			registerAndDrop(f, square)
		}
	}
	requireGarbage(t, f, 50)

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				f.Clean()
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				assert.Len(t, f.Invoke(context.Background(), 3), 50)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, f.GarbageSize())
	assert.Equal(t, 50, f.Size())
	runtime.KeepAlive(keep)
}

func TestThreadSafe_GuardReleasedAfterPanic(t *testing.T) {
	f := New[int, int](WithThreadSafe())
	f.Register(func(int) int { panic("boom") })

	require.Panics(t, func() { f.Invoke(context.Background(), 1) })

	done := make(chan struct{})
	go func() {
		defer close(done)
		f.Clear()
		f.Register(square)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("guard still held after a panicking invocation")
	}
	assert.Equal(t, []int{1}, f.Invoke(context.Background(), 1))
}

// Calling back into a thread-safe registry from one of its own handlers
// deadlocks. The registry is abandoned together with its stuck goroutine.
func TestThreadSafe_ReentrantCallBlocks(t *testing.T) {
	f := New[int, int](WithThreadSafe())
	f.Register(func(int) int {
		return f.Size()
	})

	finished := make(chan struct{})
	go func() {
		f.Invoke(context.Background(), 1)
		close(finished)
	}()

	assert.Never(t, func() bool {
		select {
		case <-finished:
			return true
		default:
			return false
		}
	}, 100*time.Millisecond, 10*time.Millisecond)
}
