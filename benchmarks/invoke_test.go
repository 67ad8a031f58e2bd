package benchmarks

import (
	"context"
	"fmt"
	"runtime"
	"testing"

	"github.com/randalmurphal/federate/pkg/federate"
)

var sink []int

func add(x int) int { return x + 1 }

func buildUntracked(n int, opts ...federate.Option) *federate.Federate[int, int] {
	f := federate.New[int, int](opts...)
	for i := 0; i < n; i++ {
		f.Register(add)
	}
	return f
}

func buildTracked(n int, opts ...federate.Option) (*federate.Tracked[int, int], []federate.Tracker[int, int]) {
	f := federate.NewTracked[int, int](opts...)
	trackers := make([]federate.Tracker[int, int], n)
	for i := range trackers {
		trackers[i] = f.Register(add)
	}
	return f, trackers
}

// BenchmarkInvoke compares the four policy combinations.
func BenchmarkInvoke(b *testing.B) {
	ctx := context.Background()
	for _, n := range []int{1, 10, 100} {
		b.Run(fmt.Sprintf("untracked/n=%d", n), func(b *testing.B) {
			f := buildUntracked(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sink = f.Invoke(ctx, i)
			}
		})

		b.Run(fmt.Sprintf("untracked_threadsafe/n=%d", n), func(b *testing.B) {
			f := buildUntracked(n, federate.WithThreadSafe())
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sink = f.Invoke(ctx, i)
			}
		})

		b.Run(fmt.Sprintf("tracked/n=%d", n), func(b *testing.B) {
			f, trackers := buildTracked(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sink = f.Invoke(ctx, i)
			}
			runtime.KeepAlive(trackers)
		})

		b.Run(fmt.Sprintf("tracked_threadsafe/n=%d", n), func(b *testing.B) {
			f, trackers := buildTracked(n, federate.WithThreadSafe())
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sink = f.Invoke(ctx, i)
			}
			runtime.KeepAlive(trackers)
		})
	}
}

// BenchmarkNotify measures the walk without result collection.
func BenchmarkNotify(b *testing.B) {
	ctx := context.Background()
	f := buildUntracked(100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Notify(ctx, i)
	}
}

// BenchmarkInvokeAsync measures scheduling plus waiting for every future.
func BenchmarkInvokeAsync(b *testing.B) {
	ctx := context.Background()
	for _, n := range []int{1, 10, 100} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			f := buildUntracked(n, federate.WithThreadSafe())
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sink, _ = federate.WaitAll(f.InvokeAsync(ctx, i))
			}
		})
	}
}

// BenchmarkGarbageSize walks a tracked registry with no expired entries.
func BenchmarkGarbageSize(b *testing.B) {
	f, trackers := buildTracked(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.GarbageSize()
	}
	runtime.KeepAlive(trackers)
}

// BenchmarkRegister_Parallel exercises the guard under contention.
func BenchmarkRegister_Parallel(b *testing.B) {
	f := federate.New[int, int](federate.WithThreadSafe())
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			f.Register(add)
		}
	})
}
