package federate

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func multiplyBy2(x int) int { return x * 2 }

func powerOf2(x int) int { return 1 << x }

func square(x int) int { return x * x }

// requireGarbage forces collections until the registry reports want
// expired entries.
func requireGarbage(t *testing.T, m Maintainer, want int) {
	t.Helper()
	require.Eventually(t, func() bool {
		runtime.GC()
		return m.GarbageSize() == want
	}, 2*time.Second, 5*time.Millisecond, "expected %d expired entries, have %d", want, m.GarbageSize())
}

// registerAndDrop registers h and lets its Tracker go out of scope.
//
//go:noinline
func registerAndDrop[A, R any](f *Tracked[A, R], h Handler[A, R]) {
	f.Register(h)
}
