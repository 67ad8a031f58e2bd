package federate

import "sync"

// noLock satisfies sync.Locker without synchronizing anything.
// It is the guard of registries built without WithThreadSafe.
type noLock struct{}

func (noLock) Lock()   {}
func (noLock) Unlock() {}

// newGuard picks the guard once, at construction.
func newGuard(threadSafe bool) sync.Locker {
	if threadSafe {
		return &sync.Mutex{}
	}
	return noLock{}
}
