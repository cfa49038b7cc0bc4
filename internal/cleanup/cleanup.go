package cleanup

import (
	"errors"
	"sync"
)

var (
	mu    sync.Mutex
	hooks []func() error
)

// Register adds a shutdown hook. Hooks run in LIFO order so resources
// opened later are released first.
func Register(hook func() error) {
	if hook == nil {
		return
	}
	mu.Lock()
	hooks = append(hooks, hook)
	mu.Unlock()
}

// RunAll executes all registered hooks once and joins their errors.
// Subsequent calls are no-ops until new hooks are registered.
func RunAll() error {
	mu.Lock()
	local := hooks
	hooks = nil
	mu.Unlock()

	var errs []error
	for i := len(local) - 1; i >= 0; i-- {
		if err := local[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
