package backend

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/iconbake"
	"golang.org/x/image/draw"
)

// Backend name constants.
const (
	// BackendXDraw is the built-in backend: golang.org/x/image with a
	// Lanczos-3 kernel.
	BackendXDraw = "xdraw"

	// BackendCatmullRom is the built-in backend with the Catmull-Rom cubic
	// kernel instead of Lanczos-3.
	BackendCatmullRom = "catmullrom"

	// BackendGift is the github.com/disintegration/gift backend, registered
	// by importing backend/gift.
	BackendGift = "gift"
)

// ErrBackendNotAvailable is returned when a requested backend is not
// registered.
var ErrBackendNotAvailable = errors.New("backend: not available")

// Factory creates a new imaging backend instance.
type Factory func() iconbake.Imaging

var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Priority order for Default (first registered wins).
	backendPriority = []string{BackendXDraw, BackendGift, BackendCatmullRom}
)

func init() {
	Register(BackendXDraw, iconbake.DefaultImaging)
	Register(BackendCatmullRom, func() iconbake.Imaging {
		return iconbake.NewXDrawImaging(draw.CatmullRom)
	})
}

// Register registers a backend factory under name, replacing any previous
// registration. It is typically called from init functions.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the sorted names of registered backends.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get returns a new instance of the named backend.
func Get(name string) (iconbake.Imaging, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q (registered: %v)", ErrBackendNotAvailable, name, Available())
	}
	return factory(), nil
}

// Default returns the highest-priority registered backend, or nil when
// nothing is registered.
func Default() iconbake.Imaging {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range backendPriority {
		if factory, ok := backends[name]; ok {
			if im := factory(); im != nil {
				return im
			}
		}
	}
	return nil
}
