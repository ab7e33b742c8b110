package blockio

import (
	"sync"

	"golang.org/x/exp/slices"
)

// Registry maps a block compression mode (and its name) to the BlockCodec
// that implements it, keyed by a 4-bit mode nibble as well as by name.
type Registry struct {
	mu     sync.RWMutex
	byMode map[byte]BlockCodec
	byName map[string]BlockCodec
}

var defaultRegistry = &Registry{
	byMode: make(map[byte]BlockCodec),
	byName: make(map[string]BlockCodec),
}

// Register adds codec to the default registry under both its mode and
// its name.
func Register(codec BlockCodec) {
	defaultRegistry.Register(codec)
}

// Lookup retrieves the codec registered for the given mode nibble.
func Lookup(mode byte) (BlockCodec, error) {
	return defaultRegistry.Lookup(mode)
}

// Get retrieves a codec by name.
func Get(name string) (BlockCodec, error) {
	return defaultRegistry.Get(name)
}

// Names returns every registered codec's name in a stable, sorted order,
// suitable for CLI listing output.
func Names() []string {
	return defaultRegistry.Names()
}

// All returns every registered codec (deduplicated, sorted by name).
func All() []BlockCodec {
	return defaultRegistry.All()
}

func (r *Registry) Register(codec BlockCodec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byMode[codec.Mode()] = codec
	r.byName[codec.Name()] = codec
}

func (r *Registry) Lookup(mode byte) (BlockCodec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byMode[mode]
	if !ok {
		return nil, ErrCodecNotFound
	}
	return c, nil
}

func (r *Registry) Get(name string) (BlockCodec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byName[name]
	if !ok {
		return nil, ErrCodecNotFound
	}
	return c, nil
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

func (r *Registry) All() []BlockCodec {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	slices.Sort(names)
	out := make([]BlockCodec, 0, len(names))
	for _, n := range names {
		out = append(out, r.byName[n])
	}
	return out
}

func init() {
	Register(&rawCodec{})
	Register(&beansCodec{})
}
