package render

import (
	"log/slog"
	"sort"
	"sync"
)

// Factory constructs a Renderer, probing whatever its backend needs. An
// error marks the format unavailable for the life of the process rather than
// failing exports at render time.
type Factory func() (Renderer, error)

var (
	factoryMu sync.Mutex
	factories = map[Format]Factory{}
)

// RegisterFactory records a renderer factory. Called from init() in the
// format subpackages; blank-import internal/render/all to get all of them.
func RegisterFactory(f Format, fn Factory) {
	factoryMu.Lock()
	defer factoryMu.Unlock()
	factories[f] = fn
}

// Registry is the immutable set of renderers usable in this process.
// Build one at startup with NewDefaultRegistry (or NewRegistry in tests) and
// inject it; nothing reads the factory table after that.
type Registry struct {
	byFormat    map[Format]Renderer
	unavailable map[Format]string // format -> reason
}

// NewRegistry builds a registry from explicit renderers.
func NewRegistry(rs ...Renderer) *Registry {
	reg := &Registry{
		byFormat:    map[Format]Renderer{},
		unavailable: map[Format]string{},
	}
	for _, r := range rs {
		reg.byFormat[r.Format()] = r
	}
	return reg
}

// NewDefaultRegistry probes every registered factory once and returns the
// resulting capability set. Probe failures are logged and recorded, not
// fatal.
func NewDefaultRegistry(log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}
	factoryMu.Lock()
	defer factoryMu.Unlock()

	reg := &Registry{
		byFormat:    map[Format]Renderer{},
		unavailable: map[Format]string{},
	}
	for f, fn := range factories {
		r, err := fn()
		if err != nil {
			log.Warn("renderer backend unavailable", "format", string(f), "err", err)
			reg.unavailable[f] = err.Error()
			continue
		}
		reg.byFormat[f] = r
	}
	return reg
}

// Lookup returns the renderer for a format when it is available.
func (r *Registry) Lookup(f Format) (Renderer, bool) {
	ren, ok := r.byFormat[f]
	return ren, ok
}

// Available lists usable formats, sorted for stable output.
func (r *Registry) Available() []Format {
	out := make([]Format, 0, len(r.byFormat))
	for f := range r.byFormat {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// UnavailableReason reports why a format is missing, if it is.
func (r *Registry) UnavailableReason(f Format) (string, bool) {
	reason, ok := r.unavailable[f]
	return reason, ok
}
