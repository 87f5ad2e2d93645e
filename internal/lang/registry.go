package lang

import (
	"fmt"
	"sync"
)

// Registry resolves a language tag to a Processor instance. The engine
// consults it at build time; an unresolved tag is fatal (per the
// missing-processor invariant), not recoverable.
type Registry struct {
	mu         sync.RWMutex
	processors map[string]Processor
}

// NewRegistry creates a Registry pre-populated with the base English
// and German processors.
func NewRegistry() *Registry {
	r := &Registry{processors: make(map[string]Processor)}
	r.Register(NewEnglish(nil))
	r.Register(NewGerman(nil))
	return r
}

// Register adds or replaces the processor for its own Tag().
func (r *Registry) Register(p Processor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.processors[p.Tag()] = p
}

// Resolve looks up the processor for tag. ErrMissingProcessor-shaped
// errors are the caller's responsibility to construct; Resolve itself
// only reports presence.
func (r *Registry) Resolve(tag string) (Processor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.processors[tag]
	return p, ok
}

// Tags returns every registered language tag.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]string, 0, len(r.processors))
	for t := range r.processors {
		tags = append(tags, t)
	}
	return tags
}

func (r *Registry) String() string {
	return fmt.Sprintf("Registry(%d processors)", len(r.processors))
}
