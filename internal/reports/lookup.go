package reports

// UnknownName is substituted whenever a referenced id cannot be resolved.
// Lookup misses never fail a report.
const UnknownName = "Unknown"

// NameResolver is a pure id-to-display-name lookup.
type NameResolver struct {
	names map[int64]string
}

// NewNameResolver builds an empty resolver.
func NewNameResolver() *NameResolver {
	return &NameResolver{names: map[int64]string{}}
}

// Add registers a display name for an id.
func (r *NameResolver) Add(id int64, name string) {
	r.names[id] = name
}

// Resolve returns the display name, substituting UnknownName on a miss.
func (r *NameResolver) Resolve(id int64) string {
	if r == nil {
		return UnknownName
	}
	if name, ok := r.names[id]; ok {
		return name
	}
	return UnknownName
}

// Has reports whether the id resolves.
func (r *NameResolver) Has(id int64) bool {
	if r == nil {
		return false
	}
	_, ok := r.names[id]
	return ok
}
