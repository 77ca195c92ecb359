package cache

// ScopedKeyer wraps a Keyer with a prefix, namespacing cache entries
// across multiple syntaxdiagrams server instances sharing one Redis
// database (e.g. separate deploy environments).
//
// Example usage:
//
//	envKeyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to every key
// inner produces. A nil inner defaults to [NewDefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// DiagramKey implements [Keyer].
func (k *ScopedKeyer) DiagramKey(treeHash, backend, settingsHash string) string {
	return k.prefix + k.inner.DiagramKey(treeHash, backend, settingsHash)
}
