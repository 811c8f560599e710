package stomp

// Header is an insertion-ordered mapping from header name to header value.
//
// STOMP permits duplicate header names on the wire; per §3 this codec keeps
// only the first occurrence on read, and never emits more than one header
// line per name on write. A slice of entries plus a name→index lookup gives
// both O(1) Get/Set and a stable write order (Del is O(n): it shifts the
// later entries and reindexes them), the way
// senojj-stomp/frame/header/map.go orders its writes but without that map's
// multi-value-per-key semantics, which the spec doesn't require.
type Header struct {
	entries []headerEntry
	index   map[string]int
}

type headerEntry struct {
	name  string
	value string
}

// NewHeader returns an empty Header ready for use.
func NewHeader() *Header {
	return &Header{index: make(map[string]int)}
}

// Set assigns value to name, overwriting any existing value for name in
// place so the original insertion position is preserved.
func (h *Header) Set(name, value string) {
	if h.index == nil {
		h.index = make(map[string]int)
	}
	if i, ok := h.index[name]; ok {
		h.entries[i].value = value
		return
	}
	h.index[name] = len(h.entries)
	h.entries = append(h.entries, headerEntry{name: name, value: value})
}

// Get returns the value for name and whether it was present.
func (h *Header) Get(name string) (string, bool) {
	if h == nil || h.index == nil {
		return "", false
	}
	i, ok := h.index[name]
	if !ok {
		return "", false
	}
	return h.entries[i].value, true
}

// GetDefault returns the value for name, or def if name is absent.
func (h *Header) GetDefault(name, def string) string {
	if v, ok := h.Get(name); ok {
		return v
	}
	return def
}

// Del removes name, if present.
func (h *Header) Del(name string) {
	if h == nil || h.index == nil {
		return
	}
	i, ok := h.index[name]
	if !ok {
		return
	}
	h.entries = append(h.entries[:i], h.entries[i+1:]...)
	delete(h.index, name)
	for k, v := range h.index {
		if v > i {
			h.index[k] = v - 1
		}
	}
}

// Has reports whether name is present.
func (h *Header) Has(name string) bool {
	_, ok := h.Get(name)
	return ok
}

// Len returns the number of distinct header names.
func (h *Header) Len() int {
	if h == nil {
		return 0
	}
	return len(h.entries)
}

// Range calls fn for each header in insertion order. Range stops early if
// fn returns false.
func (h *Header) Range(fn func(name, value string) bool) {
	if h == nil {
		return
	}
	for _, e := range h.entries {
		if !fn(e.name, e.value) {
			return
		}
	}
}
