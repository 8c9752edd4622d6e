package selection

// Toggles is a keyed on/off map where every key starts off. The zero value is
// ready to use.
type Toggles[K comparable] struct {
	on map[K]bool
}

// Toggle flips key and returns its new state.
func (t *Toggles[K]) Toggle(key K) bool {
	next := !t.on[key]
	t.Set(key, next)
	return next
}

// On reports whether key is switched on.
func (t *Toggles[K]) On(key K) bool {
	return t.on[key]
}

// Set forces key to value.
func (t *Toggles[K]) Set(key K, value bool) {
	if !value {
		delete(t.on, key)
		return
	}
	if t.on == nil {
		t.on = make(map[K]bool)
	}
	t.on[key] = true
}

// Reset switches every key off.
func (t *Toggles[K]) Reset() {
	t.on = nil
}

// Any reports whether at least one key is on.
func (t *Toggles[K]) Any() bool {
	return len(t.on) > 0
}
