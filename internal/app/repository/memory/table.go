package memory

// table keeps rows in insertion order and indexes them by primary key.
// Callers hold Store.mu.
type table[K comparable, V any] struct {
	rows  []V
	pos   map[K]int
	keyOf func(V) K
}

func newTable[K comparable, V any](keyOf func(V) K) *table[K, V] {
	return &table[K, V]{pos: map[K]int{}, keyOf: keyOf}
}

func (t *table[K, V]) len() int {
	return len(t.rows)
}

func (t *table[K, V]) has(k K) bool {
	_, ok := t.pos[k]
	return ok
}

// get returns a pointer into the table, valid until the next insert or
// remove.
func (t *table[K, V]) get(k K) (*V, bool) {
	i, ok := t.pos[k]
	if !ok {
		return nil, false
	}
	return &t.rows[i], true
}

func (t *table[K, V]) insert(v V) {
	t.pos[t.keyOf(v)] = len(t.rows)
	t.rows = append(t.rows, v)
}

func (t *table[K, V]) remove(k K) (V, bool) {
	i, ok := t.pos[k]
	if !ok {
		var zero V
		return zero, false
	}
	removed := t.rows[i]
	delete(t.pos, k)
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	t.reindex(i)
	return removed, true
}

// removeWhere deletes every matching row and returns the deleted rows.
func (t *table[K, V]) removeWhere(match func(V) bool) []V {
	var removed []V
	kept := t.rows[:0]
	for _, v := range t.rows {
		if match(v) {
			removed = append(removed, v)
			delete(t.pos, t.keyOf(v))
			continue
		}
		kept = append(kept, v)
	}
	t.rows = kept
	t.reindex(0)
	return removed
}

func (t *table[K, V]) reindex(from int) {
	for i := from; i < len(t.rows); i++ {
		t.pos[t.keyOf(t.rows[i])] = i
	}
}
