package memory

import (
	"marketplace/internal/core/domain/model/kernel"
)

// table is a map that remembers the order in which keys were first inserted.
type table[V any] struct {
	rows  map[kernel.UUID]V
	order []kernel.UUID
}

func newTable[V any]() table[V] {
	return table[V]{rows: make(map[kernel.UUID]V)}
}

func (t *table[V]) put(id kernel.UUID, v V) {
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = v
}

func (t *table[V]) get(id kernel.UUID) (V, bool) {
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[V]) has(id kernel.UUID) bool {
	_, ok := t.rows[id]
	return ok
}

func (t *table[V]) all() []V {
	values := make([]V, 0, len(t.order))
	for _, id := range t.order {
		values = append(values, t.rows[id])
	}
	return values
}

func (t *table[V]) merge(staged table[V]) {
	for _, id := range staged.order {
		t.put(id, staged.rows[id])
	}
}
