package rental

// collection é um mapa id → entidade que preserva a ordem de inserção.
// A listagem e os relatórios dependem dessa ordem; o map do Go sozinho não a
// garante, e nenhuma biblioteca do projeto oferece um mapa ordenado.
type collection[T any] struct {
	items map[string]*T
	order []string
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: make(map[string]*T)}
}

func (c *collection[T]) add(id string, item *T) {
	if _, ok := c.items[id]; !ok {
		c.order = append(c.order, id)
	}
	c.items[id] = item
}

// remove apaga o id se presente; ausência não é erro.
func (c *collection[T]) remove(id string) {
	if _, ok := c.items[id]; !ok {
		return
	}
	delete(c.items, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// get devolve a entidade ou nil; nunca falha.
func (c *collection[T]) get(id string) *T {
	return c.items[id]
}

// values devolve as entidades na ordem de inserção.
func (c *collection[T]) values() []*T {
	out := make([]*T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

func (c *collection[T]) size() int { return len(c.items) }
