package catalog

import "strings"

// IDSet conjunto de categoryIds que conserva el orden de inserción.
// Se usa para la selección y la expansión del árbol, que viven fuera de los nodos.
type IDSet struct {
	order []string
	index map[string]struct{}
}

// NewIDSet crea el conjunto ignorando ids vacíos y repetidos.
func NewIDSet(ids ...string) IDSet {
	s := IDSet{index: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.add(id)
	}
	return s
}

// ParseIDSet interpreta una lista separada por comas ("a,b, c").
func ParseIDSet(csv string) IDSet {
	if strings.TrimSpace(csv) == "" {
		return NewIDSet()
	}
	return NewIDSet(strings.Split(csv, ",")...)
}

func (s *IDSet) add(id string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return
	}
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[id]; ok {
		return
	}
	s.index[id] = struct{}{}
	s.order = append(s.order, id)
}

// Has indica si id pertenece al conjunto.
func (s IDSet) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Len cantidad de ids.
func (s IDSet) Len() int { return len(s.order) }

// Slice copia de los ids en orden de inserción.
func (s IDSet) Slice() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Toggle devuelve un conjunto nuevo con id agregado o quitado.
func (s IDSet) Toggle(id string) IDSet {
	if !s.Has(id) {
		return NewIDSet(append(s.Slice(), id)...)
	}
	out := NewIDSet()
	for _, v := range s.order {
		if v != id {
			out.add(v)
		}
	}
	return out
}
