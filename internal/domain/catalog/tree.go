// Package catalog contiene las operaciones puras sobre el árbol de categorías
// del vendedor. Ninguna función modifica el árbol recibido.
package catalog

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// FindByID búsqueda en profundidad (pre-orden); devuelve el primer nodo con ese id.
func FindByID(tree []entity.CategoryNode, id string) (entity.CategoryNode, bool) {
	for _, n := range tree {
		if n.CategoryID == id {
			return n, true
		}
		if found, ok := FindByID(n.Children, id); ok {
			return found, true
		}
	}
	return entity.CategoryNode{}, false
}

// RemoveByIDs devuelve un árbol nuevo sin los nodos cuyo id está en ids, a cualquier
// profundidad. Se elimina el subárbol completo: los hijos del nodo quitado no se reubican.
// Los hermanos conservan su orden.
func RemoveByIDs(tree []entity.CategoryNode, ids IDSet) []entity.CategoryNode {
	if tree == nil {
		return nil
	}
	out := make([]entity.CategoryNode, 0, len(tree))
	for _, n := range tree {
		if ids.Has(n.CategoryID) {
			continue
		}
		n.Children = RemoveByIDs(n.Children, ids)
		out = append(out, n)
	}
	return out
}

// Flatten recorrido pre-orden (padres antes que hijos) con un par id/nombre por nodo.
func Flatten(tree []entity.CategoryNode) []entity.CategoryOption {
	out := make([]entity.CategoryOption, 0, Count(tree))
	var walk func([]entity.CategoryNode)
	walk = func(nodes []entity.CategoryNode) {
		for _, n := range nodes {
			out = append(out, entity.CategoryOption{CategoryID: n.CategoryID, Name: n.Name})
			walk(n.Children)
		}
	}
	walk(tree)
	return out
}

// Count total de nodos a cualquier profundidad.
func Count(tree []entity.CategoryNode) int {
	total := 0
	for _, n := range tree {
		total += 1 + Count(n.Children)
	}
	return total
}

// FindByName primer nodo (pre-orden) cuyo nombre coincide exactamente.
func FindByName(tree []entity.CategoryNode, name string) (entity.CategoryOption, bool) {
	for _, opt := range Flatten(tree) {
		if opt.Name == name {
			return opt, true
		}
	}
	return entity.CategoryOption{}, false
}

// Violation inconsistencia detectada en un árbol recibido de la API remota.
type Violation struct {
	CategoryID string
	Reason     string
}

func (v Violation) String() string { return fmt.Sprintf("%s: %s", v.CategoryID, v.Reason) }

// Validate revisa nombres vacíos, ids repetidos en todo el árbol y que
// parentCategoryId coincida con el anidamiento real.
func Validate(tree []entity.CategoryNode) []Violation {
	var out []Violation
	seen := make(map[string]struct{})
	var walk func(nodes []entity.CategoryNode, parent string)
	walk = func(nodes []entity.CategoryNode, parent string) {
		for _, n := range nodes {
			if n.CategoryID == "" {
				out = append(out, Violation{Reason: "categoryId vacío"})
			} else if _, dup := seen[n.CategoryID]; dup {
				out = append(out, Violation{CategoryID: n.CategoryID, Reason: "categoryId repetido"})
			} else {
				seen[n.CategoryID] = struct{}{}
			}
			if strings.TrimSpace(n.Name) == "" {
				out = append(out, Violation{CategoryID: n.CategoryID, Reason: "nombre vacío"})
			}
			switch {
			case parent == "" && n.ParentCategoryID != nil && *n.ParentCategoryID != "":
				out = append(out, Violation{CategoryID: n.CategoryID, Reason: "raíz con parentCategoryId " + *n.ParentCategoryID})
			case parent != "" && (n.ParentCategoryID == nil || *n.ParentCategoryID == ""):
				out = append(out, Violation{CategoryID: n.CategoryID, Reason: "sin parentCategoryId bajo " + parent})
			case parent != "" && *n.ParentCategoryID != parent:
				out = append(out, Violation{CategoryID: n.CategoryID, Reason: "parentCategoryId " + *n.ParentCategoryID + " no coincide con " + parent})
			}
			walk(n.Children, n.CategoryID)
		}
	}
	walk(tree, "")
	return out
}
