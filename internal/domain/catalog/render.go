package catalog

import "github.com/jhoicas/Inventario-console/internal/domain/entity"

// Row fila visible del árbol ya desplegado.
type Row struct {
	CategoryID  string
	Name        string
	Description string
	Depth       int
	HasChildren bool
	Expanded    bool
	Selected    bool
}

// Render despliega el árbol en filas. Solo desciende en los nodos de expanded;
// expanded y selected son externos al árbol.
func Render(tree []entity.CategoryNode, expanded, selected IDSet) []Row {
	rows := make([]Row, 0, len(tree))
	return renderLevel(rows, tree, 0, expanded, selected)
}

func renderLevel(rows []Row, nodes []entity.CategoryNode, depth int, expanded, selected IDSet) []Row {
	for _, n := range nodes {
		open := n.HasChildren() && expanded.Has(n.CategoryID)
		rows = append(rows, Row{
			CategoryID:  n.CategoryID,
			Name:        n.Name,
			Description: n.Description,
			Depth:       depth,
			HasChildren: n.HasChildren(),
			Expanded:    open,
			Selected:    selected.Has(n.CategoryID),
		})
		if open {
			rows = renderLevel(rows, n.Children, depth+1, expanded, selected)
		}
	}
	return rows
}
