package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

func ptr(s string) *string { return &s }

// sampleTree:
//
//	A
//	├── A1
//	│   ├── A1a
//	│   ├── A1b
//	│   │   └── A1b-x
//	│   └── A1c
//	└── A2
//	B
func sampleTree() []entity.CategoryNode {
	return []entity.CategoryNode{
		{
			CategoryID: "A", Name: "Ropa",
			Children: []entity.CategoryNode{
				{
					CategoryID: "A1", Name: "Camisas", ParentCategoryID: ptr("A"),
					Children: []entity.CategoryNode{
						{CategoryID: "A1a", Name: "Manga corta", ParentCategoryID: ptr("A1")},
						{
							CategoryID: "A1b", Name: "Manga larga", ParentCategoryID: ptr("A1"),
							Children: []entity.CategoryNode{
								{CategoryID: "A1b-x", Name: "Lino", ParentCategoryID: ptr("A1b")},
							},
						},
						{CategoryID: "A1c", Name: "Polos", ParentCategoryID: ptr("A1")},
					},
				},
				{CategoryID: "A2", Name: "Pantalones", ParentCategoryID: ptr("A")},
			},
		},
		{CategoryID: "B", Name: "Hogar"},
	}
}

func TestFindByID(t *testing.T) {
	tree := sampleTree()

	n, ok := FindByID(tree, "A1b-x")
	require.True(t, ok)
	assert.Equal(t, "Lino", n.Name)

	n, ok = FindByID(tree, "B")
	require.True(t, ok)
	assert.Equal(t, "Hogar", n.Name)

	_, ok = FindByID(tree, "nope")
	assert.False(t, ok)

	_, ok = FindByID(nil, "A")
	assert.False(t, ok)
}

func TestFlatten_CompletePreOrder(t *testing.T) {
	tree := sampleTree()
	flat := Flatten(tree)

	require.Len(t, flat, Count(tree))
	ids := make([]string, 0, len(flat))
	for _, o := range flat {
		ids = append(ids, o.CategoryID)
	}
	assert.Equal(t, []string{"A", "A1", "A1a", "A1b", "A1b-x", "A1c", "A2", "B"}, ids)

	seen := map[string]int{}
	for _, id := range ids {
		seen[id]++
	}
	for id, c := range seen {
		assert.Equal(t, 1, c, "id %s repetido", id)
	}
}

func TestRemoveByIDs_DepthTwo(t *testing.T) {
	tree := sampleTree()
	out := RemoveByIDs(tree, NewIDSet("A1b"))

	_, ok := FindByID(out, "A1b")
	assert.False(t, ok)
	_, ok = FindByID(out, "A1b-x")
	assert.False(t, ok, "los hijos del nodo quitado se descartan")

	a1, ok := FindByID(out, "A1")
	require.True(t, ok)
	require.Len(t, a1.Children, 2)
	assert.Equal(t, "A1a", a1.Children[0].CategoryID)
	assert.Equal(t, "A1c", a1.Children[1].CategoryID)

	// El árbol original no cambia.
	assert.Equal(t, sampleTree(), tree)
	assert.Equal(t, Count(tree)-2, Count(out))
}

func TestRemoveByIDs_MultipleLevels(t *testing.T) {
	out := RemoveByIDs(sampleTree(), NewIDSet("B", "A1a", "A2"))
	ids := []string{}
	for _, o := range Flatten(out) {
		ids = append(ids, o.CategoryID)
	}
	assert.Equal(t, []string{"A", "A1", "A1b", "A1b-x", "A1c"}, ids)
}

func TestRemoveByIDs_AbsentIDIsNoOp(t *testing.T) {
	tree := sampleTree()
	out := RemoveByIDs(tree, NewIDSet("does-not-exist"))
	assert.Equal(t, tree, out)

	assert.Nil(t, RemoveByIDs(nil, NewIDSet("A")))
}

func TestFindByName(t *testing.T) {
	opt, ok := FindByName(sampleTree(), "Polos")
	require.True(t, ok)
	assert.Equal(t, "A1c", opt.CategoryID)

	_, ok = FindByName(sampleTree(), "polos")
	assert.False(t, ok, "coincidencia exacta")
}

func TestValidate(t *testing.T) {
	assert.Empty(t, Validate(sampleTree()))

	bad := []entity.CategoryNode{
		{CategoryID: "X", Name: "  ", ParentCategoryID: ptr("Z"), Children: []entity.CategoryNode{
			{CategoryID: "Y", Name: "Hijo", ParentCategoryID: ptr("W")},
			{CategoryID: "X", Name: "Repetido"},
		}},
	}
	v := Validate(bad)
	reasons := map[string][]string{}
	for _, x := range v {
		reasons[x.CategoryID] = append(reasons[x.CategoryID], x.Reason)
	}
	assert.Contains(t, reasons["X"], "nombre vacío")
	assert.Contains(t, reasons["X"], "categoryId repetido")
	assert.Contains(t, reasons["X"], "raíz con parentCategoryId Z")
	assert.Contains(t, reasons["Y"], "parentCategoryId W no coincide con X")
}

func TestValidate_HijoSinParentCategoryID(t *testing.T) {
	tree := []entity.CategoryNode{
		{CategoryID: "A", Name: "Ropa", Children: []entity.CategoryNode{
			{CategoryID: "A1", Name: "Camisas"},
			{CategoryID: "A2", Name: "Pantalones", ParentCategoryID: ptr("")},
		}},
	}
	v := Validate(tree)
	require.Len(t, v, 2)
	assert.Equal(t, Violation{CategoryID: "A1", Reason: "sin parentCategoryId bajo A"}, v[0])
	assert.Equal(t, Violation{CategoryID: "A2", Reason: "sin parentCategoryId bajo A"}, v[1])
}
