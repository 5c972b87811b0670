package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_CollapsedShowsRootsOnly(t *testing.T) {
	rows := Render(sampleTree(), NewIDSet(), NewIDSet())
	require.Len(t, rows, 2)
	assert.Equal(t, "A", rows[0].CategoryID)
	assert.True(t, rows[0].HasChildren)
	assert.False(t, rows[0].Expanded)
	assert.Equal(t, "B", rows[1].CategoryID)
	assert.False(t, rows[1].HasChildren)
}

func TestRender_ExpandedAndSelected(t *testing.T) {
	rows := Render(sampleTree(), NewIDSet("A", "A1b", "B"), NewIDSet("A2", "A1b"))

	got := make([]string, 0, len(rows))
	for _, r := range rows {
		got = append(got, r.CategoryID)
	}
	// A1 no está expandido: A1b no se muestra aunque figure en expanded.
	assert.Equal(t, []string{"A", "A1", "A2", "B"}, got)

	assert.Equal(t, 0, rows[0].Depth)
	assert.Equal(t, 1, rows[1].Depth)
	assert.True(t, rows[2].Selected)
	assert.False(t, rows[3].Expanded, "hojas nunca figuran expandidas")

	rows = Render(sampleTree(), NewIDSet("A", "A1", "A1b"), NewIDSet())
	require.Len(t, rows, 8)
	assert.Equal(t, "A1b-x", rows[4].CategoryID)
	assert.Equal(t, 3, rows[4].Depth)
}

func TestIDSet(t *testing.T) {
	s := ParseIDSet(" b, a,,b ,c")
	assert.Equal(t, []string{"b", "a", "c"}, s.Slice())
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has(""))

	s2 := s.Toggle("a")
	assert.False(t, s2.Has("a"))
	assert.True(t, s.Has("a"), "Toggle no modifica el original")

	s3 := s2.Toggle("z")
	assert.Equal(t, []string{"b", "c", "z"}, s3.Slice())
	assert.Equal(t, 0, ParseIDSet("   ").Len())

	var zero IDSet
	assert.False(t, zero.Has("x"))
}
