package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	cases := []struct {
		s, term string
		want    bool
	}{
		{"Café de Colombia", "cafe", true},
		{"Café de Colombia", "COLOMBIA", true},
		{"Ñandú", "nandu", true},
		{"Camiseta", "pantalón", false},
		{"lo que sea", "", true},
		{"lo que sea", "   ", true},
		{"", "x", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Contains(tc.s, tc.term), "%q ∋ %q", tc.s, tc.term)
	}
}

func TestAnyContains(t *testing.T) {
	assert.True(t, AnyContains("stockin", "stockIn", "", "TX-1"))
	assert.True(t, AnyContains("tx-1", "stockOut", "notas", "TX-1"))
	assert.False(t, AnyContains("zzz", "stockOut", "notas", "TX-1"))
	assert.True(t, AnyContains(""))
}
