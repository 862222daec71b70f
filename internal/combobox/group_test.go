package combobox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupDiscoveryOrder(t *testing.T) {
	t.Parallel()

	g := Group(groupedFruits())

	assert.Equal(t, []string{"water"}, values(g.Ungrouped))
	require.Len(t, g.Groups, 2)
	assert.Equal(t, "Vegetables", g.Groups[0].Name)
	assert.Equal(t, []string{"carrot", "pea"}, values(g.Groups[0].Options))
	assert.Equal(t, "Fruits", g.Groups[1].Name)
	assert.Equal(t, []string{"apple", "banana"}, values(g.Groups[1].Options))
}

func TestGroupFlattenedIndex(t *testing.T) {
	t.Parallel()

	g := Group(groupedFruits())

	assert.Equal(t, 5, g.Len())
	assert.Equal(t, []string{"water", "carrot", "pea", "apple", "banana"}, values(g.Flatten()))

	opt, ok := g.OptionAt(3)
	require.True(t, ok)
	assert.Equal(t, "apple", opt.Value)

	_, ok = g.OptionAt(-1)
	assert.False(t, ok)
	_, ok = g.OptionAt(5)
	assert.False(t, ok)

	assert.Equal(t, 2, g.IndexOf(Option{Label: "Pea", Value: "pea", Group: "Vegetables"}))
	assert.Equal(t, -1, g.IndexOf(Option{Label: "Pea", Value: "pea"}))

	assert.Equal(t, 1, g.GroupOffset("Vegetables"))
	assert.Equal(t, 3, g.GroupOffset("Fruits"))
	assert.Equal(t, -1, g.GroupOffset("Grains"))
}

func TestGroupEmpty(t *testing.T) {
	t.Parallel()

	g := Group(nil)
	assert.Zero(t, g.Len())
	assert.Empty(t, g.Groups)
	assert.Empty(t, g.Flatten())
}

func TestGroupOnlyUngrouped(t *testing.T) {
	t.Parallel()

	g := Group(fruits())
	assert.Empty(t, g.Groups)
	assert.Equal(t, []string{"a", "b"}, values(g.Flatten()))
}
