package combobox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiValueDropsDuplicates(t *testing.T) {
	t.Parallel()

	v := MultiValue("a", "b", "a", "c")
	assert.Equal(t, []string{"a", "b", "c"}, v.Values())
	assert.Equal(t, 3, v.Len())
	last, ok := v.Last()
	assert.True(t, ok)
	assert.Equal(t, "c", last)
}

func TestSingleValue(t *testing.T) {
	t.Parallel()

	empty := SingleValue("")
	assert.True(t, empty.IsEmpty())
	assert.Nil(t, empty.Values())
	assert.False(t, empty.Contains(""))
	_, ok := empty.Last()
	assert.False(t, ok)

	v := SingleValue("a")
	assert.Equal(t, "a", v.String())
	assert.Equal(t, []string{"a"}, v.Values())
	assert.True(t, v.Contains("a"))
}

func TestValueEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, MultiValue("a", "b").Equal(MultiValue("a", "b")))
	assert.False(t, MultiValue("a", "b").Equal(MultiValue("b", "a")))
	assert.False(t, MultiValue().Equal(SingleValue("")))
	assert.True(t, EmptyValue(false).Equal(SingleValue("")))
}

func TestValueWithMode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a"}, SingleValue("a").WithMode(true).Values())
	assert.True(t, SingleValue("").WithMode(true).IsEmpty())
	assert.Equal(t, "b", MultiValue("a", "b").WithMode(false).String())
	assert.True(t, MultiValue().WithMode(false).IsEmpty())
}

func TestValuesReturnsCopy(t *testing.T) {
	t.Parallel()

	v := MultiValue("a", "b")
	items := v.Values()
	items[0] = "z"
	assert.Equal(t, []string{"a", "b"}, v.Values())
}
