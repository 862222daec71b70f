package combobox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFilterBlankQueryIsIdentity(t *testing.T) {
	t.Parallel()

	options := groupedFruits()
	for _, query := range []string{"", "   ", "\t"} {
		got := DefaultFilter(options, query)
		require.Len(t, got, len(options))
		assert.Same(t, &options[0], &got[0], "blank query %q must return the input slice", query)
	}
}

func TestDefaultFilterMatchesLabelOrValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "label prefix", query: "ap", want: []string{"apple"}},
		{name: "case insensitive", query: "WAT", want: []string{"water"}},
		{name: "substring inside label", query: "rr", want: []string{"carrot"}},
		{name: "value match", query: "pea", want: []string{"pea"}},
		{name: "disabled kept", query: "ban", want: []string{"banana"}},
		{name: "no match", query: "zzz", want: []string{}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, values(DefaultFilter(groupedFruits(), tc.query)))
		})
	}
}

func TestDefaultFilterKeepsSourceOrder(t *testing.T) {
	t.Parallel()

	got := DefaultFilter(groupedFruits(), "a")
	assert.Equal(t, []string{"carrot", "apple", "water", "pea", "banana"}, values(got))
}

func TestFuzzyFilter(t *testing.T) {
	t.Parallel()

	options := []Option{
		{Label: "Kubernetes", Value: "k8s"},
		{Label: "Docker", Value: "docker"},
		{Label: "Terraform", Value: "tf"},
	}

	assert.Same(t, &options[0], &FuzzyFilter(options, " ")[0])
	assert.Equal(t, []string{"k8s"}, values(FuzzyFilter(options, "kbn")))
	assert.Equal(t, []string{"tf"}, values(FuzzyFilter(options, "trf")))
	assert.Equal(t, []string{"k8s"}, values(FuzzyFilter(options, "8s")), "value-only matches are appended")
	assert.Empty(t, FuzzyFilter(options, "xyz"))
}

func TestFilterByName(t *testing.T) {
	t.Parallel()

	options := []Option{{Label: "Banana", Value: "b"}}
	require.Len(t, FilterByName("fuzzy")(options, "bnn"), 1)
	require.Empty(t, FilterByName("substring")(options, "bnn"))
	require.Empty(t, FilterByName("")(options, "bnn"))
}
