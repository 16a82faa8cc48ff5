package toolsets

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Name
		want bool
	}{
		{"known search", Search, true},
		{"known forex", Forex, true},
		{"known hyphenated", MarketPerformance, true},
		{"unknown", Name("bogus"), false},
		{"empty", Name(""), false},
		{"case sensitive", Name("Search"), false},
		{"whitespace not trimmed", Name(" search"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Valid(tt.in))
		})
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	ts, ok := Lookup(Quotes)
	require.True(t, ok)
	assert.Equal(t, Quotes, ts.Name)
	assert.NotEmpty(t, ts.Description)
	assert.Contains(t, ts.Tools, "get_quote")

	_, ok = Lookup(Name("nope"))
	assert.False(t, ok)
}

func TestNamesOrdered(t *testing.T) {
	t.Parallel()

	names := Names()
	require.Len(t, names, 14)
	assert.Equal(t, Search, names[0])
	assert.Equal(t, Forex, names[len(names)-1])

	all := All()
	require.Len(t, all, len(names))
	for i, ts := range all {
		assert.Equal(t, names[i], ts.Name)
	}
}

func TestNamesString(t *testing.T) {
	t.Parallel()

	s := NamesString()
	assert.Contains(t, s, "search, company")
	assert.Contains(t, s, "market-performance")
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []Name
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"single", "search", []Name{"search"}},
		{"multiple", "search,company", []Name{"search", "company"}},
		{"trims elements", " search , company ", []Name{"search", "company"}},
		{"drops empty elements", "search,,company,", []Name{"search", "company"}},
		{"no validation", "search, company , bogus", []Name{"search", "company", "bogus"}},
		{"only commas", ",,,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SplitList(tt.in))
		})
	}
}

func TestCatalogIntegrity(t *testing.T) {
	t.Parallel()

	snake := regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	seen := make(map[string]Name)

	for _, ts := range All() {
		require.NotEmpty(t, ts.Description, "toolset %s has no description", ts.Name)
		require.NotEmpty(t, ts.Tools, "toolset %s has no tools", ts.Name)
		for _, tool := range ts.Tools {
			assert.Regexp(t, snake, tool, "tool %s in %s is not snake_case", tool, ts.Name)
			prev, dup := seen[tool]
			require.False(t, dup, "tool %s appears in both %s and %s", tool, prev, ts.Name)
			seen[tool] = ts.Name
		}
	}
}
