package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	t.Parallel()

	list := Rank("adress", []string{"name", "address", "zip"})
	require.Len(t, list, 3)

	assert.Equal(t, "address", list[0].Name)
	assert.Greater(t, list[0].Score, list[1].Score)
}

func TestRank_Determinism(t *testing.T) {
	t.Parallel()

	// "ab" and "ba" score the same against "aa": ties are broken by name
	first := Rank("aa", []string{"ba", "ab"})
	second := Rank("aa", []string{"ab", "ba"})

	assert.Equal(t, first, second)
	assert.Equal(t, "ab", first[0].Name)
}

func TestCandidateList_Top(t *testing.T) {
	t.Parallel()

	list := CandidateList{{Name: "a", Score: 1}, {Name: "b", Score: 0.5}, {Name: "c", Score: 0.1}}

	assert.Len(t, list.Top(2), 2)
	assert.Len(t, list.Top(10), 3)
	assert.Len(t, list.Top(-1), 3)
	assert.Empty(t, list.Top(0))
}

func TestCandidateList_AboveThreshold(t *testing.T) {
	t.Parallel()

	list := CandidateList{{Name: "a", Score: 1}, {Name: "b", Score: 0.5}, {Name: "c", Score: 0.1}}

	above := list.AboveThreshold(0.5)
	require.Len(t, above, 2)
	assert.Equal(t, "b", above[1].Name)
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		candidates []string
		limit      int
		expected   []string
	}{
		{
			name:       "typo",
			input:      "adress",
			candidates: []string{"name", "address"},
			limit:      3,
			expected:   []string{"address"},
		},
		{
			name:       "case and separators",
			input:      "ZipCode",
			candidates: []string{"zip_code", "city"},
			limit:      3,
			expected:   []string{"zip_code"},
		},
		{
			name:       "nothing close",
			input:      "xyz",
			candidates: []string{"name", "address"},
			limit:      3,
			expected:   nil,
		},
		{
			name:       "exact name is not suggested",
			input:      "city",
			candidates: []string{"city"},
			limit:      3,
			expected:   nil,
		},
		{
			name:       "limit",
			input:      "name",
			candidates: []string{"names", "nam", "named"},
			limit:      1,
			expected:   []string{"named"},
		},
		{
			name:       "exact name does not take a slot",
			input:      "name",
			candidates: []string{"name", "names", "nam", "named"},
			limit:      2,
			expected:   []string{"named", "names"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Suggest(tt.input, tt.candidates, tt.limit))
		})
	}
}
