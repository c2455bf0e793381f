package menu

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedItems(n int) []string {
	items := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, fmt.Sprintf("Item%02d", i))
	}
	return items
}

func TestRowsSingleColumn(t *testing.T) {
	rows := Rows([]string{"France", "Germany", "Japan"})

	assert.Equal(t, []string{
		"  1. France",
		"  2. Germany",
		"  3. Japan",
	}, rows)
}

func TestRowsSingleColumnAtThreshold(t *testing.T) {
	rows := Rows(numberedItems(TwoColumnThreshold))

	require.Len(t, rows, TwoColumnThreshold)
	for _, row := range rows {
		assert.Equal(t, 1, strings.Count(row, "Item"), "threshold list should stay single column")
	}
	assert.Equal(t, " 20. Item20", rows[19])
}

func TestRowsTwoColumnPairing(t *testing.T) {
	// 25 items split at mid=13: row r shows item r and item r+13.
	rows := Rows(numberedItems(25))
	require.Len(t, rows, 13)

	assert.Contains(t, rows[0], "1. Item01")
	assert.Contains(t, rows[0], "14. Item14")

	assert.Contains(t, rows[11], "12. Item12")
	assert.Contains(t, rows[11], "25. Item25")

	// The odd item out sits alone on the last row.
	assert.Equal(t, " 13. Item13", rows[12])
}

func TestRowsTwoColumnJustAboveThreshold(t *testing.T) {
	rows := Rows(numberedItems(21))

	require.Len(t, rows, 11)
	assert.Contains(t, rows[0], "1. Item01")
	assert.Contains(t, rows[0], "12. Item12")
	assert.Equal(t, " 11. Item11", rows[10])
}

func TestRowsTwoColumnAlignsUnevenNames(t *testing.T) {
	items := numberedItems(22)
	items[0] = "Bosnia_And_Herzegovina"
	items[1] = "Peru"

	rows := Rows(items)
	require.Len(t, rows, 11)

	// Right column starts at the same offset on every paired row.
	offset := strings.Index(rows[0], "12. Item12")
	require.Positive(t, offset)
	assert.Equal(t, offset, strings.Index(rows[1], "13. Item13"))
}

func TestRowsEmpty(t *testing.T) {
	assert.Empty(t, Rows(nil))
}

func TestFilter(t *testing.T) {
	source := []string{"Germany", "Greece", "Spain"}

	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "substring match", term: "gr", want: []string{"Germany", "Greece"}},
		{name: "case insensitive", term: "SPAIN", want: []string{"Spain"}},
		{name: "no match", term: "xyz", want: []string{}},
		{name: "empty term matches all", term: "", want: []string{"Germany", "Greece", "Spain"}},
		{name: "whitespace trimmed", term: "  gr  ", want: []string{"Germany", "Greece"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filter(source, tt.term))
		})
	}
}

func TestFilterNeverMutatesSource(t *testing.T) {
	source := []string{"Germany", "Greece", "Spain"}

	matched := Filter(source, "gr")
	require.Equal(t, []string{"Germany", "Greece"}, matched)
	matched[0] = "mutated"

	assert.Equal(t, []string{"Germany", "Greece", "Spain"}, source)

	full := Filter(source, "")
	full[0] = "mutated"
	assert.Equal(t, []string{"Germany", "Greece", "Spain"}, source)
}
