package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TwoColumnThreshold is the largest list rendered as a single column.
// Longer lists split into two columns to stay on one screen.
const TwoColumnThreshold = 20

// columnGap separates the two columns.
const columnGap = "   "

// Rows lays the items out as display rows, numbered from 1. Lists up
// to TwoColumnThreshold items render one per row. Longer lists split
// at mid = ceil(n/2): row r pairs item r with item r+mid, so the left
// column holds the first half in reading order and the right column
// the rest.
func Rows(items []string) []string {
	n := len(items)
	if n <= TwoColumnThreshold {
		rows := make([]string, 0, n)
		for i, item := range items {
			rows = append(rows, fmt.Sprintf("%3d. %s", i+1, item))
		}
		return rows
	}

	mid := (n + 1) / 2
	left := make([]string, mid)
	leftWidth := 0
	for i := 0; i < mid; i++ {
		left[i] = fmt.Sprintf("%3d. %s", i+1, items[i])
		if w := lipgloss.Width(left[i]); w > leftWidth {
			leftWidth = w
		}
	}

	rows := make([]string, 0, mid)
	for i := 0; i < mid; i++ {
		if i+mid < n {
			padded := left[i] + strings.Repeat(" ", leftWidth-lipgloss.Width(left[i]))
			rows = append(rows, fmt.Sprintf("%s%s%3d. %s", padded, columnGap, i+mid+1, items[i+mid]))
		} else {
			rows = append(rows, left[i])
		}
	}
	return rows
}

// Filter returns the items containing term, compared case-insensitively.
// An empty term matches everything. The input slice is never modified;
// the result is always a fresh slice.
func Filter(items []string, term string) []string {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		matched := make([]string, len(items))
		copy(matched, items)
		return matched
	}

	matched := make([]string, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item), needle) {
			matched = append(matched, item)
		}
	}
	return matched
}
