package menu

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/nordmenu/internal/tui"
)

// menuWidth is the width of the header and footer rules. Two-column
// rows may extend past it for wide lists.
const menuWidth = 50

// Keys recognized by menus with filtering enabled.
const (
	filterKey = "f"
	resetKey  = "r"
)

// DefaultBackLabel names choice 0 when a menu does not set its own.
const DefaultBackLabel = "Back to main menu"

// Menu is one interactive numbered menu.
type Menu struct {
	// Title is rendered centered above the items.
	Title string

	// Items are the selectable entries, displayed as 1..N.
	Items []string

	// BackLabel names choice 0. Defaults to DefaultBackLabel.
	BackLabel string

	// AllowFilter enables the f (filter) and r (reset) keys.
	AllowFilter bool
}

// Run renders the menu and collects a validated selection, re-prompting
// on anything out of range. It returns the chosen number and, for
// choices >= 1, the selected item. Choice 0 and end of input both mean
// back/exit. Filtering narrows only the displayed view; selections are
// resolved against whatever view is on screen.
func (m Menu) Run(in *Reader, out io.Writer) (int, string, error) {
	back := m.BackLabel
	if back == "" {
		back = DefaultBackLabel
	}

	visible := m.Items
	for {
		m.render(out, visible, back)
		fmt.Fprint(out, "\nEnter your choice: ")

		input, ok := in.Line()
		if !ok {
			if err := in.Err(); err != nil {
				return 0, "", fmt.Errorf("reading selection: %w", err)
			}
			// End of input behaves like choosing back/exit.
			fmt.Fprintln(out)
			return 0, "", nil
		}

		if m.AllowFilter {
			switch strings.ToLower(input) {
			case filterKey:
				visible = m.promptFilter(in, out)
				continue
			case resetKey:
				visible = m.Items
				continue
			}
		}

		choice, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(out, "Please enter a valid number")
			continue
		}
		if choice < 0 || choice > len(visible) {
			fmt.Fprintf(out, "Please enter a number between 0 and %d\n", len(visible))
			continue
		}
		if choice == 0 {
			return 0, "", nil
		}
		return choice, visible[choice-1], nil
	}
}

func (m Menu) render(out io.Writer, visible []string, back string) {
	rule := strings.Repeat("=", menuWidth)

	fmt.Fprintf(out, "\n%s\n", rule)
	fmt.Fprintln(out, lipgloss.PlaceHorizontal(menuWidth, lipgloss.Center, tui.HeaderStyle.Render(m.Title)))
	fmt.Fprintln(out, rule)

	for _, row := range Rows(visible) {
		fmt.Fprintln(out, row)
	}
	fmt.Fprintf(out, "%3d. %s\n", 0, back)
	fmt.Fprintln(out, rule)

	if m.AllowFilter {
		fmt.Fprintln(out, tui.SubtleStyle.Render("Type f to filter the list, r to reset it."))
	}
}

// promptFilter reads a filter term and returns the narrowed view. A
// term matching nothing reverts to the full list with a notice, so the
// user is never stranded on an empty menu.
func (m Menu) promptFilter(in *Reader, out io.Writer) []string {
	fmt.Fprint(out, "Filter: ")

	term, ok := in.Line()
	if !ok || term == "" {
		return m.Items
	}

	matched := Filter(m.Items, term)
	if len(matched) == 0 {
		fmt.Fprintf(out, "No entries match %q. Showing all items.\n", term)
		return m.Items
	}
	return matched
}
