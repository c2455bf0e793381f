// Package menu implements the numbered text menus the program is built
// around.
//
// A Menu renders its items with 1-based numbers, re-prompts until it
// reads a valid selection, and returns 0 for back/exit. Long lists are
// laid out in two columns, and menus can expose substring filtering
// over their items. All input flows through a shared Reader so lines
// buffered during one prompt are not lost before the next.
package menu
