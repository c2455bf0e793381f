package menu

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Reader is a shared line source for prompts. Create one per input
// stream and reuse it across menus and pauses; separate bufio readers
// on the same stream would drop lines buffered by each other.
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader wraps r in a line reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Line returns the next input line with surrounding whitespace trimmed.
// ok is false once the input is exhausted.
func (r *Reader) Line() (line string, ok bool) {
	if !r.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.scanner.Text()), true
}

// Err reports a read error, if any. End of input is not an error.
func (r *Reader) Err() error {
	return r.scanner.Err()
}

// Pause blocks until the user presses Enter.
func Pause(in *Reader, out io.Writer) {
	fmt.Fprint(out, "\nPress Enter to continue...")
	_, _ = in.Line()
}
