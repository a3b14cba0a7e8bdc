package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const maxLineBytes = 1024 * 1024

// Lines reads r fully and returns its lines without trailing CR/LF.
func Lines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	out := make([]string, 0, 128)
	for sc.Scan() {
		out = append(out, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return out, nil
}

// LineError annotates err with a 1-based line number.
func LineError(line int, err error) error {
	return fmt.Errorf("line %d: %w", line, err)
}
