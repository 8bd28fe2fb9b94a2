// Package input reads grid text into rows.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadRows splits r into lines, strips trailing carriage returns and
// surrounding whitespace-only lines. Interior blank lines are kept so the
// grid builder can reject them as non-rectangular.
func ReadRows(r io.Reader) ([]string, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r \t"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}

	for len(rows) > 0 && rows[0] == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return rows, nil
}

// ReadFile reads rows from path. A path of "-" reads standard input.
func ReadFile(path string) ([]string, error) {
	if path == "-" {
		return ReadRows(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()
	return ReadRows(f)
}
