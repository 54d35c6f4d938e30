// Package loader applies batches of key/value pairs read from text files to
// a map. Each non-blank line that doesn't start with '#' holds a key, then
// whitespace, then the value, which runs to the end of the line.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
)

// Inserter is satisfied by *btree.BTree[string, string].
type Inserter interface {
	Insert(key, value string)
}

// LoadFile opens `path` on `fs` and inserts every pair it holds into `dst`.
func LoadFile(fs afero.Fs, path string, dst Inserter) (int, error) {
	f, err := fs.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count, err := Load(f, dst)
	if err != nil {
		return count, fmt.Errorf("%s: %w", path, err)
	}

	return count, nil
}

// Load inserts the pairs read from `r` into `dst` and returns how many were
// applied. It stops at the first malformed line; pairs before it stay applied.
func Load(r io.Reader, dst Inserter) (int, error) {
	scanner := bufio.NewScanner(r)
	count, lineNum := 0, 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, err := parseLine(line)
		if err != nil {
			return count, fmt.Errorf("line %d: %w", lineNum, err)
		}

		dst.Insert(key, value)
		count++
	}

	if err := scanner.Err(); err != nil {
		return count, err
	}

	return count, nil
}

func parseLine(line string) (string, string, error) {
	idx := strings.IndexAny(line, " \t")
	if idx < 0 {
		return "", "", INVALID_LINE_ERROR
	}

	// `line` is trimmed, so a separator always has a non-empty value after it.
	return line[:idx], strings.TrimSpace(line[idx:]), nil
}
