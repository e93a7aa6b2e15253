// Package input locates and reads puzzle inputs.
package input

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when a day's input file does not exist.
var ErrNotFound = errors.New("input not found")

// Path returns the conventional location of a day's input inside dir,
// e.g. inputs/05.txt.
func Path(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("%02d.txt", day))
}

// Read loads the whole input at path. Line endings are normalized to \n
// and trailing newlines are dropped; leading whitespace is kept since
// some inputs are column-aligned.
func Read(path string) (string, error) {
	rc, err := open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", err
	}
	defer func() { _ = rc.Close() }()

	b, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return Normalize(string(b)), nil
}

// Normalize converts CRLF line endings and trims trailing newlines.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimRight(s, "\n")
}
