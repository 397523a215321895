// Package history reads zsh extended-history files and extracts command
// timestamps from them.
package history

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var ErrEmptyPath = errors.New("history file path is empty")

// ReadLines loads the whole history file. Invalid UTF-8 is replaced instead of
// rejected because history files are appended to by several shells at once.
func ReadLines(path string) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}

	content, err := os.ReadFile(path) // #nosec G304 -- user-provided history path is expected
	if err != nil {
		return nil, fmt.Errorf("read history file %s: %w", path, err)
	}

	return SplitLines(string(content)), nil
}

// SplitLines splits text on newlines, dropping CR line endings and the empty
// element after a trailing newline.
func SplitLines(text string) []string {
	text = strings.ToValidUTF8(text, "�")
	if text == "" {
		return []string{}
	}

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
