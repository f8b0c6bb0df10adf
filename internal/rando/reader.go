package rando

import (
	"bufio"
	"errors"
	"io/fs"
	"math"
	"os"
	"strings"
)

// ReadEntries reads a newline-delimited database file and returns its entries.
// Each line is trimmed and lower-cased; blank lines are dropped. Interior
// spaces are kept, so "Rusty Sword" is a single entry "rusty sword".
// Duplicates are kept in file order.
//
// Checks run in order and the first failure wins: the path must exist
// (ErrNotFound), must be a regular file (ErrInvalidResource) and must yield
// at least one entry (ErrEmptyData).
func ReadEntries(path string) ([]string, error) {
	meta := map[string]string{"path": path}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newError(KindNotFound, "unable to locate "+path, meta, err)
		}
		return nil, newError(KindInvalidResource, "unable to stat "+path, meta, err)
	}
	if !info.Mode().IsRegular() {
		return nil, newError(KindInvalidResource, path+" is not a file", meta, nil)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, newError(KindInvalidResource, "unable to open "+path, meta, err)
	}
	defer file.Close()

	var entries []string
	scanner := bufio.NewScanner(file)
	// Lines have no length limit.
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entries = append(entries, strings.ToLower(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, newError(KindInvalidResource, "failed to read "+path, meta, err)
	}

	if len(entries) == 0 {
		return nil, newError(KindEmptyData, path+" did not contain any valid database entries", meta, nil)
	}
	return entries, nil
}

// Dedupe returns entries with repeats removed, keeping first-occurrence order.
func Dedupe(entries []string) []string {
	seen := make(map[string]struct{}, len(entries))
	result := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		result = append(result, e)
	}
	return result
}
