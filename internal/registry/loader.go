package registry

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadFile decodes an embedded catalog file into T. Keys that T does not
// declare are an error.
func LoadFile[T any](filename string) (T, error) {
	var result T

	content, err := catalogFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("read catalog %s: %w", filename, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("decode catalog %s: %w", filename, err)
	}

	return result, nil
}
