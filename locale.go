package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// loadTranslationDoc reads a locale file into its nested key-value tree.
// YAML is the default; a .toml extension selects TOML. An empty or
// whitespace-only file yields an empty document. Parse errors are fatal
// to the run.
func loadTranslationDoc(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc := make(map[string]interface{})
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	return doc, nil
}

// keyExists reports whether a dotted key path resolves to a node of the
// document. Presence is what counts, not truthiness: a key holding null,
// an empty string, or a nested mapping still exists. A dot always denotes
// nesting; there is no escaping.
func keyExists(doc map[string]interface{}, key string) bool {
	var node interface{} = doc
	for _, part := range strings.Split(key, ".") {
		m, ok := node.(map[string]interface{})
		if !ok {
			return false
		}
		node, ok = m[part]
		if !ok {
			return false
		}
	}
	return true
}

// flattenDoc flattens a nested document into dotted leaf keys mapped to
// their stringified values.
func flattenDoc(prefix string, node map[string]interface{}) map[string]string {
	flat := make(map[string]string)
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]interface{}:
			for fk, fv := range flattenDoc(key, val) {
				flat[fk] = fv
			}
		default:
			flat[key] = fmt.Sprintf("%v", val)
		}
	}
	return flat
}
