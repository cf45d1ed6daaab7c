package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aglyzov/go-pathtrie/pathtrie"

	"gopkg.in/yaml.v3"
)

// Manifest describes the content of a trie.
//
//	delimiter: "/"
//	entries:
//	  - path: /usr/bin/vim
//	    values: ["9.0", "9.1"]
//	  - path: /usr/bin/vim
//	    values: ["9.2"]
//	    replace: true
//	remove:
//	  - /tmp
type Manifest struct {
	Delimiter string   `yaml:"delimiter"`
	Entries   []Entry  `yaml:"entries"`
	Remove    []string `yaml:"remove"`
}

// Entry stores values at a single path.
type Entry struct {
	Path    string `yaml:"path"`
	Values  []any  `yaml:"values"`
	Replace bool   `yaml:"replace"`
}

func parseManifest(r io.Reader) (*Manifest, error) {
	var m Manifest

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&m); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	if m.Delimiter == "" {
		m.Delimiter = pathtrie.DefaultDelim
	}
	return &m, nil
}

// Build applies the entries in order and then the removals. Entries that
// cannot be stored, entries without values that do not replace, and removals
// of missing paths are logged and skipped.
func (m *Manifest) Build(logger *slog.Logger) *pathtrie.Trie[any] {
	tr := pathtrie.New[any](m.Delimiter)

	for _, ent := range m.Entries {
		if !ent.Replace && len(ent.Values) == 0 {
			logger.Warn("skipping entry without values", "path", ent.Path)
			continue
		}

		ok := true
		if ent.Replace {
			ok = tr.Replace(ent.Path, ent.Values)
		} else {
			for _, val := range ent.Values {
				ok = tr.Insert(ent.Path, val) && ok
			}
		}
		if !ok {
			logger.Warn("skipping entry with an empty segment", "path", ent.Path)
			continue
		}
		logger.Debug("stored entry", "path", ent.Path, "values", len(ent.Values), "replace", ent.Replace)
	}

	for _, path := range m.Remove {
		if !tr.Remove(path) {
			logger.Warn("nothing to remove", "path", path)
			continue
		}
		logger.Debug("removed subtree", "path", path)
	}

	return tr
}
