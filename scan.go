package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// fileKind selects the pattern set used to extract keys from a file.
type fileKind int

const (
	kindOther fileKind = iota
	kindMarkup
	kindScript
)

// kindForPath maps the two eligible extensions to their file kinds.
// Extensions are matched case-insensitively, like locale-file extensions.
// Everything else is kindOther and yields no keys.
func kindForPath(path string) fileKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hbs":
		return kindMarkup
	case ".js":
		return kindScript
	default:
		return kindOther
	}
}

// quotedKey matches a key literal in single, double, or back-tick quotes.
// RE2 has no backreferences, so symmetric quoting is an alternation of the
// three pairs; exactly one of the capture groups participates per match.
const quotedKey = `(?:'([^']*)'|"([^"]*)"|` + "\x60([^\x60]*)\x60" + `)`

// Patterns for finding translation key references. Matching is done line
// by line, so call sites split across lines are never recognized.
var (
	// Mustache helper form: {{t "some.key" ...}}. Arguments after the
	// key literal are not part of the match.
	mustacheKeyPattern = regexp.MustCompile(`\{\{\s*t\s+` + quotedKey)
	// Sub-expression form, nested inside another helper invocation:
	// (t "some.key" ...).
	subExprKeyPattern = regexp.MustCompile(`\(\s*t\s+` + quotedKey)
	// Service call form: this.intl.t('some.key'), intl.t("some.key",
	// { count: 2 }). An optional trailing object literal is matched and
	// discarded; any other second argument defeats the match.
	scriptKeyPattern = regexp.MustCompile(`\b(?:[\w$]+\.)?intl\.t\(\s*` + quotedKey + `(?:\s*,\s*\{.*?\})?\s*\)`)
)

// kindPatterns returns the pattern set for a file kind, nil for kindOther.
func kindPatterns(kind fileKind) []*regexp.Regexp {
	switch kind {
	case kindMarkup:
		return []*regexp.Regexp{mustacheKeyPattern, subExprKeyPattern}
	case kindScript:
		return []*regexp.Regexp{scriptKeyPattern}
	default:
		return nil
	}
}

// keyMatch is one extracted key literal and the line it appeared on.
type keyMatch struct {
	Key  string
	Line int
}

// keyReference records where a translation key is used, relative to the
// scanned root.
type keyReference struct {
	File string `json:"file"`
	Line int    `json:"line"`
}

// extractKeys returns every translation key referenced in one file's
// content, duplicates included. Literals are trimmed of surrounding
// whitespace; literals that are empty after trimming are dropped.
func extractKeys(content string, kind fileKind) []keyMatch {
	patterns := kindPatterns(kind)
	if patterns == nil {
		return nil
	}

	var matches []keyMatch
	for i, line := range strings.Split(content, "\n") {
		for _, pat := range patterns {
			for _, m := range pat.FindAllStringSubmatch(line, -1) {
				key := strings.TrimSpace(quotedGroup(m))
				if key == "" {
					continue
				}
				matches = append(matches, keyMatch{Key: key, Line: i + 1})
			}
		}
	}
	return matches
}

// quotedGroup picks the capture group that participated in a quotedKey
// match. An empty literal looks the same as a non-participating group,
// which is fine: empty literals are discarded either way.
func quotedGroup(m []string) string {
	for _, g := range m[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}

// scanStats counts the files considered during a walk.
type scanStats struct {
	FilesScanned  int // eligible files visited
	FilesWithKeys int // eligible files that yielded at least one key
}

// Directory names never descended into, regardless of --ignore.
var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"tmp":          true,
	"vendor":       true,
}

// collectKeyReferences walks the tree under root and extracts translation
// keys from every eligible file. It returns each distinct key with its
// use sites. Unreadable files or directories abort the walk.
func collectKeyReferences(root string, ignores *ignoreMatcher) (map[string][]keyReference, scanStats, error) {
	refs := make(map[string][]keyReference)
	var stats scanStats

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		rel, rerr := filepath.Rel(root, path)
		if rerr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if skipDirs[d.Name()] || ignores.match(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		kind := kindForPath(path)
		if kind == kindOther || ignores.match(rel) {
			return nil
		}

		stats.FilesScanned++
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		matches := extractKeys(string(data), kind)
		if len(matches) > 0 {
			stats.FilesWithKeys++
		}
		for _, m := range matches {
			refs[m.Key] = append(refs[m.Key], keyReference{File: rel, Line: m.Line})
		}
		return nil
	})
	if err != nil {
		return nil, scanStats{}, err
	}
	return refs, stats, nil
}

// referencedKeys returns the sorted unique keys of a reference map.
func referencedKeys(refs map[string][]keyReference) []string {
	return slices.Sorted(maps.Keys(refs))
}

// ignoreMatcher holds compiled --ignore globs. Matching is against the
// slash-separated path relative to the scanned root.
type ignoreMatcher struct {
	globs []glob.Glob
}

// compileIgnorePatterns compiles user-supplied glob patterns. A pattern
// without a leading **/ is also compiled with one, so it matches at any
// depth.
func compileIgnorePatterns(patterns []string) (*ignoreMatcher, error) {
	m := &ignoreMatcher{}
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		m.globs = append(m.globs, g)

		if !strings.HasPrefix(p, "**/") {
			g, err = glob.Compile("**/" + p)
			if err != nil {
				return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
			}
			m.globs = append(m.globs, g)
		}
	}
	return m, nil
}

func (m *ignoreMatcher) match(relPath string) bool {
	if m == nil {
		return false
	}
	for _, g := range m.globs {
		if g.Match(relPath) {
			return true
		}
	}
	return false
}
