package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

type localesCmd struct {
	Format string `default:"text" enum:"text,json" help:"Output format: text, json."`
}

type localeEntry struct {
	File     string `json:"file"`
	Tag      string `json:"tag"`
	Name     string `json:"name"`
	KeyCount int    `json:"keyCount"`
}

// Run lists the locale documents that live alongside the translation
// file, with their parsed language tags and leaf key counts.
func (l localesCmd) Run(c *cli) error {
	dir := filepath.Dir(c.TranslationPath)
	entries, err := listLocales(dir)
	if err != nil {
		return err
	}

	if l.Format == "json" {
		return printJSON(entries)
	}

	if len(entries) == 0 {
		fmt.Printf("No locale files found in %s.\n", dir)
		return nil
	}

	fmt.Printf("Found %d locale files in %s:\n", len(entries), dir)
	for _, e := range entries {
		fmt.Printf("  %-16s %-10s %-24s %d keys\n", e.File, e.Tag, e.Name, e.KeyCount)
	}
	return nil
}

func listLocales(dir string) ([]localeEntry, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var entries []localeEntry
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(f.Name())) {
		case ".yaml", ".yml", ".toml":
		default:
			continue
		}

		path := filepath.Join(dir, f.Name())
		doc, err := loadTranslationDoc(path)
		if err != nil {
			return nil, err
		}

		entry := localeEntry{
			File:     f.Name(),
			KeyCount: len(flattenDoc("", doc)),
		}
		stem := strings.TrimSuffix(f.Name(), filepath.Ext(f.Name()))
		if tag, err := language.Parse(stem); err == nil {
			entry.Tag = tag.String()
			entry.Name = display.English.Tags().Name(tag)
		} else {
			entry.Tag = "unknown"
			entry.Name = stem
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].File < entries[j].File
	})
	return entries, nil
}
