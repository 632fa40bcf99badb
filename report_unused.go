package main

import (
	"slices"
)

type unusedCmd struct {
	Format string `default:"text" enum:"text,json" help:"Output format: text, json."`
}

// Run lists leaf keys of the translation file that no scanned source file
// references. Informational only: unused keys never affect exit status.
func (u unusedCmd) Run(c *cli) error {
	doc, err := loadTranslationDoc(c.TranslationPath)
	if err != nil {
		return err
	}

	ignores, err := compileIgnorePatterns(c.Ignore)
	if err != nil {
		return err
	}
	refs, _, err := collectKeyReferences(c.Path, ignores)
	if err != nil {
		return err
	}

	unused := unusedKeys(flattenDoc("", doc), refs)
	return outputStrings(unused, u.Format, "unused keys")
}

// unusedKeys returns the sorted locale leaf keys absent from the
// reference map.
func unusedKeys(flat map[string]string, refs map[string][]keyReference) []string {
	var unused []string
	for key := range flat {
		if _, found := refs[key]; !found {
			unused = append(unused, key)
		}
	}
	slices.Sort(unused)
	return unused
}
