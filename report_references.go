package main

import (
	"fmt"
	"io"
	"os"
)

type referencesCmd struct {
	MissingOnly bool   `name:"missing-only" help:"Only show keys absent from the translation file."`
	Format      string `default:"text" enum:"text,json" help:"Output format: text, json."`
}

// Run prints every referenced key together with the file:line locations
// that use it.
func (r referencesCmd) Run(c *cli) error {
	ignores, err := compileIgnorePatterns(c.Ignore)
	if err != nil {
		return err
	}
	refs, _, err := collectKeyReferences(c.Path, ignores)
	if err != nil {
		return err
	}

	if r.MissingOnly {
		doc, err := loadTranslationDoc(c.TranslationPath)
		if err != nil {
			return err
		}
		refs = missingRefs(refs, doc)
	}

	if r.Format == "json" {
		return printJSON(refs)
	}
	writeReferences(os.Stdout, refs)
	return nil
}

// missingRefs returns the references whose keys do not resolve in the
// translation document.
func missingRefs(refs map[string][]keyReference, doc map[string]interface{}) map[string][]keyReference {
	missing := make(map[string][]keyReference)
	for key, locs := range refs {
		if !keyExists(doc, key) {
			missing[key] = locs
		}
	}
	return missing
}

// writeReferences renders each key followed by its use sites, keys in
// sorted order.
func writeReferences(w io.Writer, refs map[string][]keyReference) {
	for _, key := range referencedKeys(refs) {
		fmt.Fprintf(w, "%s:\n", key)
		for _, loc := range refs[key] {
			fmt.Fprintf(w, "  %s:%d\n", loc.File, loc.Line)
		}
	}
}
