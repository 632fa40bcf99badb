package main

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// checkConfig carries everything the check pipeline needs. The command
// boundary fills it from flags; tests fill it directly.
type checkConfig struct {
	ProjectPath     string
	TranslationPath string
	Silent          bool
	IgnorePatterns  []string
}

type outcome int

const (
	outcomePass outcome = iota
	outcomeWarn
	outcomeFail
)

// checkResult is the structured result of one verification run. Report
// holds the rendered human-readable text; the caller decides where it
// goes and how the outcome maps to an exit status.
type checkResult struct {
	Outcome  outcome
	Stats    scanStats
	KeyCount int      // unique keys referenced across the tree
	Missing  []string // sorted; empty when all keys resolve
	Report   string
}

// runCheck verifies every translation key referenced under the project
// path against the translation file: validate paths, scan, resolve,
// render. It has no side effects; fatal errors (missing paths, unreadable
// files, malformed locale documents) abort before any report is produced.
func runCheck(cfg checkConfig) (*checkResult, error) {
	if _, err := os.Stat(cfg.ProjectPath); err != nil {
		return nil, fmt.Errorf("project path %s does not exist", cfg.ProjectPath)
	}
	if _, err := os.Stat(cfg.TranslationPath); err != nil {
		return nil, fmt.Errorf("translation file %s does not exist", cfg.TranslationPath)
	}

	ignores, err := compileIgnorePatterns(cfg.IgnorePatterns)
	if err != nil {
		return nil, err
	}

	refs, stats, err := collectKeyReferences(cfg.ProjectPath, ignores)
	if err != nil {
		return nil, err
	}

	doc, err := loadTranslationDoc(cfg.TranslationPath)
	if err != nil {
		return nil, err
	}

	var missing []string
	for key := range refs {
		if !keyExists(doc, key) {
			missing = append(missing, key)
		}
	}
	slices.Sort(missing)

	res := &checkResult{
		Stats:    stats,
		KeyCount: len(refs),
		Missing:  missing,
	}
	switch {
	case len(missing) == 0:
		res.Outcome = outcomePass
	case cfg.Silent:
		res.Outcome = outcomeWarn
	default:
		res.Outcome = outcomeFail
	}
	res.Report = renderCheckReport(res, cfg.TranslationPath)
	return res, nil
}

// renderCheckReport renders the scan summary followed by either the
// all-present line or the full missing-key list. Nothing is truncated or
// grouped: CI logs are the audience.
func renderCheckReport(res *checkResult, translationPath string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Scanned %d source files (%d with translation keys).\n",
		res.Stats.FilesScanned, res.Stats.FilesWithKeys)
	fmt.Fprintf(&b, "Found %d unique translation keys.\n", res.KeyCount)

	if len(res.Missing) == 0 {
		b.WriteString("All translations present.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Missing %d keys in %s:\n", len(res.Missing), translationPath)
	for _, key := range res.Missing {
		fmt.Fprintf(&b, "  %s\n", key)
	}
	return b.String()
}

type checkCmd struct{}

func (checkCmd) Run(c *cli) error {
	res, err := runCheck(checkConfig{
		ProjectPath:     c.Path,
		TranslationPath: c.TranslationPath,
		Silent:          c.Silent,
		IgnorePatterns:  c.Ignore,
	})
	if err != nil {
		return err
	}

	fmt.Print(res.Report)

	switch res.Outcome {
	case outcomeFail:
		return fmt.Errorf("%d missing translation keys", len(res.Missing))
	case outcomeWarn:
		fmt.Fprintf(os.Stderr, "warning: %d missing translation keys\n", len(res.Missing))
	}
	return nil
}
