package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/d4l3k/messagediff"
)

func TestListLocales(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"en-us.yaml":        "app:\n  title: My App\n",
		"fr.yaml":           "app:\n  title: Mon App\n",
		"de.toml":           "[app]\ntitle = \"Meine App\"\ngreeting = \"Hallo\"\n",
		"translations.yaml": "a: b\n",
		"notes.txt":         "not a locale file\n",
		"archive/old.yaml":  "a: b\n",
	})

	got, err := listLocales(dir)
	if err != nil {
		t.Fatal(err)
	}

	want := []localeEntry{
		{File: "de.toml", Tag: "de", Name: "German", KeyCount: 2},
		{File: "en-us.yaml", Tag: "en-US", Name: "American English", KeyCount: 1},
		{File: "fr.yaml", Tag: "fr", Name: "French", KeyCount: 1},
		{File: "translations.yaml", Tag: "unknown", Name: "translations", KeyCount: 1},
	}
	if diff, equal := messagediff.PrettyDiff(want, got); !equal {
		t.Errorf("locales diff:\n%s", diff)
	}
}

func TestListLocalesMalformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("key: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := listLocales(dir); err == nil {
		t.Error("expected parse error")
	}
}

func TestListLocalesMissingDir(t *testing.T) {
	if _, err := listLocales(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}
