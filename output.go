package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputStrings prints a list of strings in text or JSON format. The text
// form is a count header followed by one indented item per line.
func outputStrings(items []string, format, label string) error {
	if format == "json" {
		if items == nil {
			items = []string{}
		}
		return printJSON(items)
	}

	if len(items) == 0 {
		fmt.Printf("No %s found.\n", label)
		return nil
	}

	fmt.Printf("Found %d %s:\n", len(items), label)
	for _, item := range items {
		fmt.Printf("  %s\n", item)
	}
	return nil
}
