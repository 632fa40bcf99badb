// intl-verify checks that every translation key referenced in an Ember
// application's templates and scripts exists in its locale file.
//
// Usage:
//
//	intl-verify [flags] [command]
//
// With no command it runs "check", which scans the source tree for
// translation-lookup call sites and fails when a referenced key is
// missing from the locale file. Run "intl-verify --help" for the full
// flag and command list.
package main

import (
	"github.com/alecthomas/kong"
)

type cli struct {
	Path            string   `short:"p" default:"./app" help:"Root of the source tree to scan."`
	TranslationPath string   `name:"translation-path" default:"./translations/en-us.yaml" help:"Locale file holding the translations."`
	Silent          bool     `short:"s" help:"Report missing keys as warnings instead of failing."`
	Ignore          []string `placeholder:"GLOB" help:"Glob patterns of paths to skip while scanning. May be given multiple times."`

	Check      checkCmd      `cmd:"" default:"1" help:"Verify that every referenced key exists in the locale file (default)."`
	Unused     unusedCmd     `cmd:"" help:"List locale keys never referenced in the source tree."`
	References referencesCmd `cmd:"" help:"Show where each referenced key is used."`
	Locales    localesCmd    `cmd:"" help:"List the locale files that sit next to the translation file."`
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("intl-verify"),
		kong.Description("Static checker for translation keys referenced in templates and scripts."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run(&c))
}
