// Export script for the built-in rule sets. Writes each one as a TOML rule
// file that can be edited and passed back with --rules-file.
//
// Usage:
//
//	go run scripts/export_rules.go
//	go run scripts/export_rules.go --dir rules --ruleset extended-german
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jusunglee/nameencoder/internal/logger"
	"github.com/jusunglee/nameencoder/internal/rulesets"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	fs := ff.NewFlagSet("export-rules")
	var (
		dir  = fs.StringLong("dir", "rules", "output directory")
		name = fs.StringLong("ruleset", "", "export only this rule set")
	)
	if err := ff.Parse(fs, os.Args[1:]); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.Init()

	tables := rulesets.All()
	if *name != "" {
		t, err := rulesets.Lookup(*name)
		if err != nil {
			return err
		}
		tables = []rulesets.Table{t}
	}

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", *dir, err)
	}
	for _, t := range tables {
		path := filepath.Join(*dir, t.Name+".toml")
		if err := rulesets.WriteFile(path, t); err != nil {
			return err
		}
		log.Info("exported rule set", "ruleset", t.Name, "layers", len(t.Layers), "path", path)
	}
	return nil
}
