// Command gosorted checks declaration ordering in Go sources. It loads
// the requested packages, runs the ordering checker over every file and
// prints one line per finding.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"golang.org/x/tools/go/packages"

	"github.com/gosorted/gosorted"
)

// CLI describes the command line of the standalone checker.
var CLI struct {
	Config   string   `help:"Configuration file path" type:"path"`
	Verbose  bool     `help:"Enable verbose output" short:"v"`
	NoColor  bool     `help:"Disable colored output"`
	Packages []string `arg:"" optional:"" help:"Package patterns to check" default:"./..."`
}

func main() {
	kong.Parse(&CLI)

	if CLI.NoColor {
		color.NoColor = true
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := gosorted.DefaultConfig()
	if CLI.Config != "" {
		loaded, err := gosorted.LoadConfig(CLI.Config)
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		cfg = loaded
	}

	mode := packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles | packages.NeedSyntax
	pkgs, err := packages.Load(&packages.Config{Mode: mode}, CLI.Packages...)
	if err != nil {
		return fmt.Errorf("load packages: %w", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return errors.New("some packages failed to load")
	}

	var total int
	for _, pkg := range pkgs {
		if CLI.Verbose {
			color.Blue("Checking %s", pkg.PkgPath)
		}

		for _, file := range pkg.Syntax {
			for _, p := range gosorted.CheckFile(pkg.Fset, file, cfg) {
				pos := pkg.Fset.Position(p.Pos)
				fmt.Printf("%s: %s\n", color.CyanString("%s", pos), p.Message)
				total++
			}
		}
	}

	if total > 0 {
		color.Red("%d ordering problem(s) found", total)
		os.Exit(1)
	}

	if CLI.Verbose {
		color.Green("No ordering problems found")
	}

	return nil
}
