// Command ngfx converts fonts and icons into ngfx resource blobs and
// previews them on a simulated panel.
//
// Usage:
//
//	ngfx font [flags] <font.ttf|builtin|goregular>
//	ngfx icon [flags] <icon.yaml>
//	ngfx render [flags] [text...]
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/gogpu/ngfx"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// command is one ngfx subcommand.
type command struct {
	name  string
	usage string
	run   func(args []string, stdout, stderr io.Writer) error
}

var commands = []command{
	{"font", "convert a TrueType font into a bitmap font blob", runFont},
	{"icon", "compile a YAML icon into a draw-command image or sequence", runIcon},
	{"render", "render an icon, sequence frame or text to PNG", runRender},
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printHelp(stderr)
		return 1
	}
	switch args[0] {
	case "-h", "--help", "help":
		printHelp(stdout)
		return 0
	case "-v", "--version", "version":
		fmt.Fprintf(stdout, "ngfx version %s\n", version)
		return 0
	}
	for _, c := range commands {
		if c.name != args[0] {
			continue
		}
		if err := c.run(args[1:], stdout, stderr); err != nil {
			if errors.Is(err, pflag.ErrHelp) {
				return 0
			}
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}
	fmt.Fprintf(stderr, "Error: unknown command %q\n", args[0])
	printHelp(stderr)
	return 1
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Usage: ngfx <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.usage)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'ngfx <command> --help' for command flags.")
}

// newFlagSet returns a flag set with the flags every command shares.
func newFlagSet(name string, stderr io.Writer, debug *bool) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(debug, "debug", false, "Log diagnostics to stderr")
	return fs
}

// setupLogging routes ngfx logs to stderr when debug is set.
func setupLogging(debug bool, stderr io.Writer) {
	if !debug {
		ngfx.SetLogger(nil)
		return
	}
	ngfx.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}
