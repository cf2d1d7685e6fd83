// repolens feeds a bounded snapshot of a repository to Gemini and prints
// the resulting analysis report.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/phobologic/repolens/internal/gemini"
	"github.com/phobologic/repolens/internal/prompt"
	"github.com/phobologic/repolens/internal/scan"
)

var version = "dev"

const (
	defaultMaxFiles = 60
	defaultMaxChars = 4000
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("repolens", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		maxFiles     int
		maxChars     int
		focus        string
		model        string
		outPath      string
		useGitignore bool
		sniff        bool
		dryRun       bool
		showVersion  bool
	)

	fs.IntVar(&maxFiles, "n", defaultMaxFiles, "maximum number of files to include")
	fs.IntVar(&maxFiles, "max-files", defaultMaxFiles, "maximum number of files to include")
	fs.IntVar(&maxChars, "max-chars", defaultMaxChars, "maximum characters kept per file")
	fs.StringVar(&focus, "f", "", "focus the analysis on a specific topic")
	fs.StringVar(&focus, "focus", "", "focus the analysis on a specific topic")
	fs.StringVar(&model, "m", gemini.DefaultModel, "model name")
	fs.StringVar(&model, "model", gemini.DefaultModel, "model name")
	fs.StringVar(&outPath, "o", "", "write the report to a file instead of stdout")
	fs.StringVar(&outPath, "out", "", "write the report to a file instead of stdout")
	fs.BoolVar(&useGitignore, "use-gitignore", false, "also honor the root .gitignore")
	fs.BoolVar(&sniff, "sniff", false, "also skip files containing NUL bytes")
	fs.BoolVar(&dryRun, "dry-run", false, "print the snapshot and exit without calling the model")
	fs.BoolVar(&showVersion, "V", false, "show version and exit")
	fs.BoolVar(&showVersion, "version", false, "show version and exit")

	if err := fs.Parse(reorderArgs(args)); err != nil {
		return err
	}

	if showVersion {
		_, _ = fmt.Fprintf(stdout, "repolens %s\n", version)
		return nil
	}

	if maxFiles < 0 {
		return fmt.Errorf("max-files must be >= 0")
	}
	if maxChars < 0 {
		return fmt.Errorf("max-chars must be >= 0")
	}

	root := "."
	if fs.NArg() > 0 {
		root = fs.Arg(0)
	}

	root, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving root: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("root path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", root)
	}

	summary := scan.Summarize(scan.Config{
		Root:            root,
		MaxFiles:        maxFiles,
		MaxCharsPerFile: maxChars,
		UseGitignore:    useGitignore,
		SniffBinary:     sniff,
	})

	if dryRun {
		_, _ = fmt.Fprint(stdout, summary)
		return nil
	}

	key := apiKeyFromEnv()
	if key == "" {
		return fmt.Errorf("no API key: set GEMINI_API_KEY or GOOGLE_API_KEY")
	}

	ctx := context.Background()
	client, err := gemini.New(ctx, gemini.Config{APIKey: key, Model: model})
	if err != nil {
		return err
	}

	report, err := client.Analyze(ctx, prompt.Build(summary, focus))
	if err != nil {
		return err
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(report+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		_, _ = fmt.Fprintf(stderr, "wrote report to %s\n", outPath)
		return nil
	}

	_, _ = fmt.Fprintln(stdout, report)
	return nil
}

// apiKeyFromEnv resolves the API key once at startup; the scan core never
// touches the environment.
func apiKeyFromEnv() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("GOOGLE_API_KEY")
}

// flagsWithValue lists flags that take a value argument.
var flagsWithValue = map[string]bool{
	"-n": true, "--n": true,
	"-max-files": true, "--max-files": true,
	"-max-chars": true, "--max-chars": true,
	"-f": true, "--f": true,
	"-focus": true, "--focus": true,
	"-m": true, "--m": true,
	"-model": true, "--model": true,
	"-o": true, "--o": true,
	"-out": true, "--out": true,
}

// reorderArgs moves positional arguments after all flags so Go's flag package
// can parse them correctly (it stops at the first non-flag arg).
func reorderArgs(args []string) []string {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if len(args[i]) > 0 && args[i][0] == '-' {
			flags = append(flags, args[i])
			if flagsWithValue[args[i]] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, args[i])
		}
	}
	return append(flags, positional...)
}
