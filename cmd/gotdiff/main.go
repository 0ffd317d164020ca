// Command gotdiff prints line-anchored diffs between two HTML or Markdown files.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ZaguanLabs/gotdiff"
	"github.com/ZaguanLabs/gotdiff/cache"
	"github.com/ZaguanLabs/gotdiff/processor"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = gotdiff.Version
	commit    = gotdiff.GitCommit
	buildDate = gotdiff.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gotdiff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: gotdiff [flags] OLD NEW\n\n")
		fs.PrintDefaults()
	}

	// Flags
	output := fs.String("output", "", "Output file (default: stdout)")
	outputShort := fs.String("o", "", "Output file (short for --output)")
	jsonOutput := fs.Bool("json", false, "Output hunks as JSON")
	contextBudget := fs.Int("context-budget", gotdiff.DefaultContextBudget, "Maximum characters of context per side")
	maxSize := fs.Int("max-size", gotdiff.DefaultMaxContentSize, "Maximum size of each input in bytes")
	proximity := fs.Int("proximity", gotdiff.DefaultProximityLines, "Line gap within which hunks are merged")
	selector := fs.String("select", "", "CSS selector of the element to compare (default: body)")
	markdown := fs.Bool("markdown", false, "Treat both inputs as Markdown")
	redisURL := fs.String("redis", "", "Redis URL for caching results (e.g., redis://localhost:6379/0)")
	cacheTTL := fs.Int("cache-ttl", 3600, "Cache TTL in seconds (0 for no expiry)")
	showVersion := fs.Bool("version", false, "Show version")
	quiet := fs.Bool("quiet", false, "Suppress summary output")
	verbose := fs.Bool("verbose", false, "Log diff internals to stderr")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", gotdiff.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	// Handle -o alias for --output
	if *outputShort != "" && *output == "" {
		*output = *outputShort
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("expected OLD and NEW files, got %d arguments", fs.NArg())
	}
	oldPath, newPath := fs.Arg(0), fs.Arg(1)

	logger := slog.New(slog.DiscardHandler)
	if *verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	oldHTML, err := prepareFile(oldPath, *markdown, *selector)
	if err != nil {
		return err
	}
	newHTML, err := prepareFile(newPath, *markdown, *selector)
	if err != nil {
		return err
	}

	opts := []gotdiff.DifferOption{
		gotdiff.WithContextBudget(*contextBudget),
		gotdiff.WithMaxContentSize(*maxSize),
		gotdiff.WithProximityLines(*proximity),
		gotdiff.WithLogger(logger),
	}

	if *redisURL != "" {
		rc, err := cache.NewRedisCache(cache.RedisConfig{URL: *redisURL, TTL: *cacheTTL})
		if err != nil {
			return err
		}
		defer rc.Close()
		opts = append(opts, gotdiff.WithCache(rc))
	}

	differ := gotdiff.NewDiffer(opts...)

	start := time.Now()
	diffs, err := differ.CalculateDiff(oldHTML, newHTML)
	if err != nil {
		var tooLarge *gotdiff.TooLargeError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%s (raise --max-size to compare larger files)", tooLarge.Error())
		}
		return fmt.Errorf("diff failed: %w", err)
	}
	elapsed := time.Since(start)

	// Output
	var out io.Writer = stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if *jsonOutput {
		return outputJSON(out, oldPath, newPath, diffs, elapsed)
	}

	outputText(out, diffs)

	// Stats
	if !*quiet {
		stats := gotdiff.Stats(diffs)
		fmt.Fprintf(stderr, "\n%s vs %s in %v\n", filepath.Base(oldPath), filepath.Base(newPath), elapsed.Round(time.Millisecond))
		fmt.Fprintf(stderr, "  Edits:      %d\n", stats.Edits)
		fmt.Fprintf(stderr, "  Insertions: %d\n", stats.Insertions)
		fmt.Fprintf(stderr, "  Deletions:  %d\n", stats.Deletions)
	}

	return nil
}

// prepareFile reads a file and reduces it to the HTML that gets compared.
func prepareFile(path string, forceMarkdown bool, selector string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 - CLI tool reads user-specified files
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}

	proc := processor.ForFilename(path, processor.WithRoot(selector))
	if forceMarkdown {
		proc = processor.NewMarkdownProcessor()
	}

	prepared, err := proc.Prepare(string(data))
	if err != nil {
		return "", fmt.Errorf("preparing %s: %w", filepath.Base(path), err)
	}
	return prepared, nil
}

// outputText writes one block per hunk.
func outputText(w io.Writer, diffs []gotdiff.Diff) {
	if len(diffs) == 0 {
		fmt.Fprintf(w, "No changes detected.\n")
		return
	}

	for i, d := range diffs {
		if i > 0 {
			fmt.Fprintf(w, "\n")
		}
		fmt.Fprintf(w, "@@ %s old %s new %s @@\n", d.DiffType,
			lineRange(d.OriginalStartLine, d.OriginalEndLine), lineRange(d.StartLine, d.EndLine))
		if d.ContextBefore != nil {
			writePrefixed(w, "  ", *d.ContextBefore)
		}
		if d.OriginalCode != "" {
			writePrefixed(w, "- ", d.OriginalCode)
		}
		if d.NewCode != "" {
			writePrefixed(w, "+ ", d.NewCode)
		}
		if d.ContextAfter != nil {
			writePrefixed(w, "  ", *d.ContextAfter)
		}
	}
}

func lineRange(start, end int) string {
	if start == end {
		return fmt.Sprint(start)
	}
	return fmt.Sprintf("%d-%d", start, end)
}

func writePrefixed(w io.Writer, prefix, text string) {
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		fmt.Fprintf(w, "%s%s\n", prefix, line)
	}
}

// JSONOutput represents the JSON output format.
type JSONOutput struct {
	OldFile   string         `json:"old_file"`
	NewFile   string         `json:"new_file"`
	Diffs     []gotdiff.Diff `json:"diffs"`
	Stats     JSONStats      `json:"stats"`
	ElapsedMs int64          `json:"elapsed_ms"`
}

// JSONStats counts hunks by type.
type JSONStats struct {
	Edits      int `json:"edits"`
	Insertions int `json:"insertions"`
	Deletions  int `json:"deletions"`
}

// outputJSON writes the result as JSON.
func outputJSON(w io.Writer, oldPath, newPath string, diffs []gotdiff.Diff, elapsed time.Duration) error {
	stats := gotdiff.Stats(diffs)
	out := JSONOutput{
		OldFile: filepath.Base(oldPath),
		NewFile: filepath.Base(newPath),
		Diffs:   diffs,
		Stats: JSONStats{
			Edits:      stats.Edits,
			Insertions: stats.Insertions,
			Deletions:  stats.Deletions,
		},
		ElapsedMs: elapsed.Milliseconds(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
