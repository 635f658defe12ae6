// Package main is a development shell around the gap buffer core: it
// loads the editor settings, runs a scripted edit over the input text and
// prints the buffer state plus the line and word extractions. The
// terminal frontend consumes the same surface; this binary exists to
// exercise it without one.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/juanjux/editorexperiment/internal/config"
	"github.com/juanjux/editorexperiment/internal/engine/extract"
	"github.com/juanjux/editorexperiment/internal/engine/gapbuffer"
	"github.com/juanjux/editorexperiment/internal/plugin/luafilter"
	"github.com/juanjux/editorexperiment/internal/session"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  = flag.String("config", "", "settings file (.toml, .yaml)")
		cursor      = flag.Int("cursor", 1, "initial cursor position (1-based grapheme)")
		insert      = flag.String("insert", "", "text to insert at the cursor")
		lineCount   = flag.Int("lines", 0, "extract up to N lines from the cursor")
		wordCount   = flag.Int("words", 0, "extract up to N words from the cursor")
		back        = flag.Bool("back", false, "extract toward the start instead of the end")
		luaChunk    = flag.String("filter", "", "lua predicate for the extractions")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("neme %s (%s)\n", version, commit)
		return 0
	}

	settings := config.Default()
	if *configPath != "" {
		var err error
		settings, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: loading settings: %v\n", err)
			return 1
		}
	}

	text, err := inputText(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading input: %v\n", err)
		return 1
	}

	sess, err := session.New(text, settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating session: %v\n", err)
		return 1
	}

	pred := extract.Predicate(nil)
	if *luaChunk != "" {
		filter, err := luafilter.Compile(*luaChunk)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: compiling filter: %v\n", err)
			return 1
		}
		defer filter.Close()
		pred = filter.Predicate()
	}

	sess.SetCursor(gapbuffer.GrpmIdx(*cursor))
	if *insert != "" {
		sess.Insert(*insert)
	}

	fmt.Printf("session %s\n%s\n", sess.ID(), sess.Debug())

	dir := extract.Front
	if *back {
		dir = extract.Back
	}

	if *lineCount > 0 {
		subjects, err := sess.Lines(dir, *lineCount, pred)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: extracting lines: %v\n", err)
			return 1
		}
		printSubjects("lines", subjects)
	}

	if *wordCount > 0 {
		subjects, err := sess.Words(dir, *wordCount, pred)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: extracting words: %v\n", err)
			return 1
		}
		printSubjects("words", subjects)
	}

	return 0
}

// inputText joins the positional arguments, or reads stdin when none.
func inputText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func printSubjects(kind string, subjects []extract.Subject) {
	fmt.Printf("%s (%d):\n", kind, len(subjects))
	for _, s := range subjects {
		fmt.Printf("  %s\n", s)
	}
}
