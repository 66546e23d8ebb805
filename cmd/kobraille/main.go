// Command kobraille transcribes Korean text to Korean Braille.
//
//	kobraille [flags] [text …]
//
// Text is taken from the arguments or, if there are none, line by line from
// stdin. Flags may also be set from environment variables (FORMAT,
// LOG_LEVEL, …) or a .env file.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/npillmayer/kobraille"
	"github.com/npillmayer/kobraille/braille"
	"github.com/npillmayer/kobraille/internal/logger"
	"github.com/npillmayer/kobraille/shortcut"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

func main() {
	if err := mainE(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

type config struct {
	format    string
	verbose   bool
	shortcuts bool
	log       *slog.Logger
}

func mainE(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("kobraille")
	var (
		format    = fs.StringEnumLong("format", "output format", "glyph", "digits", "cells")
		verbose   = fs.BoolLong("verbose", "trace the rules applied")
		shortcuts = fs.BoolLong("list-shortcuts", "print the word abbreviations and exit")
		logLevel  = fs.StringEnumLong("log-level", "log level", "info", "debug", "warn", "error")
		logFormat = fs.StringEnumLong("log-format", "log format", "pretty", "json")
	)
	if err := ff.Parse(fs, args, ff.WithEnvVars()); err != nil {
		fmt.Fprintf(stderr, "%s\n", ffhelp.Flags(fs))
		if errors.Is(err, ff.ErrHelp) {
			return nil
		}
		return fmt.Errorf("parsing flags: %w", err)
	}

	level := logger.ParseLevel(*logLevel)
	if *verbose {
		level = slog.LevelDebug
	}
	cfg := config{
		format:    *format,
		verbose:   *verbose,
		shortcuts: *shortcuts,
		log:       logger.New(stderr, level, *logFormat),
	}
	slog.SetDefault(cfg.log)

	gtrace.CoreTracer = gologadapter.New()
	if cfg.verbose {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	} else {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}

	if cfg.shortcuts {
		return listShortcuts(stdout, cfg)
	}
	if texts := fs.GetArgs(); len(texts) > 0 {
		return transcribe(strings.Join(texts, " "), stdout, cfg)
	}
	return transcribeLines(stdin, stdout, cfg)
}

func transcribeLines(in io.Reader, out io.Writer, cfg config) error {
	sc := bufio.NewScanner(in)
	lineno := 0
	for sc.Scan() {
		lineno++
		if err := transcribe(sc.Text(), out, cfg); err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	cfg.log.Debug("transcribed input", "lines", lineno)
	return nil
}

func transcribe(text string, out io.Writer, cfg config) error {
	cells, err := braille.Encode(text)
	if err != nil {
		return err
	}
	cfg.log.Debug("transcribed", "input", text, "cells", len(cells))
	_, err = fmt.Fprintln(out, render(cells, cfg.format))
	return err
}

func render(cells kobraille.Cells, format string) string {
	switch format {
	case "digits":
		return cells.Digits()
	case "cells":
		return strings.Trim(fmt.Sprint(cells.Ints()), "[]")
	}
	return cells.String()
}

func listShortcuts(out io.Writer, cfg config) error {
	for _, e := range shortcut.Default().Entries() {
		if _, err := fmt.Fprintf(out, "%s\t%s\n", e.Word, render(e.Cells, cfg.format)); err != nil {
			return err
		}
	}
	return nil
}
