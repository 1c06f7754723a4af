// Command regexast parses ECMAScript regular expressions and prints their
// syntax trees as YAML. Invalid patterns are reported on stderr with the
// offending part of the pattern underlined.
//
//	regexast -f u 'a(?<x>b)\k<x>'
//	regexast -l '/[\p{L}--\p{Lu}]/v'
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/alexflint/go-arg"
	"github.com/auvred/ecmaregex"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type options struct {
	Patterns []string `arg:"positional,help:patterns to parse"`
	Flags    string   `arg:"-f,help:flags of the patterns (e.g. u or v); ignored with --literal"`
	Literal  bool     `arg:"-l,help:treat every pattern as a /pattern/flags literal"`
	Input    string   `arg:"-i,help:file with one pattern per line"`
	Offset   int      `arg:"help:base offset added to every reported span"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("regexast: ")

	var opts options
	arg.MustParse(&opts)

	if err := run(opts, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(opts options, stdout, stderr io.Writer) error {
	patterns := opts.Patterns
	if opts.Input != "" {
		buf, err := os.ReadFile(opts.Input)
		if err != nil {
			return errors.Wrapf(err, "reading %s", opts.Input)
		}
		for _, line := range strings.Split(string(buf), "\n") {
			if line = strings.TrimRight(line, "\r"); line != "" {
				patterns = append(patterns, line)
			}
		}
	}
	if len(patterns) == 0 {
		return errors.New("no patterns given")
	}

	var flags ecmaregex.Flag
	if !opts.Literal {
		var err error
		if flags, err = ecmaregex.ParseFlags(opts.Flags); err != nil {
			return errors.Wrapf(err, "parsing flags %q", opts.Flags)
		}
	}

	var failed int
	for _, pattern := range patterns {
		doc, err := parse(pattern, flags, opts)
		if err != nil {
			failed++
			report(stderr, pattern, opts.Offset, err)
			continue
		}
		out, err := yaml.Marshal(doc)
		if err != nil {
			return errors.Wrapf(err, "encoding tree of %q", pattern)
		}
		fmt.Fprintf(stdout, "---\n%s", out)
	}
	if failed > 0 {
		return errors.Errorf("%d of %d patterns are invalid", failed, len(patterns))
	}
	return nil
}

func parse(pattern string, flags ecmaregex.Flag, opts options) (yaml.MapSlice, error) {
	if opts.Literal {
		lit, err := ecmaregex.ParseLiteral(pattern, opts.Offset)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing literal %s", pattern)
		}
		return yaml.MapSlice{
			{Key: "flags", Value: lit.Flags.String()},
			{Key: "pattern", Value: dump(lit.Pattern)},
		}, nil
	}
	tree, err := ecmaregex.Parse(pattern, ecmaregex.Options{Flags: flags, SpanOffset: opts.Offset})
	if err != nil {
		return nil, errors.Wrapf(err, "parsing pattern %s", pattern)
	}
	return dump(tree), nil
}

// report prints the error and underlines its first label.
func report(w io.Writer, pattern string, offset int, err error) {
	syntaxErr, ok := errors.Cause(err).(*ecmaregex.SyntaxError)
	if !ok || len(syntaxErr.Labels) == 0 {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "error[%s]: %v\n", syntaxErr.Kind, err)
	fmt.Fprintf(w, "  %s\n", pattern)
	fmt.Fprintf(w, "  %s\n", underline(pattern, syntaxErr.Labels[0], offset))
}

func underline(pattern string, label ecmaregex.Span, offset int) string {
	clamp := func(i int) int {
		i -= offset
		if i < 0 {
			return 0
		}
		if i > len(pattern) {
			return len(pattern)
		}
		return i
	}
	start, end := clamp(label.Start), clamp(label.End)
	pad := utf8.RuneCountInString(pattern[:start])
	width := utf8.RuneCountInString(pattern[start:end])
	if width == 0 {
		width = 1
	}
	return strings.Repeat(" ", pad) + strings.Repeat("^", width)
}
