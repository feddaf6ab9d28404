// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"gqlsyntax/internal/ast"
	diag "gqlsyntax/internal/errors"
	"gqlsyntax/internal/lexer"
	"gqlsyntax/internal/parser"
	"gqlsyntax/repl"
	"gqlsyntax/token"
)

var (
	app     = kingpin.New("gqlparse", "Parse GraphQL documents into a canonical syntax tree.")
	verbose = app.Flag("verbose", "Log debug output to stderr.").Short('v').Bool()
	noColor = app.Flag("no-color", "Disable coloured output.").Bool()

	parseCmd    = app.Command("parse", "Parse files and print their syntax trees.").Default()
	parseFormat = parseCmd.Flag("format", "Output format.").Short('f').Default("json").Enum("json", "graphql")
	parseLexer  = parseCmd.Flag("lexer", "Tokenizer to use.").Default("participle").Enum("participle", "gqlparser")
	parseFiles  = parseCmd.Arg("files", "GraphQL documents to parse.").Required().ExistingFiles()

	tokensCmd   = app.Command("tokens", "Print the token stream of a file.")
	tokensLexer = tokensCmd.Flag("lexer", "Tokenizer to use.").Default("participle").Enum("participle", "gqlparser")
	tokensFile  = tokensCmd.Arg("file", "GraphQL document to tokenize.").Required().ExistingFile()

	replCmd = app.Command("repl", "Parse one document per line of standard input.")
)

var log = commonlog.GetLogger("gqlsyntax.cli")

func main() {
	app.HelpFlag.Short('h')
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if *verbose {
		commonlog.Configure(2, nil)
	} else {
		commonlog.Configure(0, nil)
	}
	if *noColor {
		color.NoColor = true
	}

	var ok bool
	switch command {
	case parseCmd.FullCommand():
		ok = parseAll(*parseFiles, *parseFormat, *parseLexer, os.Stdout)
	case tokensCmd.FullCommand():
		ok = printTokens(*tokensFile, *tokensLexer, os.Stdout)
	case replCmd.FullCommand():
		if err := repl.Start(os.Stdin, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "repl: %v\n", err)
		}
		ok = true
	}

	if !ok {
		os.Exit(1)
	}
}

// parseAll parses every file, printing each tree to out and each failure
// as a rendered diagnostic on stderr. It reports whether all files parsed.
func parseAll(paths []string, format, lexerName string, out io.Writer) bool {
	startTime := time.Now()
	failed := 0

	for _, path := range paths {
		source, err := readSource(path)
		if err != nil {
			printDiagnostic(path, "", err)
			failed++
			continue
		}

		log.Debugf("parsing %s with the %s lexer", path, lexerName)
		doc, err := parseWith(lexerName, path, source)
		if err != nil {
			printDiagnostic(path, source, err)
			failed++
			continue
		}

		switch format {
		case "graphql":
			fmt.Fprintln(out, doc.String())
		default:
			data, err := ast.MarshalCanonical(doc)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to encode %s: %v\n", path, err)
				failed++
				continue
			}
			fmt.Fprintf(out, "%s\n", data)
		}
	}

	formattedDuration := formatDuration(time.Since(startTime))
	if failed > 0 {
		color.New(color.FgRed).Fprintf(os.Stderr, "%d of %d file(s) failed after %s\n", failed, len(paths), formattedDuration)
		return false
	}
	color.New(color.FgGreen).Fprintf(os.Stderr, "Successfully parsed %d file(s) in %s\n", len(paths), formattedDuration)
	return true
}

func printTokens(path, lexerName string, out io.Writer) bool {
	source, err := readSource(path)
	if err != nil {
		printDiagnostic(path, "", err)
		return false
	}

	tokens, err := lex(lexerName, path, source)
	if err != nil {
		printDiagnostic(path, source, err)
		return false
	}

	for _, tok := range tokens {
		fmt.Fprintf(out, "%d:%d\t%s\n", tok.Pos.Line, tok.Pos.Column, tok)
	}
	return true
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", path)
	}
	return string(data), nil
}

func lex(lexerName, path, source string) ([]token.Token, error) {
	if lexerName == "gqlparser" {
		return lexer.LexGQLParser(path, source)
	}
	return lexer.Lex(path, source)
}

func parseWith(lexerName, path, source string) (*ast.Document, error) {
	tokens, err := lex(lexerName, path, source)
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens)
}

func printDiagnostic(path, source string, err error) {
	reporter := diag.NewReporter(path, source)
	fmt.Fprint(os.Stderr, reporter.FormatError(parser.Diagnose(err)))
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
