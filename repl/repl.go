// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"

	"gqlsyntax/internal/ast"
	"gqlsyntax/internal/parser"
)

const PROMPT = ">> "

// Start reads one document per line from in and writes its canonical JSON,
// or the syntax error, to out. It returns when in is exhausted.
func Start(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := scanner.Text()
		doc, err := parser.ParseSource("repl", line)
		if err != nil {
			fmt.Fprintf(out, "error: %s\n", err)
			continue
		}

		data, err := ast.MarshalCanonical(doc)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n", data)
	}
}
