// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
	"gqlsyntax/internal/lsp"
)

const lsName = "gqlsyntax" // Name identifier for the language server

var (
	version = "0.1.0"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)

	app     = kingpin.New("gqlparse-lsp", "GraphQL syntax language server over stdio.")
	verbose = app.Flag("verbose", "Log debug output to stderr.").Short('v').Bool()
)

func main() {
	app.Version(version)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	// Logging goes to stderr; stdout carries the protocol
	verbosity := 1
	if *verbose {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)
	log := commonlog.GetLogger("gqlsyntax.lsp")

	graphqlHandler := lsp.NewGraphQLHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     graphqlHandler.Initialize,
		Initialized:                    graphqlHandler.Initialized,
		Shutdown:                       graphqlHandler.Shutdown,
		SetTrace:                       graphqlHandler.SetTrace,
		TextDocumentDidOpen:            graphqlHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           graphqlHandler.TextDocumentDidClose,
		TextDocumentDidChange:          graphqlHandler.TextDocumentDidChange,
		TextDocumentCompletion:         graphqlHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: graphqlHandler.TextDocumentSemanticTokensFull,
		TextDocumentDocumentSymbol:     graphqlHandler.TextDocumentDocumentSymbol,
	}

	// The last argument enables glsp's own debug logging
	s := server.NewServer(&handler, lsName, *verbose)

	log.Infof("starting %s %s", lsName, version)

	// Start the server over standard input/output (used by most editors for LSP)
	if err := s.RunStdio(); err != nil {
		log.Errorf("server stopped: %s", err)
		os.Exit(1)
	}
}
