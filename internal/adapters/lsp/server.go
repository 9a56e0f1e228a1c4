// Package lsp serves puzzle input diagnostics over the Language Server
// Protocol. Any open document whose file name names a day ("day07.txt") is
// parsed with that day's grammar on every change, and the parse failure, if
// any, is published as a single error diagnostic.
package lsp

import (
	"errors"
	"net/url"
	"path/filepath"
	"strings"
	"unicode/utf16"

	"github.com/corey/adco/internal/app"
	"github.com/corey/adco/internal/domain/parsec"
	"github.com/corey/adco/internal/domain/puzzle"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "adco"

// Server is the stdio language server.
type Server struct {
	runner  *app.Runner
	handler protocol.Handler
	server  *server.Server
	version string
	log     commonlog.Logger
}

// NewServer builds a server that checks documents with runner.
func NewServer(runner *app.Runner, version string) *Server {
	s := &Server{
		runner:  runner,
		version: version,
		log:     commonlog.GetLogger("adco.lsp"),
	}

	s.handler = protocol.Handler{
		Initialize:            s.initialize,
		Initialized:           s.initialized,
		Shutdown:              s.shutdown,
		SetTrace:              s.setTrace,
		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidSave:   s.textDocumentDidSave,
		TextDocumentDidClose:  s.textDocumentDidClose,
	}
	s.server = server.NewServer(&s.handler, lsName, false)
	return s
}

// RunStdio serves until the client disconnects.
func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save:      &protocol.SaveOptions{IncludeText: boolPtr(true)},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	s.log.Infof("days available: %v", s.runner.Problems().Days())
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.publish(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		s.publish(ctx, params.TextDocument.URI, whole.Text)
	}
	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		s.publish(ctx, params.TextDocument.URI, *params.Text)
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	// Clear whatever we published for the document.
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (s *Server) publish(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	diags, ok := s.diagnose(uri, text)
	if !ok {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diags,
	})
}

// diagnose checks text against the grammar of the day named by uri. ok is
// false when the document is not a puzzle input.
func (s *Server) diagnose(uri protocol.DocumentUri, text string) (diags []protocol.Diagnostic, ok bool) {
	path, err := uriToPath(uri)
	if err != nil {
		return nil, false
	}
	day, ok := puzzle.DayFromFileName(path)
	if !ok {
		return nil, false
	}

	diags = []protocol.Diagnostic{}
	err = s.runner.Check(day, text)
	if err == nil {
		return diags, true
	}
	return append(diags, toDiagnostic(err)), true
}

func toDiagnostic(err error) protocol.Diagnostic {
	d := protocol.Diagnostic{
		Severity: severityPtr(protocol.DiagnosticSeverityError),
		Source:   strPtr(lsName),
		Message:  err.Error(),
	}

	var perr *parsec.Error
	if !errors.As(err, &perr) {
		return d
	}
	start := lspPosition(perr.Input, perr.Loc)
	end := start
	if perr.Loc < len(perr.Input) && perr.Input[perr.Loc] != '\n' {
		end.Character++
	}
	d.Range = protocol.Range{Start: start, End: end}
	d.Message = perr.Msg
	if perr.Cause != nil {
		d.Message += "; " + perr.Cause.Error()
	}
	d.Code = &protocol.IntegerOrString{Value: perr.Parser}
	return d
}

// lspPosition converts a byte offset to an LSP position, whose character
// counts UTF-16 code units.
func lspPosition(input string, offset int) protocol.Position {
	pos := parsec.PositionOf(input, offset)
	lineStart := strings.LastIndexByte(input[:pos.Offset], '\n') + 1
	units := 0
	for _, r := range input[lineStart:pos.Offset] {
		units += utf16.RuneLen(r)
	}
	return protocol.Position{Line: protocol.UInteger(pos.Line), Character: protocol.UInteger(units)}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func severityPtr(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity { return &s }

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind { return &k }
