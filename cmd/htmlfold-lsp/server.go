package main

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/pipe01/htmlfold/internal/document"
	"github.com/pipe01/htmlfold/internal/folding"
	"github.com/pipe01/htmlfold/internal/modes"
	"github.com/pipe01/htmlfold/internal/workspace"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func logger() commonlog.Logger {
	return commonlog.GetLogger("htmlfold.lsp")
}

// SituatedErr is an error that happened at a known position in a document.
type SituatedErr interface {
	Unwrap() error
	At() document.Position
}

type server struct {
	handler protocol.Handler

	ws    *workspace.Workspace
	modes modes.LanguageModes

	maxRanges int

	// Set by the client on initialize, 0 if it didn't send one
	rangeLimit atomic.Int64
}

func newServer(maxRanges int) *server {
	s := &server{
		ws:        workspace.New(""),
		modes:     modes.New(),
		maxRanges: maxRanges,
	}

	s.handler = protocol.Handler{
		Initialize:               s.initialize,
		Initialized:              initialized,
		Shutdown:                 shutdown,
		SetTrace:                 setTrace,
		TextDocumentDidOpen:      s.didOpen,
		TextDocumentDidChange:    s.didChange,
		TextDocumentDidClose:     s.didClose,
		TextDocumentFoldingRange: s.foldingRange,
	}

	return s
}

func (s *server) initialize(context *glsp.Context, params *protocol.InitializeParams) (any, error) {
	if td := params.Capabilities.TextDocument; td != nil && td.FoldingRange != nil && td.FoldingRange.RangeLimit != nil {
		s.rangeLimit.Store(int64(*td.FoldingRange.RangeLimit))
	}

	capabilities := s.handler.CreateServerCapabilities()

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &version,
		},
	}, nil
}

func initialized(context *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func shutdown(context *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func setTrace(context *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *server) didOpen(context *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.ws.Open(params.TextDocument.URI, params.TextDocument.Version, params.TextDocument.Text)
	return nil
}

func (s *server) didChange(context *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI

	doc, ok := s.ws.Get(uri)
	if !ok {
		return nil
	}

	// Ranges are relative to the text after the previous changes, so they
	// have to be resolved one at a time
	text := doc.Text()
	changes := make([]document.Change, 0, len(params.ContentChanges))

	for _, change := range params.ContentChanges {
		switch change := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			changes = append(changes, document.Change{Text: change.Text})
			text = change.Text

		case protocol.TextDocumentContentChangeEvent:
			startIndex, endIndex := change.Range.IndexesIn(text)
			changes = append(changes, document.Change{
				Range: &document.Range{Start: startIndex, End: endIndex},
				Text:  change.Text,
			})
			text = text[:startIndex] + change.Text + text[endIndex:]
		}
	}

	_, err := s.ws.Update(uri, params.TextDocument.Version, changes...)
	if err != nil {
		var serr SituatedErr

		if errors.As(err, &serr) {
			logger().Errorf("failed to update %s at %s: %s", uri, serr.At(), serr.Unwrap())
		} else {
			logger().Errorf("failed to update %s: %s", uri, err)
		}
		return err
	}

	return nil
}

func (s *server) didClose(context *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.ws.Close(params.TextDocument.URI)
	return nil
}

func (s *server) foldingRange(_ *glsp.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	uri := params.TextDocument.URI

	doc, ok := s.ws.Get(uri)
	if !ok {
		return nil, fmt.Errorf("document %q not found", uri)
	}

	ranges, err := modes.FoldingRanges(context.Background(), s.modes, doc, doc.FullRange(), s.limit())
	if err != nil {
		return nil, err
	}

	result := make([]protocol.FoldingRange, len(ranges))
	for i, r := range ranges {
		result[i] = toProtocol(r)
	}

	return result, nil
}

// limit prefers the client's range limit over the configured one.
func (s *server) limit() int {
	if l := s.rangeLimit.Load(); l > 0 {
		return int(l)
	}
	return s.maxRanges
}

func toProtocol(r folding.Range) protocol.FoldingRange {
	fr := protocol.FoldingRange{
		StartLine: protocol.UInteger(r.StartLine),
		EndLine:   protocol.UInteger(r.EndLine),
	}

	if r.Kind != folding.KindNone {
		fr.Kind = ptr(string(r.Kind))
	}

	return fr
}

func ptr[T any](v T) *T {
	return &v
}
