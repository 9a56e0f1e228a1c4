package lsp

import (
	"testing"

	"github.com/corey/adco/internal/app"
	"github.com/corey/adco/internal/domain/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func newTestServer() *Server {
	return NewServer(app.NewRunner(puzzle.Default(), nil), "test")
}

func TestDiagnose_NotAPuzzleInput(t *testing.T) {
	s := newTestServer()
	_, ok := s.diagnose("file:///work/README.md", "# hello")
	assert.False(t, ok)
}

func TestDiagnose_ValidInputClears(t *testing.T) {
	s := newTestServer()
	diags, ok := s.diagnose("file:///work/inputs/day08.txt", "nop +0\nacc +1\njmp -2\n")
	require.True(t, ok)
	assert.NotNil(t, diags, "an empty list clears earlier diagnostics")
	assert.Empty(t, diags)
}

func TestDiagnose_ParseFailure(t *testing.T) {
	s := newTestServer()
	diags, ok := s.diagnose("file:///work/inputs/day08.txt", "nop +0\nadd +1\n")
	require.True(t, ok)
	require.Len(t, diags, 1)

	d := diags[0]
	assert.Equal(t, protocol.DiagnosticSeverityError, *d.Severity)
	assert.Equal(t, lsName, *d.Source)
	assert.Equal(t, protocol.UInteger(1), d.Range.Start.Line)
	assert.NotEmpty(t, d.Message)
	require.NotNil(t, d.Code)
}

func TestDiagnose_UnimplementedDay(t *testing.T) {
	s := newTestServer()
	diags, ok := s.diagnose("file:///work/day25.txt", "anything")
	require.True(t, ok)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "day 25 is not implemented")
	assert.Equal(t, protocol.Range{}, diags[0].Range)
}

func TestLSPPosition(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
		want   protocol.Position
	}{
		{"start", "abc", 0, protocol.Position{Line: 0, Character: 0}},
		{"second line", "ab\ncd", 4, protocol.Position{Line: 1, Character: 1}},
		{"end of input", "ab\n", 3, protocol.Position{Line: 1, Character: 0}},
		// "é" is two bytes and one UTF-16 unit; "𝄞" is four bytes and two units.
		{"multibyte", "é𝄞x", 6, protocol.Position{Line: 0, Character: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lspPosition(tt.input, tt.offset))
		})
	}
}

func TestURIToPath(t *testing.T) {
	p, err := uriToPath("file:///home/me/aoc/day%2007.txt")
	require.NoError(t, err)
	assert.Equal(t, "/home/me/aoc/day 07.txt", p)

	p, err = uriToPath("/plain/day01.txt")
	require.NoError(t, err)
	assert.Equal(t, "/plain/day01.txt", p)
}
