package lexer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "in.c")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestCompileFileEndToEnd(t *testing.T) {
	in := writeSource(t, "int x = 1; // comment\n")
	out := filepath.Join(t.TempDir(), "out")

	cc, result, err := CompileFile(in, out, 0)
	require.NoError(t, err)
	assert.Equal(t, ResultOK, result)

	var kinds []Kind
	for _, tok := range cc.Tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Contains(t, kinds, Keyword)
	assert.Contains(t, kinds, Identifier)
	assert.Contains(t, kinds, Comment)

	assert.FileExists(t, out)
}

func TestCompileFileNoCommentsFlagDropsComments(t *testing.T) {
	in := writeSource(t, "x; // dropped\n")

	cc, result, err := CompileFile(in, "", FlagNoComments)
	require.NoError(t, err)
	assert.Equal(t, ResultOK, result)

	for _, tok := range cc.Tokens {
		assert.NotEqual(t, Comment, tok.Kind)
	}
}

func TestCompileFileEmptyOutPathSkipsOutputFile(t *testing.T) {
	in := writeSource(t, "x;\n")

	cc, result, err := CompileFile(in, "", 0)
	require.NoError(t, err)
	assert.Equal(t, ResultOK, result)
	assert.NotNil(t, cc.Output()) // io.Discard, not a nil writer
}

func TestCompileFileMissingInputIsError(t *testing.T) {
	_, _, err := CompileFile(filepath.Join(t.TempDir(), "missing.c"), "", 0)
	require.Error(t, err)
}

func TestCompileFileFatalLexErrorSurfacesDiagnosticPosition(t *testing.T) {
	in := writeSource(t, ")")

	_, result, err := CompileFile(in, "", 0)
	require.Error(t, err)
	assert.Equal(t, ResultErrorsPresent, result)

	var fatal *FatalError
	require.ErrorAs(t, err, &fatal)
	assert.Equal(t, 1, fatal.Pos.Line)
}

func TestNewCompileContextOpensFilesConcurrently(t *testing.T) {
	in := writeSource(t, "x;\n")
	out := filepath.Join(t.TempDir(), "out")

	cc, err := NewCompileContext(in, out, 0)
	require.NoError(t, err)
	defer cc.Close()

	assert.NotNil(t, cc.Output())
	assert.Equal(t, Position{Line: 1, Col: 1, Filename: in}, cc.Position())
}
