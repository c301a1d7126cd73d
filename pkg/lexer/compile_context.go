package lexer

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// CompileFlags are the compile-time options carried on a
// CompileContext. The original front-end's struct compile_process
// leaves flags as an opaque int; FlagNoComments is the one concrete
// bit this front-end defines.
type CompileFlags int

const (
	// FlagNoComments drops Comment tokens from the output vector after
	// a successful lex. Comments are retained by default.
	FlagNoComments CompileFlags = 1 << iota
)

// Result is the coarse compile-file outcome.
type Result int

const (
	ResultOK Result = iota
	ResultErrorsPresent
)

func (r Result) String() string {
	if r == ResultOK {
		return "ok"
	}
	return "errors present"
}

// CompileContext owns the input stream, the output file handle, the
// token vector produced by lexing, and any warnings raised during
// compilation. It lives for the whole compilation.
type CompileContext struct {
	InPath  string
	OutPath string
	Flags   CompileFlags

	Tokens      Tokens
	Diagnostics []Diagnostic

	in  *os.File
	out *os.File
	pos Position
}

// NewCompileContext opens the input file and, when outPath is
// non-empty, the output file, returning nil and an error if either
// cannot be opened. The two opens run concurrently via an errgroup; a
// failing open cancels nothing, and the first error is returned once
// both have finished.
func NewCompileContext(inPath, outPath string, flags CompileFlags) (*CompileContext, error) {
	cc := &CompileContext{
		InPath:  inPath,
		OutPath: outPath,
		Flags:   flags,
		pos:     Position{Line: 1, Col: 1, Filename: inPath},
	}

	var g errgroup.Group
	g.Go(func() error {
		f, err := os.Open(inPath)
		if err != nil {
			return errors.Wrapf(err, "opening input file %q", inPath)
		}
		cc.in = f
		return nil
	})

	if outPath != "" {
		g.Go(func() error {
			f, err := os.Create(outPath)
			if err != nil {
				return errors.Wrapf(err, "opening output file %q", outPath)
			}
			cc.out = f
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		cc.Close()
		return nil, err
	}

	return cc, nil
}

// NewStringCompileContext builds a CompileContext with no backing
// files, for lexing synthetic inputs: interactive tools and tests
// that never touch disk.
func NewStringCompileContext(filename string) *CompileContext {
	return &CompileContext{
		InPath: filename,
		pos:    Position{Line: 1, Col: 1, Filename: filename},
	}
}

// Close releases the input and output file handles, if open.
func (cc *CompileContext) Close() error {
	var err error
	if cc.in != nil {
		err = cc.in.Close()
	}
	if cc.out != nil {
		if cerr := cc.out.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Position returns the compile context's own notion of the current
// position, tracked independently of the lex context: the
// authoritative tracker for diagnostics raised outside lexing.
func (cc *CompileContext) Position() Position {
	return cc.pos
}

func (cc *CompileContext) advancePos(c byte) {
	cc.pos.Col++
	if c == '\n' {
		cc.pos.Line++
		cc.pos.Col = 1
	}
}

// Output returns the output file handle, if one was opened. It exists
// so a future backend has somewhere to write; nothing is written to it
// by this package yet.
func (cc *CompileContext) Output() io.Writer {
	if cc.out == nil {
		return io.Discard
	}
	return cc.out
}

func dropComments(toks Tokens) Tokens {
	kept := make(Tokens, 0, len(toks))
	for _, t := range toks {
		if t.Kind == Comment {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

// CompileFile opens in_path (and out_path, when given), lexes the
// input to completion, and stores the resulting token vector on the
// returned CompileContext. No parser or code generator runs yet.
func CompileFile(inPath, outPath string, flags CompileFlags) (*CompileContext, Result, error) {
	cc, err := NewCompileContext(inPath, outPath, flags)
	if err != nil {
		return nil, ResultErrorsPresent, err
	}
	defer cc.Close()

	ctx := NewLexContext(cc, newFileSource(cc))
	if err := ctx.Lex(); err != nil {
		return cc, ResultErrorsPresent, err
	}

	cc.Tokens = ctx.Output()
	if cc.Flags&FlagNoComments != 0 {
		cc.Tokens = dropComments(cc.Tokens)
	}

	return cc, ResultOK, nil
}
