// Command kcc-lex is the thin CLI driver: it compiles a source file
// (./test.c unless --in or a config file names another), lexing it to
// completion, and prints a success/failure banner.
// No parser or code generator exists yet downstream.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pborman/getopt"

	"github.com/kerycompiler/kcc-lex/pkg/config"
	"github.com/kerycompiler/kcc-lex/pkg/lexer"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow)
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		inPath     = "./test.c"
		outPath    = "test"
		configPath string
		noComments bool
		dumpTokens bool
	)

	getopt.StringVarLong(&inPath, "in", 'i', "source file to compile", "PATH")
	getopt.StringVarLong(&outPath, "out", 'o', "output file (pass \"\" to skip)", "PATH")
	getopt.StringVarLong(&configPath, "config", 'c', "optional YAML config overriding the flags above", "PATH")
	getopt.BoolVarLong(&noComments, "no-comments", 0, "drop comment tokens from the output vector")
	getopt.BoolVarLong(&dumpTokens, "dump-tokens", 0, "print the lexed token vector on success")
	getopt.Parse()

	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			errColor.Fprintln(os.Stderr, err)
			return 1
		}

		if cfg.In != "" {
			inPath = cfg.In
		}
		if cfg.Out != "" {
			outPath = cfg.Out
		}
		noComments = noComments || cfg.NoComments
		dumpTokens = dumpTokens || cfg.DumpTokens
	}

	var flags lexer.CompileFlags
	if noComments {
		flags |= lexer.FlagNoComments
	}

	cc, result, err := lexer.CompileFile(inPath, outPath, flags)

	if cc != nil {
		for _, d := range cc.Diagnostics {
			warnColor.Fprintln(os.Stderr, d.String())
		}
	}

	switch {
	case err != nil:
		errColor.Fprintln(os.Stderr, err)
		fmt.Println("compilation failed")
		return 1
	case result == lexer.ResultOK:
		fmt.Println("everything compiled fine")
		if dumpTokens {
			fmt.Print(lexer.Dump(cc.Tokens))
		}
		return 0
	case result == lexer.ResultErrorsPresent:
		fmt.Println("compilation failed")
		return 1
	default:
		fmt.Println("unknown error")
		return 1
	}
}
