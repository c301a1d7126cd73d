// Command kcc-lex-repl is an interactive token dump tool. The original
// front-end's token_build_for_string entry point exists "for a future
// preprocessor" but had no caller; this gives it one. Each line entered
// is lexed on its own via lexer.LexString and the resulting tokens are
// printed.
package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/kerycompiler/kcc-lex/pkg/lexer"
)

var (
	bannerColor = color.New(color.FgCyan)
	errColor    = color.New(color.FgRed)
)

func main() {
	rl, err := readline.New("kcc-lex> ")
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	bannerColor.Println("kcc-lex interactive token dump. Enter a snippet, Ctrl+D to exit.")

	compiler := lexer.NewStringCompileContext("<repl>")

	for {
		line, err := rl.Readline()
		if err != nil {
			break // EOF (Ctrl+D) or interrupt
		}

		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}

		rl.SaveHistory(line)

		ctx, err := lexer.LexString(compiler, line)
		if err != nil {
			errColor.Println(err)
			continue
		}

		fmt.Print(lexer.Dump(ctx.Output()))
	}
}
