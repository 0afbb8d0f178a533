package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.creack.net/yai/diag"
	"go.creack.net/yai/lexer"
)

func (a *app) newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream of a file, or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			src, err := a.readSource(path)
			if err != nil {
				return err
			}
			name := path
			if path == "-" {
				name = "<stdin>"
			}
			return a.printTokens(name, string(src))
		},
	}
}

// printTokens writes one `line:start-end TYPE value` line per token.
func (a *app) printTokens(name, src string) error {
	l := lexer.New(src)
	for {
		tok := l.NextToken()
		fmt.Fprintf(a.stdout, "%s %s", tok.Span(), tok.Type)
		switch tok.Type {
		case lexer.TokIdentifier, lexer.TokNumber, lexer.TokString, lexer.TokError:
			fmt.Fprintf(a.stdout, " %q", tok.Value)
		}
		fmt.Fprintln(a.stdout)

		switch tok.Type {
		case lexer.TokEOF:
			return nil
		case lexer.TokError:
			err := diag.Syntaxf(tok.Span(), "%s", tok.Value)
			fmt.Fprintf(a.stderr, "%s:%s: %s\n", name, tok.Span(), err)
			return errReported
		}
	}
}
