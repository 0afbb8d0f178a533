package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"time"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"go.creack.net/yai/ast"
	"go.creack.net/yai/config"
	"go.creack.net/yai/diag"
	"go.creack.net/yai/lexer"
	"go.creack.net/yai/parser"
)

// result is the outcome of parsing one input.
type result struct {
	name    string
	out     []byte
	err     error
	elapsed time.Duration
}

func (a *app) newParseCmd() *cobra.Command {
	var (
		format string
		watch  bool
	)
	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "Parse source files and print their syntax tree",
		Long: `Parse each file, or stdin when no file or "-" is given, and print its syntax tree.

Formats: dump (canonical source), pretty (Go values), json, yaml.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.cfg.Output.Format
			}
			if !slices.Contains(config.Formats, format) {
				return fmt.Errorf("unknown format %q", format)
			}
			if watch {
				if len(args) != 1 || args[0] == "-" {
					return errors.New("--watch needs exactly one file")
				}
				return a.watch(cmd.Context(), args[0], format)
			}
			if len(args) == 0 {
				args = []string{"-"}
			}
			return a.parseFiles(cmd.Context(), args, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: dump, pretty, json or yaml (default from config)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-parse the file each time it is written")
	return cmd
}

// parseFiles parses paths concurrently and prints the results in argument order.
func (a *app) parseFiles(ctx context.Context, paths []string, format string) error {
	results := make([]result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = a.parseFile(path, format)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if failed := a.report(results, len(paths) > 1); failed > 0 {
		return fmt.Errorf("%d of %d inputs failed: %w", failed, len(paths), errReported)
	}
	return nil
}

// report prints results and returns the number of failures.
func (a *app) report(results []result, headers bool) int {
	failed := 0
	for i, res := range results {
		if headers {
			if i > 0 {
				fmt.Fprintln(a.stdout)
			}
			fmt.Fprintf(a.stdout, "==> %s <==\n", res.name)
		}
		if res.err != nil {
			failed++
			fmt.Fprintln(a.stderr, res.err)
			continue
		}
		_, _ = a.stdout.Write(res.out)
		a.logf("parsed %s in %s", res.name, res.elapsed)
	}
	return failed
}

func (a *app) parseFile(path, format string) result {
	res := result{name: path}
	if path == "-" {
		res.name = "<stdin>"
	}

	start := time.Now()
	src, err := a.readSource(path)
	if err != nil {
		res.err = err
		return res
	}
	res.out, res.err = a.parseSource(res.name, src, format)
	res.elapsed = time.Since(start)
	return res
}

// parseSource parses src and renders the program. Diagnostics are
// prefixed with name and the offending span.
func (a *app) parseSource(name string, src []byte, format string) ([]byte, error) {
	prog, err := parser.New(lexer.New(string(src)), a.cfg.ParserOptions()).ParseProgram()
	if err != nil {
		var derr *diag.Error
		if errors.As(err, &derr) {
			return nil, fmt.Errorf("%s:%s: %w", name, derr.Span, err)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return render(prog, format)
}

func render(prog ast.Program, format string) ([]byte, error) {
	switch format {
	case config.FormatDump:
		return []byte(prog.Dump()), nil
	case config.FormatPretty:
		return []byte(fmt.Sprintf("%# v\n", pretty.Formatter(prog))), nil
	case config.FormatJSON:
		buf, err := json.MarshalIndent(ast.Tree(prog), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("json marshal: %w", err)
		}
		return append(buf, '\n'), nil
	case config.FormatYAML:
		buf, err := yaml.Marshal(ast.Tree(prog))
		if err != nil {
			return nil, fmt.Errorf("yaml marshal: %w", err)
		}
		return buf, nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}
