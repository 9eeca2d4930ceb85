// The notation command converts an arithmetic expression
// between infix, postfix and prefix notation and prints its
// value.
//
// Usage:
//
//	notation [flags] [expr]
//
// With no expression, it prompts for the expression and
// for its notation on standard input. The -f flag reads
// expressions from a file instead, one per line.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"golang.org/x/xerrors"

	"github.com/rogpeppe/notation"
	"github.com/rogpeppe/notation/config"
	"github.com/rogpeppe/notation/logging"
	"github.com/rogpeppe/notation/parallel"
	"github.com/rogpeppe/notation/readlines"
)

const (
	exprPrompt     = "Digite a expressão: "
	notationPrompt = "Digite o tipo de notação (infixa, pós-fixa ou pré-fixa): "
)

var (
	errInvalidNotation = xerrors.New("invalid notation")
	errUsage           = xerrors.New("usage")
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	switch {
	case err == nil:
	case xerrors.Is(err, errInvalidNotation):
		os.Exit(1)
	case xerrors.Is(err, errUsage):
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "notation: %v\n", err)
		os.Exit(2)
	}
}

type params struct {
	notation   string
	file       string
	json       bool
	acme       bool
	configFile string
	verbose    bool
	maxPar     int
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var p params
	fset := flag.NewFlagSet("notation", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.StringVar(&p.notation, "n", "", "notation of the expression: infixa, pós-fixa or pré-fixa")
	fset.StringVar(&p.file, "f", "", "read expressions from this file, one per line")
	fset.BoolVar(&p.json, "json", false, "print results in JSON format")
	fset.BoolVar(&p.acme, "acme", false, "use the selection in the current acme window")
	fset.StringVar(&p.configFile, "config", "", "read configuration from this YAML file")
	fset.BoolVar(&p.verbose, "v", false, "log debugging information")
	fset.IntVar(&p.maxPar, "p", runtime.GOMAXPROCS(0), "convert up to this many expressions from -f at once")
	fset.Usage = func() {
		fmt.Fprintf(stderr, "usage: notation [flags] [expr]\n")
		fset.PrintDefaults()
	}
	if err := fset.Parse(args); err != nil {
		return errUsage
	}
	if fset.NArg() > 1 || (fset.NArg() > 0 && (p.file != "" || p.acme)) {
		fset.Usage()
		return errUsage
	}
	cfg := config.Default()
	if p.configFile != "" {
		var err error
		if cfg, err = config.Load(p.configFile); err != nil {
			return err
		}
	}
	if p.verbose {
		cfg.Logging.Level = "debug"
	}
	logger, closer := logging.New(cfg.Logging, stderr)
	defer closer.Close()

	name := p.notation
	if name == "" {
		name = cfg.Notation
	}
	out := &printer{w: stdout, json: p.json}
	if p.file != "" {
		n, err := parseNotation(stdout, orInfix(name))
		if err != nil {
			return err
		}
		return runBatch(ctx, logger, p.file, n, p.maxPar, out, stderr)
	}

	var expr string
	switch {
	case p.acme:
		var err error
		if expr, err = acmeSelection(); err != nil {
			return err
		}
		name = orInfix(name)
	case fset.NArg() == 1:
		expr = fset.Arg(0)
		name = orInfix(name)
	default:
		r := readlines.NewReader(stdin, 0)
		var err error
		if expr, err = r.Prompt(stdout, exprPrompt); err != nil {
			return fmt.Errorf("cannot read expression: %v", err)
		}
		if name == "" {
			if name, err = r.Prompt(stdout, notationPrompt); err != nil {
				return fmt.Errorf("cannot read notation: %v", err)
			}
		}
	}
	n, err := parseNotation(stdout, name)
	if err != nil {
		return err
	}
	logger.Debug("converting", "expr", expr, "notation", n)
	r, err := notation.Convert(expr, n)
	if err != nil {
		return err
	}
	return out.print(r)
}

// orInfix returns name, or the infix notation's name if
// no notation was given.
func orInfix(name string) string {
	if name == "" {
		return "infixa"
	}
	return name
}

// parseNotation parses the notation name, telling the
// user if it is not recognised.
func parseNotation(w io.Writer, name string) (notation.Notation, error) {
	n, err := notation.ParseNotation(name)
	if err != nil {
		fmt.Fprintln(w, "Notação inválida.")
		return 0, errInvalidNotation
	}
	return n, nil
}

// runBatch converts each non-blank line of the named file,
// up to maxPar lines at once. Results are printed in file
// order. A failing line is reported and the rest are still
// converted.
func runBatch(ctx context.Context, logger *slog.Logger, path string, n notation.Notation, maxPar int, out *printer, stderr io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	type line struct {
		n      int
		expr   string
		result *notation.Result
	}
	var lines []*line
	err = readlines.NewReader(f, 0).Iter(func(n int, expr string) error {
		if strings.TrimSpace(expr) != "" {
			lines = append(lines, &line{n: n, expr: expr})
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("cannot read %s: %v", path, err)
	}
	run := parallel.NewRun(maxPar)
	for _, l := range lines {
		if ctx.Err() != nil {
			break
		}
		l := l
		run.Do(func() error {
			logger.Debug("converting", "file", path, "line", l.n, "expr", l.expr, "notation", n)
			r, err := notation.Convert(l.expr, n)
			if err != nil {
				return fmt.Errorf("%s:%d: %v", path, l.n, err)
			}
			l.result = r
			return nil
		})
	}
	err = run.Wait()
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, l := range lines {
		if l.result == nil {
			continue
		}
		if !out.json {
			fmt.Fprintf(out.w, "Expressão: %s\n", l.expr)
		}
		if err := out.print(l.result); err != nil {
			return err
		}
	}
	if err == nil {
		return nil
	}
	errs := err.(parallel.Errors)
	for _, err := range errs {
		fmt.Fprintf(stderr, "notation: %v\n", err)
	}
	return fmt.Errorf("%d of %d expressions failed", len(errs), len(lines))
}

type printer struct {
	w    io.Writer
	json bool
}

// print prints the forms of r other than the one it was
// given in, followed by its value.
func (p *printer) print(r *notation.Result) error {
	if p.json {
		data, err := json.Marshal(r)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(p.w, "%s\n", data)
		return err
	}
	if r.Notation != notation.Infix {
		fmt.Fprintf(p.w, "Expressão Infixa: %s\n", r.Infix)
	}
	if r.Notation != notation.Postfix {
		fmt.Fprintf(p.w, "Expressão Pós-fixa: %s\n", r.Postfix)
	}
	if r.Notation != notation.Prefix {
		fmt.Fprintf(p.w, "Expressão Pré-fixa: %s\n", r.Prefix)
	}
	_, err := fmt.Fprintf(p.w, "Resultado: %d\n", r.Value)
	return err
}
