package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/exp/slices"

	"github.com/gqlkit/gqlkit/internal/eval"
	"github.com/gqlkit/gqlkit/internal/gqlerrors"
	"github.com/gqlkit/gqlkit/internal/parser"
	"github.com/gqlkit/gqlkit/internal/scanner"
	"github.com/gqlkit/gqlkit/internal/value"
)

type App struct {
	err       error
	reporter  gqlerrors.ErrReporter
	evaluator eval.Evaluator
	printer   *parser.Printer
}

func NewApp() *App {
	return &App{
		reporter:  gqlerrors.NewErrReporter(os.Stderr),
		evaluator: eval.NewEvaluator(),
		printer:   parser.NewPrinter(),
	}
}

func (app *App) reportError(err error) {
	app.reporter.ReportError(err)
	app.err = err
}

func (app *App) resetError() {
	app.err = nil
}

func (app *App) Main(args []string) int {
	var err error
	switch len(args) {
	case 1:
		err = app.runFile(args[0])
	case 0:
		err = app.runPrompt()
	default:
		err = fmt.Errorf("Usage: gqlkit [literal-file]")
	}

	if err != nil {
		app.reportError(err)
	}

	if app.err != nil {
		return 64
	}

	return 0
}

func (app *App) runPrompt() error {
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		err = app.run(line)
		if err != nil {
			app.reportError(err)
			app.resetError()
		}
	}
}

func (app *App) runFile(path string) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return app.run(string(bytes))
}

func (app *App) run(input string) error {
	out, err := app.Render(input)
	if err != nil {
		return err
	}

	fmt.Println(out)
	return nil
}

// Render runs the whole pipeline over one literal document: scan,
// parse, coerce to a response value, re-express as an input literal
// and print it in canonical form.
func (app *App) Render(input string) (string, error) {
	s := scanner.NewScanner(input)
	tokens, err := s.Scan()
	if err != nil {
		return "", err
	}

	p := parser.NewParser(tokens)
	literal, err := p.Parse()
	if err != nil {
		return "", err
	}

	v, err := app.evaluator.Eval(literal)
	if err != nil {
		return "", err
	}

	canonical := canonicalize(value.ToInput(v))
	return app.printer.Print(parser.Unlocated(canonical)), nil
}

// canonicalize sorts object fields by key, recursively. The value and
// conversion layers keep object entries unordered; stable output is a
// presentation concern and lives here.
func canonicalize(in parser.InputValue) parser.InputValue {
	switch in := in.(type) {
	case parser.InputList:
		items := make(parser.InputList, 0, len(in))
		for _, item := range in {
			items = append(items, parser.Unlocated(canonicalize(item.Item)))
		}
		return items
	case parser.InputObject:
		fields := make(parser.InputObject, 0, len(in))
		for _, f := range in {
			fields = append(fields, parser.InputField{
				Key:   f.Key,
				Value: parser.Unlocated(canonicalize(f.Value.Item)),
			})
		}
		slices.SortFunc(fields, func(a, b parser.InputField) int {
			return strings.Compare(a.Key.Item, b.Key.Item)
		})
		return fields
	}

	return in
}
