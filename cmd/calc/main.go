package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/rs/zerolog"

	"github.com/alecthomas/calc"
)

var version = "dev"

type cli struct {
	Version kong.VersionFlag `help:"Show version."`
	Config  kong.ConfigFlag  `help:"Load configuration from a JSON object keyed by long flag name, eg. max-depth or max_depth." placeholder:"FILE"`

	AST     bool `name:"ast" help:"Print the fully parenthesised expression instead of its value."`
	Tree    bool `help:"Print the syntax tree instead of the value."`
	Tokens  bool `help:"Dump the tokens of the expression instead of its value."`
	Grammar bool `help:"Print the grammar and exit."`
	Trace   bool `help:"Log each parsing and evaluation step." env:"CALC_TRACE"`

	IEEEDivision    bool   `name:"ieee-division" help:"Division by zero yields Inf or NaN instead of failing." env:"CALC_IEEE_DIVISION"`
	LenientDecimals bool   `help:"Accept numbers with a leading or trailing decimal point, eg. .5 and 5." env:"CALC_LENIENT_DECIMALS"`
	MaxDepth        int    `help:"Maximum nesting of parentheses, 0 for no limit." default:"${default_max_depth}" env:"CALC_MAX_DEPTH"`
	LogLevel        string `help:"Log level (${enum})." enum:"debug,info,warn,error" default:"info" env:"CALC_LOG_LEVEL"`

	Expression []string `arg:"" optional:"" help:"Expression to evaluate. Each line of stdin is evaluated if omitted."`
}

func (c *cli) Help() string {
	return `
Evaluates arithmetic expressions made of decimal numbers, + - * /, unary minus
and parentheses. eg.

    calc '2 + 3 * (4 - 1)'
`
}

func newParser(c *cli, options ...kong.Option) (*kong.Kong, error) {
	return kong.New(c, append([]kong.Option{
		kong.Name("calc"),
		kong.Description("Evaluate arithmetic expressions."),
		kong.UsageOnError(),
		kong.Vars{
			"version":           version,
			"default_max_depth": strconv.Itoa(calc.DefaultMaxDepth),
		},
	}, options...)...)
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(lvl).With().Timestamp().Logger(), nil
}

func (c *cli) options(logger zerolog.Logger) []calc.Option {
	options := []calc.Option{calc.MaxDepth(c.MaxDepth)}
	if c.IEEEDivision {
		options = append(options, calc.IEEEDivision())
	}
	if c.LenientDecimals {
		options = append(options, calc.LenientDecimals())
	}
	if c.Trace {
		options = append(options, calc.WithTracer(calc.LogTracer(logger.Level(zerolog.DebugLevel))))
	}
	return options
}

func (c *cli) run(stdin io.Reader, stdout io.Writer, logger zerolog.Logger) error {
	if c.Grammar {
		_, err := io.WriteString(stdout, calc.Grammar)
		return err
	}
	evaluator, err := calc.New(c.options(logger)...)
	if err != nil {
		return err
	}
	if len(c.Expression) > 0 {
		return c.evaluate(evaluator, stdout, strings.Join(c.Expression, " "))
	}

	scanner := bufio.NewScanner(stdin)
	line, failed := 0, 0
	for scanner.Scan() {
		line++
		expr := strings.TrimSpace(scanner.Text())
		if expr == "" {
			continue
		}
		if err := c.evaluate(evaluator, stdout, expr); err != nil {
			failed++
			logger.Error().Int("line", line).Str("expression", expr).Err(err).Msg("evaluation failed")
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d expression(s) failed", failed)
	}
	return nil
}

func (c *cli) evaluate(evaluator *calc.Evaluator, w io.Writer, expr string) error {
	switch {
	case c.Tokens:
		tokens, err := evaluator.Tokenize(expr)
		if err != nil {
			return err
		}
		repr.New(w, repr.Indent("  ")).Println(tokens)
		return nil

	case c.AST, c.Tree:
		node, err := evaluator.Parse(expr)
		if err != nil {
			return err
		}
		if c.Tree {
			return calc.Dump(w, node)
		}
		_, err = fmt.Fprintln(w, calc.Parenthesize(node))
		return err
	}

	value, err := evaluator.Evaluate(expr)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, strconv.FormatFloat(value, 'g', -1, 64))
	return err
}

func main() {
	c := &cli{}
	parser, err := newParser(c, kong.Configuration(loadConfig, "~/.calc.json"))
	if err != nil {
		panic(err)
	}
	_, err = parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	logger, err := newLogger(os.Stderr, c.LogLevel)
	parser.FatalIfErrorf(err)

	err = c.run(os.Stdin, os.Stdout, logger)
	parser.FatalIfErrorf(err)
}
