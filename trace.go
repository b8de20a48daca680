package calc

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alecthomas/calc/lexer"
)

// EventKind identifies a step reported to a Tracer.
type EventKind int

// Kinds of trace events.
const (
	// TokenEvent is recorded when the parser consumes a token.
	TokenEvent EventKind = iota
	// EnterEvent is recorded when the parser enters a grammar rule.
	EnterEvent
	// ExitEvent is recorded when a grammar rule completes successfully.
	ExitEvent
	// ApplyEvent is recorded when an operator is evaluated.
	ApplyEvent
)

func (k EventKind) String() string {
	switch k {
	case TokenEvent:
		return "token"
	case EnterEvent:
		return "enter"
	case ExitEvent:
		return "exit"
	case ApplyEvent:
		return "apply"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event describes a single tokenizing, parsing or evaluation step.
type Event struct {
	Kind EventKind
	// Rule is the grammar rule for Enter/Exit events, and the operator for Apply events.
	Rule string
	// Token is the consumed token for Token events, and the next token for Enter events.
	Token lexer.Token
	// Value is the result of an Apply event.
	Value float64
	Depth int
}

// A Tracer receives diagnostic events during evaluation.
//
// Tracers never affect the result of an evaluation.
type Tracer interface {
	Record(event Event)
}

// TracerFunc adapts a function to the Tracer interface.
type TracerFunc func(event Event)

func (f TracerFunc) Record(event Event) { f(event) }

// NopTracer discards all events.
var NopTracer Tracer = nopTracer{}

type nopTracer struct{}

func (nopTracer) Record(Event) {}

type multiTracer []Tracer

func (m multiTracer) Record(event Event) {
	for _, t := range m {
		t.Record(event)
	}
}

// Trace the evaluation to "w".
func Trace(w io.Writer) Option {
	return WithTracer(&writerTracer{w: w})
}

type writerTracer struct {
	w io.Writer
}

func (t *writerTracer) Record(event Event) {
	indent := strings.Repeat(" ", event.Depth*2)
	switch event.Kind {
	case TokenEvent:
		fmt.Fprintf(t.w, "%s%s %q\n", indent, event.Token.Type, event.Token.Value)
	case EnterEvent:
		fmt.Fprintf(t.w, "%s%s %q\n", indent, event.Rule, event.Token)
	case ExitEvent:
	case ApplyEvent:
		fmt.Fprintf(t.w, "%s%s = %s\n", indent, event.Rule, formatFloat(event.Value))
	}
}

// LogTracer returns a Tracer that logs each event to logger at debug level.
func LogTracer(logger zerolog.Logger) Tracer {
	return &logTracer{logger: logger}
}

type logTracer struct {
	logger zerolog.Logger
}

func (l *logTracer) Record(event Event) {
	e := l.logger.Debug().Int("depth", event.Depth)
	switch event.Kind {
	case TokenEvent:
		e = e.Stringer("type", event.Token.Type).Str("value", event.Token.Value).Stringer("pos", event.Token.Pos)
	case EnterEvent, ExitEvent:
		e = e.Str("rule", event.Rule)
	case ApplyEvent:
		e = e.Str("op", event.Rule).Float64("value", event.Value)
	}
	e.Msg(event.Kind.String())
}
