package args

import (
	"strconv"
	"strings"
	"time"
)

// Presence controls whether a parameter must appear on the command line.
type Presence int

const (
	// Required parameters must be satisfied by the argument vector.
	Required Presence = iota
	// Optional parameters keep their current binding value when absent.
	Optional
)

// Value is the set of scalar destination types supported by the built-in
// converter. Integers parse as strict base-10, durations via
// time.ParseDuration, strings verbatim (the whole token, spaces included).
type Value interface {
	string | int | int64 | uint | uint64 | float64 | bool | time.Duration
}

// Choice maps one command-line literal to a value of type T. The order of
// a []Choice drives the valid-values listing in errors and help output.
type Choice[T any] struct {
	Name  string
	Value T
}

// converter consumes one textual token into the bound destination.
// Implementations are the scalar/list/enum variants below.
type converter interface {
	convert(token string) error
	// validValues returns the comma-separated literal set for enumerated
	// parameters, or "" for free-form ones.
	validValues() string
	// clear resets list contents at the start of a Parse call; no-op for
	// scalar destinations.
	clear()
}

// Param represents one registered parameter: its identity, cardinality,
// requiredness, and parse state. Params are owned by the Parser registry
// for its entire lifetime; the pointer returned at registration is a
// non-owning handle.
type Param struct {
	long     string
	short    rune // 0 when absent; named parameters only
	help     string
	index    int // 1-based for positionals, 0 for named
	list     bool
	required bool
	flag     bool
	conv     converter
	parsed   bool // reset at the start of each Parse call
}

// ref renders the parameter reference used in error messages:
// "-s/--name" or "--name" for named parameters, "#2 <name>" for
// positionals.
func (p *Param) ref() string {
	if p.index != 0 {
		return "#" + strconv.Itoa(p.index) + " <" + p.long + ">"
	}
	if p.short != 0 {
		return "-" + string(p.short) + "/--" + p.long
	}
	return "--" + p.long
}

// Scalar converter: parses one token into *T and overwrites it.

type scalarValue[T Value] struct {
	dst *T
}

func (s *scalarValue[T]) convert(token string) error {
	v, err := parseToken[T](token)
	if err != nil {
		return err
	}
	*s.dst = v
	return nil
}

func (s *scalarValue[T]) validValues() string { return "" }
func (s *scalarValue[T]) clear()              {}

// List converter: each successful conversion appends one element.

type listValue[T Value] struct {
	dst *[]T
}

func (l *listValue[T]) convert(token string) error {
	v, err := parseToken[T](token)
	if err != nil {
		return err
	}
	*l.dst = append(*l.dst, v)
	return nil
}

func (l *listValue[T]) validValues() string { return "" }

func (l *listValue[T]) clear() {
	*l.dst = (*l.dst)[:0]
}

// Enum converters: case-sensitive lookup in an ordered literal set.

type enumValue[T any] struct {
	dst     *T
	choices []Choice[T]
}

func (e *enumValue[T]) convert(token string) error {
	v, err := lookupChoice(e.choices, token)
	if err != nil {
		return err
	}
	*e.dst = v
	return nil
}

func (e *enumValue[T]) validValues() string { return choiceNames(e.choices) }
func (e *enumValue[T]) clear()              {}

type enumListValue[T any] struct {
	dst     *[]T
	choices []Choice[T]
}

func (e *enumListValue[T]) convert(token string) error {
	v, err := lookupChoice(e.choices, token)
	if err != nil {
		return err
	}
	*e.dst = append(*e.dst, v)
	return nil
}

func (e *enumListValue[T]) validValues() string { return choiceNames(e.choices) }

func (e *enumListValue[T]) clear() {
	*e.dst = (*e.dst)[:0]
}

func lookupChoice[T any](choices []Choice[T], token string) (T, error) {
	for _, c := range choices {
		if c.Name == token {
			return c.Value, nil
		}
	}
	var zero T
	return zero, &Error{Type: ErrorTypeBadArgument, Message: "unknown literal: " + token, Token: token}
}

func choiceNames[T any](choices []Choice[T]) string {
	names := make([]string, len(choices))
	for i, c := range choices {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}

// parseToken converts one token into a scalar value of type T using the
// type's canonical textual representation.
func parseToken[T Value](token string) (T, error) {
	var v T
	switch dst := any(&v).(type) {
	case *string:
		*dst = token
	case *int:
		n, err := strconv.ParseInt(token, 10, strconv.IntSize)
		if err != nil {
			return v, err
		}
		*dst = int(n)
	case *int64:
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return v, err
		}
		*dst = n
	case *uint:
		n, err := strconv.ParseUint(token, 10, strconv.IntSize)
		if err != nil {
			return v, err
		}
		*dst = uint(n)
	case *uint64:
		n, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			return v, err
		}
		*dst = n
	case *float64:
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return v, err
		}
		*dst = f
	case *bool:
		b, err := strconv.ParseBool(token)
		if err != nil {
			return v, err
		}
		*dst = b
	case *time.Duration:
		d, err := time.ParseDuration(token)
		if err != nil {
			return v, err
		}
		*dst = d
	}
	return v, nil
}
