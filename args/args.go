package args

// Parser owns the registry of named and positional parameters. Named
// parameters keep insertion order for help output and are additionally
// indexed by long and short name for O(1) lookup; positionals form a
// strict sequence. A Parser is not safe for concurrent use.
type Parser struct {
	description string
	exeName     string // derived from argv[0] at parse time

	named      []*Param
	positional []*Param
	byLong     map[string]*Param
	byShort    map[rune]*Param
}

// New creates a parser with the given program description. The
// description is rendered at the top of help output.
func New(description string) *Parser {
	return &Parser{
		description: description,
		byLong:      make(map[string]*Param),
		byShort:     make(map[rune]*Param),
	}
}

// Named registers a required or optional named scalar parameter bound to
// dst. The corresponding argument may be passed as --long value,
// --long=value, or -s value when short is non-zero.
func Named[T Value](p *Parser, dst *T, long string, short rune, help string, presence Presence) (*Param, error) {
	return p.addNamed(&Param{
		long:     long,
		short:    short,
		help:     help,
		required: presence == Required,
		conv:     &scalarValue[T]{dst: dst},
	})
}

// NamedList registers a named list parameter bound to dst. Each
// occurrence appends one element; list contents are cleared at the start
// of every Parse call.
func NamedList[T Value](p *Parser, dst *[]T, long string, short rune, help string, presence Presence) (*Param, error) {
	return p.addNamed(&Param{
		long:     long,
		short:    short,
		help:     help,
		list:     true,
		required: presence == Required,
		conv:     &listValue[T]{dst: dst},
	})
}

// NamedEnum registers a named scalar parameter whose tokens are
// restricted to the given ordered literal set. Unmapped tokens fail with
// a message listing the valid literals.
func NamedEnum[T any](p *Parser, dst *T, long string, short rune, help string, choices []Choice[T], presence Presence) (*Param, error) {
	return p.addNamed(&Param{
		long:     long,
		short:    short,
		help:     help,
		required: presence == Required,
		conv:     &enumValue[T]{dst: dst, choices: choices},
	})
}

// NamedEnumList registers a named list parameter over an ordered literal
// set.
func NamedEnumList[T any](p *Parser, dst *[]T, long string, short rune, help string, choices []Choice[T], presence Presence) (*Param, error) {
	return p.addNamed(&Param{
		long:     long,
		short:    short,
		help:     help,
		list:     true,
		required: presence == Required,
		conv:     &enumListValue[T]{dst: dst, choices: choices},
	})
}

// Flag registers a boolean named parameter that never consumes a value
// token: --long or -s alone sets dst to true. Flags are always optional
// and may appear multiple times.
func Flag(p *Parser, dst *bool, long string, short rune, help string) (*Param, error) {
	return p.addNamed(&Param{
		long:  long,
		short: short,
		help:  help,
		flag:  true,
		conv:  &scalarValue[bool]{dst: dst},
	})
}

// Positional registers a positional scalar parameter. Positionals are
// matched to bare tokens in registration order; name is used only for
// help and error text.
func Positional[T Value](p *Parser, dst *T, name string, help string, presence Presence) (*Param, error) {
	return p.addPositional(&Param{
		long:     name,
		help:     help,
		required: presence == Required,
		conv:     &scalarValue[T]{dst: dst},
	})
}

// PositionalList registers a positional list parameter. It absorbs every
// remaining bare token and must therefore be the last positional.
func PositionalList[T Value](p *Parser, dst *[]T, name string, help string, presence Presence) (*Param, error) {
	return p.addPositional(&Param{
		long:     name,
		help:     help,
		list:     true,
		required: presence == Required,
		conv:     &listValue[T]{dst: dst},
	})
}

// PositionalEnum registers a positional scalar parameter over an ordered
// literal set.
func PositionalEnum[T any](p *Parser, dst *T, name string, help string, choices []Choice[T], presence Presence) (*Param, error) {
	return p.addPositional(&Param{
		long:     name,
		help:     help,
		required: presence == Required,
		conv:     &enumValue[T]{dst: dst, choices: choices},
	})
}

// PositionalEnumList registers a positional list parameter over an
// ordered literal set.
func PositionalEnumList[T any](p *Parser, dst *[]T, name string, help string, choices []Choice[T], presence Presence) (*Param, error) {
	return p.addPositional(&Param{
		long:     name,
		help:     help,
		list:     true,
		required: presence == Required,
		conv:     &enumListValue[T]{dst: dst, choices: choices},
	})
}

// addNamed validates and inserts a named parameter. All checks run
// before any mutation so a failed registration leaves the registry
// untouched.
func (p *Parser) addNamed(param *Param) (*Param, error) {
	if len(param.long) < 2 {
		return nil, &Error{
			Type:    ErrorTypeTooShortName,
			Message: "too short long name parameter: --" + param.long,
			Param:   param.long,
		}
	}
	if _, ok := p.byLong[param.long]; ok {
		return nil, &Error{
			Type:    ErrorTypeDuplicateLongName,
			Message: "repeated parameter long name: " + param.ref(),
			Param:   param.long,
		}
	}
	if param.short != 0 {
		if param.short <= ' ' || param.short > '~' {
			return nil, &Error{
				Type:    ErrorTypeBadShortName,
				Message: "bad short name for parameter: --" + param.long,
				Param:   param.long,
			}
		}
		if _, ok := p.byShort[param.short]; ok {
			return nil, &Error{
				Type:    ErrorTypeDuplicateShortName,
				Message: "repeated parameter short name: " + param.ref(),
				Param:   param.long,
			}
		}
	}

	p.byLong[param.long] = param
	if param.short != 0 {
		p.byShort[param.short] = param
	}
	p.named = append(p.named, param)
	return param, nil
}

// addPositional validates ordering and appends a positional parameter.
// Once an optional positional appears no later positional may be
// required, and nothing may follow a list positional.
func (p *Parser) addPositional(param *Param) (*Param, error) {
	if n := len(p.positional); n > 0 {
		last := p.positional[n-1]
		if last.list {
			return nil, &Error{
				Type:    ErrorTypeBadOrdering,
				Message: "positional list parameter " + last.ref() + " followed by positional parameter <" + param.long + ">",
				Param:   param.long,
			}
		}
		if param.required {
			for _, prev := range p.positional {
				if !prev.required {
					return nil, &Error{
						Type:    ErrorTypeBadOrdering,
						Message: "optional positional parameter " + prev.ref() + " followed by required positional parameter <" + param.long + ">",
						Param:   param.long,
					}
				}
			}
		}
	}

	param.index = len(p.positional) + 1
	p.positional = append(p.positional, param)
	return param, nil
}
