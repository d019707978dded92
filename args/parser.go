package args

import (
	"path/filepath"
	"strings"

	"github.com/over9000/go-args/internal/fuzzy"
)

// The parser synthesizes this token when a flag switch appears, so flags
// go through the same conversion path as every other parameter.
const trueToken = "true"

// Parse interprets the raw argument vector. argv[0] is the program
// invocation path, used only to derive the display name for usage text;
// subsequent elements are interpreted left to right.
//
// Parse resets every parameter's parse state (and clears list bindings)
// at entry, so the same Parser may be invoked repeatedly. On failure the
// first violation is returned as *Error; conversions already written to
// caller variables before the failing token are not rolled back.
func (p *Parser) Parse(argv []string) error {
	var tokens []string
	if len(argv) > 0 {
		p.exeName = filepath.Base(argv[0])
		tokens = argv[1:]
	}

	// Reset parameter state so repeated Parse calls start clean.
	for _, param := range p.named {
		param.parsed = false
		param.conv.clear()
	}
	for _, param := range p.positional {
		param.parsed = false
		param.conv.clear()
	}

	var pending *Param // named parameter awaiting its value token
	cursor := 0        // index of the next positional parameter

	for _, token := range tokens {
		switch {
		case pending != nil:
			if err := p.applyToken(pending, token); err != nil {
				return err
			}
			pending = nil

		case len(token) < 2 || token[0] != '-':
			// Bare value: positional. A lone "-" is a value too.
			if cursor >= len(p.positional) {
				return &Error{
					Type:    ErrorTypeUnexpectedArgument,
					Message: "unexpected argument: " + token,
					Token:   token,
				}
			}
			param := p.positional[cursor]
			if err := p.applyToken(param, token); err != nil {
				return err
			}
			// A list positional absorbs every remaining bare token.
			if !param.list {
				cursor++
			}

		case len(token) == 2:
			// -s[ value]
			param, ok := p.byShort[rune(token[1])]
			if !ok {
				return &Error{
					Type:    ErrorTypeUnexpectedArgument,
					Message: "unexpected argument: " + token,
					Token:   token,
				}
			}
			if param.flag {
				if err := p.applyToken(param, trueToken); err != nil {
					return err
				}
				continue
			}
			pending = param

		case token[1] == '-':
			// --long-opt[=value| value]
			name := token[2:]
			if eq := strings.IndexByte(name, '='); eq >= 0 {
				value := name[eq+1:]
				name = name[:eq]
				param, ok := p.byLong[name]
				if !ok {
					return p.unknownLongError(name)
				}
				if err := p.applyToken(param, value); err != nil {
					return err
				}
				continue
			}
			param, ok := p.byLong[name]
			if !ok {
				return p.unknownLongError(name)
			}
			if param.flag {
				if err := p.applyToken(param, trueToken); err != nil {
					return err
				}
				continue
			}
			pending = param

		default:
			// -xyz: a dash-prefixed token that is neither a short option
			// nor a long option.
			return &Error{
				Type:    ErrorTypeBadArgument,
				Message: "bad argument: " + token,
				Token:   token,
			}
		}
	}

	if pending != nil {
		return &Error{
			Type:    ErrorTypeMissingArgument,
			Message: "missing value for argument: " + pending.ref(),
			Param:   pending.long,
		}
	}

	for _, param := range p.named {
		if param.required && !param.parsed {
			return &Error{
				Type:    ErrorTypeMissingArgument,
				Message: "missing argument: " + param.ref(),
				Param:   param.long,
			}
		}
	}
	for _, param := range p.positional {
		if param.required && !param.parsed {
			return &Error{
				Type:    ErrorTypeMissingPositional,
				Message: "missing positional argument " + param.ref(),
				Param:   param.long,
			}
		}
	}
	return nil
}

// applyToken converts one value token into the parameter's binding.
// Repeating a scalar named argument is an error; flags are idempotent
// and lists accumulate.
func (p *Parser) applyToken(param *Param, token string) error {
	if param.parsed && !param.list && !param.flag {
		return &Error{
			Type:    ErrorTypeRepeatedArgument,
			Message: "repeated argument: " + param.ref(),
			Param:   param.long,
			Token:   token,
		}
	}

	if err := param.conv.convert(token); err != nil {
		msg := "bad argument " + param.ref() + ": " + token
		if param.index != 0 {
			msg = "bad positional argument " + param.ref() + ": " + token
		}
		if valid := param.conv.validValues(); valid != "" {
			msg += ". Valid values: " + valid
		}
		return &Error{
			Type:    ErrorTypeBadArgument,
			Message: msg,
			Param:   param.long,
			Token:   token,
		}
	}

	param.parsed = true
	return nil
}

// unknownLongError builds the unexpected-argument error for an unknown
// long option, with a fuzzy-matched suggestion when a registered name is
// close enough.
func (p *Parser) unknownLongError(name string) *Error {
	err := &Error{
		Type:    ErrorTypeUnexpectedArgument,
		Message: "unexpected argument: --" + name,
		Token:   "--" + name,
	}

	candidates := make([]string, 0, len(p.named))
	for _, param := range p.named {
		candidates = append(candidates, param.long)
	}
	if best := fuzzy.FindBestParam(name, candidates, 2); best != "" {
		err.Suggestion = best
		err.Message += " (did you mean '--" + best + "'?)"
	}
	return err
}
