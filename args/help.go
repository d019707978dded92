package args

import (
	"io"
	"strings"
)

// Help rendering is pure read-only formatting over the registry: named
// parameters first in registration order, then positionals in sequence.
// It tolerates an empty registry and raises no errors.

const usageMaxWidth = 80

// WriteHelp renders the full help text: description, usage synopsis, and
// the per-parameter options table.
func (p *Parser) WriteHelp(w io.Writer) {
	p.WriteDescription(w)
	p.WriteUsage(w)
	p.WriteOptions(w)
}

// WriteDescription renders the program description.
func (p *Parser) WriteDescription(w io.Writer) {
	if p.description != "" {
		_, _ = io.WriteString(w, p.description+"\n\n")
	}
}

// WriteUsage renders the usage synopsis, word-wrapped at 80 columns.
// Lines break only between whole parameter tokens, never mid-token.
func (p *Parser) WriteUsage(w io.Writer) {
	var b strings.Builder
	b.WriteString("Usage: " + p.exeName)

	indent := len("Usage: ") + len(p.exeName)
	width := indent

	emit := func(token string) {
		if width+len(token) > usageMaxWidth {
			b.WriteString("\n" + strings.Repeat(" ", indent))
			width = indent
		}
		b.WriteString(token)
		width += len(token)
	}

	for _, param := range p.named {
		emit(" " + namedUsage(param))
	}
	for _, param := range p.positional {
		emit(" " + positionalUsage(param))
	}

	b.WriteString("\n")
	_, _ = io.WriteString(w, b.String())
}

// WriteOptions renders the options table, aligned to the longest label,
// listing the valid literal set for enumerated parameters.
func (p *Parser) WriteOptions(w io.Writer) {
	maxLabel := 0
	for _, param := range p.named {
		if n := len(namedLabel(param)); n > maxLabel {
			maxLabel = n
		}
	}
	for _, param := range p.positional {
		if n := len(positionalLabel(param)); n > maxLabel {
			maxLabel = n
		}
	}

	var b strings.Builder
	b.WriteString("Options:\n")

	row := func(label, help string, valid string) {
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", maxLabel-len(label)+1))
		b.WriteString(help)
		if valid != "" {
			b.WriteString(". Valid values: " + valid)
		}
		b.WriteString("\n")
	}

	for _, param := range p.named {
		row(namedLabel(param), param.help, param.conv.validValues())
	}
	for _, param := range p.positional {
		row(positionalLabel(param), param.help, param.conv.validValues())
	}

	_, _ = io.WriteString(w, b.String())
}

// namedUsage renders one named parameter's usage token: optional
// parameters in brackets, a short/long alternation in parentheses when
// both forms exist, and a " ..." suffix for lists.
func namedUsage(param *Param) string {
	var b strings.Builder

	switch {
	case !param.required:
		b.WriteString("[")
	case param.short != 0:
		b.WriteString("(")
	}

	if param.short != 0 {
		b.WriteString("-" + string(param.short))
		if !param.flag {
			b.WriteString(" <" + param.long + ">")
		}
		b.WriteString(" | ")
	}
	b.WriteString("--" + param.long)
	if !param.flag {
		b.WriteString(" <" + param.long + ">")
	}
	if param.list {
		b.WriteString(" ...")
	}

	switch {
	case !param.required:
		b.WriteString("]")
	case param.short != 0:
		b.WriteString(")")
	}
	return b.String()
}

func positionalUsage(param *Param) string {
	var b strings.Builder
	if !param.required {
		b.WriteString("[")
	}
	b.WriteString("<" + param.long + ">")
	if param.list {
		b.WriteString(" ...")
	}
	if !param.required {
		b.WriteString("]")
	}
	return b.String()
}

func namedLabel(param *Param) string {
	label := "    "
	if param.short != 0 {
		label += "-" + string(param.short) + ", "
	}
	label += "--" + param.long
	if !param.flag {
		label += " <" + param.long + ">"
	}
	return label
}

func positionalLabel(param *Param) string {
	return "    <" + param.long + ">"
}
