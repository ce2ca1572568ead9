package parser

import (
	"strconv"
	"strings"
)

// Printer renders a literal value tree back to source text. Lists and
// object fields render in the order the tree carries them; the printer
// imposes no ordering of its own.
type Printer struct{}

func NewPrinter() *Printer {
	return &Printer{}
}

func (p *Printer) Print(value Spanning[InputValue]) string {
	out := new(strings.Builder)
	p.print(out, value.Item)
	return out.String()
}

func (p *Printer) print(out *strings.Builder, value InputValue) {
	switch v := value.(type) {
	case InputInt:
		_, _ = out.WriteString(strconv.FormatInt(int64(v), 10))
	case InputFloat:
		_, _ = out.WriteString(formatFloat(float64(v)))
	case InputString:
		_, _ = out.WriteString(strconv.Quote(string(v)))
	case InputBoolean:
		_, _ = out.WriteString(strconv.FormatBool(bool(v)))
	case InputEnum:
		_, _ = out.WriteString(string(v))
	case InputVariable:
		_, _ = out.WriteString("$")
		_, _ = out.WriteString(string(v))
	case InputList:
		_, _ = out.WriteString("[")
		for i, item := range v {
			if i > 0 {
				_, _ = out.WriteString(", ")
			}
			p.print(out, item.Item)
		}
		_, _ = out.WriteString("]")
	case InputObject:
		_, _ = out.WriteString("{")
		for i, field := range v {
			if i > 0 {
				_, _ = out.WriteString(", ")
			}
			_, _ = out.WriteString(field.Key.Item)
			_, _ = out.WriteString(": ")
			p.print(out, field.Value.Item)
		}
		_, _ = out.WriteString("}")
	default:
		// InputNull, and the nil interface.
		_, _ = out.WriteString("null")
	}
}

// formatFloat keeps float output distinguishable from int output.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !strings.ContainsAny(s, "IN") {
		s += ".0"
	}
	return s
}
