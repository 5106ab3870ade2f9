package hover

import "errors"

// DefaultContent is the template used when none is configured.
const DefaultContent = "%s | X: %x | Y: %y"

// ErrGeneratorNotSerializable is returned when marshaling a generator template.
var ErrGeneratorNotSerializable = errors.New("hover: generator template cannot be serialized")

// Generator produces the whole tooltip text from the raw point values.
type Generator func(label string, x, y Value) string

// Template is either a literal with placeholders or a generator.
// The zero Template is "absent".
type Template struct {
	set     bool
	literal string
	gen     Generator
}

// Literal returns a placeholder template.
func Literal(s string) Template { return Template{set: true, literal: s} }

// Generate returns a generator template. A nil generator yields the zero
// Template.
func Generate(g Generator) Template {
	if g == nil {
		return Template{}
	}
	return Template{set: true, gen: g}
}

// IsZero reports whether t is absent.
func (t Template) IsZero() bool { return !t.set }

// IsGenerator reports whether t is a generator.
func (t Template) IsGenerator() bool { return t.gen != nil }

// Text returns the literal text. Generators and the zero Template return "".
func (t Template) Text() string { return t.literal }

// Generator returns the generator, or nil for literals.
func (t Template) Generator() Generator { return t.gen }

// Or returns t unless it is absent, in which case fallback is returned.
func (t Template) Or(fallback Template) Template {
	if t.set {
		return t
	}
	return fallback
}

// MarshalText implements encoding.TextMarshaler for literal templates.
func (t Template) MarshalText() ([]byte, error) {
	if t.gen != nil {
		return nil, ErrGeneratorNotSerializable
	}
	return []byte(t.literal), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The result is always a
// literal.
func (t *Template) UnmarshalText(b []byte) error {
	*t = Literal(string(b))
	return nil
}
