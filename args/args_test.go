//nolint:testpackage // using package name 'args' to access unexported fields for testing
package args

import (
	"errors"
	"strings"
	"testing"
)

func mustRegister(t *testing.T, _ *Param, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}
}

func wantErrorType(t *testing.T, err error, typ ErrorType) *Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", typ)
	}
	argErr := &Error{}
	if !errors.As(err, &argErr) {
		t.Fatalf("expected *args.Error, got %T: %v", err, err)
	}
	if argErr.Type != typ {
		t.Fatalf("expected error type %s, got %s (%s)", typ, argErr.Type, argErr.Message)
	}
	return argErr
}

func TestTooShortLongName(t *testing.T) {
	p := New("test")

	var s string
	_, err := Named(p, &s, "s", 0, "String", Required)
	wantErrorType(t, err, ErrorTypeTooShortName)
}

func TestDuplicateLongName(t *testing.T) {
	p := New("test")

	var s1, s2 string
	param1, err1 := Named(p, &s1, "string1", 's', "String 1.1", Required)
	mustRegister(t, param1, err1)

	_, err := Named(p, &s2, "string1", 0, "String 1.2", Required)
	wantErrorType(t, err, ErrorTypeDuplicateLongName)
}

func TestDuplicateShortName(t *testing.T) {
	p := New("test")

	var s1, s2 string
	param2, err2 := Named(p, &s1, "string1", 's', "String 1", Required)
	mustRegister(t, param2, err2)

	_, err := Named(p, &s2, "string2", 's', "String 2", Required)
	wantErrorType(t, err, ErrorTypeDuplicateShortName)
}

func TestBadShortName(t *testing.T) {
	p := New("test")

	tests := []struct {
		name  string
		short rune
	}{
		{"control character", '\x01'},
		{"space", ' '},
		{"non-ascii", rune(128)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var i int
			_, err := Named(p, &i, "param", tt.short, "Param", Required)
			wantErrorType(t, err, ErrorTypeBadShortName)
		})
	}
}

// A failed registration must leave the registry untouched.
func TestFailedRegistrationDoesNotMutateRegistry(t *testing.T) {
	p := New("test")

	var s1, s2 string
	param3, err3 := Named(p, &s1, "string1", 's', "String 1", Optional)
	mustRegister(t, param3, err3)

	_, err := Named(p, &s2, "string2", 's', "String 2", Optional)
	wantErrorType(t, err, ErrorTypeDuplicateShortName)

	// The rejected long name must not resolve.
	err = p.Parse([]string{"exe", "--string2", "x"})
	wantErrorType(t, err, ErrorTypeUnexpectedArgument)

	// The surviving registration still works.
	if err := p.Parse([]string{"exe", "--string1", "ok"}); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if s1 != "ok" {
		t.Errorf("expected s1=ok, got %q", s1)
	}
}

func TestRequiredPositionalAfterOptionalPositional(t *testing.T) {
	p := New("test")

	var i1, i2 int
	param4, err4 := Positional(p, &i1, "i1", "Integer 1", Optional)
	mustRegister(t, param4, err4)

	_, err := Positional(p, &i2, "i2", "Integer 2", Required)
	wantErrorType(t, err, ErrorTypeBadOrdering)

	// Optional after optional is fine.
	param5, err5 := Positional(p, &i2, "i2", "Integer 2", Optional)
	mustRegister(t, param5, err5)
}

func TestAnyPositionalAfterPositionalList(t *testing.T) {
	p := New("test")

	var list1 []int
	param6, err6 := PositionalList(p, &list1, "list1", "List 1", Required)
	mustRegister(t, param6, err6)

	var i int
	_, err := Positional(p, &i, "int2", "Integer 2", Required)
	wantErrorType(t, err, ErrorTypeBadOrdering)
	_, err = Positional(p, &i, "int2", "Integer 2", Optional)
	wantErrorType(t, err, ErrorTypeBadOrdering)

	var list2 []int
	_, err = PositionalList(p, &list2, "list2", "List 2", Required)
	wantErrorType(t, err, ErrorTypeBadOrdering)
	_, err = PositionalList(p, &list2, "list2", "List 2", Optional)
	wantErrorType(t, err, ErrorTypeBadOrdering)
}

func TestPositionalIndexIsOneBased(t *testing.T) {
	p := New("test")

	var a, b string
	first, err := Positional(p, &a, "first", "First", Required)
	mustRegister(t, first, err)
	second, err := Positional(p, &b, "second", "Second", Required)
	mustRegister(t, second, err)

	if first.index != 1 || second.index != 2 {
		t.Errorf("expected indices 1 and 2, got %d and %d", first.index, second.index)
	}
}

// Scenario from the package documentation: required named parameters mixed
// with a required positional, in both orders.
func TestNamedAndPositionalScenario(t *testing.T) {
	p := New("test")

	var name1, name2, pos string
	param7, err7 := Named(p, &name1, "name1", 0, "Name 1", Required)
	mustRegister(t, param7, err7)
	param8, err8 := Named(p, &name2, "name2", 's', "Name 2", Required)
	mustRegister(t, param8, err8)
	param9, err9 := Positional(p, &pos, "pos", "Positional", Required)
	mustRegister(t, param9, err9)

	if err := p.Parse([]string{"exe", "--name1", "a b c", "-s", "s2", "pos1"}); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if name1 != "a b c" || name2 != "s2" || pos != "pos1" {
		t.Errorf("got name1=%q name2=%q pos=%q", name1, name2, pos)
	}

	// Positional values may precede named tokens.
	if err := p.Parse([]string{"exe", "pos1", "--name1", "a", "-s", "b"}); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if name1 != "a" || name2 != "b" || pos != "pos1" {
		t.Errorf("got name1=%q name2=%q pos=%q", name1, name2, pos)
	}
}

func TestOptionalEnumKeepsDefault(t *testing.T) {
	p := New("test")

	level := 0
	param10, err10 := NamedEnum(p, &level, "level", 0, "Level",
		[]Choice[int]{{"v1", 1}, {"v2", 2}}, Optional)
	mustRegister(t, param10, err10)

	if err := p.Parse([]string{"exe"}); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if level != 0 {
		t.Errorf("expected default 0, got %d", level)
	}

	if err := p.Parse([]string{"exe", "--level=v2"}); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if level != 2 {
		t.Errorf("expected 2, got %d", level)
	}

	err := p.Parse([]string{"exe", "--level=bogus"})
	argErr := wantErrorType(t, err, ErrorTypeBadArgument)
	if want := "v1, v2"; !strings.Contains(argErr.Message, want) {
		t.Errorf("expected message to list %q, got %q", want, argErr.Message)
	}
}

func TestMissingRequiredNamed(t *testing.T) {
	p := New("test")

	var s1, s2 string
	param11, err11 := Named(p, &s1, "s1value", 0, "String", Required)
	mustRegister(t, param11, err11)
	param12, err12 := Named(p, &s2, "s2value", 's', "String", Required)
	mustRegister(t, param12, err12)

	err := p.Parse([]string{"exe", "--s2value", "s2"})
	argErr := wantErrorType(t, err, ErrorTypeMissingArgument)
	if argErr.Param != "s1value" {
		t.Errorf("expected missing parameter s1value, got %q", argErr.Param)
	}
}

func TestMissingRequiredPositional(t *testing.T) {
	p := New("test")

	var pos string
	param13, err13 := Positional(p, &pos, "input", "Input", Required)
	mustRegister(t, param13, err13)

	err := p.Parse([]string{"exe"})
	argErr := wantErrorType(t, err, ErrorTypeMissingPositional)
	if argErr.Param != "input" {
		t.Errorf("expected missing parameter input, got %q", argErr.Param)
	}
}
