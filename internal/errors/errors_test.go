package errors_test

import (
	"strings"
	"testing"

	"github.com/RuralBrick/brewin-interpreter/internal/errors"
)

func TestConstructorsSetKindAndLine(t *testing.T) {
	cases := []struct {
		name string
		err  *errors.BrewinError
		kind errors.Kind
	}{
		{"syntax", errors.NewSyntax(3, "bad form"), errors.Syntax},
		{"type", errors.NewType(4, "bad type"), errors.Type},
		{"name", errors.NewName(5, "bad name"), errors.Name},
		{"fault", errors.NewFault(6, "bad fault"), errors.Fault},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.err.Kind != c.kind {
				t.Errorf("kind = %s, want %s", c.err.Kind, c.kind)
			}
			if !strings.Contains(c.err.Error(), c.err.Message) {
				t.Errorf("Error() = %q, want it to contain message %q", c.err.Error(), c.err.Message)
			}
		})
	}
}

func TestConstructorsFormatMessage(t *testing.T) {
	err := errors.NewType(1, "unknown type '%s'", "nonesuch")
	if err.Message != "unknown type 'nonesuch'" {
		t.Errorf("Message = %q", err.Message)
	}
}
