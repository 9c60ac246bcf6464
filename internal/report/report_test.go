package report_test

import (
	"strings"
	"testing"

	"github.com/RuralBrick/brewin-interpreter/internal/errors"
	"github.com/RuralBrick/brewin-interpreter/internal/report"
)

func TestFromErrorCopiesFields(t *testing.T) {
	err := errors.NewFault(7, "boom")
	rep := report.FromError(err)
	if rep.Kind != "FAULT" || rep.Line != 7 || rep.Message != "boom" {
		t.Errorf("got %+v", rep)
	}
}

func TestFromErrorNilIsNil(t *testing.T) {
	if report.FromError(nil) != nil {
		t.Error("FromError(nil) should return nil")
	}
}

func TestErrorReportYAMLContainsFields(t *testing.T) {
	rep := report.FromError(errors.NewType(3, "bad type"))
	text, err := rep.YAML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"kind: TYPE", "line: 3", "bad type"} {
		if !strings.Contains(text, want) {
			t.Errorf("YAML output %q missing %q", text, want)
		}
	}
}

func TestRunReportYAMLIncludesOutput(t *testing.T) {
	rep := &report.RunReport{Output: []string{"hello", "world"}}
	text, err := rep.YAML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "hello") || !strings.Contains(text, "world") {
		t.Errorf("YAML output %q missing recorded output lines", text)
	}
}
