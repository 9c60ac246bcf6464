package interp_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/RuralBrick/brewin-interpreter/internal/host"
	"github.com/RuralBrick/brewin-interpreter/internal/interp"
)

// runProgram parses, loads, and executes source against queued input,
// returning the captured output and the terminating error, if any.
func runProgram(t *testing.T, source string, input ...string) (string, *hostFailure) {
	t.Helper()
	in := host.NewQueuedInput(input...)
	out := &host.RecordingOutput{}
	sink := &host.PanicSink{}
	interp.Run(source, in, out, sink)
	if sink.Err != nil {
		return out.String(), &hostFailure{Kind: string(sink.Err.Kind), Line: sink.Err.Line}
	}
	return out.String(), nil
}

type hostFailure struct {
	Kind string
	Line int
}

// TestFactorialWithInput covers spec.md §8 scenario 1.
func TestFactorialWithInput(t *testing.T) {
	source := `
(class main
  (field int n 0)
  (field int r 1)
  (method void main ()
    (begin
      (print "Enter a number: ")
      (inputi n)
      (call me factorial n)
      (print n " factorial is " r)))
  (method void factorial ((int n))
    (begin
      (while (> n 0)
        (begin
          (set r (* r n))
          (set n (- n 1)))))))
`
	out, fail := runProgram(t, source, "5")
	if fail != nil {
		t.Fatalf("unexpected failure: %+v", fail)
	}
	snaps.MatchSnapshot(t, out)
}

// TestInheritancePolymorphism covers spec.md §8 scenario 2.
func TestInheritancePolymorphism(t *testing.T) {
	source := `
(class person
  (field string name "jane")
  (method void say () (print name " says hi")))
(class student inherits person
  (method void say () (print "Can I have a project extension?")))
(class main
  (field person p null)
  (method void main ()
    (begin
      (set p (new student))
      (call p say))))
`
	out, fail := runProgram(t, source)
	if fail != nil {
		t.Fatalf("unexpected failure: %+v", fail)
	}
	snaps.MatchSnapshot(t, out)
}

// TestSuperPreservesReceiver covers spec.md §8 scenario 3.
func TestSuperPreservesReceiver(t *testing.T) {
	source := `
(class mammal
  (method mammal getMe () (return me)))
(class person inherits mammal)
(class student inherits person
  (method mammal getMe () (return (call super getMe))))
(class main
  (field student s null)
  (method void main ()
    (begin
      (set s (new student))
      (print (== s (call s getMe))))))
`
	out, fail := runProgram(t, source)
	if fail != nil {
		t.Fatalf("unexpected failure: %+v", fail)
	}
	snaps.MatchSnapshot(t, out)
}

// TestTryThrowConcatenation covers spec.md §8 scenario 4.
func TestTryThrowConcatenation(t *testing.T) {
	source := `
(class main
  (method void main ()
    (try
      (throw (+ "Hello," " World!"))
      (print exception))))
`
	out, fail := runProgram(t, source)
	if fail != nil {
		t.Fatalf("unexpected failure: %+v", fail)
	}
	snaps.MatchSnapshot(t, out)
}

// TestUncaughtExceptionSurfacesAsFault covers spec.md §8 scenario 5.
func TestUncaughtExceptionSurfacesAsFault(t *testing.T) {
	source := `
(class main
  (method void main ()
    (throw "x")))
`
	_, fail := runProgram(t, source)
	if fail == nil {
		t.Fatal("expected a FAULT failure")
	}
	if fail.Kind != "FAULT" {
		t.Fatalf("expected FAULT, got %s", fail.Kind)
	}
}

// TestTemplateInstantiationTypeCheck covers spec.md §8 scenario 6.
func TestTemplateInstantiationTypeCheck(t *testing.T) {
	validSource := `
(tclass box (T)
  (field T v)
  (method T get () (return v)))
(class main
  (field box@int b null)
  (method void main () (print "ok")))
`
	out, fail := runProgram(t, validSource)
	if fail != nil {
		t.Fatalf("unexpected failure: %+v", fail)
	}
	snaps.MatchSnapshot(t, out)

	invalidSource := `
(tclass box (T)
  (field T v)
  (method T get () (return v)))
(class main
  (field box@nonesuch b)
  (method void main () (print "ok")))
`
	_, fail = runProgram(t, invalidSource)
	if fail == nil {
		t.Fatal("expected a TYPE failure")
	}
	if fail.Kind != "TYPE" {
		t.Fatalf("expected TYPE, got %s", fail.Kind)
	}
}
