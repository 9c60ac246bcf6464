// Package runtime holds Brewin's pure runtime data model: values, typed
// variable slots, lexical frames, class/object metadata, and the template
// engine. It knows nothing about evaluation — running statement and
// expression AST nodes lives in internal/interp, which imports this
// package, never the other way around, mirroring the teacher's split
// between internal/interp (evaluation) and internal/interp/runtime (value
// types) — see internal/interp/runtime/primitives.go and object.go in the
// teacher repo.
package runtime

import "strconv"

// Kind tags a Value's raw shape. spec.md §3 calls this "raw kind k".
type Kind int

const (
	KindInt Kind = iota
	KindString
	KindBool
	KindObject
	KindNull
	// KindVoid is not one of spec.md's value cases; it is the internal
	// sentinel a void method call produces, distinguishable so that
	// using it where a value is required raises TYPE (spec.md §4.6).
	KindVoid
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindObject:
		return "object"
	case KindNull:
		return "null"
	case KindVoid:
		return "void"
	default:
		return "unknown"
	}
}

// Value is a tagged runtime value. Every value also carries an optional
// declared type tag (spec.md §3) recording the static type of the slot
// that most recently produced it; WithTag returns a copy carrying a new
// tag, the way Variable.Set re-tags a value on every assignment (§4.3).
type Value interface {
	Kind() Kind
	Tag() string
	WithTag(tag string) Value
	String() string
}

// IntValue is a Brewin int.
type IntValue struct {
	N   int64
	tag string
}

func NewInt(n int64) IntValue { return IntValue{N: n} }

func (v IntValue) Kind() Kind             { return KindInt }
func (v IntValue) Tag() string            { return v.tag }
func (v IntValue) WithTag(tag string) Value { v.tag = tag; return v }
func (v IntValue) String() string         { return strconv.FormatInt(v.N, 10) }

// StringValue is a Brewin string. Value holds the unquoted textual
// content; the surrounding quotes are stripped by the evaluator at the
// point a quoted literal is read (spec.md §4.6).
type StringValue struct {
	S   string
	tag string
}

func NewString(s string) StringValue { return StringValue{S: s} }

func (v StringValue) Kind() Kind             { return KindString }
func (v StringValue) Tag() string            { return v.tag }
func (v StringValue) WithTag(tag string) Value { v.tag = tag; return v }
func (v StringValue) String() string         { return v.S }

// BoolValue is a Brewin bool.
type BoolValue struct {
	B   bool
	tag string
}

func NewBool(b bool) BoolValue { return BoolValue{B: b} }

func (v BoolValue) Kind() Kind             { return KindBool }
func (v BoolValue) Tag() string            { return v.tag }
func (v BoolValue) WithTag(tag string) Value { v.tag = tag; return v }
func (v BoolValue) String() string {
	if v.B {
		return "true"
	}
	return "false"
}

// NullValue is the Brewin null reference. Its tag records the declared
// class type of the slot it came from, so equality and assignment can
// reason about relatedness without a live object to consult (spec.md
// §4.2: "If v is Null and v carries a tag τ that is a class, τ must
// itself be assignable to D.").
type NullValue struct {
	tag string
}

func NewNull(tag string) NullValue { return NullValue{tag: tag} }

func (v NullValue) Kind() Kind             { return KindNull }
func (v NullValue) Tag() string            { return v.tag }
func (v NullValue) WithTag(tag string) Value { v.tag = tag; return v }
func (v NullValue) String() string         { return "null" }

// ObjectValue is a live reference to an Object. Equality is reference
// identity on Obj (spec.md §3).
type ObjectValue struct {
	Obj *Object
	tag string
}

func NewObjectValue(o *Object) ObjectValue { return ObjectValue{Obj: o} }

func (v ObjectValue) Kind() Kind             { return KindObject }
func (v ObjectValue) Tag() string            { return v.tag }
func (v ObjectValue) WithTag(tag string) Value { v.tag = tag; return v }
func (v ObjectValue) String() string {
	return v.Obj.Class.Name
}

// VoidValue is produced by a call to a void method. It is never a valid
// value for a variable slot (spec.md §4.2: "a variable slot may not be
// void"); using it as an operand or assigning it is always a TYPE error.
type VoidValue struct{}

func (v VoidValue) Kind() Kind               { return KindVoid }
func (v VoidValue) Tag() string              { return "" }
func (v VoidValue) WithTag(tag string) Value { return v }
func (v VoidValue) String() string           { return "" }

// SuperRef is not one of spec.md's value *cases* — it never lives in a
// variable slot — but it is the value the `super` expression evaluates
// to (spec.md §4.6): the receiver, marked so that a subsequent `call`
// dispatch starts at StartClass instead of Obj.Class.
type SuperRef struct {
	Obj        *Object
	StartClass *ClassDef
}

func (v SuperRef) Kind() Kind               { return KindObject }
func (v SuperRef) Tag() string              { return "" }
func (v SuperRef) WithTag(tag string) Value { return v }
func (v SuperRef) String() string           { return v.Obj.Class.Name }

// IsPrimitiveType reports whether t names one of Brewin's three
// primitive types.
func IsPrimitiveType(t string) bool {
	return t == "int" || t == "string" || t == "bool"
}
