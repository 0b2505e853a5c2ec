// Package profile implements the build-time profile compiler: it loads the
// two tabular schema files (type catalog and message catalog) into an
// in-memory model (this file), and emits that model as a static lookup
// artifact the runtime decoder links against (emit.go).
package profile

//go:generate go run ./gen -types data/types.csv -messages data/messages.csv -out profile_gen.go

import "github.com/vililahtevanoja/fit-parser/internal/fit/wire"

// Member is one named, valued entry of an EnumType or ValueSetType.
type Member struct {
	Name    string
	Value   uint32
	Comment string
}

// Deprecated reports whether the member's comment marks it deprecated
// (case-insensitive "deprecated" prefix). Deprecated members are kept in
// the loader's intermediate model but dropped from the emitted artifact.
func (m Member) Deprecated() bool {
	return hasDeprecatedPrefix(m.Comment)
}

// EnumType is a named enumeration over an unsigned integer base type.
type EnumType struct {
	Name     string
	BaseType wire.BaseType
	Members  []Member
}

// ValueSetType is a named non-enum integral type: its members are
// surfaced as named constants of the underlying integer width rather than
// a closed sum.
type ValueSetType struct {
	Name     string
	BaseType wire.BaseType
	Members  []Member
}

// ArrayKind classifies a FieldSpec's cardinality.
type ArrayKind int

const (
	NotArray ArrayKind = iota
	FixedArray
	VariableArray
)

// RefField pairs a referent field name with the referent value that
// selects this field as a dynamic sub-field.
type RefField struct {
	Name  string
	Value string
}

// FieldSpec is one field of a MessageSchema.
type FieldSpec struct {
	Category         string
	DefinitionNumber uint8
	Name             string
	FieldType        string // profile type name: a base type, an EnumType, or a ValueSetType
	Array            ArrayKind
	ArrayLen         int // valid when Array == FixedArray
	Scale            []float64
	DefaultScale     bool // true if Scale is the implied [1.0] default
	Offset           int16
	Components       []string
	Units            []string
	Bits             []uint8
	Accumulate       []uint8
	RefFields        []RefField
	Comment          string
	Example          *uint8
}

// MessageSchema is a named global message: an ordered list of fields,
// keyed by definition number at lookup time.
type MessageSchema struct {
	Name    string
	Comment string
	Fields  []FieldSpec
}

// FieldByNumber finds a field by its definition number, or false if the
// message has no field with that number (profile miss — not an error).
func (m MessageSchema) FieldByNumber(n uint8) (FieldSpec, bool) {
	for _, f := range m.Fields {
		if f.DefinitionNumber == n {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Profile is the complete compiled catalog: every global message keyed by
// number (when the mesg_num enum names it) or by name, plus every named
// enumeration and value-set type referenced by field_type columns.
type Profile struct {
	MessagesByNumber map[uint16]MessageSchema
	MessagesByName   map[string]MessageSchema
	Enums            map[string]EnumType
	ValueSets        map[string]ValueSetType
}

// MessageByNumber looks up a message by its global message number. The
// bool is false on a profile miss, which is not an error.
func (p *Profile) MessageByNumber(n uint16) (MessageSchema, bool) {
	m, ok := p.MessagesByNumber[n]
	return m, ok
}

// EnumMemberName resolves an integer value to its member name within the
// named EnumType, or false if the type is unknown or has no such member.
func (p *Profile) EnumMemberName(typeName string, value uint32) (string, bool) {
	et, ok := p.Enums[typeName]
	if !ok {
		return "", false
	}
	for _, m := range et.Members {
		if m.Value == value {
			return m.Name, true
		}
	}
	return "", false
}

// exampleValue returns a pointer to v; used by the generated artifact to
// populate FieldSpec.Example, which can't be written as a struct-literal
// address-of-constant directly.
func exampleValue(v uint8) *uint8 {
	return &v
}

func hasDeprecatedPrefix(comment string) bool {
	if len(comment) < len("deprecated") {
		return false
	}
	for i := 0; i < len("deprecated"); i++ {
		c := comment[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != "deprecated"[i] {
			return false
		}
	}
	return true
}
