package model

// ValueKind discriminates the decoded shape of a ResolvedValue.
type ValueKind uint8

const (
	KindInt ValueKind = iota
	KindUint
	KindFloat
	KindString
	KindBytes
	KindArray
)

// Element is a single scalar decoded out of a multi-element field. It
// never itself holds an Array — arrays are flat, one level deep, as the
// wire format has no nested arrays.
type Element struct {
	Kind      ValueKind
	Int       int64
	Uint      uint64
	Float     float64
	IsInvalid bool
}

// ResolvedValue is one field's decoded value, with as much profile
// metadata attached as the loaded profile could supply. FieldName is nil
// when the profile had no matching FieldSpec for this definition number —
// that is a normal, non-error outcome (see §7 propagation policy).
type ResolvedValue struct {
	DefinitionNumber uint8
	FieldName        *string
	Units            string
	EnumName         string // non-empty when the field_type names an EnumType and the raw value decoded to a member
	RawBytes         []byte
	Kind             ValueKind
	Int              int64
	Uint             uint64
	Float            float64
	Str              string
	Bytes            []byte
	Array            []Element
	IsInvalid        bool
}

// DeveloperValue is a field sourced from a definition's developer-field
// section. Name and Resolved are populated once the DeveloperCatalog has
// seen the matching field_description message; until then Name is empty
// and RawBytes is the only trustworthy payload.
type DeveloperValue struct {
	FieldNumber        uint8
	DeveloperDataIndex uint8
	Name               string
	RawBytes           []byte
	Resolved           *ResolvedValue // nil until typed
}
