// Package wire describes the fixed, wire-level vocabulary of the FIT binary
// format: the 17 base types every field definition resolves to.
package wire

import "fmt"

// BaseType is one of the 17 base types a FIT field definition can declare.
// The numeric value is the wire code exactly as it appears in a definition
// record's field triplet.
type BaseType uint8

const (
	Enum    BaseType = 0x00
	Sint8   BaseType = 0x01
	Uint8   BaseType = 0x02
	Sint16  BaseType = 0x83
	Uint16  BaseType = 0x84
	Sint32  BaseType = 0x85
	Uint32  BaseType = 0x86
	String  BaseType = 0x07
	Float32 BaseType = 0x88
	Float64 BaseType = 0x89
	Uint8z  BaseType = 0x0A
	Uint16z BaseType = 0x8B
	Uint32z BaseType = 0x8C
	Byte    BaseType = 0x0D
	Sint64  BaseType = 0x8E
	Uint64  BaseType = 0x8F
	Uint64z BaseType = 0x90
)

// Info is the static description of a base type: its element size, whether
// multi-byte elements are endian-sensitive, and the bit pattern that marks a
// field as "no value present".
type Info struct {
	Code           BaseType
	Name           string
	Size           int // bytes per element
	EndianSensitive bool
	Invalid        uint64 // full-width invalid-value pattern
}

var table = map[BaseType]Info{
	Enum:    {Enum, "enum", 1, false, 0xFF},
	Sint8:   {Sint8, "sint8", 1, false, 0x7F},
	Uint8:   {Uint8, "uint8", 1, false, 0xFF},
	Sint16:  {Sint16, "sint16", 2, true, 0x7FFF},
	Uint16:  {Uint16, "uint16", 2, true, 0xFFFF},
	Sint32:  {Sint32, "sint32", 4, true, 0x7FFFFFFF},
	Uint32:  {Uint32, "uint32", 4, true, 0xFFFFFFFF},
	String:  {String, "string", 1, false, 0x00},
	Float32: {Float32, "float32", 4, true, 0xFFFFFFFF},
	Float64: {Float64, "float64", 8, true, 0xFFFFFFFFFFFFFFFF},
	Uint8z:  {Uint8z, "uint8z", 1, false, 0x00},
	Uint16z: {Uint16z, "uint16z", 2, true, 0x0000},
	Uint32z: {Uint32z, "uint32z", 4, true, 0x00000000},
	Byte:    {Byte, "byte", 1, false, 0xFF},
	Sint64:  {Sint64, "sint64", 8, true, 0x7FFFFFFFFFFFFFFF},
	Uint64:  {Uint64, "uint64", 8, true, 0xFFFFFFFFFFFFFFFF},
	Uint64z: {Uint64z, "uint64z", 8, true, 0x0000000000000000},
}

// Lookup returns the Info for a wire base-type code, and false if the code
// is not one of the 17 published codes.
func Lookup(code uint8) (Info, bool) {
	info, ok := table[BaseType(code)]
	return info, ok
}

// Signed reports whether the base type decodes to a signed integer.
func (i Info) Signed() bool {
	switch i.Code {
	case Sint8, Sint16, Sint32, Sint64:
		return true
	default:
		return false
	}
}

// Float reports whether the base type decodes to a floating-point value.
func (i Info) Float() bool {
	return i.Code == Float32 || i.Code == Float64
}

func (i Info) String() string {
	return i.Name
}

// ByName resolves a profile-level type name (as it appears in the message
// catalog's field_type column) to its base type, for the subset of names
// that are themselves base types rather than references to an enum or
// value-set type name.
func ByName(name string) (Info, bool) {
	for _, info := range table {
		if info.Name == name {
			return info, true
		}
	}
	return Info{}, false
}

// MustLookup is Lookup but panics on an unknown code; used only where the
// caller has already validated the code (e.g. when building the profile
// artifact at compile time).
func MustLookup(code uint8) Info {
	info, ok := Lookup(code)
	if !ok {
		panic(fmt.Sprintf("wire: unknown base type code 0x%02X", code))
	}
	return info
}
