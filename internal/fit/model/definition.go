package model

import "github.com/vililahtevanoja/fit-parser/internal/fit/wire"

// Endianness is the byte order a definition record declared for its
// subsequent data records.
type Endianness uint8

const (
	LittleEndian Endianness = iota
	BigEndian
)

// FieldLayout is one parsed field triplet from a definition record.
type FieldLayout struct {
	DefinitionNumber uint8
	Size             uint8
	BaseType         wire.Info
}

// Elements returns the element count this field's Size implies for its
// BaseType (1 for a scalar, >1 for an array or byte/string run).
func (f FieldLayout) Elements() int {
	if f.BaseType.Size == 0 {
		return 0
	}
	return int(f.Size) / f.BaseType.Size
}

// DevFieldLayout is one parsed developer-field triplet from a definition
// record's extended section.
type DevFieldLayout struct {
	FieldNumber       uint8
	Size              uint8
	DeveloperDataIndex uint8
}

// DefinitionEntry is the live shape registered for one local-message-type
// slot: the global message it aliases, the endianness its data records
// are encoded in, and the ordered field layouts to read off the wire.
type DefinitionEntry struct {
	Endianness          Endianness
	GlobalMessageNumber uint16
	Fields              []FieldLayout
	DeveloperFields     []DevFieldLayout
}

// LocalMessageType is the 4-bit slot (0..15) a definition record
// populates and subsequent data records reference.
type LocalMessageType uint8
