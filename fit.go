package fit

import (
	"github.com/vililahtevanoja/fit-parser/internal/fit/crc"
	"github.com/vililahtevanoja/fit-parser/internal/fit/model"
	"github.com/vililahtevanoja/fit-parser/internal/fit/parser"
	"github.com/vililahtevanoja/fit-parser/internal/fit/profile"
)

// Re-exported model types, so callers never need to import an internal
// package to hold a decoded value.
type (
	FileHeader       = model.FileHeader
	DecodedRecord    = model.DecodedRecord
	RecordKind       = model.RecordKind
	ResolvedValue    = model.ResolvedValue
	DeveloperValue   = model.DeveloperValue
	Element          = model.Element
	ValueKind        = model.ValueKind
	LocalMessageType = model.LocalMessageType
	DecodeError      = model.DecodeError
)

// Record kinds a DecodedRecord can report via its Kind field.
const (
	RecordDefinition              = model.RecordDefinition
	RecordData                    = model.RecordData
	RecordCompressedTimestampData = model.RecordCompressedTimestampData
)

// Value kinds a ResolvedValue or Element can report via its Kind field.
const (
	KindInt    = model.KindInt
	KindUint   = model.KindUint
	KindFloat  = model.KindFloat
	KindString = model.KindString
	KindBytes  = model.KindBytes
	KindArray  = model.KindArray
)

// Sentinel errors, re-exported so callers can use errors.Is without
// importing an internal package.
var (
	ErrTruncated               = model.ErrTruncated
	ErrMalformedHeader         = model.ErrMalformedHeader
	ErrMalformedDefinition     = model.ErrMalformedDefinition
	ErrUnknownLocalMessageType = model.ErrUnknownLocalMessageType
	ErrFileCRCMismatch         = model.ErrFileCRCMismatch
)

// CRC16 returns the FIT CRC-16 of data seeded with seed. Seed 0 yields
// the canonical checksum used by both the file header and the file
// trailer; CRC16(b, CRC16(a, 0)) == CRC16(append(a, b...), 0).
func CRC16(data []byte, seed uint16) uint16 {
	return crc.Checksum(data, seed)
}

// ParseHeader decodes the 12- or 14-byte file header from the start of
// buf without consuming the record stream that follows it.
func ParseHeader(buf []byte) (FileHeader, error) {
	return parser.ParseHeader(buf)
}

// Decode parses buf's file header and returns a lazy Iterator positioned
// at the start of its record stream. Fields resolve against the bundled
// Global FIT Profile. Call it like bufio.Scanner: loop on it.Next(),
// read it.Record() each time, and check it.Err() once Next returns
// false.
func Decode(buf []byte) (FileHeader, *Iterator, error) {
	return parser.Decode(buf, profile.Generated)
}

// DecodeRaw is Decode without profile resolution: every field decodes to
// its raw typed value, with no field name, units, or enum-member lookup.
func DecodeRaw(buf []byte) (FileHeader, *Iterator, error) {
	return parser.Decode(buf, nil)
}

// Iterator is a single-pass, non-restartable pull decoder over one FIT
// file's record stream.
type Iterator = parser.Iterator

// NewIterator returns an Iterator over buf's record stream, resolving
// fields against the bundled Global FIT Profile.
func NewIterator(buf []byte) (*Iterator, error) {
	return parser.NewIterator(buf, profile.Generated)
}

// NewRawIterator is NewIterator without profile resolution.
func NewRawIterator(buf []byte) (*Iterator, error) {
	return parser.NewIterator(buf, nil)
}
