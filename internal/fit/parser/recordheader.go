package parser

import "github.com/vililahtevanoja/fit-parser/internal/fit/model"

// HeaderKind discriminates the shape a classified record-header byte
// implies for the record that follows it.
type HeaderKind uint8

const (
	HeaderDefinition HeaderKind = iota
	HeaderData
	HeaderCompressedTimestamp
)

// RecordHeader is the decoded shape of one record-header byte (§4.E).
type RecordHeader struct {
	Kind             HeaderKind
	LocalMessageType model.LocalMessageType
	HasDeveloperData bool  // only meaningful when Kind == HeaderDefinition
	TimeOffset       uint8 // only meaningful when Kind == HeaderCompressedTimestamp
}

// ClassifyRecordHeader decodes a single record-header byte. The
// compressed-timestamp local-message-type field is 2 bits wide and so can
// only ever address slots 0-3.
func ClassifyRecordHeader(b byte) RecordHeader {
	if b&0x80 != 0 {
		return RecordHeader{
			Kind:             HeaderCompressedTimestamp,
			LocalMessageType: model.LocalMessageType((b >> 5) & 0x03),
			TimeOffset:       b & 0x1F,
		}
	}
	if b&0x40 != 0 {
		return RecordHeader{
			Kind:             HeaderDefinition,
			LocalMessageType: model.LocalMessageType(b & 0x0F),
			HasDeveloperData: b&0x20 != 0,
		}
	}
	return RecordHeader{
		Kind:             HeaderData,
		LocalMessageType: model.LocalMessageType(b & 0x0F),
	}
}
