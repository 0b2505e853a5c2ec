package model

// RecordKind discriminates the three shapes a DecodedRecord can take.
type RecordKind uint8

const (
	RecordDefinition RecordKind = iota
	RecordData
	RecordCompressedTimestampData
)

// DecodedRecord is one record yielded by the stream driver: either a
// definition record (which only updates the LocalTable) or a data record
// (normal or compressed-timestamp), carrying its resolved field values.
type DecodedRecord struct {
	Kind RecordKind

	// Populated when Kind == RecordDefinition.
	LocalMessageType LocalMessageType
	Definition       DefinitionEntry

	// Populated when Kind == RecordData or RecordCompressedTimestampData.
	GlobalMessageNumber uint16
	MessageName         string // "" if the profile has no name for this number
	Values              []ResolvedValue
	DeveloperValues     []DeveloperValue

	// Populated only when Kind == RecordCompressedTimestampData. Nil if
	// no reference timestamp had been seeded yet (see §9 design notes).
	AbsoluteTimestamp *uint32
}
