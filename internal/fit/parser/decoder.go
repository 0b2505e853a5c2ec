package parser

import (
	"github.com/vililahtevanoja/fit-parser/internal/fit/model"
	"github.com/vililahtevanoja/fit-parser/internal/fit/profile"
	"github.com/vililahtevanoja/fit-parser/internal/fit/registry"
	"github.com/vililahtevanoja/fit-parser/internal/fit/wire"
)

// mesg_num values and field definition numbers for the two messages the
// driver inspects directly to grow the DeveloperCatalog (§4.H), taken
// from the shipped message catalog regardless of whether a profile is
// wired in — developer-data ingestion must work even without one.
const (
	mesgNumFieldDescription = 206
	mesgNumDeveloperDataID  = 207

	devDataFieldApplicationID      = 0
	devDataFieldDeveloperIndex     = 3
	fieldDescFieldDeveloperIndex   = 0
	fieldDescFieldDefinitionNumber = 1
	fieldDescFieldBaseTypeID       = 2
	fieldDescFieldName             = 3
	fieldDescFieldUnits            = 8

	fieldNumTimestamp = 253
)

// decodeState is the stream driver's mutable per-file state (§5): the
// local-message-type table, the developer-data catalog, and the rolling
// compressed-timestamp reference.
type decodeState struct {
	prof         *profile.Profile
	table        *registry.LocalTable
	devCat       *registry.DeveloperCatalog
	refTimestamp *uint32
}

// Decode parses buf's header and returns a lazy Iterator positioned at
// the start of its record stream (§5: "a pure function from byte buffer
// to ... LazySequence<DecodedRecord>"). prof may be nil, in which case
// every data record decodes to raw typed values with no profile
// resolution. Decode itself does no per-record work; it is a thin
// convenience wrapper over NewIterator that also hands back the parsed
// header.
func Decode(buf []byte, prof *profile.Profile) (model.FileHeader, *Iterator, error) {
	hdr, err := ParseHeader(buf)
	if err != nil {
		return model.FileHeader{}, nil, err
	}

	it, err := NewIterator(buf, prof)
	if err != nil {
		return hdr, nil, err
	}
	return hdr, it, nil
}

func (d *decodeState) decodeOneRecord(c *Cursor) (model.DecodedRecord, error) {
	headerPos := c.Pos()
	b, err := c.ReadU8()
	if err != nil {
		return model.DecodedRecord{}, err
	}
	rh := ClassifyRecordHeader(b)

	if rh.Kind == HeaderDefinition {
		def, err := ParseDefinition(c, rh.HasDeveloperData)
		if err != nil {
			return model.DecodedRecord{}, err
		}
		d.table.Define(rh.LocalMessageType, def)
		return model.DecodedRecord{
			Kind:             model.RecordDefinition,
			LocalMessageType: rh.LocalMessageType,
			Definition:       def,
		}, nil
	}

	def, ok := d.table.Lookup(rh.LocalMessageType)
	if !ok {
		return model.DecodedRecord{}, model.WrapAt(headerPos, model.ErrUnknownLocalMessageType)
	}
	values, devValues, err := ParseDataFields(c, def, d.prof, d.devCat)
	if err != nil {
		return model.DecodedRecord{}, err
	}

	rec := model.DecodedRecord{
		Kind:                model.RecordData,
		GlobalMessageNumber: def.GlobalMessageNumber,
		Values:              values,
		DeveloperValues:     devValues,
	}
	if d.prof != nil {
		if m, ok := d.prof.MessageByNumber(def.GlobalMessageNumber); ok {
			rec.MessageName = m.Name
		}
	}

	if rh.Kind == HeaderCompressedTimestamp {
		rec.Kind = model.RecordCompressedTimestampData
		rec.AbsoluteTimestamp = d.resolveCompressedTimestamp(rh.TimeOffset)
	}

	d.ingestDeveloperData(def.GlobalMessageNumber, values)
	d.observeTimestamp(values)
	return rec, nil
}

// observeTimestamp seeds or refreshes the rolling compressed-timestamp
// reference from a data record's timestamp field (global field 253), per
// §4.H. It runs after any compressed timestamp of the same record has been
// resolved against the previous reference.
func (d *decodeState) observeTimestamp(values []model.ResolvedValue) {
	for _, v := range values {
		if v.DefinitionNumber == fieldNumTimestamp && !v.IsInvalid && v.Kind == model.KindUint {
			ts := uint32(v.Uint)
			d.refTimestamp = &ts
			return
		}
	}
}

// resolveCompressedTimestamp applies the rolling-reference algorithm from
// §4.H to a 5-bit time_offset, advancing and rewriting the low 5 bits of
// the reference as a side effect. Returns nil if no reference timestamp
// has been observed yet.
func (d *decodeState) resolveCompressedTimestamp(offset uint8) *uint32 {
	if d.refTimestamp == nil {
		return nil
	}
	ref := *d.refTimestamp
	oldLow := ref & 0x1F
	o := uint32(offset) & 0x1F
	if o < oldLow {
		ref += 0x20
	}
	ref = (ref &^ 0x1F) | o
	d.refTimestamp = &ref
	abs := ref
	return &abs
}

// ingestDeveloperData applies developer_data_id and field_description
// data records to the DeveloperCatalog as they are decoded, independent
// of whatever profile is wired in.
func (d *decodeState) ingestDeveloperData(globalMessageNumber uint16, values []model.ResolvedValue) {
	switch globalMessageNumber {
	case mesgNumDeveloperDataID:
		var devIndex uint8
		var appID []byte
		for _, v := range values {
			switch v.DefinitionNumber {
			case devDataFieldDeveloperIndex:
				if v.Kind == model.KindUint {
					devIndex = uint8(v.Uint)
				}
			case devDataFieldApplicationID:
				if v.Kind == model.KindBytes {
					appID = v.Bytes
				} else if v.Kind == model.KindArray {
					appID = make([]byte, len(v.Array))
					for i, e := range v.Array {
						appID[i] = byte(e.Uint)
					}
				}
			}
		}
		d.devCat.RegisterApplication(devIndex, appID)

	case mesgNumFieldDescription:
		var devIndex, fieldDefNum, baseTypeID uint8
		var name, units string
		for _, v := range values {
			switch v.DefinitionNumber {
			case fieldDescFieldDeveloperIndex:
				if v.Kind == model.KindUint {
					devIndex = uint8(v.Uint)
				}
			case fieldDescFieldDefinitionNumber:
				if v.Kind == model.KindUint {
					fieldDefNum = uint8(v.Uint)
				}
			case fieldDescFieldBaseTypeID:
				if v.Kind == model.KindUint {
					baseTypeID = uint8(v.Uint)
				}
			case fieldDescFieldName:
				if v.Kind == model.KindString {
					name = v.Str
				}
			case fieldDescFieldUnits:
				if v.Kind == model.KindString {
					units = v.Str
				}
			}
		}
		d.devCat.RegisterField(devIndex, registry.DeveloperFieldDescriptor{
			FieldDefinitionNumber: fieldDefNum,
			BaseType:              wire.BaseType(baseTypeID),
			Name:                  name,
			Units:                 units,
		})
	}
}
