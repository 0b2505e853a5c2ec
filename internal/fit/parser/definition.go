package parser

import (
	"github.com/vililahtevanoja/fit-parser/internal/fit/model"
	"github.com/vililahtevanoja/fit-parser/internal/fit/wire"
)

// ParseDefinition consumes a definition record body from c, starting at
// the byte after the classified header byte (§4.F). hasDeveloperData
// comes from the record-header classification that preceded this call.
func ParseDefinition(c *Cursor, hasDeveloperData bool) (model.DefinitionEntry, error) {
	if _, err := c.ReadU8(); err != nil { // reserved
		return model.DefinitionEntry{}, err
	}
	arch, err := c.ReadU8()
	if err != nil {
		return model.DefinitionEntry{}, err
	}
	endianness := model.LittleEndian
	if arch != 0 {
		endianness = model.BigEndian
	}

	globalMessageNumber, err := readU16(c, endianness)
	if err != nil {
		return model.DefinitionEntry{}, err
	}

	nFields, err := c.ReadU8()
	if err != nil {
		return model.DefinitionEntry{}, err
	}

	fields := make([]model.FieldLayout, 0, nFields)
	for i := uint8(0); i < nFields; i++ {
		defNum, err := c.ReadU8()
		if err != nil {
			return model.DefinitionEntry{}, err
		}
		size, err := c.ReadU8()
		if err != nil {
			return model.DefinitionEntry{}, err
		}
		baseTypeCode, err := c.ReadU8()
		if err != nil {
			return model.DefinitionEntry{}, err
		}
		info, ok := wire.Lookup(baseTypeCode)
		if !ok {
			return model.DefinitionEntry{}, model.WrapAt(c.Pos()-1, model.ErrMalformedDefinition)
		}
		if size == 0 || int(size)%info.Size != 0 {
			return model.DefinitionEntry{}, model.WrapAt(c.Pos()-2, model.ErrMalformedDefinition)
		}
		fields = append(fields, model.FieldLayout{
			DefinitionNumber: defNum,
			Size:             size,
			BaseType:         info,
		})
	}

	entry := model.DefinitionEntry{
		Endianness:          endianness,
		GlobalMessageNumber: globalMessageNumber,
		Fields:              fields,
	}

	if hasDeveloperData {
		nDevFields, err := c.ReadU8()
		if err != nil {
			return model.DefinitionEntry{}, err
		}
		devFields := make([]model.DevFieldLayout, 0, nDevFields)
		for i := uint8(0); i < nDevFields; i++ {
			fieldNum, err := c.ReadU8()
			if err != nil {
				return model.DefinitionEntry{}, err
			}
			size, err := c.ReadU8()
			if err != nil {
				return model.DefinitionEntry{}, err
			}
			devIndex, err := c.ReadU8()
			if err != nil {
				return model.DefinitionEntry{}, err
			}
			devFields = append(devFields, model.DevFieldLayout{
				FieldNumber:        fieldNum,
				Size:               size,
				DeveloperDataIndex: devIndex,
			})
		}
		entry.DeveloperFields = devFields
	}

	return entry, nil
}

// readU16 reads a 2-byte unsigned integer in the given endianness,
// wrapping any truncation error with the cursor's pre-read position.
func readU16(c *Cursor, e model.Endianness) (uint16, error) {
	pos := c.Pos()
	v, err := c.ReadUint(2, e == model.BigEndian)
	if err != nil {
		return 0, model.WrapAt(pos, err)
	}
	return uint16(v), nil
}
