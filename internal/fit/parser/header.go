package parser

import (
	"github.com/vililahtevanoja/fit-parser/internal/fit/crc"
	"github.com/vililahtevanoja/fit-parser/internal/fit/model"
)

// ParseHeader decodes the 12- or 14-byte file header from the start of
// buf. The header occupies header.HeaderSize bytes, which is always where
// the record stream begins.
func ParseHeader(buf []byte) (model.FileHeader, error) {
	if len(buf) < 12 {
		return model.FileHeader{}, model.WrapAt(0, model.ErrTruncated)
	}

	headerSize := buf[0]
	if int(headerSize) < 12 || int(headerSize) > len(buf) {
		return model.FileHeader{}, model.WrapAt(0, model.ErrMalformedHeader)
	}

	c := NewCursor(buf[:headerSize])
	if _, err := c.ReadU8(); err != nil { // header_size, already captured above
		return model.FileHeader{}, err
	}
	protocolVersion, err := c.ReadU8()
	if err != nil {
		return model.FileHeader{}, model.WrapAt(c.Pos(), err)
	}
	profileVersion, err := c.ReadU16LE()
	if err != nil {
		return model.FileHeader{}, model.WrapAt(c.Pos(), err)
	}
	dataSize, err := c.ReadU32LE()
	if err != nil {
		return model.FileHeader{}, model.WrapAt(c.Pos(), err)
	}
	dataType, err := c.ReadBytes(4)
	if err != nil {
		return model.FileHeader{}, model.WrapAt(c.Pos(), err)
	}
	if string(dataType) != ".FIT" {
		return model.FileHeader{}, model.WrapAt(8, model.ErrMalformedHeader)
	}

	hdr := model.FileHeader{
		HeaderSize:      headerSize,
		ProtocolVersion: protocolVersion,
		ProfileVersion:  profileVersion,
		DataSize:        dataSize,
		DataType:        string(dataType),
	}

	if headerSize >= 14 {
		wantCRC, err := c.ReadU16LE()
		if err != nil {
			return model.FileHeader{}, model.WrapAt(c.Pos(), err)
		}
		gotCRC := crc.Checksum(buf[:12], 0)
		if gotCRC != wantCRC {
			return model.FileHeader{}, model.WrapAt(12, model.ErrMalformedHeader)
		}
		hdr.HeaderCRC = &wantCRC
	}

	return hdr, nil
}
