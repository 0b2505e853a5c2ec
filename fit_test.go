package fit

import (
	"errors"
	"testing"
)

func minimalFileBytes() []byte {
	return []byte{
		// header: 12 bytes, no header CRC, data_size=11
		0x0C, 0x10, 0x00, 0x00, 0x0B, 0x00, 0x00, 0x00, 0x2E, 0x46, 0x49, 0x54,
		// definition: local0, global msg 0 (file_id), one enum field #0 (type)
		0x40, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00,
		// data record: local0, value 4 (activity)
		0x00, 0x04,
		// trailing file CRC (LE)
		0x8D, 0xCE,
	}
}

func TestCRC16MatchesSpecExample(t *testing.T) {
	header := []byte{0x0E, 0x03, 0x0B, 0x0A, 0x0D, 0x0C, 0x0B, 0x0A, 0x2E, 0x46, 0x49, 0x54}
	if got, want := CRC16(header, 0), uint16(0xA7A3); got != want {
		t.Fatalf("CRC16 = %#04x, want %#04x", got, want)
	}
}

func TestParseHeaderPublicAPI(t *testing.T) {
	hdr, err := ParseHeader(minimalFileBytes())
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if hdr.DataSize != 11 {
		t.Fatalf("DataSize = %d, want 11", hdr.DataSize)
	}
}

func TestDecodeResolvesFileIdMessageAgainstBundledProfile(t *testing.T) {
	_, it, err := Decode(minimalFileBytes())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	var records []DecodedRecord
	for it.Next() {
		records = append(records, it.Record())
	}
	if err := it.Err(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !it.FileCRCValid() {
		t.Fatalf("FileCRCValid = false, want true")
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	data := records[1]
	if data.MessageName != "file_id" {
		t.Fatalf("MessageName = %q, want file_id", data.MessageName)
	}
	if len(data.Values) != 1 || data.Values[0].FieldName == nil || *data.Values[0].FieldName != "type" {
		t.Fatalf("Values = %+v", data.Values)
	}
	if data.Values[0].EnumName != "activity" {
		t.Fatalf("EnumName = %q, want activity", data.Values[0].EnumName)
	}
}

func TestDecodeRawLeavesFieldsUnresolved(t *testing.T) {
	_, it, err := DecodeRaw(minimalFileBytes())
	if err != nil {
		t.Fatalf("DecodeRaw: %v", err)
	}
	var records []DecodedRecord
	for it.Next() {
		records = append(records, it.Record())
	}
	if err := it.Err(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	data := records[1]
	if data.MessageName != "" {
		t.Fatalf("MessageName = %q, want empty with no profile wired in", data.MessageName)
	}
	if data.Values[0].FieldName != nil {
		t.Fatalf("FieldName = %v, want nil with no profile wired in", data.Values[0].FieldName)
	}
	if data.Values[0].Uint != 4 {
		t.Fatalf("Uint = %d, want 4", data.Values[0].Uint)
	}
}

func TestNewIteratorPublicAPI(t *testing.T) {
	it, err := NewIterator(minimalFileBytes())
	if err != nil {
		t.Fatalf("NewIterator: %v", err)
	}
	var count int
	for it.Next() {
		count++
	}
	if err := it.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	if !it.FileCRCValid() {
		t.Fatalf("FileCRCValid = false, want true")
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
}

func TestErrorsAreRecognizableWithErrorsIs(t *testing.T) {
	buf := minimalFileBytes()
	buf[len(buf)-1] ^= 0xFF
	_, it, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for it.Next() {
	}
	if !errors.Is(it.Err(), ErrFileCRCMismatch) {
		t.Fatalf("err = %v, want ErrFileCRCMismatch", it.Err())
	}
	if it.FileCRCValid() {
		t.Fatalf("FileCRCValid = true, want false after a mismatch")
	}
}
