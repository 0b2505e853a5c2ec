package parser

import (
	"testing"

	"github.com/vililahtevanoja/fit-parser/internal/fit/model"
)

func TestClassifyRecordHeaderDefinition(t *testing.T) {
	// bit6 set, bit5 (dev data) set, local message type 5
	h := ClassifyRecordHeader(0b01100101)
	if h.Kind != HeaderDefinition {
		t.Fatalf("Kind = %v, want HeaderDefinition", h.Kind)
	}
	if !h.HasDeveloperData {
		t.Fatalf("HasDeveloperData = false, want true")
	}
	if h.LocalMessageType != 5 {
		t.Fatalf("LocalMessageType = %d, want 5", h.LocalMessageType)
	}
}

func TestClassifyRecordHeaderDefinitionNoDevData(t *testing.T) {
	h := ClassifyRecordHeader(0b01000011)
	if h.Kind != HeaderDefinition {
		t.Fatalf("Kind = %v, want HeaderDefinition", h.Kind)
	}
	if h.HasDeveloperData {
		t.Fatalf("HasDeveloperData = true, want false")
	}
	if h.LocalMessageType != 3 {
		t.Fatalf("LocalMessageType = %d, want 3", h.LocalMessageType)
	}
}

func TestClassifyRecordHeaderData(t *testing.T) {
	h := ClassifyRecordHeader(0b00001010)
	if h.Kind != HeaderData {
		t.Fatalf("Kind = %v, want HeaderData", h.Kind)
	}
	if h.LocalMessageType != 10 {
		t.Fatalf("LocalMessageType = %d, want 10", h.LocalMessageType)
	}
}

func TestClassifyRecordHeaderCompressedTimestampUsesTwoBitShiftedSlot(t *testing.T) {
	// bit7 set, slot bits (bits 6-5) = 0b10 = 2, offset = 0b01011 = 11
	// (0b1_10_01011)
	h := ClassifyRecordHeader(0b11001011)
	if h.Kind != HeaderCompressedTimestamp {
		t.Fatalf("Kind = %v, want HeaderCompressedTimestamp", h.Kind)
	}
	if h.LocalMessageType != 2 {
		t.Fatalf("LocalMessageType = %d, want 2 (the spec's (b>>5)&0x03 shift, not a raw mask)", h.LocalMessageType)
	}
	if h.TimeOffset != 11 {
		t.Fatalf("TimeOffset = %d, want 11", h.TimeOffset)
	}
}

func TestClassifyRecordHeaderCompressedTimestampSlotRange(t *testing.T) {
	for slot := uint8(0); slot < 4; slot++ {
		b := 0x80 | (slot << 5)
		h := ClassifyRecordHeader(b)
		if h.LocalMessageType != model.LocalMessageType(slot) {
			t.Fatalf("slot %d: LocalMessageType = %d", slot, h.LocalMessageType)
		}
	}
}
