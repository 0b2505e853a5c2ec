package parser

import (
	"github.com/vililahtevanoja/fit-parser/internal/fit/crc"
	"github.com/vililahtevanoja/fit-parser/internal/fit/model"
	"github.com/vililahtevanoja/fit-parser/internal/fit/profile"
	"github.com/vililahtevanoja/fit-parser/internal/fit/registry"
)

// Iterator is a single-pass, non-restartable pull decoder over one FIT
// file's record stream (§5: "a pure function from byte buffer to ...
// LazySequence<DecodedRecord>"). It is a bufio.Scanner-style iterator
// (Next/Record/Err) rather than a Go 1.23 iter.Seq, matching the
// streaming-state shape every teacher/example in the corpus exposes.
// Decode uses it internally; callers that want to stop decoding a large
// file early, without paying for records they never asked for, can
// construct one directly with NewIterator.
type Iterator struct {
	buf      []byte
	bodyEnd  int
	cursor   *Cursor
	state    *decodeState
	done     bool
	err      error
	cur      model.DecodedRecord
	crcValid bool
}

// NewIterator parses buf's file header and positions the iterator at the
// start of its record stream. prof may be nil for unresolved decoding.
func NewIterator(buf []byte, prof *profile.Profile) (*Iterator, error) {
	hdr, err := ParseHeader(buf)
	if err != nil {
		return nil, err
	}
	bodyEnd := int(hdr.HeaderSize) + int(hdr.DataSize)
	if bodyEnd+2 > len(buf) {
		return nil, model.WrapAt(len(buf), model.ErrTruncated)
	}

	c := NewCursor(buf)
	if _, err := c.ReadBytes(int(hdr.HeaderSize)); err != nil { // skip the already-validated header
		return nil, err
	}

	return &Iterator{
		buf:     buf,
		bodyEnd: bodyEnd,
		cursor:  c,
		state: &decodeState{
			prof:   prof,
			table:  registry.NewLocalTable(),
			devCat: registry.NewDeveloperCatalog(),
		},
	}, nil
}

// Next advances the iterator to the next record and reports whether one
// is available. It returns false once the stream is exhausted (the
// trailing file CRC has then been checked; see FileCRCValid) or a
// structural error has halted decoding (see Err). Once Next returns
// false it always will again — the iterator does not resume past an
// error or the end of the stream.
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}
	if it.cursor.Pos() >= it.bodyEnd {
		it.done = true
		it.err = it.validateTrailer()
		it.crcValid = it.err == nil
		return false
	}

	rec, err := it.state.decodeOneRecord(it.cursor)
	if err != nil {
		it.done = true
		it.err = err
		return false
	}
	it.cur = rec
	return true
}

// Record returns the record produced by the most recent call to Next
// that returned true.
func (it *Iterator) Record() model.DecodedRecord {
	return it.cur
}

// Err returns the error that halted decoding, or nil if Next returned
// false because the stream was exhausted cleanly.
func (it *Iterator) Err() error {
	return it.err
}

// FileCRCValid reports whether the trailing file CRC matched. It is
// only meaningful once Next has returned false with Err() == nil; before
// that, or after a structural error, it reports false.
func (it *Iterator) FileCRCValid() bool {
	return it.crcValid
}

func (it *Iterator) validateTrailer() error {
	trailerPos := it.cursor.Pos()
	wantCRC, err := it.cursor.ReadU16LE()
	if err != nil {
		return err
	}
	gotCRC := crc.Checksum(it.buf[:trailerPos], 0)
	if gotCRC != wantCRC {
		return model.WrapAt(trailerPos, model.ErrFileCRCMismatch)
	}
	return nil
}
