// Package fit decodes the FIT (Flexible and Interoperable Data Transfer)
// binary format used by Garmin and other fitness devices and software to
// record activities, courses, and device settings.
//
// Decode parses the file header and returns a single-pass,
// non-restartable pull decoder over the record stream; records are
// decoded only as Next is called, so callers can abandon a decode early.
// NewIterator returns the same decoder without the parsed header.
//
// Decoding links against a compiled-in copy of the Global FIT Profile,
// so every resolved field carries its name, units, and (for enumerated
// fields) its named value whenever the profile has an entry for it.
// Profile misses are never errors: an unrecognized global message number
// or field definition number simply leaves ResolvedValue.FieldName nil
// and the raw typed value intact.
package fit
