package registry

import "github.com/vililahtevanoja/fit-parser/internal/fit/model"

// LocalTable is the 16-slot local-message-type table a stream decode
// maintains: each definition record overwrites the slot it names, and
// every data record resolves its shape by looking its slot up here.
// There is no protocol means to invalidate a slot other than replacing
// it with a new definition.
type LocalTable struct {
	entries *BaseRegistry[model.LocalMessageType, model.DefinitionEntry]
}

// NewLocalTable returns an empty local-message-type table, as at the
// start of a new file.
func NewLocalTable() *LocalTable {
	return &LocalTable{entries: NewBaseRegistry[model.LocalMessageType, model.DefinitionEntry]()}
}

// Define registers (or replaces) the definition for a local-message-type
// slot.
func (t *LocalTable) Define(slot model.LocalMessageType, def model.DefinitionEntry) {
	t.entries.Set(slot, def)
}

// Lookup returns the live definition for slot, and false if that slot has
// never been defined — the caller should surface ErrUnknownLocalMessageType.
func (t *LocalTable) Lookup(slot model.LocalMessageType) (model.DefinitionEntry, bool) {
	return t.entries.Get(slot)
}

// Count reports how many of the 16 slots currently hold a definition.
func (t *LocalTable) Count() int {
	return t.entries.Count()
}
