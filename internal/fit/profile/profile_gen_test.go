package profile

import (
	"os"
	"testing"

	"github.com/vililahtevanoja/fit-parser/internal/fit/wire"
)

// loadShipped re-parses the checked-in data files at test time, so these
// tests catch profile_gen.go drifting from data/*.csv without needing to
// actually run fitprofilegen.
func loadShipped(t *testing.T) ([]EnumType, []ValueSetType, []MessageSchema) {
	t.Helper()
	typesFile, err := os.Open("data/types.csv")
	if err != nil {
		t.Fatalf("open types.csv: %v", err)
	}
	defer typesFile.Close()
	enums, valueSets, err := LoadTypes(typesFile)
	if err != nil {
		t.Fatalf("LoadTypes: %v", err)
	}

	messagesFile, err := os.Open("data/messages.csv")
	if err != nil {
		t.Fatalf("open messages.csv: %v", err)
	}
	defer messagesFile.Close()
	messages, err := LoadMessages(messagesFile)
	if err != nil {
		t.Fatalf("LoadMessages: %v", err)
	}
	return enums, valueSets, messages
}

func TestGeneratedEnumsMatchShippedCatalog(t *testing.T) {
	enums, _, _ := loadShipped(t)
	if len(enums) != 4 {
		t.Fatalf("shipped types.csv yields %d enums, want 4", len(enums))
	}
	for _, e := range enums {
		got, ok := Generated.Enums[e.Name]
		if !ok {
			t.Fatalf("Generated.Enums missing %q", e.Name)
		}
		if len(got.Members) != len(e.Members) {
			t.Fatalf("enum %q: generated has %d members, loader has %d", e.Name, len(got.Members), len(e.Members))
		}
	}
}

func TestGeneratedValueSetsMatchShippedCatalog(t *testing.T) {
	_, valueSets, _ := loadShipped(t)
	if len(valueSets) != 3 {
		t.Fatalf("shipped types.csv yields %d value sets, want 3", len(valueSets))
	}
	for _, vs := range valueSets {
		got, ok := Generated.ValueSets[vs.Name]
		if !ok {
			t.Fatalf("Generated.ValueSets missing %q", vs.Name)
		}
		if got.BaseType != vs.BaseType {
			t.Fatalf("value set %q: generated base type %v, loader %v", vs.Name, got.BaseType, vs.BaseType)
		}
	}
}

func TestGeneratedMessagesMatchShippedCatalog(t *testing.T) {
	_, _, messages := loadShipped(t)
	if len(messages) != 11 {
		t.Fatalf("shipped messages.csv yields %d messages, want 11", len(messages))
	}
	for _, m := range messages {
		got, ok := Generated.MessagesByName[m.Name]
		if !ok {
			t.Fatalf("Generated.MessagesByName missing %q", m.Name)
		}
		if len(got.Fields) != len(m.Fields) {
			t.Fatalf("message %q: generated has %d fields, loader has %d", m.Name, len(got.Fields), len(m.Fields))
		}
		for i, f := range m.Fields {
			gf := got.Fields[i]
			if gf.DefinitionNumber != f.DefinitionNumber || gf.Name != f.Name || gf.FieldType != f.FieldType {
				t.Fatalf("message %q field %d: generated %+v, loader %+v", m.Name, i, gf, f)
			}
		}
	}
}

func TestGeneratedMessagesByNumberWiring(t *testing.T) {
	cases := []struct {
		num  uint16
		name string
	}{
		{0, "file_id"},
		{49, "file_creator"},
		{23, "device_info"},
		{21, "event"},
		{8, "hr_zone"},
		{20, "record"},
		{19, "lap"},
		{18, "session"},
		{34, "activity"},
		{207, "developer_data_id"},
		{206, "field_description"},
	}
	if len(Generated.MessagesByNumber) != len(cases) {
		t.Fatalf("MessagesByNumber has %d entries, want %d", len(Generated.MessagesByNumber), len(cases))
	}
	for _, c := range cases {
		m, ok := Generated.MessageByNumber(c.num)
		if !ok {
			t.Fatalf("MessageByNumber(%d) miss", c.num)
		}
		if m.Name != c.name {
			t.Fatalf("MessageByNumber(%d) = %q, want %q", c.num, m.Name, c.name)
		}
	}
}

func TestGeneratedEnumMemberNameResolution(t *testing.T) {
	name, ok := Generated.EnumMemberName("sport", 2)
	if !ok || name != "cycling" {
		t.Fatalf("EnumMemberName(sport, 2) = %q,%v", name, ok)
	}
	if _, ok := Generated.EnumMemberName("sport", 200); ok {
		t.Fatalf("expected miss for unused sport value 200")
	}
	if _, ok := Generated.EnumMemberName("no_such_type", 0); ok {
		t.Fatalf("expected miss for unknown type name")
	}
}

func TestGeneratedDeprecatedSportSkipsConstButKeepsMember(t *testing.T) {
	// SportGeneric2 must not exist as an exported const (it is the
	// deprecated duplicate of SportGeneric), but its value must still be
	// resolvable from a record that happens to carry the old code.
	name, ok := Generated.EnumMemberName("sport", 253)
	if !ok || name != "generic2" {
		t.Fatalf("EnumMemberName(sport, 253) = %q,%v, want generic2,true", name, ok)
	}
}

func TestGeneratedBatteryVoltageScale(t *testing.T) {
	m, ok := Generated.MessageByNumber(MesgNum_DEVICE_INFO)
	if !ok {
		t.Fatalf("device_info missing")
	}
	f, ok := m.FieldByNumber(10)
	if !ok {
		t.Fatalf("battery_voltage field missing")
	}
	if f.DefaultScale || len(f.Scale) != 1 || f.Scale[0] != 256 {
		t.Fatalf("battery_voltage scale = %+v", f)
	}
}

func TestGeneratedEventDataComponents(t *testing.T) {
	m, ok := Generated.MessageByNumber(MesgNum_EVENT)
	if !ok {
		t.Fatalf("event message missing")
	}
	f, ok := m.FieldByNumber(3)
	if !ok {
		t.Fatalf("data field missing")
	}
	if len(f.Components) != 4 || len(f.Bits) != 4 {
		t.Fatalf("data field components/bits = %+v", f)
	}
	if !f.DefaultScale {
		t.Fatalf("data field should use the implied default scale")
	}
}

func TestGeneratedDeveloperDataIdFixedArray(t *testing.T) {
	m, ok := Generated.MessageByNumber(MesgNum_DEVELOPER_DATA_ID)
	if !ok {
		t.Fatalf("developer_data_id missing")
	}
	f, ok := m.FieldByNumber(0)
	if !ok {
		t.Fatalf("application_id field missing")
	}
	if f.Array != FixedArray || f.ArrayLen != 16 {
		t.Fatalf("application_id array = %+v", f)
	}
	if wire.Byte != 0x0D {
		t.Fatalf("sanity: wire.Byte constant changed underfoot")
	}
}
