package registry

import (
	"testing"

	"github.com/vililahtevanoja/fit-parser/internal/fit/wire"
)

func TestDeveloperCatalogLookupMissBeforeFieldDescription(t *testing.T) {
	cat := NewDeveloperCatalog()
	if _, ok := cat.Lookup(0, 0); ok {
		t.Fatalf("expected miss before any field_description arrives")
	}
}

func TestDeveloperCatalogRegisterFieldThenLookup(t *testing.T) {
	cat := NewDeveloperCatalog()
	cat.RegisterField(0, DeveloperFieldDescriptor{
		FieldDefinitionNumber: 4,
		BaseType:              wire.Uint16,
		Name:                  "running_power",
		Units:                 "watts",
	})

	got, ok := cat.Lookup(0, 4)
	if !ok {
		t.Fatalf("Lookup(0,4) miss after RegisterField")
	}
	if got.Name != "running_power" || got.BaseType != wire.Uint16 || got.Units != "watts" {
		t.Fatalf("Lookup(0,4) = %+v", got)
	}
}

func TestDeveloperCatalogIndicesAreIndependent(t *testing.T) {
	cat := NewDeveloperCatalog()
	cat.RegisterField(0, DeveloperFieldDescriptor{FieldDefinitionNumber: 0, Name: "a"})
	cat.RegisterField(1, DeveloperFieldDescriptor{FieldDefinitionNumber: 0, Name: "b"})

	a, ok := cat.Lookup(0, 0)
	if !ok || a.Name != "a" {
		t.Fatalf("Lookup(0,0) = %+v,%v", a, ok)
	}
	b, ok := cat.Lookup(1, 0)
	if !ok || b.Name != "b" {
		t.Fatalf("Lookup(1,0) = %+v,%v", b, ok)
	}
}

func TestDeveloperCatalogApplicationID(t *testing.T) {
	cat := NewDeveloperCatalog()
	if _, ok := cat.ApplicationID(5); ok {
		t.Fatalf("expected miss before any developer_data_id arrives")
	}
	id := []byte{1, 2, 3, 4}
	cat.RegisterApplication(5, id)

	got, ok := cat.ApplicationID(5)
	if !ok {
		t.Fatalf("ApplicationID(5) miss after RegisterApplication")
	}
	if len(got) != len(id) {
		t.Fatalf("ApplicationID(5) = %v, want %v", got, id)
	}
}

func TestDeveloperCatalogFieldRegisteredBeforeApplication(t *testing.T) {
	// field_description messages may arrive before developer_data_id in a
	// well-formed stream; registration order must not matter.
	cat := NewDeveloperCatalog()
	cat.RegisterField(2, DeveloperFieldDescriptor{FieldDefinitionNumber: 0, Name: "x"})
	cat.RegisterApplication(2, []byte{9})

	if _, ok := cat.Lookup(2, 0); !ok {
		t.Fatalf("Lookup(2,0) miss")
	}
	if _, ok := cat.ApplicationID(2); !ok {
		t.Fatalf("ApplicationID(2) miss")
	}
}
