package profile

import (
	"errors"
	"strings"
	"testing"

	"github.com/vililahtevanoja/fit-parser/internal/fit/model"
	"github.com/vililahtevanoja/fit-parser/internal/fit/wire"
)

func TestLoadTypesBasic(t *testing.T) {
	src := `colour,enum,red,0,
,,green,1,
,,blue,2,a primary colour
magic,uint8,one,1,
,,two,2,
`
	enums, valueSets, err := LoadTypes(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadTypes: %v", err)
	}
	if len(enums) != 1 || enums[0].Name != "colour" {
		t.Fatalf("enums = %+v", enums)
	}
	if len(enums[0].Members) != 3 {
		t.Fatalf("colour members = %+v", enums[0].Members)
	}
	if len(valueSets) != 1 || valueSets[0].Name != "magic" {
		t.Fatalf("valueSets = %+v", valueSets)
	}
	if valueSets[0].BaseType != wire.Uint8 {
		t.Fatalf("magic base type = %v", valueSets[0].BaseType)
	}
}

func TestLoadTypesDeprecatedKeptForLookupButKnowsItself(t *testing.T) {
	src := `colour,enum,red,0,
,,old_red,10,Deprecated alias
`
	enums, _, err := LoadTypes(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadTypes: %v", err)
	}
	if len(enums[0].Members) != 2 {
		t.Fatalf("expected deprecated member retained in model, got %+v", enums[0].Members)
	}
	if !enums[0].Members[1].Deprecated() {
		t.Fatalf("expected second member to report itself deprecated")
	}
}

func TestLoadTypesUnknownBaseType(t *testing.T) {
	_, _, err := LoadTypes(strings.NewReader("widget,nonsense,a,0,\n"))
	if !errors.Is(err, model.ErrSchemaError) {
		t.Fatalf("err = %v, want ErrSchemaError", err)
	}
}

func TestLoadTypesValueOverflowsWidth(t *testing.T) {
	_, _, err := LoadTypes(strings.NewReader("widget,uint8,a,256,\n"))
	if !errors.Is(err, model.ErrSchemaError) {
		t.Fatalf("err = %v, want ErrSchemaError", err)
	}
}

func TestLoadTypesValueRowBeforeTypeStart(t *testing.T) {
	_, _, err := LoadTypes(strings.NewReader(",,red,0,\n"))
	if !errors.Is(err, model.ErrSchemaError) {
		t.Fatalf("err = %v, want ErrSchemaError", err)
	}
}

func TestLoadMessagesCategoryAndFields(t *testing.T) {
	src := strings.Join([]string{
		",,,widgets,,,,,,,,,,,,",
		"thing,,,,,,,,,,,,,a thing,,",
		",0,count,uint16,,,,,,,,,,,,",
	}, "\n") + "\n"

	messages, err := LoadMessages(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadMessages: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("messages = %+v", messages)
	}
	m := messages[0]
	if m.Name != "thing" || m.Comment != "a thing" {
		t.Fatalf("message = %+v", m)
	}
	f, ok := m.FieldByNumber(0)
	if !ok {
		t.Fatalf("FieldByNumber(0) miss")
	}
	if f.Category != "widgets" || f.Name != "count" || !f.DefaultScale {
		t.Fatalf("field = %+v", f)
	}
}

func TestLoadMessagesSkipsSubfieldRow(t *testing.T) {
	src := strings.Join([]string{
		"thing,,,,,,,,,,,,,,,",
		",0,count,uint16,,,,,,,,,,,,",
		",,favero_count,favero_count,,,,,,,,,,,,",
	}, "\n") + "\n"

	messages, err := LoadMessages(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadMessages: %v", err)
	}
	if len(messages[0].Fields) != 1 {
		t.Fatalf("expected the subfield row to be skipped, got %+v", messages[0].Fields)
	}
}

func TestLoadMessagesFieldBeforeMessageStart(t *testing.T) {
	_, err := LoadMessages(strings.NewReader(",0,count,uint16,,,,,,,,,,,,\n"))
	if !errors.Is(err, model.ErrSchemaError) {
		t.Fatalf("err = %v, want ErrSchemaError", err)
	}
}

func TestLoadMessagesComponentsScaleMismatch(t *testing.T) {
	src := "thing,,,,,,,,,,,,,,,\n" +
		`,0,data,uint16,,"a,b",1.0,,,,,,,,,` + "\n"
	_, err := LoadMessages(strings.NewReader(src))
	if !errors.Is(err, model.ErrSchemaError) {
		t.Fatalf("err = %v, want ErrSchemaError", err)
	}
}

func TestLoadMessagesRefFieldNameValueLengthMismatch(t *testing.T) {
	src := "thing,,,,,,,,,,,,,,,\n" +
		`,3,sub,uint8,,,,,,,,"event,event",marker,,,` + "\n"
	_, err := LoadMessages(strings.NewReader(src))
	if !errors.Is(err, model.ErrSchemaError) {
		t.Fatalf("err = %v, want ErrSchemaError", err)
	}
}

func TestLoadMessagesNoDoubleFlushOfFirstMessage(t *testing.T) {
	// Regression guard for the source behavior described in the design
	// notes: the first message's fields must appear exactly once even
	// though its message-start row is the very first record read.
	src := strings.Join([]string{
		"first,,,,,,,,,,,,,,,",
		",0,a,uint8,,,,,,,,,,,,",
		"second,,,,,,,,,,,,,,,",
		",0,b,uint8,,,,,,,,,,,,",
	}, "\n") + "\n"

	messages, err := LoadMessages(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadMessages: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("messages = %+v", messages)
	}
	if len(messages[0].Fields) != 1 {
		t.Fatalf("first message fields = %+v, want exactly 1 (no duplicate flush)", messages[0].Fields)
	}
}

func TestParseArrayKind(t *testing.T) {
	cases := []struct {
		in       string
		wantKind ArrayKind
		wantLen  int
		wantErr  bool
	}{
		{"", NotArray, 0, false},
		{"[N]", VariableArray, 0, false},
		{"[16]", FixedArray, 16, false},
		{"[0]", NotArray, 0, true},
		{"garbage", NotArray, 0, true},
	}
	for _, c := range cases {
		kind, n, err := parseArrayKind(c.in)
		if (err != nil) != c.wantErr {
			t.Errorf("parseArrayKind(%q) err = %v, wantErr %v", c.in, err, c.wantErr)
			continue
		}
		if err == nil && (kind != c.wantKind || n != c.wantLen) {
			t.Errorf("parseArrayKind(%q) = %v,%d want %v,%d", c.in, kind, n, c.wantKind, c.wantLen)
		}
	}
}

func TestParseScaleDefault(t *testing.T) {
	scale, isDefault, err := parseScale("")
	if err != nil || !isDefault || len(scale) != 1 || scale[0] != 1.0 {
		t.Fatalf("parseScale(\"\") = %v,%v,%v", scale, isDefault, err)
	}
}

func TestParseScaleRejectsNonPositive(t *testing.T) {
	if _, _, err := parseScale("0"); err == nil {
		t.Fatalf("expected error for non-positive scale")
	}
	if _, _, err := parseScale("-1"); err == nil {
		t.Fatalf("expected error for negative scale")
	}
}
