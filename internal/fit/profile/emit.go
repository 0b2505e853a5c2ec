package profile

import (
	"fmt"
	"io"
	"strings"

	"github.com/vililahtevanoja/fit-parser/internal/fit/wire"
)

// Emit writes a Go source file containing the compiled profile artifact:
// one Go type + const block per EnumType, one const block per
// ValueSetType, and a Profile literal wiring every MessageSchema into
// MessagesByNumber (when named by the mesgNum value-set) and
// MessagesByName (always).
//
// This is the build-time profile compiler's output stage (component C).
// It is invoked by cmd/fitprofilegen (internal/fit/profile/gen), normally
// via `go generate`; the checked-in internal/fit/profile/profile_gen.go
// is the result of running it once against data/types.csv and
// data/messages.csv.
func Emit(w io.Writer, pkg string, enums []EnumType, valueSets []ValueSetType, messages []MessageSchema) error {
	bw := &errWriter{w: w}

	bw.printf("// Code generated by fitprofilegen from data/types.csv and data/messages.csv. DO NOT EDIT.\n\n")
	bw.printf("package %s\n\n", pkg)
	bw.printf("import \"github.com/vililahtevanoja/fit-parser/internal/fit/wire\"\n\n")

	for _, e := range enums {
		emitEnum(bw, e)
	}
	for _, vs := range valueSets {
		emitValueSet(bw, vs)
	}

	mesgNum, hasMesgNum := findValueSet(valueSets, "mesg_num")

	bw.printf("// Generated is the compiled profile artifact linked into the decoder.\n")
	bw.printf("var Generated = &Profile{\n")
	bw.printf("\tMessagesByNumber: map[uint16]MessageSchema{\n")
	for _, m := range messages {
		if hasMesgNum {
			if num, ok := memberValue(mesgNum.Members, m.Name); ok {
				bw.printf("\t\t%d: %s,\n", num, messageVarName(m.Name))
			}
		}
	}
	bw.printf("\t},\n")
	bw.printf("\tMessagesByName: map[string]MessageSchema{\n")
	for _, m := range messages {
		bw.printf("\t\t%q: %s,\n", m.Name, messageVarName(m.Name))
	}
	bw.printf("\t},\n")
	bw.printf("\tEnums: map[string]EnumType{\n")
	for _, e := range enums {
		bw.printf("\t\t%q: %s,\n", e.Name, enumVarName(e.Name))
	}
	bw.printf("\t},\n")
	bw.printf("\tValueSets: map[string]ValueSetType{\n")
	for _, vs := range valueSets {
		bw.printf("\t\t%q: %s,\n", vs.Name, valueSetVarName(vs.Name))
	}
	bw.printf("\t},\n")
	bw.printf("}\n\n")

	for _, m := range messages {
		emitMessage(bw, m)
	}

	return bw.err
}

func emitEnum(bw *errWriter, e EnumType) {
	goType := upperCamel(e.Name)
	bw.printf("type %s uint8\n\n", goType)
	bw.printf("const (\n")
	for _, m := range e.Members {
		if m.Deprecated() {
			continue
		}
		comment := ""
		if m.Comment != "" {
			comment = " // " + m.Comment
		}
		bw.printf("\t%s%s %s = %d%s\n", goType, upperCamel(m.Name), goType, m.Value, comment)
	}
	bw.printf(")\n\n")
	bw.printf("var %s = EnumType{\n\tName: %q,\n\tBaseType: wire.Enum,\n\tMembers: []Member{\n", enumVarName(e.Name), e.Name)
	for _, m := range e.Members {
		bw.printf("\t\t{Name: %q, Value: %d, Comment: %q},\n", m.Name, m.Value, m.Comment)
	}
	bw.printf("\t},\n}\n\n")
}

func emitValueSet(bw *errWriter, vs ValueSetType) {
	goType := goWidthType(vs.BaseType)
	bw.printf("const (\n")
	for _, m := range vs.Members {
		if m.Deprecated() {
			continue
		}
		name := upperSnake(m.Name)
		if len(name) > 0 && name[0] >= '0' && name[0] <= '9' {
			name = "_" + name
		}
		comment := ""
		if m.Comment != "" {
			comment = " // " + m.Comment
		}
		bw.printf("\t%s_%s %s = %d%s\n", upperCamel(vs.Name), name, goType, m.Value, comment)
	}
	bw.printf(")\n\n")
	bw.printf("var %s = ValueSetType{\n\tName: %q,\n\tBaseType: wire.%s,\n\tMembers: []Member{\n",
		valueSetVarName(vs.Name), vs.Name, upperCamel(goType))
	for _, m := range vs.Members {
		bw.printf("\t\t{Name: %q, Value: %d, Comment: %q},\n", m.Name, m.Value, m.Comment)
	}
	bw.printf("\t},\n}\n\n")
}

func emitMessage(bw *errWriter, m MessageSchema) {
	bw.printf("var %s = MessageSchema{\n\tName: %q,\n\tComment: %q,\n\tFields: []FieldSpec{\n", messageVarName(m.Name), m.Name, m.Comment)
	for _, f := range m.Fields {
		bw.printf("\t\t{\n")
		bw.printf("\t\t\tCategory: %q,\n", f.Category)
		bw.printf("\t\t\tDefinitionNumber: %d,\n", f.DefinitionNumber)
		bw.printf("\t\t\tName: %q,\n", f.Name)
		bw.printf("\t\t\tFieldType: %q,\n", f.FieldType)
		bw.printf("\t\t\tArray: %s,\n", arrayKindLiteral(f.Array))
		bw.printf("\t\t\tArrayLen: %d,\n", f.ArrayLen)
		bw.printf("\t\t\tScale: %s,\n", float64SliceLiteral(f.Scale))
		bw.printf("\t\t\tDefaultScale: %t,\n", f.DefaultScale)
		bw.printf("\t\t\tOffset: %d,\n", f.Offset)
		bw.printf("\t\t\tComponents: %s,\n", stringSliceLiteral(f.Components))
		bw.printf("\t\t\tUnits: %s,\n", stringSliceLiteral(f.Units))
		bw.printf("\t\t\tBits: %s,\n", uint8SliceLiteral(f.Bits))
		bw.printf("\t\t\tAccumulate: %s,\n", uint8SliceLiteral(f.Accumulate))
		bw.printf("\t\t\tRefFields: %s,\n", refFieldSliceLiteral(f.RefFields))
		bw.printf("\t\t\tComment: %q,\n", f.Comment)
		if f.Example != nil {
			bw.printf("\t\t\tExample: exampleValue(%d),\n", *f.Example)
		}
		bw.printf("\t\t},\n")
	}
	bw.printf("\t},\n}\n\n")
}

func findValueSet(vs []ValueSetType, name string) (ValueSetType, bool) {
	for _, v := range vs {
		if v.Name == name {
			return v, true
		}
	}
	return ValueSetType{}, false
}

func memberValue(members []Member, name string) (uint32, bool) {
	for _, m := range members {
		if m.Name == name {
			return m.Value, true
		}
	}
	return 0, false
}

func goWidthType(bt wire.BaseType) string {
	info, ok := wire.Lookup(uint8(bt))
	if !ok {
		return "uint32"
	}
	switch info.Size {
	case 1:
		return "uint8"
	case 2:
		return "uint16"
	default:
		return "uint32"
	}
}

func arrayKindLiteral(a ArrayKind) string {
	switch a {
	case FixedArray:
		return "FixedArray"
	case VariableArray:
		return "VariableArray"
	default:
		return "NotArray"
	}
}

func float64SliceLiteral(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%g", x)
	}
	return "[]float64{" + strings.Join(parts, ", ") + "}"
}

func stringSliceLiteral(xs []string) string {
	if len(xs) == 0 {
		return "nil"
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%q", x)
	}
	return "[]string{" + strings.Join(parts, ", ") + "}"
}

func refFieldSliceLiteral(xs []RefField) string {
	if len(xs) == 0 {
		return "nil"
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("{Name: %q, Value: %q}", x.Name, x.Value)
	}
	return "[]RefField{" + strings.Join(parts, ", ") + "}"
}

func uint8SliceLiteral(xs []uint8) string {
	if len(xs) == 0 {
		return "nil"
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%d", x)
	}
	return "[]uint8{" + strings.Join(parts, ", ") + "}"
}

func messageVarName(name string) string  { return "msg" + upperCamel(name) }
func enumVarName(name string) string     { return "enumType" + upperCamel(name) }
func valueSetVarName(name string) string { return "valueSetType" + upperCamel(name) }

// upperCamel converts a snake_case profile identifier to UpperCamelCase.
func upperCamel(s string) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// upperSnake converts a snake_case profile identifier to UPPER_SNAKE_CASE
// by upper-casing it; no underscores are inserted.
func upperSnake(s string) string {
	return strings.ToUpper(s)
}

// errWriter collects the first write error so callers don't need to check
// every Fprintf individually; the final error is surfaced once at the end
// of Emit.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
