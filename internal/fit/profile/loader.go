package profile

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vililahtevanoja/fit-parser/internal/fit/model"
	"github.com/vililahtevanoja/fit-parser/internal/fit/wire"
)

// Column indices of the message catalog, matching spec.md §4.B's 16-column
// layout exactly.
const (
	colMessageName = iota
	colDefinitionNumber
	colFieldName
	colFieldType
	colArray
	colComponents
	colScale
	colOffset
	colUnits
	colBits
	colAccumulate
	colRefFieldName
	colRefFieldValue
	colComment
	colProducts
	colExample
	messageColumnCount
)

// LoadTypes parses the type catalog: rows of (type_name, base_type,
// value_name, value, comment). A row with a non-empty type_name starts a
// new type and, when its value_name is filled, also carries the type's
// first member; subsequent rows with an empty type_name append values to it.
func LoadTypes(r io.Reader) ([]EnumType, []ValueSetType, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var enums []EnumType
	var valueSets []ValueSetType

	var curName, curBase string
	var curMembers []Member
	haveCurrent := false

	flush := func() error {
		if !haveCurrent {
			return nil
		}
		base, ok := wire.ByName(curBase)
		if curBase != "enum" && !ok {
			return fmt.Errorf("%w: type %q has unknown base type %q", model.ErrSchemaError, curName, curBase)
		}
		width := base.Size
		if curBase == "enum" {
			width = 1
		}
		if err := checkMemberWidths(curName, curMembers, width); err != nil {
			return err
		}
		if curBase == "enum" {
			enums = append(enums, EnumType{Name: curName, BaseType: wire.Enum, Members: curMembers})
		} else {
			valueSets = append(valueSets, ValueSetType{Name: curName, BaseType: base.Code, Members: curMembers})
		}
		return nil
	}

	first := true
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: reading type catalog: %v", model.ErrSchemaError, err)
		}
		if len(rec) < 5 {
			return nil, nil, fmt.Errorf("%w: type catalog row has %d columns, want 5", model.ErrSchemaError, len(rec))
		}
		typeName, baseType, valueName, valueStr, comment := rec[0], rec[1], rec[2], rec[3], rec[4]

		if typeName != "" {
			if err := flush(); err != nil {
				return nil, nil, err
			}
			curName, curBase = typeName, baseType
			curMembers = nil
			haveCurrent = true
			first = false
			if valueName == "" {
				continue
			}
		}
		if first {
			// Value rows cannot precede the first type-start row.
			return nil, nil, fmt.Errorf("%w: type catalog value row before any type_name", model.ErrSchemaError)
		}

		value, err := parseCatalogUint32(valueStr)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: type %q value %q: %v", model.ErrSchemaError, curName, valueName, err)
		}
		// Deprecated members are kept in the model (Member.Deprecated lets
		// the decoder still resolve old values to a name); emit.go is the
		// stage that drops them from the generated Go const blocks.
		curMembers = append(curMembers, Member{Name: valueName, Value: value, Comment: comment})
	}
	if err := flush(); err != nil {
		return nil, nil, err
	}
	return enums, valueSets, nil
}

// checkMemberWidths enforces the invariant that every enum/value-set
// member's value fits the declared base type's bit width.
func checkMemberWidths(typeName string, members []Member, widthBytes int) error {
	var max uint64
	switch widthBytes {
	case 1:
		max = 0xFF
	case 2:
		max = 0xFFFF
	case 4:
		max = 0xFFFFFFFF
	default:
		return fmt.Errorf("%w: type %q has unsupported base width %d bytes", model.ErrSchemaError, typeName, widthBytes)
	}
	for _, m := range members {
		if uint64(m.Value) > max {
			return fmt.Errorf("%w: type %q member %q value %d overflows %d-byte base type",
				model.ErrSchemaError, typeName, m.Name, m.Value, widthBytes)
		}
	}
	return nil
}

func parseCatalogUint32(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "0x") {
		v, err := strconv.ParseUint(lower[2:], 16, 32)
		return uint32(v), err
	}
	v, err := strconv.ParseUint(s, 10, 32)
	return uint32(v), err
}

// LoadMessages parses the message catalog: 16-column rows that are either
// category rows, message-start rows, or field rows (see spec.md §4.B).
func LoadMessages(r io.Reader) ([]MessageSchema, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var messages []MessageSchema
	var current *MessageSchema
	var currentCategory string

	flush := func() {
		if current != nil {
			messages = append(messages, *current)
		}
	}

	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading message catalog: %v", model.ErrSchemaError, err)
		}
		if len(rec) < messageColumnCount {
			return nil, fmt.Errorf("%w: message catalog row has %d columns, want %d", model.ErrSchemaError, len(rec), messageColumnCount)
		}

		if rec[colMessageName] == "" && rec[colDefinitionNumber] == "" && rec[colFieldName] == "" && rec[colFieldType] != "" {
			currentCategory = rec[colFieldType]
			continue
		}

		if rec[colMessageName] != "" {
			flush()
			current = &MessageSchema{
				Name:    rec[colMessageName],
				Comment: rec[colComment],
			}
			continue
		}

		if rec[colDefinitionNumber] == "" {
			// Sub-field/product row; deliberately skipped.
			continue
		}
		if current == nil {
			return nil, fmt.Errorf("%w: field row before any message-start row", model.ErrSchemaError)
		}

		field, err := parseFieldRow(current.Name, currentCategory, rec)
		if err != nil {
			return nil, err
		}
		current.Fields = append(current.Fields, field)
	}
	flush()
	return messages, nil
}

func parseFieldRow(messageName, category string, rec []string) (FieldSpec, error) {
	defNum, err := strconv.ParseUint(strings.TrimSpace(rec[colDefinitionNumber]), 10, 8)
	if err != nil {
		return FieldSpec{}, fmt.Errorf("%w: %s: definition_number %q: %v", model.ErrSchemaError, messageName, rec[colDefinitionNumber], err)
	}

	array, arrayLen, err := parseArrayKind(rec[colArray])
	if err != nil {
		return FieldSpec{}, fmt.Errorf("%w: %s.%s: %v", model.ErrSchemaError, messageName, rec[colFieldName], err)
	}

	components := splitCommaList(rec[colComponents])
	scale, defaultScale, err := parseScale(rec[colScale])
	if err != nil {
		return FieldSpec{}, fmt.Errorf("%w: %s.%s: scale: %v", model.ErrSchemaError, messageName, rec[colFieldName], err)
	}
	offset, err := parseOffset(rec[colOffset])
	if err != nil {
		return FieldSpec{}, fmt.Errorf("%w: %s.%s: offset: %v", model.ErrSchemaError, messageName, rec[colFieldName], err)
	}
	units := splitCommaList(rec[colUnits])
	bits, err := splitCommaUint8List(rec[colBits])
	if err != nil {
		return FieldSpec{}, fmt.Errorf("%w: %s.%s: bits: %v", model.ErrSchemaError, messageName, rec[colFieldName], err)
	}
	accumulate, err := splitCommaUint8List(rec[colAccumulate])
	if err != nil {
		return FieldSpec{}, fmt.Errorf("%w: %s.%s: accumulate: %v", model.ErrSchemaError, messageName, rec[colFieldName], err)
	}
	refNames := splitCommaList(rec[colRefFieldName])
	refValues := splitCommaList(rec[colRefFieldValue])

	if !(len(components) == 0 || len(components) == len(scale) || defaultScale) {
		return FieldSpec{}, fmt.Errorf("%w: %s.%s: len(components)=%d != len(scale)=%d and scale was not defaulted",
			model.ErrSchemaError, messageName, rec[colFieldName], len(components), len(scale))
	}
	if !(len(components) == len(bits) || (len(components) == 0 && len(bits) <= 1)) {
		return FieldSpec{}, fmt.Errorf("%w: %s.%s: len(components)=%d != len(bits)=%d",
			model.ErrSchemaError, messageName, rec[colFieldName], len(components), len(bits))
	}
	if !(len(components) == len(accumulate) || len(accumulate) == 0) {
		return FieldSpec{}, fmt.Errorf("%w: %s.%s: len(components)=%d != len(accumulate)=%d",
			model.ErrSchemaError, messageName, rec[colFieldName], len(components), len(accumulate))
	}
	if len(refNames) != len(refValues) {
		return FieldSpec{}, fmt.Errorf("%w: %s.%s: len(ref_field_name)=%d != len(ref_field_value)=%d",
			model.ErrSchemaError, messageName, rec[colFieldName], len(refNames), len(refValues))
	}

	var refFields []RefField
	for i := range refNames {
		refFields = append(refFields, RefField{Name: refNames[i], Value: refValues[i]})
	}

	var example *uint8
	if rec[colExample] != "" {
		v, err := strconv.ParseUint(strings.TrimSpace(rec[colExample]), 10, 8)
		if err != nil {
			return FieldSpec{}, fmt.Errorf("%w: %s.%s: example: %v", model.ErrSchemaError, messageName, rec[colFieldName], err)
		}
		ev := uint8(v)
		example = &ev
	}

	return FieldSpec{
		Category:         category,
		DefinitionNumber: uint8(defNum),
		Name:             rec[colFieldName],
		FieldType:        rec[colFieldType],
		Array:            array,
		ArrayLen:         arrayLen,
		Scale:            scale,
		DefaultScale:     defaultScale,
		Offset:           offset,
		Components:       components,
		Units:            units,
		Bits:             bits,
		Accumulate:       accumulate,
		RefFields:        refFields,
		Comment:          rec[colComment],
		Example:          example,
	}, nil
}

func parseArrayKind(s string) (ArrayKind, int, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return NotArray, 0, nil
	case strings.EqualFold(s, "[N]"):
		return VariableArray, 0, nil
	case strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"):
		n, err := strconv.Atoi(strings.TrimSpace(s[1 : len(s)-1]))
		if err != nil || n < 1 {
			return NotArray, 0, fmt.Errorf("invalid fixed array size %q", s)
		}
		return FixedArray, n, nil
	default:
		return NotArray, 0, fmt.Errorf("invalid array specifier %q", s)
	}
}

func parseScale(s string) ([]float64, bool, error) {
	if s == "" {
		return []float64{1.0}, true, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || v <= 0 {
			return nil, false, fmt.Errorf("invalid positive real %q", p)
		}
		out = append(out, v)
	}
	return out, false, nil
}

func parseOffset(s string) (int16, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 0, err
	}
	return int16(v), nil
}

func splitCommaList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func splitCommaUint8List(s string) ([]uint8, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]uint8, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return nil, err
		}
		out = append(out, uint8(v))
	}
	return out, nil
}
