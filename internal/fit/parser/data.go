package parser

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vililahtevanoja/fit-parser/internal/fit/model"
	"github.com/vililahtevanoja/fit-parser/internal/fit/profile"
	"github.com/vililahtevanoja/fit-parser/internal/fit/registry"
	"github.com/vililahtevanoja/fit-parser/internal/fit/wire"
)

// ParseDataFields consumes one data record's fields as laid out by def
// (§4.G), applying invalid-value detection and, when prof is non-nil,
// best-effort profile resolution: field name, units, scale/offset, and
// enum member names. devCatalog may be nil; developer fields then decode
// to raw bytes only.
func ParseDataFields(c *Cursor, def model.DefinitionEntry, prof *profile.Profile, devCatalog *registry.DeveloperCatalog) ([]model.ResolvedValue, []model.DeveloperValue, error) {
	var msg *profile.MessageSchema
	if prof != nil {
		if m, ok := prof.MessageByNumber(def.GlobalMessageNumber); ok {
			msg = &m
		}
	}

	values := make([]model.ResolvedValue, 0, len(def.Fields))
	for _, layout := range def.Fields {
		rv, err := readOneField(c, layout, def.Endianness)
		if err != nil {
			return nil, nil, err
		}
		if msg != nil {
			if spec, ok := msg.FieldByNumber(layout.DefinitionNumber); ok {
				applyProfile(&rv, spec, prof)
			}
		}
		values = append(values, rv)
	}

	devValues := make([]model.DeveloperValue, 0, len(def.DeveloperFields))
	for _, dl := range def.DeveloperFields {
		raw, err := c.ReadBytes(int(dl.Size))
		if err != nil {
			return nil, nil, err
		}
		dv := model.DeveloperValue{
			FieldNumber:        dl.FieldNumber,
			DeveloperDataIndex: dl.DeveloperDataIndex,
			RawBytes:           append([]byte(nil), raw...),
		}
		if devCatalog != nil {
			if desc, ok := devCatalog.Lookup(dl.DeveloperDataIndex, dl.FieldNumber); ok {
				dv.Name = desc.Name
				resolved := decodeTypedDeveloperValue(raw, desc, def.Endianness)
				dv.Resolved = &resolved
			}
		}
		devValues = append(devValues, dv)
	}

	return values, devValues, nil
}

func readOneField(c *Cursor, layout model.FieldLayout, endianness model.Endianness) (model.ResolvedValue, error) {
	raw, err := c.ReadBytes(int(layout.Size))
	if err != nil {
		return model.ResolvedValue{}, err
	}
	big := endianness == model.BigEndian

	rv := model.ResolvedValue{
		DefinitionNumber: layout.DefinitionNumber,
		RawBytes:         append([]byte(nil), raw...),
	}

	if layout.BaseType.Code == wire.String {
		if s, ok := decodeString(raw); ok {
			rv.Kind = model.KindString
			rv.Str = s
		} else {
			rv.Kind = model.KindBytes
			rv.Bytes = append([]byte(nil), raw...)
		}
		return rv, nil
	}

	elems := decodeElements(raw, layout.BaseType, big)
	applyElementsToValue(&rv, elems)
	return rv, nil
}

// decodeTypedDeveloperValue resolves a developer field's raw bytes once
// its DeveloperFieldDescriptor (sourced from a field_description message)
// is known. An unrecognized base-type code degrades to raw bytes rather
// than failing the record — developer fields are never structural.
func decodeTypedDeveloperValue(raw []byte, desc registry.DeveloperFieldDescriptor, endianness model.Endianness) model.ResolvedValue {
	name := desc.Name
	rv := model.ResolvedValue{
		FieldName: &name,
		Units:     desc.Units,
		RawBytes:  append([]byte(nil), raw...),
	}

	info, ok := wire.Lookup(uint8(desc.BaseType))
	if !ok {
		rv.Kind = model.KindBytes
		rv.Bytes = append([]byte(nil), raw...)
		return rv
	}

	if info.Code == wire.String {
		if s, ok := decodeString(raw); ok {
			rv.Kind = model.KindString
			rv.Str = s
		} else {
			rv.Kind = model.KindBytes
			rv.Bytes = append([]byte(nil), raw...)
		}
		return rv
	}

	elems := decodeElements(raw, info, endianness == model.BigEndian)
	applyElementsToValue(&rv, elems)
	return rv
}

func applyElementsToValue(rv *model.ResolvedValue, elems []model.Element) {
	if len(elems) == 1 {
		e := elems[0]
		rv.Kind = e.Kind
		rv.Int = e.Int
		rv.Uint = e.Uint
		rv.Float = e.Float
		rv.IsInvalid = e.IsInvalid
		return
	}
	rv.Kind = model.KindArray
	rv.Array = elems
	rv.IsInvalid = allInvalid(elems)
}

// decodeElements splits raw into info.Size-byte chunks and decodes each
// to an Element, applying per-element invalid-value detection (§4.G.3)
// before sign-extension or float reinterpretation.
func decodeElements(raw []byte, info wire.Info, big bool) []model.Element {
	n := len(raw) / info.Size
	elems := make([]model.Element, n)
	for i := 0; i < n; i++ {
		chunk := raw[i*info.Size : (i+1)*info.Size]
		bits := packBits(chunk, big)

		e := model.Element{}
		if bits == info.Invalid {
			e.IsInvalid = true
		}
		switch {
		case info.Float():
			e.Kind = model.KindFloat
			if info.Size == 4 {
				e.Float = float64(math.Float32frombits(uint32(bits)))
			} else {
				e.Float = math.Float64frombits(bits)
			}
		case info.Signed():
			e.Kind = model.KindInt
			e.Int = signExtend(bits, info.Size)
		default:
			e.Kind = model.KindUint
			e.Uint = bits
		}
		elems[i] = e
	}
	return elems
}

func packBits(chunk []byte, big bool) uint64 {
	var v uint64
	if big {
		for _, b := range chunk {
			v = v<<8 | uint64(b)
		}
	} else {
		for i := len(chunk) - 1; i >= 0; i-- {
			v = v<<8 | uint64(chunk[i])
		}
	}
	return v
}

func signExtend(bits uint64, size int) int64 {
	shift := uint(64 - size*8)
	return int64(bits<<shift) >> shift
}

func allInvalid(elems []model.Element) bool {
	if len(elems) == 0 {
		return false
	}
	for _, e := range elems {
		if !e.IsInvalid {
			return false
		}
	}
	return true
}

// decodeString applies the string base type's zero-terminated decoding
// rule: the run up to the first NUL (or the whole run if none) is
// interpreted as UTF-8. Invalid UTF-8 degrades to raw bytes rather than
// failing the record.
func decodeString(raw []byte) (string, bool) {
	end := len(raw)
	for i, b := range raw {
		if b == 0 {
			end = i
			break
		}
	}
	s := raw[:end]
	if !utf8.Valid(s) {
		return "", false
	}
	return string(s), true
}

// applyProfile attaches profile metadata to an already-decoded field
// value: name, units, enum member name (when field_type names an
// EnumType), or scale/offset conversion to a physical float value.
// Profile misses anywhere in this path are silently absorbed upstream —
// applyProfile is only called once a FieldSpec has already been found.
func applyProfile(rv *model.ResolvedValue, spec profile.FieldSpec, prof *profile.Profile) {
	name := spec.Name
	rv.FieldName = &name
	if len(spec.Units) > 0 {
		rv.Units = strings.Join(spec.Units, ",")
	}

	if _, ok := prof.Enums[spec.FieldType]; ok {
		if rv.IsInvalid {
			return
		}
		switch rv.Kind {
		case model.KindUint:
			if n, ok := prof.EnumMemberName(spec.FieldType, uint32(rv.Uint)); ok {
				rv.EnumName = n
			}
		case model.KindInt:
			if n, ok := prof.EnumMemberName(spec.FieldType, uint32(rv.Int)); ok {
				rv.EnumName = n
			}
		}
		return
	}

	scale := 1.0
	if len(spec.Scale) == 1 {
		scale = spec.Scale[0]
	}
	offset := float64(spec.Offset)
	if scale == 1.0 && offset == 0 {
		return
	}

	switch rv.Kind {
	case model.KindUint:
		if !rv.IsInvalid {
			rv.Float = float64(rv.Uint)/scale - offset
			rv.Kind = model.KindFloat
		}
	case model.KindInt:
		if !rv.IsInvalid {
			rv.Float = float64(rv.Int)/scale - offset
			rv.Kind = model.KindFloat
		}
	case model.KindArray:
		for i := range rv.Array {
			e := &rv.Array[i]
			if e.IsInvalid {
				continue
			}
			switch e.Kind {
			case model.KindUint:
				e.Float = float64(e.Uint)/scale - offset
				e.Kind = model.KindFloat
			case model.KindInt:
				e.Float = float64(e.Int)/scale - offset
				e.Kind = model.KindFloat
			}
		}
	}
}
