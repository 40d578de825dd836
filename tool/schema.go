package tool

import (
	"encoding"
	stdjson "encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/casualjim/fmp/pkg/reflectx"
	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Parameters describes the input struct t as a JSON schema object suitable for
// function calling. Fields are read in declaration order and described by
// their tags:
//
//	json:"name,omitempty"    property name; omitempty (or a pointer type) makes it optional
//	description:"..."        copied onto the property
//	enum:"a,b,c"             allowed values, parsed as the field's type
//	default:"..."            default value, parsed as the field's type; implies optional
//	minimum:"1" maximum:"9"  bounds for numeric fields
//
// Strings map to string, bool to boolean, integers to integer, floats to number,
// slices and arrays to array, time.Time to a date-time string and nested structs
// to objects. Any other type is described as a string.
//
// Required lists the fields that are neither optional nor defaulted. In strict
// mode every field is required and optional or defaulted fields accept null
// instead, which is what OpenAI strict function calling expects.
func Parameters(t reflect.Type, strict bool) (*jsonschema.Schema, error) {
	st, _ := reflectx.Indirect(t)
	if st == nil || st.Kind() != reflect.Struct || isStringLike(st) || reflectx.Is[time.Time](st) {
		return nil, fmt.Errorf("%w: %v is not a struct", ErrUnsupportedInput, t)
	}
	return objectSchema(st, strict, map[reflect.Type]bool{})
}

// param is a struct field with its wrappers removed.
type param struct {
	name        string
	typ         reflect.Type
	optional    bool
	description string
	enum        []string
	defaultRaw  string
	hasDefault  bool
	minimum     string
	maximum     string
}

func (p param) required() bool {
	return !p.optional && !p.hasDefault
}

func objectSchema(t reflect.Type, strict bool, stack map[reflect.Type]bool) (*jsonschema.Schema, error) {
	if stack[t] {
		return nil, fmt.Errorf("%w: %v refers to itself", ErrUnsupportedInput, t)
	}
	stack[t] = true
	defer delete(stack, t)

	obj := &jsonschema.Schema{
		Type:                 "object",
		Properties:           orderedmap.New[string, *jsonschema.Schema](),
		AdditionalProperties: jsonschema.FalseSchema,
	}
	for _, f := range reflectx.JSONFields(t) {
		p := unwrap(f)
		prop, err := typeSchema(p.typ, p, strict, stack)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", p.name, err)
		}
		prop.Description = p.description

		if p.hasDefault {
			def, err := parseValue(p.typ, p.defaultRaw)
			if err != nil {
				return nil, fmt.Errorf("field %s: default %q: %w", p.name, p.defaultRaw, err)
			}
			if strict {
				// strict mode rejects the default keyword
				prop.Description = strings.TrimSpace(prop.Description + " Defaults to " + p.defaultRaw + ".")
			} else {
				prop.Default = def
			}
		}

		switch {
		case strict:
			if !p.required() {
				prop = nullable(prop)
			}
			obj.Required = append(obj.Required, p.name)
		case p.required():
			obj.Required = append(obj.Required, p.name)
		}
		obj.Properties.Set(p.name, prop)
	}
	return obj, nil
}

// unwrap removes the optional wrapper (pointer or omitempty) and reads the tags.
func unwrap(f reflectx.Field) param {
	typ, ptr := reflectx.Indirect(f.Type)
	p := param{
		name:        f.JSONName,
		typ:         typ,
		optional:    ptr || f.OmitEmpty,
		description: strings.TrimSpace(f.Tag.Get("description")),
		enum:        splitList(f.Tag.Get("enum")),
		minimum:     strings.TrimSpace(f.Tag.Get("minimum")),
		maximum:     strings.TrimSpace(f.Tag.Get("maximum")),
	}
	p.defaultRaw, p.hasDefault = f.Tag.Lookup("default")
	return p
}

func typeSchema(t reflect.Type, p param, strict bool, stack map[reflect.Type]bool) (*jsonschema.Schema, error) {
	if reflectx.Is[time.Time](t) {
		return &jsonschema.Schema{Type: "string", Format: "date-time"}, nil
	}
	if isStringLike(t) {
		return &jsonschema.Schema{Type: "string"}, nil
	}

	switch t.Kind() {
	case reflect.String:
		s := &jsonschema.Schema{Type: "string"}
		return s, withEnum(s, t, p.enum)
	case reflect.Bool:
		return &jsonschema.Schema{Type: "boolean"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		s := &jsonschema.Schema{Type: "integer"}
		if err := withEnum(s, t, p.enum); err != nil {
			return nil, err
		}
		return s, withBounds(s, p)
	case reflect.Float32, reflect.Float64:
		s := &jsonschema.Schema{Type: "number"}
		if err := withEnum(s, t, p.enum); err != nil {
			return nil, err
		}
		return s, withBounds(s, p)
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			// encoding/json writes byte slices as base64 strings
			return &jsonschema.Schema{Type: "string", ContentEncoding: "base64"}, nil
		}
		elem, _ := reflectx.Indirect(t.Elem())
		items, err := typeSchema(elem, p, strict, stack)
		if err != nil {
			return nil, err
		}
		return &jsonschema.Schema{Type: "array", Items: items}, nil
	case reflect.Struct:
		return objectSchema(t, strict, stack)
	default:
		return &jsonschema.Schema{Type: "string"}, nil
	}
}

// isStringLike reports types that encode themselves as JSON strings.
func isStringLike(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && !reflectx.Is[time.Time](t) && reflectx.Implements[encoding.TextUnmarshaler](t)
}

func nullable(s *jsonschema.Schema) *jsonschema.Schema {
	desc := s.Description
	s.Description = ""
	return &jsonschema.Schema{
		AnyOf:       []*jsonschema.Schema{s, {Type: "null"}},
		Description: desc,
	}
}

func withEnum(s *jsonschema.Schema, t reflect.Type, values []string) error {
	for _, v := range values {
		pv, err := parseValue(t, v)
		if err != nil {
			return fmt.Errorf("enum value %q: %w", v, err)
		}
		s.Enum = append(s.Enum, pv)
	}
	return nil
}

func withBounds(s *jsonschema.Schema, p param) error {
	if p.minimum != "" {
		if _, err := strconv.ParseFloat(p.minimum, 64); err != nil {
			return fmt.Errorf("minimum %q: %w", p.minimum, err)
		}
		s.Minimum = stdjson.Number(p.minimum)
	}
	if p.maximum != "" {
		if _, err := strconv.ParseFloat(p.maximum, 64); err != nil {
			return fmt.Errorf("maximum %q: %w", p.maximum, err)
		}
		s.Maximum = stdjson.Number(p.maximum)
	}
	return nil
}

// parseValue converts a tag value to the JSON value of type t. Slices take a
// comma separated list.
func parseValue(t reflect.Type, raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	switch t.Kind() {
	case reflect.Bool:
		return strconv.ParseBool(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.ParseInt(raw, 10, t.Bits())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.ParseUint(raw, 10, t.Bits())
	case reflect.Float32, reflect.Float64:
		return strconv.ParseFloat(raw, t.Bits())
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return raw, nil
		}
		elem, _ := reflectx.Indirect(t.Elem())
		values := []any{}
		for _, item := range splitList(raw) {
			v, err := parseValue(elem, item)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		return values, nil
	case reflect.Struct:
		if isStringLike(t) || reflectx.Is[time.Time](t) {
			return raw, nil
		}
		return nil, fmt.Errorf("%w: no tag values for %v", ErrUnsupportedInput, t)
	default:
		return raw, nil
	}
}

func splitList(tag string) []string {
	if strings.TrimSpace(tag) == "" {
		return nil
	}
	parts := strings.Split(tag, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
