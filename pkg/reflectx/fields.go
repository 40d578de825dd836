package reflectx

import (
	"reflect"
	"strings"
)

// Field is a struct field as encoding/json sees it.
type Field struct {
	reflect.StructField
	// JSONName is the key of the field in a JSON object.
	JSONName string
	// OmitEmpty is set for the omitempty and omitzero tag options.
	OmitEmpty bool
}

// JSONFields lists the fields of struct type t in declaration order, following
// the encoding/json rules: unexported fields and fields tagged `json:"-"` are
// skipped, untagged embedded structs are flattened into their parent, and a
// field at a shallower depth hides a deeper one with the same name. Among
// fields sharing a name at the shallowest depth, a single one named by its json
// tag wins; otherwise the name is ambiguous and all of them are dropped.
// It returns nil when t is not a struct.
func JSONFields(t reflect.Type) []Field {
	t, _ = Indirect(t)
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	type entry struct {
		Field
		depth  int
		tagged bool
	}
	var all []entry
	var walk func(reflect.Type, int, map[reflect.Type]bool)
	walk = func(st reflect.Type, depth int, visiting map[reflect.Type]bool) {
		if visiting[st] {
			return
		}
		visiting[st] = true
		defer delete(visiting, st)

		for i := range st.NumField() {
			sf := st.Field(i)
			tag, hasTag := sf.Tag.Lookup("json")
			if tag == "-" {
				continue
			}
			name, options, _ := strings.Cut(tag, ",")

			if sf.Anonymous && name == "" {
				et, _ := Indirect(sf.Type)
				if et.Kind() == reflect.Struct {
					walk(et, depth+1, visiting)
					continue
				}
			}
			if !sf.IsExported() {
				continue
			}
			if !hasTag || name == "" {
				name = sf.Name
			}
			all = append(all, entry{
				Field: Field{
					StructField: sf,
					JSONName:    name,
					OmitEmpty:   hasOption(options, "omitempty") || hasOption(options, "omitzero"),
				},
				depth:  depth,
				tagged: hasTag && name != "",
			})
		}
	}
	walk(t, 0, map[reflect.Type]bool{})

	// encoding/json's dominant field: the shallowest entries win, then a
	// single tagged one among them, then a single one at all
	byName := make(map[string][]int, len(all))
	for i, e := range all {
		byName[e.JSONName] = append(byName[e.JSONName], i)
	}
	dominant := make(map[string]int, len(byName))
	for name, idx := range byName {
		depth := all[idx[0]].depth
		for _, i := range idx[1:] {
			depth = min(depth, all[i].depth)
		}
		var shallow, tagged []int
		for _, i := range idx {
			if all[i].depth != depth {
				continue
			}
			shallow = append(shallow, i)
			if all[i].tagged {
				tagged = append(tagged, i)
			}
		}
		switch {
		case len(shallow) == 1:
			dominant[name] = shallow[0]
		case len(tagged) == 1:
			dominant[name] = tagged[0]
		}
	}

	fields := make([]Field, 0, len(dominant))
	for i, e := range all {
		if d, ok := dominant[e.JSONName]; ok && d == i {
			fields = append(fields, e.Field)
		}
	}
	return fields
}

func hasOption(options, want string) bool {
	for options != "" {
		var opt string
		opt, options, _ = strings.Cut(options, ",")
		if opt == want {
			return true
		}
	}
	return false
}
