package logentry

import (
	"fmt"
	"strings"
)

type registry struct {
	ordered  map[FieldGroup][]Field
	short    map[FieldGroup]map[string]Field
	complete map[FieldGroup]map[string]Field
}

var fields = mustBuildRegistry(definitions)

func mustBuildRegistry(defs []definition) *registry {
	r, err := buildRegistry(defs)
	if err != nil {
		panic(err)
	}
	return r
}

// buildRegistry indexes defs in declaration order, so on a label collision
// inside a group the later definition wins.
func buildRegistry(defs []definition) (*registry, error) {
	r := registry{
		ordered:  make(map[FieldGroup][]Field),
		short:    make(map[FieldGroup]map[string]Field),
		complete: make(map[FieldGroup]map[string]Field),
	}
	for _, group := range Groups() {
		r.short[group] = make(map[string]Field)
		r.complete[group] = make(map[string]Field)
	}

	for i := 0; i < len(defs); i++ {
		d := defs[i]
		field := Field(i)
		err := validate(d)
		if err != nil {
			return nil, fmt.Errorf("field %d: %v", i, err)
		}

		r.ordered[d.group] = append(r.ordered[d.group], field)
		r.short[d.group][d.labels[0]] = field
		for _, label := range d.labels {
			r.complete[d.group][fold(label)] = field
		}
	}
	return &r, nil
}

func validate(d definition) error {
	if !d.group.valid() {
		return fmt.Errorf("unknown group %d", int(d.group))
	}
	if len(d.labels) == 0 {
		return fmt.Errorf("no labels")
	}
	for _, label := range d.labels {
		if label == "" {
			return fmt.Errorf("empty label")
		}
		if strings.Contains(label, ".") {
			return fmt.Errorf("label %q contains the qualified name separator", label)
		}
	}
	return nil
}

func (r *registry) fieldsInGroup(group FieldGroup) []Field {
	ordered := r.ordered[group]
	result := make([]Field, len(ordered))
	copy(result, ordered)
	return result
}

func (r *registry) byLabel(group FieldGroup, label string) (Field, bool) {
	groupFields, exists := r.complete[group]
	if !exists {
		return 0, false
	}
	field, exists := groupFields[fold(label)]
	return field, exists
}

func (r *registry) byCanonicalLabel(group FieldGroup, label string) (Field, bool) {
	field, exists := r.short[group][label]
	return field, exists
}

func (r *registry) byQualifiedName(name string) (Field, bool) {
	position := strings.Index(name, ".")
	if position == -1 {
		return 0, false
	}
	group, exists := FindGroupByLabel(name[:position])
	if !exists {
		return 0, false
	}
	return r.byLabel(group, name[position+1:])
}

// FieldsInGroup returns the fields of the group in declaration order.
func FieldsInGroup(group FieldGroup) []Field {
	return fields.fieldsInGroup(group)
}

// ByLabel resolves any alias of a field within the group, ignoring case.
func ByLabel(group FieldGroup, label string) (Field, bool) {
	return fields.byLabel(group, label)
}

// ByCanonicalLabel resolves the exact first alias of a field within the group.
func ByCanonicalLabel(group FieldGroup, label string) (Field, bool) {
	return fields.byCanonicalLabel(group, label)
}

// ByQualifiedName resolves "<group>.<alias>", e.g. "req.method".
func ByQualifiedName(name string) (Field, bool) {
	return fields.byQualifiedName(name)
}
