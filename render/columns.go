package render

import (
	"fmt"
	"strings"

	"github.com/alonana/httfields/logentry"
)

// ProduceColumns resolves a comma separated list of qualified field names.
// An empty list selects all fields.
func ProduceColumns(arg string) ([]logentry.Field, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return logentry.AllFields(), nil
	}

	var columns []logentry.Field
	sections := strings.Split(arg, ",")
	for i := 0; i < len(sections); i++ {
		name := strings.TrimSpace(sections[i])
		if name == "" {
			continue
		}
		field, exists := logentry.ByQualifiedName(name)
		if !exists {
			return nil, fmt.Errorf("unknown field %v, expected <group>.<field> such as Request.Method", name)
		}
		columns = append(columns, field)
	}

	if len(columns) == 0 {
		return nil, fmt.Errorf("no columns in %v", arg)
	}
	return columns, nil
}

// ProduceGroupFields returns the fields of the group label, or all fields for
// an empty label.
func ProduceGroupFields(label string) ([]logentry.Field, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return logentry.AllFields(), nil
	}
	group, exists := logentry.FindGroupByLabel(label)
	if !exists {
		return nil, fmt.Errorf("unknown group %v", label)
	}
	return logentry.FieldsInGroup(group), nil
}
