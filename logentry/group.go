package logentry

import (
	"golang.org/x/text/cases"
)

type FieldGroup int

const (
	Proxy FieldGroup = iota
	Request
	Response
)

var groupLabels = [][]string{
	Proxy:    {"Proxy"},
	Request:  {"Request", "Req"},
	Response: {"Response", "Res"},
}

func Groups() []FieldGroup {
	return []FieldGroup{Proxy, Request, Response}
}

func (g FieldGroup) valid() bool {
	return g >= 0 && int(g) < len(groupLabels)
}

// Label is the display label of the group, used as the prefix of qualified names.
func (g FieldGroup) Label() string {
	if !g.valid() {
		return ""
	}
	return groupLabels[g][0]
}

func (g FieldGroup) Labels() []string {
	if !g.valid() {
		return nil
	}
	labels := make([]string, len(groupLabels[g]))
	copy(labels, groupLabels[g])
	return labels
}

func (g FieldGroup) String() string {
	return g.Label()
}

// FindGroupByLabel resolves any of the group labels, ignoring case.
func FindGroupByLabel(label string) (FieldGroup, bool) {
	folded := fold(label)
	for _, group := range Groups() {
		for _, groupLabel := range groupLabels[group] {
			if fold(groupLabel) == folded {
				return group, true
			}
		}
	}
	return 0, false
}

// fold builds a new caser per call, casers keep state and can't be shared.
func fold(s string) string {
	return cases.Fold().String(s)
}
