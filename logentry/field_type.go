package logentry

// FieldType is the logical type of a field value. Record values are int,
// string, bool and time.Time respectively.
type FieldType int

const (
	Integer FieldType = iota
	String
	Boolean
	Timestamp
)

func (t FieldType) String() string {
	switch t {
	case Integer:
		return "Integer"
	case String:
		return "String"
	case Boolean:
		return "Boolean"
	case Timestamp:
		return "Date"
	}
	return "Unknown"
}
