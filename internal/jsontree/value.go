package jsontree

import "strconv"

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a named node of a JSON document. Leaves carry their scalar
// text in Scalar, containers carry their members in Children, in
// document order. Array elements and the document root have an empty
// name.
type Value struct {
	Name     string
	Kind     Kind
	Scalar   string
	Children []*Value
}

// NewString creates a string leaf.
func NewString(name, value string) *Value {
	return &Value{Name: name, Kind: KindString, Scalar: value}
}

// NewInt creates a number leaf from an integer.
func NewInt(name string, value int) *Value {
	return &Value{Name: name, Kind: KindNumber, Scalar: strconv.Itoa(value)}
}

// NewNumber creates a number leaf from a literal. The literal is not
// validated.
func NewNumber(name, literal string) *Value {
	return &Value{Name: name, Kind: KindNumber, Scalar: literal}
}

// NewBool creates a bool leaf.
func NewBool(name string, value bool) *Value {
	return &Value{Name: name, Kind: KindBool, Scalar: strconv.FormatBool(value)}
}

// NewNull creates a null leaf.
func NewNull(name string) *Value {
	return &Value{Name: name, Kind: KindNull, Scalar: "null"}
}

// NewObject creates an object container holding children.
func NewObject(name string, children ...*Value) *Value {
	return &Value{Name: name, Kind: KindObject, Children: children}
}

// NewArray creates an array container holding children.
func NewArray(name string, children ...*Value) *Value {
	return &Value{Name: name, Kind: KindArray, Children: children}
}

// Append adds child as the last member of v and returns v.
func (v *Value) Append(child *Value) *Value {
	v.Children = append(v.Children, child)
	return v
}

// IsContainer reports whether v is an object or an array.
func (v *Value) IsContainer() bool {
	return v.Kind == KindObject || v.Kind == KindArray
}

// String coerces v to text. Containers coerce to the empty string and
// null to "null".
func (v *Value) String() string {
	if v == nil || v.IsContainer() {
		return ""
	}

	return v.Scalar
}
