package jsontree

import (
	"bytes"
	"encoding/json"
)

// Write serializes v as compact, single-line JSON. Object members are
// written in insertion order; names of array elements are ignored.
func (v *Value) Write() string {
	var buf bytes.Buffer
	v.write(&buf)
	return buf.String()
}

// MarshalJSON implements json.Marshaler.
func (v *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	v.write(&buf)
	return buf.Bytes(), nil
}

func (v *Value) write(buf *bytes.Buffer) {
	switch v.Kind {
	case KindObject:
		buf.WriteByte('{')
		for i, child := range v.Children {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeString(buf, child.Name)
			buf.WriteByte(':')
			child.write(buf)
		}
		buf.WriteByte('}')
	case KindArray:
		buf.WriteByte('[')
		for i, child := range v.Children {
			if i > 0 {
				buf.WriteByte(',')
			}
			child.write(buf)
		}
		buf.WriteByte(']')
	case KindString:
		writeString(buf, v.Scalar)
	case KindNumber, KindBool:
		buf.WriteString(v.Scalar)
	default:
		buf.WriteString("null")
	}
}

func writeString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	// Encode cannot fail for a string
	_ = enc.Encode(s)
	// drop the newline Encode appends
	buf.Truncate(buf.Len() - 1)
}
