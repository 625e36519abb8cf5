package jsontree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// MaxDepth is the deepest container nesting Parse accepts.
const MaxDepth = 1000

var ErrInvalidJSON = errors.New("invalid json")

// Parse decodes data into a tree. The document root must be an object
// or an array, and nothing but whitespace may follow it. Member order
// and number literals are preserved as written.
func Parse(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, invalid(err)
	}

	delim, ok := tok.(json.Delim)
	if !ok || (delim != '{' && delim != '[') {
		return nil, fmt.Errorf("%w: root must be an object or an array", ErrInvalidJSON)
	}

	root, err := parseContainer(dec, "", delim, 1)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after document", ErrInvalidJSON)
	}

	return root, nil
}

// Valid reports whether data is a document Parse accepts.
func Valid(data []byte) bool {
	_, err := Parse(data)
	return err == nil
}

func parseContainer(dec *json.Decoder, name string, open json.Delim, depth int) (*Value, error) {
	if depth > MaxDepth {
		return nil, fmt.Errorf("%w: nesting exceeds %d levels", ErrInvalidJSON, MaxDepth)
	}

	v := NewArray(name)
	if open == '{' {
		v.Kind = KindObject
	}

	for dec.More() {
		var childName string

		if v.Kind == KindObject {
			tok, err := dec.Token()
			if err != nil {
				return nil, invalid(err)
			}

			key, ok := tok.(string)
			if !ok {
				return nil, fmt.Errorf("%w: expected object key, got %v", ErrInvalidJSON, tok)
			}

			childName = key
		}

		child, err := parseValue(dec, childName, depth)
		if err != nil {
			return nil, err
		}

		v.Append(child)
	}

	// consume the closing delimiter
	if _, err := dec.Token(); err != nil {
		return nil, invalid(err)
	}

	return v, nil
}

func parseValue(dec *json.Decoder, name string, depth int) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, invalid(err)
	}

	switch t := tok.(type) {
	case json.Delim:
		if t != '{' && t != '[' {
			return nil, fmt.Errorf("%w: unexpected %v", ErrInvalidJSON, t)
		}
		return parseContainer(dec, name, t, depth+1)
	case string:
		return NewString(name, t), nil
	case json.Number:
		return NewNumber(name, t.String()), nil
	case bool:
		return NewBool(name, t), nil
	case nil:
		return NewNull(name), nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %T", ErrInvalidJSON, tok)
	}
}

func invalid(err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}

	return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
}
