package jsontree

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_InsertionOrder(t *testing.T) {
	v := NewObject("",
		NewString("input_2", "b"),
		NewString("input_1", "a"),
	)

	assert.Equal(t, `{"input_2":"b","input_1":"a"}`, v.Write())
}

func TestWrite_NestedUnnamedObject(t *testing.T) {
	v := NewObject("",
		NewString("Response", ""),
		NewObject("",
			NewString("Response Data", "ping"),
			NewInt("Response Lenght", 4),
		),
	)

	assert.Equal(t, `{"Response":"","":{"Response Data":"ping","Response Lenght":4}}`, v.Write())
}

func TestWrite_Escaping(t *testing.T) {
	v := NewObject("", NewString("k\"", "<a & \"b\">\n\t"))

	assert.Equal(t, `{"k\"":"<a & \"b\">\n\t"}`, v.Write())
}

func TestWrite_ArraysAndLeaves(t *testing.T) {
	v := NewArray("ignored",
		NewBool("x", true),
		NewNull("y"),
		NewNumber("z", "1.5e3"),
		NewArray(""),
		NewObject(""),
	)

	assert.Equal(t, `[true,null,1.5e3,[],{}]`, v.Write())
}

func TestWrite_RoundTripsParsedDocument(t *testing.T) {
	doc := `{"b":1.50,"a":"x","c":[true,null,{"d":-2e3}]}`

	root, err := Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, doc, root.Write())
}

func TestMarshalJSON(t *testing.T) {
	v := NewObject("", NewString("input_1", "a"))

	data, err := json.Marshal(struct {
		Tree *Value `json:"tree"`
	}{Tree: v})
	require.NoError(t, err)

	assert.Equal(t, `{"tree":{"input_1":"a"}}`, string(data))
}
