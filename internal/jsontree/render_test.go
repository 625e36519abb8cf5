package jsontree

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, doc string) string {
	t.Helper()

	root, err := Parse([]byte(doc))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, Render(&sb, root))

	return sb.String()
}

func TestRender_FlatObject(t *testing.T) {
	expected := "-- Array or Node Start\n" +
		"Node Name: [x] Node Value: [1]\n" +
		"-- Array or Node End\n"

	assert.Equal(t, expected, render(t, `{"x":1}`))
}

func TestRender_ContainerLineFollowsSubtree(t *testing.T) {
	expected := "-- Array or Node Start\n" +
		"Node Name: [a] Node Value: [s]\n" +
		"-- Array or Node Start\n" +
		"Node Name: [] Node Value: [1]\n" +
		"-- Array or Node Start\n" +
		"Node Name: [c] Node Value: [false]\n" +
		"-- Array or Node End\n" +
		"Node Name: [] Node Value: []\n" +
		"-- Array or Node End\n" +
		"Node Name: [b] Node Value: []\n" +
		"Node Name: [n] Node Value: [null]\n" +
		"-- Array or Node End\n"

	assert.Equal(t, expected, render(t, `{"a":"s","b":[1,{"c":false}],"n":null}`))
}

func TestRender_EmptyContainers(t *testing.T) {
	assert.Equal(t, "-- Array or Node Start\n-- Array or Node End\n", render(t, `{}`))

	expected := "-- Array or Node Start\n" +
		"-- Array or Node Start\n" +
		"-- Array or Node End\n" +
		"Node Name: [] Node Value: []\n" +
		"-- Array or Node End\n"

	assert.Equal(t, expected, render(t, `[[]]`))
}

func TestRender_VisitsEveryNodeOnce(t *testing.T) {
	out := render(t, `{"a":{"b":{"c":[1,2,3]}},"d":[{"e":1},{"f":2}]}`)

	starts := strings.Count(out, "-- Array or Node Start")
	ends := strings.Count(out, "-- Array or Node End")
	lines := strings.Count(out, "Node Name:")

	// root, a, b, c, d, two elements of d
	assert.Equal(t, 7, starts)
	assert.Equal(t, starts, ends)
	// every node but the root
	assert.Equal(t, 11, lines)
}

type failingWriter struct {
	writes int
	failAt int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.writes == w.failAt {
		return 0, errors.New("write failed")
	}
	return len(p), nil
}

func TestRender_StopsOnWriteError(t *testing.T) {
	root := NewObject("", NewInt("a", 1), NewInt("b", 2), NewInt("c", 3))

	w := &failingWriter{failAt: 2}
	err := Render(w, root)

	assert.EqualError(t, err, "write failed")
	assert.Equal(t, 2, w.writes)
}
