package jsontree

import (
	"fmt"
	"io"
)

const (
	traceStart = "-- Array or Node Start\n"
	traceEnd   = "-- Array or Node End\n"
)

// Render writes the trace of the children of v to w, line by line, as
// it walks the tree. Container children are traced before the line
// describing the container itself, so a container's own line follows
// its subtree. Render stops at the first write error.
func Render(w io.Writer, v *Value) error {
	if _, err := io.WriteString(w, traceStart); err != nil {
		return err
	}

	for _, child := range v.Children {
		if child.IsContainer() {
			if err := Render(w, child); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "Node Name: [%s] Node Value: [%s]\n", child.Name, child.String()); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, traceEnd)
	return err
}
