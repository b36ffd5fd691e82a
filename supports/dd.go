package supports

import (
	"encoding/json"
	"fmt"
	"io"
)

// Dump writes each argument to w as indented JSON, or with %+v when it
// cannot be marshaled.
func Dump(w io.Writer, arg ...any) {
	for _, a := range arg {
		if jsonBytes, err := json.MarshalIndent(a, "", "  "); err == nil {
			fmt.Fprintf(w, "%s\n", jsonBytes)
		} else {
			fmt.Fprintf(w, "%+v\n", a)
		}
	}
}
