package dump

import (
	"errors"
	"fmt"
)

// ErrEmptyDump reports that the input carried no automaton at all: no
// sentinel block in a text stream, or a declared state width of zero. It is
// deliberately distinct from MalformedDumpError so callers can tell "nothing
// to show" apart from corrupt solver output.
var ErrEmptyDump = errors.New("no automaton present in dump")

// MalformedDumpError reports a structurally invalid dump: a missing
// mandatory field, an unparsable value, or (from the explicit builder) an
// index outside its declared bit-width. It is fatal to the dump being
// processed and must never be suppressed.
type MalformedDumpError struct {
	// Field is the dump key at fault, e.g. "num_inputs" or "trans_func_0".
	Field string
	// Line is the 1-based line number in a text dump, 0 for structured input.
	Line int
	// Detail describes the offending value.
	Detail string
}

// Error implements the error interface.
func (e *MalformedDumpError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed dump: field %q (line %d): %s", e.Field, e.Line, e.Detail)
	}
	return fmt.Sprintf("malformed dump: field %q: %s", e.Field, e.Detail)
}
