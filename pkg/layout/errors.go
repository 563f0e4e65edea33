package layout

import (
	"errors"
	"fmt"
)

// ErrInvalidOption reports a caller supplied option the resolver does not
// understand, such as an unknown alignment mode.
var ErrInvalidOption = errors.New("layout: invalid option")

// OptionError carries the offending option and value.
type OptionError struct {
	Option string
	Value  string
	Reason string
}

func (e *OptionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("layout: invalid %s %q: %s", e.Option, e.Value, e.Reason)
	}
	return fmt.Sprintf("layout: invalid %s %q", e.Option, e.Value)
}

// Is matches ErrInvalidOption.
func (e *OptionError) Is(target error) bool {
	return target == ErrInvalidOption
}
