package divider

import "fmt"

// ErrorKind classifies solver failures so callers can branch on the
// category without matching message text.
type ErrorKind int

const (
	// InvalidInput means a caller-supplied parameter violates a precondition.
	InvalidInput ErrorKind = iota
	// Computation means valid-looking input still produced a non-physical result.
	Computation
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case Computation:
		return "computation"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error reports a failed solve. Param names the offending parameter and
// Constraint describes the violated requirement, so presentation layers
// can format or localize messages from the fields alone.
type Error struct {
	Kind       ErrorKind
	Param      string
	Constraint string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Param, e.Constraint)
}

func invalidInput(param, constraint string) *Error {
	return &Error{Kind: InvalidInput, Param: param, Constraint: constraint}
}

func computationErr(param, constraint string) *Error {
	return &Error{Kind: Computation, Param: param, Constraint: constraint}
}
