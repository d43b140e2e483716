// Package divider computes feedback-divider resistances for voltage
// regulators from the equation Vout = Vfb * (1 + R1/R2) and ranks
// standard resistor values against the exact solution. All resistances
// are in kilo-ohms.
package divider

import (
	"fmt"
	"strings"
)

// Mode selects which feedback resistor is solved for; the other role is
// held at the caller-supplied fixed value.
type Mode int

const (
	// SolveR1 holds R2 (lower arm) fixed and solves for R1.
	SolveR1 Mode = iota
	// SolveR2 holds R1 (upper arm) fixed and solves for R2.
	SolveR2
)

func (m Mode) String() string {
	switch m {
	case SolveR1:
		return "solve-r1"
	case SolveR2:
		return "solve-r2"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps the wire form ("r1", "r2") to a Mode. The name is the
// resistor being solved for.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "r1":
		return SolveR1, nil
	case "r2":
		return SolveR2, nil
	}
	return 0, invalidInput("mode", `must be "r1" or "r2"`)
}

// Role names the resistor a solved value belongs to.
type Role int

const (
	RoleR1 Role = iota
	RoleR2
)

func (r Role) String() string {
	switch r {
	case RoleR1:
		return "R1"
	case RoleR2:
		return "R2"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Solution is the theoretical, non-standardized resistance for the
// unknown role. Downstream consumers need the role to know which arm of
// the divider is fixed and which gets standardized.
type Solution struct {
	KOhm float64
	Role Role
}

// Solve computes the exact resistance that hits vOut. fixedKOhm is R2 in
// SolveR1 mode and R1 in SolveR2 mode. There is no clamping: inputs that
// violate a precondition fail with an InvalidInput error, and inputs
// that derive a non-physical resistance fail with a Computation error.
func Solve(mode Mode, vOut, vFB, fixedKOhm float64) (Solution, error) {
	if vFB <= 0 {
		return Solution{}, invalidInput("vfb", "reference voltage must be positive")
	}
	if vOut <= vFB {
		return Solution{}, invalidInput("vout", "output must exceed reference; ratio would be non-positive")
	}
	if fixedKOhm <= 0 {
		return Solution{}, invalidInput("fixed", "fixed resistor must be positive")
	}

	ratio := vOut / vFB

	switch mode {
	case SolveR1:
		r1 := fixedKOhm * (ratio - 1)
		if r1 <= 0 {
			return Solution{}, computationErr("r1", "derived R1 non-positive")
		}
		return Solution{KOhm: r1, Role: RoleR1}, nil
	case SolveR2:
		denom := ratio - 1
		if denom <= 0 {
			return Solution{}, computationErr("r2", "derived R2 denominator non-positive")
		}
		r2 := fixedKOhm / denom
		if r2 <= 0 {
			return Solution{}, computationErr("r2", "derived R2 non-positive")
		}
		return Solution{KOhm: r2, Role: RoleR2}, nil
	}
	return Solution{}, invalidInput("mode", "unknown solve mode")
}
