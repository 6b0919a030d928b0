package boolalg

import "fmt"

// Apply evaluates op on a and the optional second operand b.
//
// For [Not], b is ignored and may be nil. Every other operator requires b; a nil b returns a
// [*MissingOperandError].
func Apply(op Operator, a bool, b *bool) (bool, error) {
	if op == Not {
		return !a, nil
	}
	if !op.Valid() {
		return false, fmt.Errorf("apply: %v is not a known operator", op)
	}
	if b == nil {
		return false, &MissingOperandError{Operator: op}
	}
	switch y := *b; op {
	case And:
		return a && y, nil
	case Or:
		return a || y, nil
	case Xor:
		return a != y, nil
	case Nand:
		return !(a && y), nil
	case Nor:
		return !(a || y), nil
	case Xnor:
		return a == y, nil
	case Imp:
		return !a || y, nil
	}
	return false, fmt.Errorf("apply: no rule for operator %v", op)
}
