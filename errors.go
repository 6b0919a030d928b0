package boolalg

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidBoolean is matched by errors returned from [ParseValue].
	ErrInvalidBoolean = errors.New("invalid boolean")
	// ErrMissingOperand is matched by errors returned from [Apply] when a binary operator has no
	// second operand.
	ErrMissingOperand = errors.New("missing operand")
	// ErrUnknownOperator is matched by errors returned from [ParseOperator].
	ErrUnknownOperator = errors.New("unknown operator")
)

// InvalidBooleanError is returned when a token is not one of the accepted truth value forms.
type InvalidBooleanError struct {
	Token string
}

func (e *InvalidBooleanError) Error() string {
	return fmt.Sprintf("invalid boolean %q: expected one of 1, t, true, y, yes, 0, f, false, n, no", e.Token)
}

func (e *InvalidBooleanError) Is(target error) bool {
	return target == ErrInvalidBoolean
}

// MissingOperandError is returned when a binary operator is applied without its second operand.
type MissingOperandError struct {
	Operator Operator
}

func (e *MissingOperandError) Error() string {
	return fmt.Sprintf("missing operand: %s requires B", e.Operator)
}

func (e *MissingOperandError) Is(target error) bool {
	return target == ErrMissingOperand
}

// UnknownOperatorError is returned when an operator token is not part of the enumeration.
type UnknownOperatorError struct {
	Token string
	// Suggestions holds known operator tokens similar to Token, best match first. May be empty.
	Suggestions []string
}

func (e *UnknownOperatorError) Error() string {
	if len(e.Suggestions) > 0 {
		return fmt.Sprintf("unknown operator %q. Did you mean one of these?\n\t%s",
			e.Token,
			strings.Join(e.Suggestions, "\n\t"))
	}
	return fmt.Sprintf("unknown operator %q", e.Token)
}

func (e *UnknownOperatorError) Is(target error) bool {
	return target == ErrUnknownOperator
}
