package boolalg

import (
	"fmt"

	"github.com/mfridman/boolalg/pkg/suggest"
)

// Operator is one of the eight supported Boolean operators.
type Operator int

const (
	Not Operator = iota + 1
	And
	Or
	Xor
	Nand
	Nor
	Xnor
	// Imp is material implication, A → B.
	Imp
)

var operatorNames = map[Operator]string{
	Not:  "NOT",
	And:  "AND",
	Or:   "OR",
	Xor:  "XOR",
	Nand: "NAND",
	Nor:  "NOR",
	Xnor: "XNOR",
	Imp:  "IMP",
}

var operatorTokens = map[string]Operator{
	"not":  Not,
	"and":  And,
	"or":   Or,
	"xor":  Xor,
	"nand": Nand,
	"nor":  Nor,
	"xnor": Xnor,
	"imp":  Imp,
}

// Operators returns every operator in display order: NOT, AND, OR, XOR, NAND, NOR, XNOR, IMP.
func Operators() []Operator {
	return []Operator{Not, And, Or, Xor, Nand, Nor, Xnor, Imp}
}

// OperatorTokens returns the command-line tokens of all operators, in [Operators] order.
func OperatorTokens() []string {
	ops := Operators()
	tokens := make([]string, 0, len(ops))
	for _, op := range ops {
		tokens = append(tokens, op.Token())
	}
	return tokens
}

// ParseOperator returns the operator named by a command-line token. Tokens are lower-case; an
// unrecognized token returns an [*UnknownOperatorError] carrying close matches, if any.
func ParseOperator(token string) (Operator, error) {
	if op, ok := operatorTokens[token]; ok {
		return op, nil
	}
	return 0, &UnknownOperatorError{
		Token:       token,
		Suggestions: suggest.FindSimilar(token, OperatorTokens(), 3),
	}
}

// String returns the upper-case operator name used in table headers, e.g. "NAND".
func (op Operator) String() string {
	if name, ok := operatorNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// Token returns the command-line token for the operator, e.g. "nand".
func (op Operator) Token() string {
	for token, o := range operatorTokens {
		if o == op {
			return token
		}
	}
	return ""
}

// Arity is 1 for [Not] and 2 for every other operator.
func (op Operator) Arity() int {
	if op == Not {
		return 1
	}
	return 2
}

// Valid reports whether op is one of the eight defined operators.
func (op Operator) Valid() bool {
	_, ok := operatorNames[op]
	return ok
}
