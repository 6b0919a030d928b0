package boolalg

import (
	"fmt"
	"io"
)

// Row is one line of a truth table. B is nil for the unary [Not] table.
type Row struct {
	A      bool
	B      *bool
	Result bool
}

// Table is the exhaustive truth table of a single operator.
type Table struct {
	Operator Operator
	Rows     []Row
}

// domain is the ordered input domain: false before true.
var domain = [2]bool{false, true}

// NewTable computes the truth table for op. Rows are ordered with A as the outer loop and B as the
// inner loop, both ascending: (F,F), (F,T), (T,F), (T,T).
func NewTable(op Operator) (Table, error) {
	t := Table{Operator: op}
	if op.Arity() == 1 {
		for _, a := range domain {
			r, err := Apply(op, a, nil)
			if err != nil {
				return Table{}, err
			}
			t.Rows = append(t.Rows, Row{A: a, Result: r})
		}
		return t, nil
	}
	for _, a := range domain {
		for _, b := range domain {
			b := b
			r, err := Apply(op, a, &b)
			if err != nil {
				return Table{}, err
			}
			t.Rows = append(t.Rows, Row{A: a, B: &b, Result: r})
		}
	}
	return t, nil
}

// AllTables returns the truth tables of every operator, in [Operators] order.
func AllTables() []Table {
	ops := Operators()
	tables := make([]Table, 0, len(ops))
	for _, op := range ops {
		// Defined operators cannot fail.
		t, _ := NewTable(op)
		tables = append(tables, t)
	}
	return tables
}

// WriteText renders the table with values as 0/1:
//
//	A B | NAND
//	-------------
//	0 0 |   1
//	...
func (t Table) WriteText(w io.Writer) error {
	if t.Operator.Arity() == 1 {
		if _, err := fmt.Fprintf(w, "A | %s\n--------\n", t.Operator); err != nil {
			return err
		}
		for _, r := range t.Rows {
			if _, err := fmt.Fprintf(w, "%s | %3s\n", FormatValue(r.A), FormatValue(r.Result)); err != nil {
				return err
			}
		}
		return nil
	}
	if _, err := fmt.Fprintf(w, "A B | %s\n-------------\n", t.Operator); err != nil {
		return err
	}
	for _, r := range t.Rows {
		var b bool
		if r.B != nil {
			b = *r.B
		}
		if _, err := fmt.Fprintf(w, "%s %s |   %s\n",
			FormatValue(r.A), FormatValue(b), FormatValue(r.Result)); err != nil {
			return err
		}
	}
	return nil
}
