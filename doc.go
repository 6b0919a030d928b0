// Package boolalg evaluates two-valued Boolean operations and renders their truth tables.
//
// The package is deliberately small: a closed set of eight operators ([Operators]), a parser for
// the textual truth values accepted on the command line ([ParseValue]), a single evaluation
// function ([Apply]) and a truth table type ([Table]) that can render itself as plain text.
package boolalg
