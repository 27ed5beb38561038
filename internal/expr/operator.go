package expr

import (
	"fmt"
	"strings"

	dqerrors "github.com/pay-theory/dynaquery/pkg/errors"
)

// Operator is a comparison supported in key condition and filter expressions.
// The zero value is Equals.
type Operator int

const (
	Equals Operator = iota
	NotEquals
	LessThan
	LessOrEqual
	GreaterThan
	GreaterOrEqual
	BeginsWith
)

var operatorSymbols = map[Operator]string{
	Equals:         "=",
	NotEquals:      "<>",
	LessThan:       "<",
	LessOrEqual:    "<=",
	GreaterThan:    ">",
	GreaterOrEqual: ">=",
	BeginsWith:     "begins_with",
}

// tokens are matched after lower-casing
var operatorTokens = map[string]Operator{
	"":            Equals,
	"=":           Equals,
	"eq":          Equals,
	"ne":          NotEquals,
	"<>":          NotEquals,
	"!=":          NotEquals,
	"<":           LessThan,
	"lt":          LessThan,
	"<=":          LessOrEqual,
	"le":          LessOrEqual,
	">":           GreaterThan,
	"gt":          GreaterThan,
	">=":          GreaterOrEqual,
	"ge":          GreaterOrEqual,
	"begins_with": BeginsWith,
}

// ParseOperator maps an operator token from a field specifier to an Operator.
// An empty token means equality.
func ParseOperator(token string) (Operator, error) {
	op, ok := operatorTokens[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", dqerrors.ErrInvalidOperator, token)
	}
	return op, nil
}

// String returns the operator as it appears in an expression
func (o Operator) String() string {
	if s, ok := operatorSymbols[o]; ok {
		return s
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// Valid reports whether o is one of the defined operators
func (o Operator) Valid() bool {
	_, ok := operatorSymbols[o]
	return ok
}

// renderKeyCondition renders a key condition. Inequality has no key condition form.
func renderKeyCondition(op Operator, nameRef, valueRef string) (string, error) {
	switch op {
	case Equals, LessThan, LessOrEqual, GreaterThan, GreaterOrEqual:
		return fmt.Sprintf("%s %s %s", nameRef, op, valueRef), nil
	case BeginsWith:
		return fmt.Sprintf("begins_with(%s, %s)", nameRef, valueRef), nil
	default:
		return "", fmt.Errorf("%w: %s is not allowed in a key condition", dqerrors.ErrInvalidOperator, op)
	}
}

// renderFilterCondition renders a filter condition
func renderFilterCondition(op Operator, nameRef, valueRef string) (string, error) {
	switch op {
	case Equals, NotEquals, LessThan, LessOrEqual, GreaterThan, GreaterOrEqual:
		return fmt.Sprintf("%s %s %s", nameRef, op, valueRef), nil
	case BeginsWith:
		return fmt.Sprintf("begins_with(%s, %s)", nameRef, valueRef), nil
	default:
		return "", fmt.Errorf("%w: %s", dqerrors.ErrInvalidOperator, op)
	}
}
