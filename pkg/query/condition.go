package query

import (
	"fmt"
	"strings"

	"github.com/pay-theory/dynaquery/internal/expr"
)

// Operator is a comparison usable in a Condition
type Operator = expr.Operator

// Supported operators
const (
	Equals         = expr.Equals
	NotEquals      = expr.NotEquals
	LessThan       = expr.LessThan
	LessOrEqual    = expr.LessOrEqual
	GreaterThan    = expr.GreaterThan
	GreaterOrEqual = expr.GreaterOrEqual
	BeginsWith     = expr.BeginsWith
)

// Condition compares one attribute against one literal
type Condition struct {
	Attribute string
	Operator  Operator
	Value     any
}

// Cond creates a Condition
func Cond(attribute string, op Operator, value any) Condition {
	return Condition{
		Attribute: attribute,
		Operator:  op,
		Value:     value,
	}
}

// ParseCondition parses a field specifier "attribute[.operator]" into a
// Condition. A missing operator means equality.
func ParseCondition(fieldSpec string, value any) (Condition, error) {
	attribute, token, _ := strings.Cut(fieldSpec, ".")

	op, err := expr.ParseOperator(token)
	if err != nil {
		return Condition{}, err
	}

	return Cond(attribute, op, value), nil
}

func (c Condition) String() string {
	return fmt.Sprintf("%s %s %v", c.Attribute, c.Operator, c.Value)
}
