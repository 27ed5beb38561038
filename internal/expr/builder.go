package expr

import (
	"fmt"
	"strings"

	"github.com/pay-theory/dynaquery/pkg/validation"
)

// Builder compiles key condition and filter expressions for a DynamoDB query
type Builder struct {
	// Expression components
	keyConditions    []string
	filterConditions []string

	// Attribute mappings, with registration order kept alongside
	names      map[string]string
	nameOrder  []string
	values     map[string]any
	valueOrder []string

	// Counter for value placeholder generation, never decremented
	valueCounter int
}

// NewBuilder creates a new expression builder
func NewBuilder() *Builder {
	return &Builder{
		names:  make(map[string]string),
		values: make(map[string]any),
	}
}

// AddKeyCondition adds a key condition expression
func (b *Builder) AddKeyCondition(field string, op Operator, value any) error {
	expr, err := b.buildCondition(field, op, value, renderKeyCondition)
	if err != nil {
		return err
	}
	b.keyConditions = append(b.keyConditions, expr)
	return nil
}

// AddFilterCondition adds a filter condition expression
func (b *Builder) AddFilterCondition(field string, op Operator, value any) error {
	expr, err := b.buildCondition(field, op, value, renderFilterCondition)
	if err != nil {
		return err
	}
	b.filterConditions = append(b.filterConditions, expr)
	return nil
}

// Build compiles all expressions and returns the final components.
// The returned maps and slices are copies; the builder is left untouched.
func (b *Builder) Build() ExpressionComponents {
	components := ExpressionComponents{
		KeyConditionExpression:    strings.Join(b.keyConditions, " AND "),
		FilterExpression:          strings.Join(b.filterConditions, " AND "),
		ExpressionAttributeNames:  make(map[string]string, len(b.names)),
		ExpressionAttributeValues: make(map[string]any, len(b.values)),
		NameOrder:                 append([]string(nil), b.nameOrder...),
		ValueOrder:                append([]string(nil), b.valueOrder...),
	}

	for k, v := range b.names {
		components.ExpressionAttributeNames[k] = v
	}
	for k, v := range b.values {
		components.ExpressionAttributeValues[k] = v
	}

	return components
}

type renderFunc func(op Operator, nameRef, valueRef string) (string, error)

// buildCondition renders a single condition. Placeholders are only registered
// once the condition is known to be valid, so a rejected condition leaves no trace.
func (b *Builder) buildCondition(field string, op Operator, value any, render renderFunc) (string, error) {
	if err := validation.ValidateAttributeName(field); err != nil {
		return "", err
	}

	expr, err := render(op, NameAlias(field), ValueAlias(b.valueCounter+1))
	if err != nil {
		return "", err
	}

	b.addName(field)
	b.addValue(value)
	return expr, nil
}

// addName adds an attribute name and returns its placeholder
func (b *Builder) addName(name string) string {
	placeholder := NameAlias(name)
	if _, ok := b.names[placeholder]; ok {
		return placeholder
	}

	b.names[placeholder] = name
	b.nameOrder = append(b.nameOrder, placeholder)
	return placeholder
}

// addValue adds an attribute value and returns its placeholder
func (b *Builder) addValue(value any) string {
	b.valueCounter++
	placeholder := ValueAlias(b.valueCounter)

	b.values[placeholder] = value
	b.valueOrder = append(b.valueOrder, placeholder)
	return placeholder
}

// NameAlias returns the placeholder standing for an attribute name
func NameAlias(name string) string {
	return "#" + name
}

// ValueAlias returns the placeholder for the n-th registered value
func ValueAlias(n int) string {
	return fmt.Sprintf(":val%d", n)
}

// ExpressionComponents holds all expression components
type ExpressionComponents struct {
	KeyConditionExpression    string
	FilterExpression          string
	ExpressionAttributeNames  map[string]string
	ExpressionAttributeValues map[string]any

	// Placeholders in the order they were registered
	NameOrder  []string
	ValueOrder []string
}
