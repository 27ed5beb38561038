// Package query builds DynamoDB Query requests with namespaced placeholders.
package query

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/pay-theory/dynaquery/internal/expr"
	dqerrors "github.com/pay-theory/dynaquery/pkg/errors"
)

// Builder assembles a DynamoDB Query request through chained calls.
//
// Configuration calls never fail on their own. A condition that cannot be
// expressed is dropped and reported by Build, together with any other rejected
// conditions. A Builder is not safe for concurrent use while it is being
// configured; Build itself does not mutate state.
type Builder struct {
	table   string
	index   string
	limit   int
	forward bool

	expr   *expr.Builder
	errs   *multierror.Error
	logger *zap.Logger
}

// Option configures a Builder
type Option func(*Builder)

// WithLogger sets the logger used to report ignored or rejected configuration
func WithLogger(logger *zap.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// New creates a new Builder reading forward with no limit
func New(opts ...Option) *Builder {
	b := &Builder{
		forward: true,
		expr:    expr.NewBuilder(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Table sets the table to query
func (b *Builder) Table(name string) *Builder {
	b.table = name
	return b
}

// Index queries a secondary index instead of the primary key
func (b *Builder) Index(name string) *Builder {
	b.index = name
	return b
}

// Where adds a key condition from a field specifier of the form
// "attribute" or "attribute.operator", e.g. "age.>=" or "name.begins_with".
func (b *Builder) Where(fieldSpec string, value any) *Builder {
	cond, err := ParseCondition(fieldSpec, value)
	if err != nil {
		b.reject("where", fieldSpec, err)
		return b
	}
	return b.WhereCondition(cond)
}

// WhereCondition adds a key condition. Successive key conditions are joined with AND.
func (b *Builder) WhereCondition(cond Condition) *Builder {
	if err := b.expr.AddKeyCondition(cond.Attribute, cond.Operator, cond.Value); err != nil {
		b.reject("where", cond.String(), err)
	}
	return b
}

// Filter adds a filter condition from a field specifier, e.g. "status.ne"
func (b *Builder) Filter(fieldSpec string, value any) *Builder {
	cond, err := ParseCondition(fieldSpec, value)
	if err != nil {
		b.reject("filter", fieldSpec, err)
		return b
	}
	return b.FilterCondition(cond)
}

// FilterCondition adds a filter condition. Successive filters are joined with AND.
func (b *Builder) FilterCondition(cond Condition) *Builder {
	if err := b.expr.AddFilterCondition(cond.Attribute, cond.Operator, cond.Value); err != nil {
		b.reject("filter", cond.String(), err)
	}
	return b
}

// Limit sets the maximum number of items to evaluate. Zero leaves it unset.
func (b *Builder) Limit(n int) *Builder {
	if n < 0 {
		b.logger.Debug("negative limit treated as unset", zap.Int("limit", n))
		n = 0
	}
	b.limit = n
	return b
}

// ScanIndexForward sets the read order over the sort key. Only a bool or a
// non-nil *bool is applied; any other value leaves the order unchanged.
func (b *Builder) ScanIndexForward(forward any) *Builder {
	switch v := forward.(type) {
	case bool:
		b.forward = v
	case *bool:
		if v != nil {
			b.forward = *v
		}
	default:
		b.logger.Debug("ignoring non-boolean scan direction", zap.Any("value", forward))
	}
	return b
}

// Build returns the request described so far. It can be called any number of
// times; each call reflects the current configuration.
func (b *Builder) Build() (*Request, error) {
	if err := b.errs.ErrorOrNil(); err != nil {
		return nil, dqerrors.NewError("build", b.table, err)
	}

	components := b.expr.Build()
	req := &Request{
		TableName:                 b.table,
		ExpressionAttributeNames:  components.ExpressionAttributeNames,
		ExpressionAttributeValues: components.ExpressionAttributeValues,
		KeyConditionExpression:    components.KeyConditionExpression,
		ScanIndexForward:          b.forward,
		nameOrder:                 components.NameOrder,
		valueOrder:                components.ValueOrder,
	}

	if b.index != "" {
		req.IndexName = b.index
	}
	if components.FilterExpression != "" {
		req.FilterExpression = components.FilterExpression
	}
	if b.limit > 0 {
		req.Limit = b.limit
	}

	return req, nil
}

func (b *Builder) reject(op, condition string, err error) {
	b.logger.Debug("rejected condition",
		zap.String("op", op),
		zap.String("condition", condition),
		zap.Error(err))
	b.errs = multierror.Append(b.errs, fmt.Errorf("%s %s: %w", op, condition, err))
}
