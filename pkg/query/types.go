package query

import (
	"math"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/pay-theory/dynaquery/internal/expr"
	dqerrors "github.com/pay-theory/dynaquery/pkg/errors"
	"github.com/pay-theory/dynaquery/pkg/validation"
)

// Request is a finished query description, ready to be handed to a DynamoDB client.
// IndexName, FilterExpression and Limit are only set when configured.
type Request struct {
	TableName                 string            `json:"TableName"`
	IndexName                 string            `json:"IndexName,omitempty"`
	ExpressionAttributeNames  map[string]string `json:"ExpressionAttributeNames"`
	ExpressionAttributeValues map[string]any    `json:"ExpressionAttributeValues"`
	KeyConditionExpression    string            `json:"KeyConditionExpression"`
	FilterExpression          string            `json:"FilterExpression,omitempty"`
	ScanIndexForward          bool              `json:"ScanIndexForward"`
	Limit                     int               `json:"Limit,omitempty"`

	nameOrder  []string
	valueOrder []string
}

// NameAliases returns the attribute name placeholders in registration order
func (r *Request) NameAliases() []string {
	return append([]string(nil), r.nameOrder...)
}

// ValueAliases returns the value placeholders in registration order
func (r *Request) ValueAliases() []string {
	return append([]string(nil), r.valueOrder...)
}

// Validate checks that the request names a table and carries a key condition
func (r *Request) Validate() error {
	if err := validation.ValidateTableName(r.TableName); err != nil {
		return dqerrors.NewError("validate", r.TableName, err)
	}
	if err := validation.ValidateIndexName(r.IndexName); err != nil {
		return dqerrors.NewError("validate", r.TableName, err)
	}
	if r.KeyConditionExpression == "" {
		return dqerrors.NewError("validate", r.TableName, dqerrors.ErrMissingKeyCondition)
	}
	return nil
}

// QueryInput converts the request into the SDK input consumed by dynamodb.Client.Query
func (r *Request) QueryInput() (*dynamodb.QueryInput, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	values, err := expr.ConvertValues(r.ExpressionAttributeValues)
	if err != nil {
		return nil, dqerrors.NewError("convert", r.TableName, err)
	}

	names := make(map[string]string, len(r.ExpressionAttributeNames))
	for k, v := range r.ExpressionAttributeNames {
		names[k] = v
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.TableName),
		KeyConditionExpression:    aws.String(r.KeyConditionExpression),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ScanIndexForward:          aws.Bool(r.ScanIndexForward),
	}

	if r.IndexName != "" {
		input.IndexName = aws.String(r.IndexName)
	}
	if r.FilterExpression != "" {
		input.FilterExpression = aws.String(r.FilterExpression)
	}
	if r.Limit > 0 {
		limit := r.Limit
		if limit > math.MaxInt32 {
			limit = math.MaxInt32
		}
		input.Limit = aws.Int32(int32(limit))
	}

	return input, nil
}
