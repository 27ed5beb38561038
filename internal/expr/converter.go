package expr

import (
	"fmt"
	"reflect"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	dqerrors "github.com/pay-theory/dynaquery/pkg/errors"
)

// ConvertToAttributeValue converts a Go value to a DynamoDB AttributeValue
func ConvertToAttributeValue(value any) (types.AttributeValue, error) {
	switch v := value.(type) {
	case nil:
		return &types.AttributeValueMemberNULL{Value: true}, nil
	case types.AttributeValue:
		return v, nil
	case time.Time:
		return &types.AttributeValueMemberS{Value: v.Format(time.RFC3339Nano)}, nil
	case *time.Time:
		if v == nil {
			return &types.AttributeValueMemberNULL{Value: true}, nil
		}
		return &types.AttributeValueMemberS{Value: v.Format(time.RFC3339Nano)}, nil
	}

	switch reflect.ValueOf(value).Kind() {
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return nil, fmt.Errorf("%w: %T", dqerrors.ErrUnsupportedType, value)
	}

	av, err := attributevalue.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %T: %v", dqerrors.ErrUnsupportedType, value, err)
	}
	return av, nil
}

// ConvertValues converts every placeholder value to its AttributeValue form
func ConvertValues(values map[string]any) (map[string]types.AttributeValue, error) {
	out := make(map[string]types.AttributeValue, len(values))
	for placeholder, value := range values {
		av, err := ConvertToAttributeValue(value)
		if err != nil {
			return nil, fmt.Errorf("value %s: %w", placeholder, err)
		}
		out[placeholder] = av
	}
	return out, nil
}
